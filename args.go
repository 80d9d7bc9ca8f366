package main

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ParseArgs reads configuration from flags and AUCTION_-prefixed environment
// variables, flags taking precedence.
func ParseArgs() Args {
	// server config
	pflag.String("server-url", "0.0.0.0:8080", "listen address")

	// auth config
	pflag.String("jwt-secret", "", "HS256 secret used to verify credential tokens")

	// bidding config
	pflag.Duration("lock-wait", 2*time.Second, "bounded wait for an auction's serialization point")
	pflag.Int("send-buffer", 32, "per-session outbound event buffer")

	// logging
	pflag.String("log-level", "info", "log level (debug, info, warn, error)")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("AUCTION")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return Args{
		ServerURL:  viper.GetString("server-url"),
		JWTSecret:  viper.GetString("jwt-secret"),
		LockWait:   viper.GetDuration("lock-wait"),
		SendBuffer: viper.GetInt("send-buffer"),
		LogLevel:   viper.GetString("log-level"),
	}
}

type Args struct {
	ServerURL  string
	JWTSecret  string
	LockWait   time.Duration
	SendBuffer int
	LogLevel   string
}

func (args Args) Validate() bool {
	return args.ServerURL != "" && args.JWTSecret != ""
}
