package server

import (
	"net/http"
	"strings"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/auth"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthRequired validates a Bearer credential and injects the verified bidder
// identity into the request context under "bidder_id" and "role".
func AuthRequired(authenticator auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrAuthenticationFailed, "missing bearer token")
			c.Abort()
			return
		}

		identity, err := authenticator.Verify(strings.TrimPrefix(authz, "Bearer "))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrAuthenticationFailed, "invalid token")
			c.Abort()
			return
		}

		c.Set("bidder_id", identity.BidderID)
		c.Set("role", identity.Role)
		c.Next()
	}
}
