package main

import (
	"os"
	"time"

	"auction-engine/internal/auth"
	"auction-engine/internal/bidding"
	"auction-engine/internal/dispatch"
	"auction-engine/internal/listing"
	model "auction-engine/internal/models"
	"auction-engine/internal/rooms"
	"auction-engine/internal/server"
	"auction-engine/internal/store"
	"auction-engine/internal/ws"
	"auction-engine/utils"

	"github.com/shopspring/decimal"
)

func main() {
	args := ParseArgs()
	if !args.Validate() {
		utils.Fatal("missing arguments: server-url and jwt-secret are required", nil)
	}
	utils.SetLogLevel(args.LogLevel)

	memStore := store.NewMemoryStore()
	prepopulateAuctions(memStore)

	registry := rooms.NewRegistry()
	dispatcher := dispatch.NewDispatcher(registry)
	dispatcher.Start()
	defer dispatcher.Close()

	listingSvc := listing.NewStoreBacked(memStore)
	processor := bidding.NewProcessor(memStore, listingSvc, dispatcher, args.LockWait)

	authenticator := auth.NewJWTAuthenticator(args.JWTSecret)
	hub := ws.NewHub(authenticator, registry, processor, args.SendBuffer)
	defer hub.CloseAll()

	router := server.SetupRouter(processor, hub, authenticator)

	utils.Info("starting auction server", map[string]any{"addr": args.ServerURL})
	if err := router.Run(args.ServerURL); err != nil {
		utils.Error("server stopped", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

// prepopulateAuctions adds sample auctions to the in-memory store
func prepopulateAuctions(s *store.MemoryStore) {
	endAt := time.Now().Add(24 * time.Hour)
	auctions := []model.Auction{
		{AuctionID: "auction-1", SellerID: "seller-1", Title: "title1", CurrentPrice: decimal.NewFromInt(100), EndAt: endAt},
		{AuctionID: "auction-2", SellerID: "seller-2", Title: "title2", CurrentPrice: decimal.NewFromInt(200), EndAt: endAt},
		{AuctionID: "auction-3", SellerID: "seller-1", Title: "title3", CurrentPrice: decimal.NewFromInt(150), EndAt: endAt},
	}

	for _, a := range auctions {
		if err := s.CreateAuction(a); err != nil {
			utils.Warn("seed auction skipped", map[string]any{"auction_id": a.AuctionID, "error": err.Error()})
		}
	}
}
