package helpers

import "github.com/shopspring/decimal"

// Request/Response DTOs
type PlaceBidRequest struct {
	AuctionID string          `json:"auction_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	AuctionID string `json:"auction_id"`
	BidderID  string `json:"bidder_id"`
	Amount    string `json:"amount"`
	Seq       uint64 `json:"seq"`
	CreatedAt string `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID       string `json:"auction_id"`
	SellerID        string `json:"seller_id"`
	Title           string `json:"title"`
	CurrentPrice    string `json:"current_price"`
	HighestBidderID string `json:"highest_bidder_id,omitempty"`
	Status          string `json:"status"`
	EndAt           string `json:"end_at"`
	BidCount        int    `json:"bid_count"`
}
