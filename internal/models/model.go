package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionStatus is the lifecycle state of an auction. Active auctions accept
// bids; Ended and Cancelled are terminal.
type AuctionStatus string

const (
	StatusActive    AuctionStatus = "active"
	StatusEnded     AuctionStatus = "ended"
	StatusCancelled AuctionStatus = "cancelled"
)

// Terminal reports whether no further price mutation is permitted.
func (s AuctionStatus) Terminal() bool {
	return s == StatusEnded || s == StatusCancelled
}

// Auction is the authoritative state of one auction. CurrentPrice and
// HighestBidderID are mutated only through the store's commit path.
type Auction struct {
	AuctionID       string          `json:"auction_id"`
	SellerID        string          `json:"seller_id"`
	Title           string          `json:"title"`
	CurrentPrice    decimal.Decimal `json:"current_price"`
	HighestBidderID string          `json:"highest_bidder_id,omitempty"`
	Status          AuctionStatus   `json:"status"`
	EndAt           time.Time       `json:"end_at"`
	BidCount        int             `json:"bid_count"`
}

// Bid is one committed bid. Immutable once created; Seq is the per-auction
// commit sequence number starting at 1.
type Bid struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	BidderID  string          `json:"bidder_id"`
	Amount    decimal.Decimal `json:"amount"`
	Seq       uint64          `json:"seq"`
	CreatedAt time.Time       `json:"created_at"`
}

// Event is one outbound notification fanned out to room subscribers or sent
// to a single session.
type Event struct {
	Type      string   `json:"type"`
	AuctionID string   `json:"auction_id,omitempty"`
	Auction   *Auction `json:"auction,omitempty"`
	Bid       *Bid     `json:"bid,omitempty"`
	Reason    string   `json:"reason,omitempty"`
	Message   string   `json:"message,omitempty"`
}

// Outbound event types.
const (
	EventNewBid   = "new-bid"
	EventBidError = "bid-error"
	EventJoined   = "joined"
	EventLeft     = "left"
)

// NewBidEvent builds the broadcast payload for an accepted bid.
func NewBidEvent(auction Auction, bid Bid) Event {
	return Event{Type: EventNewBid, AuctionID: auction.AuctionID, Auction: &auction, Bid: &bid}
}

// BidErrorEvent builds the payload sent to the submitting session only.
func BidErrorEvent(auctionID, reason, message string) Event {
	return Event{Type: EventBidError, AuctionID: auctionID, Reason: reason, Message: message}
}

// AckEvent confirms a join or leave back to the requesting session.
func AckEvent(eventType, auctionID string) Event {
	return Event{Type: eventType, AuctionID: auctionID}
}
