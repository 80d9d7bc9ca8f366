package ws

import (
	"github.com/shopspring/decimal"
)

// Inbound event types (client -> server).
const (
	InboundJoinAuction  = "join-auction"
	InboundLeaveAuction = "leave-auction"
	InboundPlaceBid     = "place-bid"
)

// InboundEvent is one client frame. Amount is decimal-parsed so clients may
// send it as a JSON string or number without losing precision.
type InboundEvent struct {
	Type      string          `json:"type"`
	AuctionID string          `json:"auction_id"`
	Amount    decimal.Decimal `json:"amount"`
}
