package auctionerrors

import "errors"

// Connection-level errors
var (
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// Store-level errors
var (
	ErrAuctionNotFound  = errors.New("auction not found")
	ErrStoreUnavailable = errors.New("auction store unavailable")
)

// Bid rejection errors
var (
	ErrInvalidBid        = errors.New("invalid bid")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrAuctionClosed     = errors.New("auction closed")
	ErrSelfBidNotAllowed = errors.New("seller cannot bid on own auction")
	ErrLockTimeout       = errors.New("bid submission timed out")
)

// Reason returns the wire-level reason code for a bid rejection. Unknown
// errors are reported as a store failure rather than leaked verbatim.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidBid):
		return "InvalidBid"
	case errors.Is(err, ErrAuctionNotFound):
		return "AuctionNotFound"
	case errors.Is(err, ErrAuctionClosed):
		return "AuctionClosed"
	case errors.Is(err, ErrBidTooLow):
		return "BidTooLow"
	case errors.Is(err, ErrSelfBidNotAllowed):
		return "SelfBidNotAllowed"
	case errors.Is(err, ErrLockTimeout):
		return "Timeout"
	case errors.Is(err, ErrAuthenticationFailed):
		return "AuthenticationFailed"
	default:
		return "StoreUnavailable"
	}
}
