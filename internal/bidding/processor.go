package bidding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/listing"
	model "auction-engine/internal/models"
	"auction-engine/internal/store"
	"auction-engine/utils"

	"github.com/shopspring/decimal"
)

// DefaultLockWait bounds how long one submission may wait for an auction's
// serialization point before failing with a Timeout rejection.
const DefaultLockWait = 2 * time.Second

// Publisher hands accepted-bid events to the broadcast path. Publish must
// return without blocking on subscriber I/O.
type Publisher interface {
	Publish(auctionID string, ev model.Event)
}

// Processor is the serialized decision point for bid submissions. Exactly one
// commit attempt executes at a time per auction; submissions for different
// auctions proceed fully in parallel.
type Processor struct {
	store     store.AuctionStore
	listing   listing.Service
	publisher Publisher
	locks     *keyedMutex
	lockWait  time.Duration
	now       func() time.Time
}

// NewProcessor creates a bid processor with injected collaborators
func NewProcessor(s store.AuctionStore, l listing.Service, p Publisher, lockWait time.Duration) *Processor {
	if lockWait <= 0 {
		lockWait = DefaultLockWait
	}
	return &Processor{
		store:     s,
		listing:   l,
		publisher: p,
		locks:     newKeyedMutex(),
		lockWait:  lockWait,
		now:       time.Now,
	}
}

// SubmitBid validates and commits a proposed bid. On success the committed
// bid is returned and a new-bid event is handed to the publisher; on
// rejection the typed error is returned to the caller only and nothing is
// broadcast.
func (p *Processor) SubmitBid(ctx context.Context, auctionID, bidderID string, amount decimal.Decimal) (model.Bid, error) {
	if err := validateSubmission(auctionID, bidderID, amount); err != nil {
		return model.Bid{}, err
	}

	meta, err := p.listing.GetAuctionMeta(auctionID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrAuctionNotFound) {
			return model.Bid{}, err
		}
		return model.Bid{}, fmt.Errorf("processor: listing lookup for auction %s: %w: %w", auctionID, auctionerrors.ErrStoreUnavailable, err)
	}
	if meta.SellerID == bidderID {
		return model.Bid{}, fmt.Errorf("processor: bidder %s owns auction %s: %w", bidderID, auctionID, auctionerrors.ErrSelfBidNotAllowed)
	}

	// Serialization point: one commit attempt at a time per auction. The
	// lock covers only the commit, never the broadcast.
	release, ok := p.locks.Acquire(ctx, auctionID, p.lockWait)
	if !ok {
		return model.Bid{}, fmt.Errorf("processor: could not acquire auction %s within %s: %w", auctionID, p.lockWait, auctionerrors.ErrLockTimeout)
	}

	bid, auction, err := p.store.TryCommitBid(auctionID, bidderID, amount, p.now())
	release()
	if err != nil {
		if isRejection(err) {
			return model.Bid{}, err
		}
		return model.Bid{}, fmt.Errorf("processor: commit for auction %s: %w: %w", auctionID, auctionerrors.ErrStoreUnavailable, err)
	}

	// Broadcast strictly after a successful commit.
	p.publisher.Publish(auctionID, model.NewBidEvent(auction, bid))

	utils.Info("bid committed", map[string]any{
		"auction_id": auctionID,
		"bidder_id":  bidderID,
		"amount":     amount.String(),
		"seq":        bid.Seq,
	})
	return bid, nil
}

// Snapshot returns the auction's current state, reconciling a passed deadline
// with the stored status first.
func (p *Processor) Snapshot(auctionID string) (model.Auction, error) {
	if _, err := p.store.CloseIfExpired(auctionID, p.now()); err != nil {
		return model.Auction{}, err
	}
	return p.store.Get(auctionID)
}

// History returns the auction's committed bids in commit order
func (p *Processor) History(auctionID string) ([]model.Bid, error) {
	return p.store.BidHistory(auctionID)
}

// validateSubmission checks the submission's shape before any state access
func validateSubmission(auctionID, bidderID string, amount decimal.Decimal) error {
	if auctionID == "" || bidderID == "" {
		return fmt.Errorf("processor: missing auctionID or bidderID: %w", auctionerrors.ErrInvalidBid)
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf("processor: non-positive bid amount %s: %w", amount.String(), auctionerrors.ErrInvalidBid)
	}
	return nil
}

// isRejection reports whether the store error is part of the bid rejection
// taxonomy, as opposed to an I/O failure that must surface as StoreUnavailable.
func isRejection(err error) bool {
	return errors.Is(err, auctionerrors.ErrAuctionNotFound) ||
		errors.Is(err, auctionerrors.ErrAuctionClosed) ||
		errors.Is(err, auctionerrors.ErrBidTooLow)
}
