package store

import (
	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/utils"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -package=store -destination=mock_store.go -source=store.go AuctionStore

// AuctionStore owns the authoritative auction state and the append-only bid
// history. TryCommitBid is the only mutator of price/bidder and must be
// atomic per auction: no caller may observe a half-applied state.
type AuctionStore interface {
	Get(auctionID string) (model.Auction, error)
	// TryCommitBid re-reads the live state and commits the bid iff the
	// auction is active, not past its deadline, and amount strictly exceeds
	// the current price. It returns the committed bid together with the
	// post-commit auction snapshot.
	TryCommitBid(auctionID, bidderID string, amount decimal.Decimal, now time.Time) (model.Bid, model.Auction, error)
	// CloseIfExpired lazily transitions an active auction to ended once its
	// deadline has passed. Idempotent; reports whether a transition happened.
	CloseIfExpired(auctionID string, now time.Time) (bool, error)
	BidHistory(auctionID string) ([]model.Bid, error)
	CreateAuction(a model.Auction) error
	CancelAuction(auctionID string) error
}

// auctionRecord pairs the live auction state with its bid history and the
// per-auction commit sequence.
type auctionRecord struct {
	auction model.Auction
	history []model.Bid
	seq     uint64
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore
type MemoryStore struct {
	mu       sync.RWMutex
	auctions map[string]*auctionRecord // key: auctionID
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions: make(map[string]*auctionRecord),
	}
}

// Get returns a snapshot of the auction's current state
func (s *MemoryStore) Get(auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return rec.auction, nil
}

// TryCommitBid atomically validates and applies a bid against live state.
func (s *MemoryStore) TryCommitBid(auctionID, bidderID string, amount decimal.Decimal, now time.Time) (model.Bid, model.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.auctions[auctionID]
	if !ok {
		return model.Bid{}, model.Auction{}, fmt.Errorf("commit bid for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	// Deadline expiry is observed lazily on the next commit attempt.
	if rec.auction.Status == model.StatusActive && !now.Before(rec.auction.EndAt) {
		rec.auction.Status = model.StatusEnded
	}
	if rec.auction.Status != model.StatusActive {
		return model.Bid{}, model.Auction{}, fmt.Errorf("commit bid for auction %s: %w", auctionID, auctionerrors.ErrAuctionClosed)
	}

	// Ties are rejected: a bid must strictly exceed the current price.
	if amount.Cmp(rec.auction.CurrentPrice) <= 0 {
		return model.Bid{}, model.Auction{}, fmt.Errorf("commit bid for auction %s: current price is %s: %w",
			auctionID, rec.auction.CurrentPrice.String(), auctionerrors.ErrBidTooLow)
	}

	rec.seq++
	bid := model.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		Seq:       rec.seq,
		CreatedAt: now.UTC(),
	}
	rec.auction.CurrentPrice = amount
	rec.auction.HighestBidderID = bidderID
	rec.auction.BidCount++
	rec.history = append(rec.history, bid)

	return bid, rec.auction, nil
}

// CloseIfExpired transitions an active auction past its deadline to ended.
func (s *MemoryStore) CloseIfExpired(auctionID string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.auctions[auctionID]
	if !ok {
		return false, fmt.Errorf("close auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if rec.auction.Status != model.StatusActive || now.Before(rec.auction.EndAt) {
		return false, nil
	}
	rec.auction.Status = model.StatusEnded
	return true, nil
}

// BidHistory returns a copy of the committed bids for an auction in commit order
func (s *MemoryStore) BidHistory(auctionID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.auctions[auctionID]
	if !ok {
		return nil, fmt.Errorf("bid history for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return append([]model.Bid(nil), rec.history...), nil
}

// CreateAuction registers a new auction. Intended for the listing
// collaborator and seed data; an existing ID is rejected.
func (s *MemoryStore) CreateAuction(a model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.AuctionID == "" {
		return fmt.Errorf("create auction: empty ID: %w", auctionerrors.ErrInvalidBid)
	}
	if _, ok := s.auctions[a.AuctionID]; ok {
		return fmt.Errorf("create auction %s: already exists", a.AuctionID)
	}
	if a.Status == "" {
		a.Status = model.StatusActive
	}
	s.auctions[a.AuctionID] = &auctionRecord{auction: a}
	return nil
}

// CancelAuction performs the explicit administrative transition to cancelled.
// Idempotent on already-terminal auctions.
func (s *MemoryStore) CancelAuction(auctionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.auctions[auctionID]
	if !ok {
		return fmt.Errorf("cancel auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if rec.auction.Status == model.StatusActive {
		rec.auction.Status = model.StatusCancelled
	}
	return nil
}
