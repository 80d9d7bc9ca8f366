package listing

import (
	"auction-engine/internal/store"
	"fmt"
	"time"

	model "auction-engine/internal/models"
)

//go:generate mockgen -package=listing -destination=mock_listing.go -source=listing.go Service

// Meta is the narrow slice of listing data the bid processor depends on.
type Meta struct {
	SellerID string
	EndAt    time.Time
	Status   model.AuctionStatus
}

// Service is the listing-management collaborator. The engine consumes only
// this read contract; listing CRUD lives elsewhere.
type Service interface {
	GetAuctionMeta(auctionID string) (Meta, error)
}

// StoreBacked serves listing metadata straight from the auction store. It
// stands in for the external listing service in a single-process deployment.
type StoreBacked struct {
	store store.AuctionStore
}

// NewStoreBacked creates a listing service reading from the given store
func NewStoreBacked(s store.AuctionStore) *StoreBacked {
	return &StoreBacked{store: s}
}

// GetAuctionMeta returns the seller, deadline and status of an auction
func (l *StoreBacked) GetAuctionMeta(auctionID string) (Meta, error) {
	a, err := l.store.Get(auctionID)
	if err != nil {
		return Meta{}, fmt.Errorf("listing: get meta for auction %s: %w", auctionID, err)
	}
	return Meta{SellerID: a.SellerID, EndAt: a.EndAt, Status: a.Status}, nil
}
