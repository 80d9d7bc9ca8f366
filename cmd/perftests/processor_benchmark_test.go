package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"auction-engine/internal/bidding"
	"auction-engine/internal/listing"
	model "auction-engine/internal/models"
	"auction-engine/internal/store"

	"github.com/shopspring/decimal"
)

// noopPublisher swallows broadcast events so benchmarks measure the
// commit path alone.
type noopPublisher struct{}

func (noopPublisher) Publish(auctionID string, ev model.Event) {}

func newBenchProcessor(memStore *store.MemoryStore) *bidding.Processor {
	return bidding.NewProcessor(memStore, listing.NewStoreBacked(memStore), noopPublisher{}, 2*time.Second)
}

func seedAuction(memStore *store.MemoryStore, auctionID string, price int64) {
	memStore.CreateAuction(model.Auction{
		AuctionID:    auctionID,
		SellerID:     "seller-bench",
		Title:        "benchmark auction " + auctionID,
		CurrentPrice: decimal.NewFromInt(price),
		Status:       model.StatusActive,
		EndAt:        time.Now().Add(24 * time.Hour),
	})
}

// Benchmark 1: SubmitBid - Isolated Auctions (Low Contention - Micro Benchmark)
func Benchmark_SubmitBid_Isolated(b *testing.B) {
	memStore := store.NewMemoryStore()
	processor := newBenchProcessor(memStore)
	ctx := context.Background()

	for i := 0; i < b.N; i++ {
		seedAuction(memStore, fmt.Sprintf("auction_%d", i), 50)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bidderID := fmt.Sprintf("user_%d", i)
		auctionID := fmt.Sprintf("auction_%d", i)
		amount := decimal.NewFromInt(int64(51 + rand.Intn(100)))
		if _, err := processor.SubmitBid(ctx, auctionID, bidderID, amount); err != nil {
			b.Fatalf("failed to submit bid: %v", err)
		}
	}
}

// Benchmark 2: SubmitBid - Shared Auction (High Contention - Concurrency Benchmark)
func Benchmark_SubmitBid_ConcurrentSharedAuction(b *testing.B) {
	memStore := store.NewMemoryStore()
	processor := newBenchProcessor(memStore)
	ctx := context.Background()

	seedAuction(memStore, "shared_auction_1", 50)

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidderID := fmt.Sprintf("user_parallel_%d", rnd.Int())

			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _ = processor.SubmitBid(ctx, "shared_auction_1", bidderID, decimal.NewFromInt(nextBid))
		}
	})
}

// Benchmark 3: Snapshot - Single-Threaded (Low Contention)
func Benchmark_Snapshot_SingleThreaded(b *testing.B) {
	memStore := store.NewMemoryStore()
	processor := newBenchProcessor(memStore)
	ctx := context.Background()

	for i := 0; i < b.N; i++ {
		auctionID := fmt.Sprintf("auction_%d", i)
		seedAuction(memStore, auctionID, 50)

		for j := 0; j < 10; j++ {
			bidderID := fmt.Sprintf("user_%d_%d", i, j)
			_, _ = processor.SubmitBid(ctx, auctionID, bidderID, decimal.NewFromInt(int64(51+j*10)))
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		auctionID := fmt.Sprintf("auction_%d", i)
		if _, err := processor.Snapshot(auctionID); err != nil {
			b.Fatalf("failed to read snapshot: %v", err)
		}
	}
}

// Benchmark 4: Snapshot - Concurrent (High Contention)
func Benchmark_Snapshot_ConcurrentSharedAuction(b *testing.B) {
	memStore := store.NewMemoryStore()
	processor := newBenchProcessor(memStore)
	ctx := context.Background()

	seedAuction(memStore, "shared_auction_1", 50)
	for j := 0; j < 100; j++ {
		bidderID := fmt.Sprintf("user_%d", j)
		_, _ = processor.SubmitBid(ctx, "shared_auction_1", bidderID, decimal.NewFromInt(int64(51+j)))
	}

	b.ReportAllocs()
	b.ResetTimer()

	var counter int64

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := processor.Snapshot("shared_auction_1"); err != nil {
				b.Fatalf("failed to read snapshot: %v", err)
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}

// Benchmark 5: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload_SharedAuction(b *testing.B) {
	memStore := store.NewMemoryStore()
	processor := newBenchProcessor(memStore)
	ctx := context.Background()

	seedAuction(memStore, "shared_auction_1", 50)
	for j := 0; j < 50; j++ {
		bidderID := fmt.Sprintf("user_seed_%d", j)
		_, _ = processor.SubmitBid(ctx, "shared_auction_1", bidderID, decimal.NewFromInt(int64(51+j*2)))
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 200
	var counter int64

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			opType := rnd.Intn(10)
			switch {
			case opType < 3:
				// Writer: submit a new bid
				bidderID := fmt.Sprintf("user_writer_%d", rnd.Int())
				nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
				_, _ = processor.SubmitBid(ctx, "shared_auction_1", bidderID, decimal.NewFromInt(nextBid))
			default:
				// Reader: read the snapshot
				_, _ = processor.Snapshot("shared_auction_1")
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}
