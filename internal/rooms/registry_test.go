package rooms

import (
	"fmt"
	"sync"
	"testing"

	model "auction-engine/internal/models"

	"github.com/stretchr/testify/require"
)

// fakeSubscriber records delivered events; Deliver never fails.
type fakeSubscriber struct {
	id string

	mu     sync.Mutex
	events []model.Event
}

func newFakeSubscriber(id string) *fakeSubscriber {
	return &fakeSubscriber{id: id}
}

func (f *fakeSubscriber) ConnID() string { return f.id }

func (f *fakeSubscriber) Deliver(ev model.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return nil
}

func TestRegistry_JoinIsIdempotent(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	sub := newFakeSubscriber("conn1")

	r.Join("auction-42", sub)
	r.Join("auction-42", sub)
	r.Join("auction-42", sub)

	require.Equal(t, 1, r.RoomSize("auction-42"), "joining twice must not grow membership")
	require.Len(t, r.Members("auction-42"), 1)
}

func TestRegistry_LeaveIsIdempotent(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	sub := newFakeSubscriber("conn1")

	// Leaving before joining is a no-op.
	r.Leave("auction-42", sub)
	require.Equal(t, 0, r.RoomSize("auction-42"))

	r.Join("auction-42", sub)
	r.Leave("auction-42", sub)
	r.Leave("auction-42", sub)
	require.Equal(t, 0, r.RoomSize("auction-42"))
}

func TestRegistry_MembersReturnsSnapshot(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	sub1 := newFakeSubscriber("conn1")
	sub2 := newFakeSubscriber("conn2")

	r.Join("auction-42", sub1)
	snapshot := r.Members("auction-42")
	require.Len(t, snapshot, 1)

	// Later membership changes do not affect the snapshot already taken.
	r.Join("auction-42", sub2)
	require.Len(t, snapshot, 1)
	require.Len(t, r.Members("auction-42"), 2)

	require.Nil(t, r.Members("auction-unknown"))
}

func TestRegistry_DropSessionRemovesFromEveryRoom(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	sub := newFakeSubscriber("conn1")
	other := newFakeSubscriber("conn2")

	r.Join("auction-1", sub)
	r.Join("auction-2", sub)
	r.Join("auction-3", sub)
	r.Join("auction-2", other)

	r.DropSession(sub)

	require.Equal(t, 0, r.RoomSize("auction-1"))
	require.Equal(t, 1, r.RoomSize("auction-2"), "other sessions stay")
	require.Equal(t, 0, r.RoomSize("auction-3"))
	require.False(t, r.Contains("auction-2", sub))
	require.True(t, r.Contains("auction-2", other))

	// Dropping again is a no-op.
	r.DropSession(sub)
	require.Equal(t, 1, r.RoomSize("auction-2"))
}

func TestRegistry_ConcurrentJoinLeave(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	const workers = 32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sub := newFakeSubscriber(fmt.Sprintf("conn%d", n))
			auctionID := fmt.Sprintf("auction-%d", n%4)
			for j := 0; j < 100; j++ {
				r.Join(auctionID, sub)
				r.Members(auctionID)
				if j%2 == 0 {
					r.Leave(auctionID, sub)
				} else {
					r.DropSession(sub)
				}
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		require.Equal(t, 0, r.RoomSize(fmt.Sprintf("auction-%d", i)))
	}
}
