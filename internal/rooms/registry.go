package rooms

import (
	model "auction-engine/internal/models"
	"sync"
)

// Subscriber is one live connection as the registry and dispatcher see it.
// Deliver must not block; a subscriber that cannot keep up returns an error
// and the event is skipped for it.
type Subscriber interface {
	ConnID() string
	Deliver(ev model.Event) error
}

// Registry maps auction identifiers to the live set of subscribed
// connections. It is consulted only for fan-out targeting and is synchronized
// independently of the bid decision path, so Members never blocks on an
// in-flight commit.
type Registry struct {
	mu     sync.RWMutex
	rooms  map[string]map[string]Subscriber // auctionID -> connID -> subscriber
	joined map[string]map[string]struct{}   // connID -> set of auctionIDs
}

// NewRegistry creates an empty room registry
func NewRegistry() *Registry {
	return &Registry{
		rooms:  make(map[string]map[string]Subscriber),
		joined: make(map[string]map[string]struct{}),
	}
}

// Join adds a subscriber to an auction's room. Adding an already-present
// subscriber is a no-op.
func (r *Registry) Join(auctionID string, s Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[auctionID]
	if !ok {
		room = make(map[string]Subscriber)
		r.rooms[auctionID] = room
	}
	room[s.ConnID()] = s

	set, ok := r.joined[s.ConnID()]
	if !ok {
		set = make(map[string]struct{})
		r.joined[s.ConnID()] = set
	}
	set[auctionID] = struct{}{}
}

// Leave removes a subscriber from an auction's room. Removing an absent
// subscriber is a no-op.
func (r *Registry) Leave(auctionID string, s Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaveLocked(auctionID, s.ConnID())
}

func (r *Registry) leaveLocked(auctionID, connID string) {
	if room, ok := r.rooms[auctionID]; ok {
		delete(room, connID)
		if len(room) == 0 {
			delete(r.rooms, auctionID)
		}
	}
	if set, ok := r.joined[connID]; ok {
		delete(set, auctionID)
		if len(set) == 0 {
			delete(r.joined, connID)
		}
	}
}

// Members returns a snapshot of the room's current subscribers. The snapshot
// is a copy; further joins and leaves do not affect it.
func (r *Registry) Members(auctionID string) []Subscriber {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[auctionID]
	if !ok {
		return nil
	}
	out := make([]Subscriber, 0, len(room))
	for _, s := range room {
		out = append(out, s)
	}
	return out
}

// Contains reports whether a subscriber is currently in an auction's room
func (r *Registry) Contains(auctionID string, s Subscriber) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[auctionID]
	if !ok {
		return false
	}
	_, ok = room[s.ConnID()]
	return ok
}

// DropSession removes a subscriber from every room it was part of in one
// pass. Called on disconnect; idempotent.
func (r *Registry) DropSession(s Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	connID := s.ConnID()
	for auctionID := range r.joined[connID] {
		r.leaveLocked(auctionID, connID)
	}
	delete(r.joined, connID)
}

// RoomSize returns the current number of subscribers in a room
func (r *Registry) RoomSize(auctionID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[auctionID])
}
