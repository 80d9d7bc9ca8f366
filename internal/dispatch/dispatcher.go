package dispatch

import (
	"context"
	"sync"

	model "auction-engine/internal/models"
	"auction-engine/internal/rooms"
	"auction-engine/utils"
)

// envelope pairs an event with its target room.
type envelope struct {
	auctionID string
	event     model.Event
}

// Dispatcher fans out outcome events to the current members of an auction's
// room. Publishing enqueues and returns immediately so a slow or stalled
// subscriber can never stall the bid decision path. Delivery is best-effort
// per subscriber: a failed delivery is logged and skipped, never retried
// synchronously, and never aborts delivery to other subscribers.
type Dispatcher struct {
	registry *rooms.Registry
	queue    *unboundedQueue

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewDispatcher creates a dispatcher reading membership from the registry.
// Start must be called before Publish.
func NewDispatcher(registry *rooms.Registry) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		registry: registry,
		queue:    newUnboundedQueue(ctx),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start launches the delivery goroutine
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for env := range d.queue.out() {
			d.deliver(env)
		}
	}()
}

// Publish enqueues an event for every current member of the auction's room.
// It never blocks on subscriber I/O. Publishing after Close is a no-op.
func (d *Dispatcher) Publish(auctionID string, ev model.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		utils.Warn("dispatch: publish after close dropped", map[string]any{
			"auction_id": auctionID,
			"event":      ev.Type,
		})
		return
	}
	d.queue.push(envelope{auctionID: auctionID, event: ev})
}

// deliver reads a fresh membership snapshot and pushes the event to each
// member's outbound channel.
func (d *Dispatcher) deliver(env envelope) {
	members := d.registry.Members(env.auctionID)
	for _, m := range members {
		if err := m.Deliver(env.event); err != nil {
			utils.Warn("dispatch: delivery failed, skipping subscriber", map[string]any{
				"auction_id": env.auctionID,
				"conn_id":    m.ConnID(),
				"event":      env.event.Type,
				"error":      err.Error(),
			})
		}
	}
	utils.Debug("dispatch: event delivered", map[string]any{
		"auction_id": env.auctionID,
		"event":      env.event.Type,
		"members":    len(members),
	})
}

// Close stops accepting events, drains the queue, and waits for the delivery
// goroutine to exit. Idempotent.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	d.queue.close()
	d.wg.Wait()
	d.cancel()
}
