package dispatch

import (
	"context"

	"github.com/smallnest/chanx"
)

// unboundedQueue decouples publishers from the delivery loop. The buffer
// grows as needed, so push never blocks; closing the inbound side drains the
// remaining events before the outbound side closes.
type unboundedQueue struct {
	ch *chanx.UnboundedChan[envelope]
}

func newUnboundedQueue(ctx context.Context) *unboundedQueue {
	return &unboundedQueue{ch: chanx.NewUnboundedChan[envelope](ctx, 64)}
}

func (q *unboundedQueue) push(env envelope) {
	q.ch.In <- env
}

func (q *unboundedQueue) out() <-chan envelope {
	return q.ch.Out
}

func (q *unboundedQueue) close() {
	close(q.ch.In)
}
