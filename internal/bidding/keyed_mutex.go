package bidding

import (
	"context"
	"sync"
	"time"
)

// keyedMutex serializes work per key. Locks for different keys are fully
// independent, so submissions for different auctions never contend.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]chan struct{})}
}

// lockChan returns the key's lock channel, creating it on first use. A
// buffered channel of capacity one acts as the lock: a successful send holds
// it, receiving releases it.
func (k *keyedMutex) lockChan(key string) chan struct{} {
	k.mu.Lock()
	defer k.mu.Unlock()
	ch, ok := k.locks[key]
	if !ok {
		ch = make(chan struct{}, 1)
		k.locks[key] = ch
	}
	return ch
}

// Acquire takes the key's lock, waiting at most wait. It returns a release
// function on success and false if the lock could not be acquired before the
// deadline or before ctx was done.
func (k *keyedMutex) Acquire(ctx context.Context, key string, wait time.Duration) (func(), bool) {
	ch := k.lockChan(key)

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case ch <- struct{}{}:
		return func() { <-ch }, true
	case <-timer.C:
		return nil, false
	case <-ctx.Done():
		return nil, false
	}
}
