// Package pubsub provides in-process fan-out of values to multiple subscribers.
package pubsub

import (
	"context"
	"sync"
)

// subscriberBuffer is the channel capacity given to each subscriber. A
// subscriber that falls further behind than this misses intermediate values
// rather than stalling the publisher.
const subscriberBuffer = 16

// Broadcaster delivers every published value to all current subscribers.
// Subscribers attached after a value was published do not receive it.
type Broadcaster[T any] struct {
	mu     sync.Mutex
	subs   map[uint64]chan T
	nextID uint64
	closed bool
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{
		subs: make(map[uint64]chan T),
	}
}

// Subscribe registers a new subscriber and returns its receive channel together
// with a cancel function. The cancel function is idempotent and closes the
// channel once no further deliveries can occur.
func (b *Broadcaster[T]) Subscribe() (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan T, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers v to every subscriber. Delivery never blocks: a subscriber
// whose buffer is full skips this value.
func (b *Broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- v:
		default:
		}
	}
}

// Stream returns a lazy sequence of future values as an unbuffered channel.
// The sequence ends, and the underlying subscription is released, when ctx is
// cancelled or the broadcaster is closed.
func (b *Broadcaster[T]) Stream(ctx context.Context) <-chan T {
	ch, cancel := b.Subscribe()
	out := make(chan T)

	go func() {
		defer close(out)
		defer cancel()

		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Close removes all subscribers and closes their channels. Further Publish
// calls are no-ops; further Subscribe calls return a closed channel.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
