package memory

import (
	"context"
	"sync"

	"github.com/savid/streambuffer/internal/pubsub"
)

// StaticMonitor is a manually driven Monitor for deterministic tests and
// previews. Push calls stand in for the sampling loop.
type StaticMonitor struct {
	states *pubsub.Broadcaster[State]

	mu     sync.Mutex
	latest State
}

// NewStaticMonitor creates a monitor whose current state is the given initial
// snapshot.
func NewStaticMonitor(initial State) *StaticMonitor {
	return &StaticMonitor{
		states: pubsub.NewBroadcaster[State](),
		latest: initial,
	}
}

// Push records state as the current snapshot and broadcasts it.
func (m *StaticMonitor) Push(state State) {
	m.mu.Lock()
	m.latest = state
	m.mu.Unlock()

	m.states.Publish(state)
}

// CurrentState returns the most recently pushed snapshot.
func (m *StaticMonitor) CurrentState() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.latest
}

// Start is a no-op; states are produced by Push.
func (m *StaticMonitor) Start() {}

// Stop is a no-op.
func (m *StaticMonitor) Stop() {}

// Subscribe registers an observer for future pushed states.
func (m *StaticMonitor) Subscribe() (<-chan State, func()) {
	return m.states.Subscribe()
}

// States returns a lazy sequence of future pushed states bounded by ctx.
func (m *StaticMonitor) States(ctx context.Context) <-chan State {
	return m.states.Stream(ctx)
}
