package memory

import (
	"context"
	"sync"
	"time"

	"github.com/savid/streambuffer/internal/pubsub"
	"github.com/sirupsen/logrus"
)

// Monitor provides the latest memory snapshot on demand and a stream of
// snapshots while background monitoring is running.
type Monitor interface {
	// CurrentState returns the latest known snapshot, sampling on demand if
	// monitoring has never produced one.
	CurrentState() State
	// Start begins periodic sampling. Calling Start on a running monitor is a
	// no-op.
	Start()
	// Stop halts periodic sampling and releases the sampling loop. Safe to
	// call repeatedly or before Start.
	Stop()
	// Subscribe registers an observer for future snapshots. The returned
	// function cancels the subscription.
	Subscribe() (<-chan State, func())
	// States returns a lazy sequence of future snapshots that ends when ctx is
	// cancelled.
	States(ctx context.Context) <-chan State
}

// PollingMonitor samples device memory on a fixed interval and broadcasts each
// snapshot to subscribers. It is the production Monitor implementation.
type PollingMonitor struct {
	sampler    Sampler
	thresholds Thresholds
	logger     *logrus.Logger
	states     *pubsub.Broadcaster[State]

	mu        sync.Mutex
	latest    State
	hasSample bool
	running   bool
	stop      chan struct{}
	done      chan struct{}
}

// NewPollingMonitor creates a monitor that reads from sampler every
// thresholds.PollingInterval once started.
func NewPollingMonitor(sampler Sampler, thresholds Thresholds, logger *logrus.Logger) *PollingMonitor {
	return &PollingMonitor{
		sampler:    sampler,
		thresholds: thresholds,
		logger:     logger,
		states:     pubsub.NewBroadcaster[State](),
	}
}

// CurrentState returns the latest snapshot, sampling synchronously when no
// sample has been taken yet. A failed on-demand sample returns the zero State.
func (m *PollingMonitor) CurrentState() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hasSample {
		state, err := m.sampler.Sample()
		if err != nil {
			m.logger.WithError(err).Warn("On-demand memory sample failed")
			return m.latest
		}
		m.latest = state
		m.hasSample = true
	}
	return m.latest
}

// Start begins the sampling loop on its own goroutine. No-op when already
// running.
func (m *PollingMonitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}
	m.running = true
	m.stop = make(chan struct{})
	m.done = make(chan struct{})

	go m.loop(m.stop, m.done)
	m.logger.WithField("interval", m.thresholds.PollingInterval).Info("Memory monitoring started")
}

// Stop halts the sampling loop and waits for it to exit. Safe to call
// repeatedly or before Start; the last known snapshot remains available.
func (m *PollingMonitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	stop, done := m.stop, m.done
	m.mu.Unlock()

	close(stop)
	<-done
	m.logger.Info("Memory monitoring stopped")
}

// Subscribe registers an observer for snapshots emitted after this call.
func (m *PollingMonitor) Subscribe() (<-chan State, func()) {
	return m.states.Subscribe()
}

// States returns a lazy sequence of future snapshots bounded by ctx.
func (m *PollingMonitor) States(ctx context.Context) <-chan State {
	return m.states.Stream(ctx)
}

func (m *PollingMonitor) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.thresholds.PollingInterval)
	defer ticker.Stop()

	// Take one sample immediately so subscribers are not kept waiting for the
	// first full interval.
	m.sample()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.sample()
		}
	}
}

// sample takes one measurement, records it and broadcasts it. A failed read is
// logged and skipped; the loop retries on the next tick.
func (m *PollingMonitor) sample() {
	state, err := m.sampler.Sample()
	if err != nil {
		m.logger.WithError(err).Warn("Memory sample failed, skipping tick")
		return
	}

	m.mu.Lock()
	m.latest = state
	m.hasSample = true
	m.mu.Unlock()

	m.logger.WithFields(logrus.Fields{
		"available_mb": state.AvailableMB(),
		"used_percent": state.UsedPercentage(),
		"pressure":     m.thresholds.ClassifyState(state).String(),
	}).Debug("Memory sampled")

	m.states.Publish(state)
}
