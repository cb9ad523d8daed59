package buffer

import (
	"context"
	"sync"

	"github.com/savid/streambuffer/internal/pubsub"
	"github.com/savid/streambuffer/pkg/memory"
	"github.com/savid/streambuffer/pkg/network"
	"github.com/sirupsen/logrus"
)

// Manager maintains the current buffering configuration and recomputes it
// whenever a memory or network input changes.
type Manager interface {
	// UpdateMemoryState feeds a new memory snapshot into the controller.
	UpdateMemoryState(state memory.State)
	// UpdateNetworkQuality feeds a new network classification into the
	// controller.
	UpdateNetworkQuality(quality network.Quality)
	// CurrentConfiguration returns the latest computed configuration. Valid
	// before any update has occurred.
	CurrentConfiguration() Configuration
	// Subscribe registers an observer for future configuration changes. The
	// returned function cancels the subscription.
	Subscribe() (<-chan Configuration, func())
	// Configurations returns a lazy sequence of future configuration changes
	// that ends when ctx is cancelled.
	Configurations(ctx context.Context) <-chan Configuration
}

// AdaptiveManager is the production Manager. A single mutex serializes the
// read-inputs, combine, write, broadcast sequence so concurrent memory and
// network updates never clobber each other's effect.
type AdaptiveManager struct {
	thresholds memory.Thresholds
	ceilings   CeilingPolicy
	logger     *logrus.Logger
	changes    *pubsub.Broadcaster[Configuration]

	mu       sync.Mutex
	pressure memory.PressureLevel
	quality  network.Quality
	current  Configuration
}

// NewAdaptiveManager creates a controller holding the default balanced
// configuration. Inputs start unconstrained until the first updates arrive.
func NewAdaptiveManager(thresholds memory.Thresholds, ceilings CeilingPolicy, logger *logrus.Logger) *AdaptiveManager {
	return &AdaptiveManager{
		thresholds: thresholds,
		ceilings:   ceilings,
		logger:     logger,
		changes:    pubsub.NewBroadcaster[Configuration](),
		pressure:   memory.PressureNormal,
		quality:    network.QualityExcellent,
		current:    DefaultConfiguration(),
	}
}

// UpdateMemoryState classifies the snapshot against the configured thresholds
// and recomputes the configuration. Subscribers are notified only when the
// resulting configuration differs from the current one.
func (m *AdaptiveManager) UpdateMemoryState(state memory.State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pressure = m.thresholds.ClassifyState(state)
	m.recomputeLocked()
}

// UpdateNetworkQuality records the new network classification and recomputes
// the configuration, notifying subscribers on change.
func (m *AdaptiveManager) UpdateNetworkQuality(quality network.Quality) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.quality = quality
	m.recomputeLocked()
}

// CurrentConfiguration returns the latest computed configuration.
func (m *AdaptiveManager) CurrentConfiguration() Configuration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Subscribe registers an observer for configuration changes after this call.
func (m *AdaptiveManager) Subscribe() (<-chan Configuration, func()) {
	return m.changes.Subscribe()
}

// Configurations returns a lazy sequence of future configuration changes
// bounded by ctx.
func (m *AdaptiveManager) Configurations(ctx context.Context) <-chan Configuration {
	return m.changes.Stream(ctx)
}

// recomputeLocked applies the combine rule: the effective strategy is the
// minimum of the memory and network ceilings. Callers must hold m.mu.
func (m *AdaptiveManager) recomputeLocked() {
	memoryCeiling := m.ceilings.MemoryCeiling(m.pressure)
	networkCeiling := m.ceilings.NetworkCeiling(m.quality)
	strategy := minStrategy(memoryCeiling, networkCeiling)

	// Memory takes precedence in the reported reason on ties.
	var reason string
	if memoryCeiling <= networkCeiling {
		reason = memoryReason(strategy, m.pressure)
	} else {
		reason = networkReason(strategy)
	}

	next := NewConfiguration(strategy, reason)
	if next == m.current {
		return
	}
	m.current = next

	m.logger.WithFields(logrus.Fields{
		"strategy":        next.Strategy.String(),
		"forward_seconds": next.PreferredForwardBufferSeconds,
		"reason":          next.Reason,
	}).Info("Buffer configuration changed")

	m.changes.Publish(next)
}
