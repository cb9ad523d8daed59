package observability

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/savid/streambuffer/pkg/buffer"
	"github.com/savid/streambuffer/pkg/memory"
)

// Collector consumes monitor and controller subscriptions and mirrors them
// into Prometheus metrics.
type Collector struct {
	metrics    *Metrics
	thresholds memory.Thresholds
	logger     *logrus.Logger
}

// NewCollector creates a collector writing to the given metrics.
func NewCollector(metrics *Metrics, thresholds memory.Thresholds, logger *logrus.Logger) *Collector {
	return &Collector{
		metrics:    metrics,
		thresholds: thresholds,
		logger:     logger,
	}
}

// Run subscribes to the monitor and controller and updates metrics until ctx
// is cancelled.
func (c *Collector) Run(ctx context.Context, monitor memory.Monitor, manager buffer.Manager) {
	states, cancelStates := monitor.Subscribe()
	defer cancelStates()

	configurations, cancelConfigurations := manager.Subscribe()
	defer cancelConfigurations()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Metrics collector shutting down")
			return
		case state, ok := <-states:
			if !ok {
				return
			}
			c.metrics.RecordMemoryState(state, c.thresholds.ClassifyState(state))
		case cfg, ok := <-configurations:
			if !ok {
				return
			}
			c.metrics.RecordConfiguration(cfg)
		}
	}
}
