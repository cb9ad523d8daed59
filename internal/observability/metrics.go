// Package observability exposes Prometheus metrics for the memory monitor and
// the adaptive buffer controller.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/savid/streambuffer/pkg/buffer"
	"github.com/savid/streambuffer/pkg/memory"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Memory metrics
	MemoryAvailableBytes prometheus.Gauge
	MemoryUsedPercent    prometheus.Gauge
	MemoryPressureLevel  prometheus.Gauge

	// Buffer policy metrics
	BufferStrategy       prometheus.Gauge
	BufferForwardSeconds prometheus.Gauge
	ConfigurationChanges prometheus.Counter
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		MemoryAvailableBytes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "streambuffer_memory_available_bytes",
			Help: "Available device memory from the latest sample",
		}),
		MemoryUsedPercent: factory.NewGauge(prometheus.GaugeOpts{
			Name: "streambuffer_memory_used_percent",
			Help: "Used device memory as a percentage of total",
		}),
		MemoryPressureLevel: factory.NewGauge(prometheus.GaugeOpts{
			Name: "streambuffer_memory_pressure_level",
			Help: "Current memory pressure level (0=normal, 1=warning, 2=critical)",
		}),
		BufferStrategy: factory.NewGauge(prometheus.GaugeOpts{
			Name: "streambuffer_buffer_strategy",
			Help: "Current buffer strategy rank (0=minimal through 3=aggressive)",
		}),
		BufferForwardSeconds: factory.NewGauge(prometheus.GaugeOpts{
			Name: "streambuffer_buffer_forward_seconds",
			Help: "Preferred forward buffer duration in seconds",
		}),
		ConfigurationChanges: factory.NewCounter(prometheus.CounterOpts{
			Name: "streambuffer_configuration_changes_total",
			Help: "Total number of buffer configuration changes",
		}),
	}
}

// RecordMemoryState updates the memory gauges from a snapshot.
func (m *Metrics) RecordMemoryState(state memory.State, pressure memory.PressureLevel) {
	m.MemoryAvailableBytes.Set(float64(state.AvailableBytes))
	m.MemoryUsedPercent.Set(state.UsedPercentage())
	m.MemoryPressureLevel.Set(float64(pressure))
}

// RecordConfiguration updates the buffer policy gauges and counts the change.
func (m *Metrics) RecordConfiguration(cfg buffer.Configuration) {
	m.BufferStrategy.Set(float64(cfg.Strategy))
	m.BufferForwardSeconds.Set(cfg.PreferredForwardBufferSeconds)
	m.ConfigurationChanges.Inc()
}
