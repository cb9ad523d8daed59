package buffer

import "github.com/savid/streambuffer/pkg/memory"

// Configuration is an immutable buffering policy snapshot: the chosen strategy,
// its forward-buffer duration, and a human-readable justification. A new value
// is produced on every policy recomputation.
type Configuration struct {
	Strategy                      Strategy
	PreferredForwardBufferSeconds float64
	Reason                        string
}

// NewConfiguration builds a configuration for the given strategy with its
// canonical forward-buffer duration.
func NewConfiguration(strategy Strategy, reason string) Configuration {
	return Configuration{
		Strategy:                      strategy,
		PreferredForwardBufferSeconds: strategy.ForwardBufferSeconds(),
		Reason:                        reason,
	}
}

// DefaultConfiguration is the neutral policy in effect before any input has
// been observed.
func DefaultConfiguration() Configuration {
	return NewConfiguration(StrategyBalanced, "Default - balanced buffering")
}

// memoryReason justifies a strategy that was limited (or permitted) by memory
// pressure. Memory takes precedence in the reported reason on ties.
func memoryReason(strategy Strategy, pressure memory.PressureLevel) string {
	switch pressure {
	case memory.PressureCritical:
		return "Memory critical - minimal buffering"
	case memory.PressureWarning:
		return "Memory warning - conservative buffering"
	default:
		return "Resources available - " + strategy.String() + " buffering"
	}
}

// networkReason justifies a strategy that was limited by network quality alone.
func networkReason(strategy Strategy) string {
	return "Limited resources - " + strategy.String() + " buffering"
}
