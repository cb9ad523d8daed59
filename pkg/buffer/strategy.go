// Package buffer implements the adaptive buffering policy for media playback.
// It fuses memory pressure and network quality into a single buffering
// configuration consumed by the media pipeline.
package buffer

import "fmt"

// Strategy is a discrete buffering policy, totally ordered from most to least
// conservative. The order is load-bearing: the controller clamps to the
// minimum of the strategies its inputs allow.
type Strategy int

// Buffering strategies, from most to least conservative.
const (
	StrategyMinimal Strategy = iota
	StrategyConservative
	StrategyBalanced
	StrategyAggressive
)

// String returns the lowercase name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyMinimal:
		return "minimal"
	case StrategyConservative:
		return "conservative"
	case StrategyBalanced:
		return "balanced"
	case StrategyAggressive:
		return "aggressive"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ForwardBufferSeconds returns the canonical forward-buffer duration for the
// strategy: how many seconds of content the pipeline should pre-fetch ahead of
// the playhead.
func (s Strategy) ForwardBufferSeconds() float64 {
	switch s {
	case StrategyMinimal:
		return 2
	case StrategyConservative:
		return 5
	case StrategyBalanced:
		return 10
	case StrategyAggressive:
		return 30
	default:
		return StrategyMinimal.ForwardBufferSeconds()
	}
}

// ParseStrategy converts a strategy name to its Strategy value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "minimal":
		return StrategyMinimal, nil
	case "conservative":
		return StrategyConservative, nil
	case "balanced":
		return StrategyBalanced, nil
	case "aggressive":
		return StrategyAggressive, nil
	default:
		return 0, fmt.Errorf("unknown buffer strategy: %q", name)
	}
}

// minStrategy returns the more conservative of a and b.
func minStrategy(a, b Strategy) Strategy {
	if a < b {
		return a
	}
	return b
}
