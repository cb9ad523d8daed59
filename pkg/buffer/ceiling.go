package buffer

import (
	"github.com/savid/streambuffer/pkg/memory"
	"github.com/savid/streambuffer/pkg/network"
)

// CeilingPolicy maps each input signal to the most generous strategy it
// permits. The memory mapping is fixed; the network mapping is tunable because
// the network classifier's boundaries differ across transports.
type CeilingPolicy struct {
	network map[network.Quality]Strategy
}

// DefaultCeilingPolicy returns the standard mapping: poor networks get minimal
// buffering, excellent networks leave the policy unconstrained.
func DefaultCeilingPolicy() CeilingPolicy {
	return NewCeilingPolicy(map[network.Quality]Strategy{
		network.QualityPoor:      StrategyMinimal,
		network.QualityModerate:  StrategyConservative,
		network.QualityGood:      StrategyBalanced,
		network.QualityExcellent: StrategyAggressive,
	})
}

// NewCeilingPolicy builds a policy with a custom network mapping. Qualities
// missing from the map resolve to StrategyMinimal.
func NewCeilingPolicy(networkCeilings map[network.Quality]Strategy) CeilingPolicy {
	ceilings := make(map[network.Quality]Strategy, len(networkCeilings))
	for quality, strategy := range networkCeilings {
		ceilings[quality] = strategy
	}
	return CeilingPolicy{network: ceilings}
}

// MemoryCeiling returns the most generous strategy the given pressure level
// permits. Normal pressure does not constrain the policy.
func (CeilingPolicy) MemoryCeiling(level memory.PressureLevel) Strategy {
	switch level {
	case memory.PressureCritical:
		return StrategyMinimal
	case memory.PressureWarning:
		return StrategyConservative
	default:
		return StrategyAggressive
	}
}

// NetworkCeiling returns the most generous strategy the given network quality
// permits. Unknown qualities are treated conservatively.
func (p CeilingPolicy) NetworkCeiling(quality network.Quality) Strategy {
	if strategy, ok := p.network[quality]; ok {
		return strategy
	}
	return StrategyMinimal
}
