// Package network defines the network quality classification consumed by the
// adaptive buffering controller. The measurement itself is produced by an
// external reachability/bandwidth sampler.
package network

import "fmt"

// Quality is a coarse, ordered classification of current network conditions.
// Higher values indicate better conditions.
type Quality int

// Network quality levels, from worst to best.
const (
	QualityPoor Quality = iota
	QualityModerate
	QualityGood
	QualityExcellent
)

// String returns the lowercase name of the quality level.
func (q Quality) String() string {
	switch q {
	case QualityPoor:
		return "poor"
	case QualityModerate:
		return "moderate"
	case QualityGood:
		return "good"
	case QualityExcellent:
		return "excellent"
	default:
		return fmt.Sprintf("unknown(%d)", int(q))
	}
}

// IsValid reports whether q is one of the defined quality levels.
func (q Quality) IsValid() bool {
	return q >= QualityPoor && q <= QualityExcellent
}

// ParseQuality converts a quality name to its Quality value.
func ParseQuality(name string) (Quality, error) {
	switch name {
	case "poor":
		return QualityPoor, nil
	case "moderate":
		return QualityModerate, nil
	case "good":
		return QualityGood, nil
	case "excellent":
		return QualityExcellent, nil
	default:
		return 0, fmt.Errorf("unknown network quality: %q", name)
	}
}
