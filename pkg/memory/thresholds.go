package memory

import (
	"fmt"
	"time"
)

// PressureLevel is a coarse classification of available memory. Levels are
// ordered by severity: Normal < Warning < Critical.
type PressureLevel int

// Memory pressure levels.
const (
	PressureNormal PressureLevel = iota
	PressureWarning
	PressureCritical
)

// String returns the lowercase name of the pressure level.
func (l PressureLevel) String() string {
	switch l {
	case PressureNormal:
		return "normal"
	case PressureWarning:
		return "warning"
	case PressureCritical:
		return "critical"
	default:
		return fmt.Sprintf("unknown(%d)", int(l))
	}
}

// Thresholds maps a raw available-memory measurement to a pressure level and
// sets the sampling cadence. Callers must keep CriticalAvailableMB below
// WarningAvailableMB for classification to be meaningful.
type Thresholds struct {
	WarningAvailableMB  float64
	CriticalAvailableMB float64
	PollingInterval     time.Duration
}

// DefaultThresholds returns the standard thresholds: warn below 100MB
// available, critical below 50MB, sampled every 2 seconds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		WarningAvailableMB:  100,
		CriticalAvailableMB: 50,
		PollingInterval:     2 * time.Second,
	}
}

// Classify maps available megabytes to a pressure level.
func (t Thresholds) Classify(availableMB float64) PressureLevel {
	switch {
	case availableMB < t.CriticalAvailableMB:
		return PressureCritical
	case availableMB < t.WarningAvailableMB:
		return PressureWarning
	default:
		return PressureNormal
	}
}

// ClassifyState maps a memory snapshot to a pressure level.
func (t Thresholds) ClassifyState(s State) PressureLevel {
	return t.Classify(s.AvailableMB())
}
