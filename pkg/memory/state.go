// Package memory provides device memory snapshots, pressure classification and
// a background monitor that feeds the adaptive buffering controller.
package memory

import "time"

const bytesPerMB = 1024 * 1024

// State is an immutable point-in-time snapshot of device memory. A fresh value
// is produced on every sample; none are mutated in place.
type State struct {
	AvailableBytes uint64
	TotalBytes     uint64
	UsedBytes      uint64
	Timestamp      time.Time
}

// UsedPercentage returns used memory as a percentage of total. Returns 0 when
// the total is unknown rather than dividing by zero.
func (s State) UsedPercentage() float64 {
	if s.TotalBytes == 0 {
		return 0
	}
	return float64(s.UsedBytes) / float64(s.TotalBytes) * 100
}

// AvailableMB returns available memory in megabytes.
func (s State) AvailableMB() float64 {
	return float64(s.AvailableBytes) / bytesPerMB
}
