package memory

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/mem"
)

// Sampler produces a single raw memory measurement. Implementations may fail
// transiently; callers are expected to retry on their own schedule.
type Sampler interface {
	Sample() (State, error)
}

// SamplerFunc adapts a function to the Sampler interface.
type SamplerFunc func() (State, error)

// Sample calls f.
func (f SamplerFunc) Sample() (State, error) {
	return f()
}

// SystemSampler reads memory statistics from the operating system.
type SystemSampler struct{}

// Sample returns the current system memory snapshot.
func (SystemSampler) Sample() (State, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return State{}, fmt.Errorf("failed to read virtual memory: %w", err)
	}

	return State{
		AvailableBytes: vm.Available,
		TotalBytes:     vm.Total,
		UsedBytes:      vm.Used,
		Timestamp:      time.Now(),
	}, nil
}
