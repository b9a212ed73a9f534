// Package sysmon samples host CPU and memory usage and the CPU time consumed
// by this process, so the dashboard can show whether the worker pool keeps
// the machine busy.
package sysmon

import (
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of resource usage.
type Stats struct {
	CPUPercent float64 // host-wide, 0.0 .. 100.0
	MemPercent float64 // host-wide, 0.0 .. 100.0
	// ProcPercent is this process's CPU time over wall time since the
	// previous sample, normalized by the logical CPU count.
	ProcPercent float64
	// ProcCPU is the cumulative user+system CPU time of this process.
	ProcCPU    time.Duration
	Goroutines int
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	s.Goroutines = runtime.NumGoroutine()
	return s
}

// Sampler adds process CPU utilization to Sample by remembering the previous
// reading. It is safe for concurrent use.
type Sampler struct {
	cpus int
	now  func() time.Time

	mu      sync.Mutex
	lastCPU time.Duration
	lastAt  time.Time
}

// NewSampler returns a Sampler primed with the current process CPU time.
func NewSampler() *Sampler {
	cpus, err := cpu.Counts(true)
	if err != nil || cpus < 1 {
		cpus = runtime.NumCPU()
	}
	s := &Sampler{cpus: cpus, now: time.Now}
	s.lastCPU, _ = processCPUTime()
	s.lastAt = s.now()
	return s
}

// Sample returns host statistics plus process CPU usage since the previous
// call.
func (s *Sampler) Sample() Stats {
	st := Sample()
	used, ok := processCPUTime()
	if !ok {
		return st
	}
	st.ProcCPU = used

	s.mu.Lock()
	defer s.mu.Unlock()
	at := s.now()
	st.ProcPercent = utilization(used-s.lastCPU, at.Sub(s.lastAt), s.cpus)
	s.lastCPU, s.lastAt = used, at
	return st
}

// utilization converts cpu time spent during wall time on cpus logical CPUs
// into a percentage clamped to 0..100.
func utilization(cpuTime, wall time.Duration, cpus int) float64 {
	if wall <= 0 || cpus < 1 || cpuTime < 0 {
		return 0
	}
	pct := 100 * float64(cpuTime) / float64(wall) / float64(cpus)
	if pct > 100 {
		return 100
	}
	return pct
}
