package metrics

import (
	"runtime"
	"sync"

	"github.com/agbru/pilegame/internal/orchestration"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// MemoryTracker samples the heap after every batch and keeps the peak. The
// partition cache only grows during a run, so the peak is usually reached on
// the last coin counts.
type MemoryTracker struct {
	collector *MemoryCollector

	mu       sync.Mutex
	peak     MemorySnapshot
	peakCoin int
	samples  int
}

// NewMemoryTracker returns a tracker reading from collector.
func NewMemoryTracker(collector *MemoryCollector) *MemoryTracker {
	if collector == nil {
		collector = NewMemoryCollector()
	}
	return &MemoryTracker{collector: collector}
}

// BatchStarted does nothing; the heap is sampled once the batch is done.
func (t *MemoryTracker) BatchStarted(int, int) {}

// BatchCompleted samples the heap.
func (t *MemoryTracker) BatchCompleted(res orchestration.CoinResult) {
	snap := t.collector.Snapshot()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.samples++
	if snap.HeapAlloc >= t.peak.HeapAlloc {
		t.peak = snap
		t.peakCoin = res.Coins
	}
}

// Peak returns the snapshot with the largest heap seen, the coin count it was
// taken after, and false if no batch completed yet.
func (t *MemoryTracker) Peak() (MemorySnapshot, int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.peak, t.peakCoin, t.samples > 0
}
