package tui

import (
	"time"

	"github.com/agbru/pilegame/internal/orchestration"
	"github.com/agbru/pilegame/internal/sysmon"
)

// BatchStartedMsg is sent when the explorer hands a coin count to the pool.
type BatchStartedMsg struct {
	Coins      int
	Partitions int
	Generation uint64
}

// BatchCompletedMsg carries the result of one coin count.
type BatchCompletedMsg struct {
	Result     orchestration.CoinResult
	Generation uint64
}

// ExploreDoneMsg is sent when the exploration returns.
type ExploreDoneMsg struct {
	Err        error
	Duration   time.Duration
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg is sent when the run context is cancelled.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}

// TickMsg triggers periodic resource sampling.
type TickMsg time.Time

// MemStatsMsg carries Go runtime memory statistics.
type MemStatsMsg struct {
	Alloc        uint64
	HeapSys      uint64
	NumGC        uint32
	NumGoroutine int
}

// SysStatsMsg carries host and process CPU usage.
type SysStatsMsg sysmon.Stats
