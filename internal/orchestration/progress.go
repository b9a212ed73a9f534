package orchestration

import (
	"time"

	"github.com/agbru/pilegame/internal/partition"
)

// Progress is a point-in-time view of an exploration run.
type Progress struct {
	// Coins is the last completed coin count.
	Coins int
	// MaxCoins is the target coin count.
	MaxCoins int
	// Done is the number of partitions played so far.
	Done int
	// Total is the number of partitions of every coin count up to MaxCoins.
	Total int
	// Fraction is Done/Total in [0, 1].
	Fraction float64
	// ETA extrapolates the time remaining from the partitions per second
	// observed so far. Later coin counts have longer games, so it tends to
	// run short.
	ETA time.Duration
}

// ProgressTracker turns completed batches into overall progress. Both the
// CLI and the TUI use it so the estimate is computed in one place.
// It is not safe for concurrent use.
type ProgressTracker struct {
	maxCoins int
	total    int
	done     int
	start    time.Time
	now      func() time.Time
}

// NewProgressTracker returns a tracker for a run up to maxCoins. Returns nil
// if maxCoins <= 0.
func NewProgressTracker(maxCoins int) *ProgressTracker {
	if maxCoins <= 0 {
		return nil
	}
	total := 0
	for n := 1; n <= maxCoins; n++ {
		total += partition.Count(n)
	}
	t := &ProgressTracker{maxCoins: maxCoins, total: total, now: time.Now}
	t.start = t.now()
	return t
}

// Update folds one completed batch into the progress.
func (t *ProgressTracker) Update(res CoinResult) Progress {
	t.done += res.Partitions
	if t.done > t.total {
		t.done = t.total
	}
	p := Progress{
		Coins:    res.Coins,
		MaxCoins: t.maxCoins,
		Done:     t.done,
		Total:    t.total,
		Fraction: float64(t.done) / float64(t.total),
	}
	elapsed := t.now().Sub(t.start)
	if t.done > 0 && t.done < t.total {
		perItem := elapsed / time.Duration(t.done)
		p.ETA = perItem * time.Duration(t.total-t.done)
	}
	return p
}

// Total returns the number of partitions the run will play.
func (t *ProgressTracker) Total() int { return t.total }
