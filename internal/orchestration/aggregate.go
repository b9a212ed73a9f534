package orchestration

import (
	"sync"

	"github.com/agbru/pilegame/internal/game"
	"github.com/agbru/pilegame/internal/partition"
)

// Aggregate holds the extremal statistics of one batch.
//
// Which partition is reported as the example for a tied maximum depends on
// worker scheduling and may differ between runs; the values and counts do not.
type Aggregate struct {
	// Total is the number of partitions in the batch.
	Total int
	// Observed is the number of results folded in so far.
	Observed int

	HighestScore         int
	HighestScoreCount    int
	HighestScorePosition partition.Partition

	HighestLoop         int
	HighestLoopCount    int
	HighestLoopPosition partition.Partition
}

// Aggregator folds game results into an Aggregate under a single mutex.
// Observe is the only mutation; fields are never exposed for independent
// read-modify-write.
type Aggregator struct {
	mu  sync.Mutex
	agg Aggregate
}

// Reset clears the aggregate for a new batch of total partitions.
func (a *Aggregator) Reset(total int) {
	a.mu.Lock()
	a.agg = Aggregate{Total: total}
	a.mu.Unlock()
}

// Observe folds one result into the aggregate and returns the updated state.
// A strictly higher score replaces the example and resets its count to one;
// an equal score increments the count. Loops follow the same rule
// independently.
func (a *Aggregator) Observe(pos partition.Partition, res game.Result) Aggregate {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.agg.Observed++
	if res.Score > a.agg.HighestScore {
		a.agg.HighestScore = res.Score
		a.agg.HighestScoreCount = 1
		a.agg.HighestScorePosition = pos
	} else if res.Score == a.agg.HighestScore {
		a.agg.HighestScoreCount++
	}

	if res.Loop > a.agg.HighestLoop {
		a.agg.HighestLoop = res.Loop
		a.agg.HighestLoopCount = 1
		a.agg.HighestLoopPosition = pos
	} else if res.Loop == a.agg.HighestLoop {
		a.agg.HighestLoopCount++
	}
	return a.agg.clone()
}

// Snapshot returns a copy of the current aggregate.
func (a *Aggregator) Snapshot() Aggregate {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.agg.clone()
}

func (g Aggregate) clone() Aggregate {
	g.HighestScorePosition = g.HighestScorePosition.Clone()
	g.HighestLoopPosition = g.HighestLoopPosition.Clone()
	return g
}
