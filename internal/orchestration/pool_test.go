package orchestration

import (
	"context"
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/agbru/pilegame/internal/errors"
	"github.com/agbru/pilegame/internal/game"
	"github.com/agbru/pilegame/internal/partition"
)

// positionsUpTo generates the partitions of every coin count up to max.
func positionsUpTo(t testing.TB, max int) map[int][]partition.StartPos {
	t.Helper()
	cache := partition.NewCache(max)
	out := make(map[int][]partition.StartPos, max)
	for n := 1; n <= max; n++ {
		positions, err := partition.Generate(n, cache)
		if err != nil {
			t.Fatalf("Generate(%d): %v", n, err)
		}
		out[n] = positions
	}
	return out
}

// sequentialAggregate is the single-threaded reference for RunBatch.
func sequentialAggregate(t testing.TB, positions []partition.StartPos) Aggregate {
	t.Helper()
	var agg Aggregator
	agg.Reset(len(positions))
	for _, pos := range positions {
		res, err := game.Play(pos)
		if err != nil {
			t.Fatalf("Play(%s): %v", pos.Position, err)
		}
		agg.Observe(pos.Position, res)
	}
	return agg.Snapshot()
}

// assertSameMaxima compares values and counts; example positions may differ
// between schedules when maxima are shared.
func assertSameMaxima(t *testing.T, got, want Aggregate) {
	t.Helper()
	if got.Total != want.Total || got.Observed != want.Observed {
		t.Errorf("total/observed = %d/%d, want %d/%d", got.Total, got.Observed, want.Total, want.Observed)
	}
	if got.HighestScore != want.HighestScore || got.HighestScoreCount != want.HighestScoreCount {
		t.Errorf("score = %d (x%d), want %d (x%d)", got.HighestScore, got.HighestScoreCount, want.HighestScore, want.HighestScoreCount)
	}
	if got.HighestLoop != want.HighestLoop || got.HighestLoopCount != want.HighestLoopCount {
		t.Errorf("loop = %d (x%d), want %d (x%d)", got.HighestLoop, got.HighestLoopCount, want.HighestLoop, want.HighestLoopCount)
	}
}

// assertExamplesMatch replays the example positions and checks that they
// really produce the reported maxima.
func assertExamplesMatch(t *testing.T, agg Aggregate) {
	t.Helper()
	if agg.Total == 0 {
		return
	}
	res, err := game.Play(partition.NewStartPos(agg.HighestScorePosition))
	if err != nil {
		t.Fatalf("Play(score example): %v", err)
	}
	if res.Score != agg.HighestScore {
		t.Errorf("score example %s scores %d, want %d", agg.HighestScorePosition, res.Score, agg.HighestScore)
	}
	res, err = game.Play(partition.NewStartPos(agg.HighestLoopPosition))
	if err != nil {
		t.Fatalf("Play(loop example): %v", err)
	}
	if res.Loop != agg.HighestLoop {
		t.Errorf("loop example %s loops %d, want %d", agg.HighestLoopPosition, res.Loop, agg.HighestLoop)
	}
}

func TestRunBatch_KnownAggregates(t *testing.T) {
	t.Parallel()
	all := positionsUpTo(t, 4)
	pool := NewPool(2)
	defer pool.Shutdown()

	tests := []struct {
		coins                  int
		score, scoreCount      int
		loop, loopCount, total int
	}{
		{1, 1, 1, 1, 1, 1},
		{2, 2, 2, 2, 2, 2},
		{3, 3, 1, 1, 3, 3},
		{4, 5, 1, 3, 5, 5},
	}
	for _, tc := range tests {
		agg, err := pool.RunBatch(context.Background(), all[tc.coins])
		if err != nil {
			t.Fatalf("RunBatch(%d): %v", tc.coins, err)
		}
		want := Aggregate{
			Total: tc.total, Observed: tc.total,
			HighestScore: tc.score, HighestScoreCount: tc.scoreCount,
			HighestLoop: tc.loop, HighestLoopCount: tc.loopCount,
		}
		assertSameMaxima(t, agg, want)
		assertExamplesMatch(t, agg)
	}
}

func TestRunBatch_UniqueExamples(t *testing.T) {
	t.Parallel()
	pool := NewPool(4)
	defer pool.Shutdown()

	agg, err := pool.RunBatch(context.Background(), positionsUpTo(t, 4)[4])
	if err != nil {
		t.Fatalf("RunBatch: %v", err)
	}
	// The score maximum of 4 coins is unique, so its example is fixed.
	if !agg.HighestScorePosition.Equal(partition.Partition{1, 1, 1, 1}) {
		t.Errorf("score example = %s, want [1,1,1,1]", agg.HighestScorePosition)
	}
}

func TestRunBatch_WorkerCountIndependent(t *testing.T) {
	t.Parallel()
	const maxCoins = 12
	all := positionsUpTo(t, maxCoins)

	for _, workers := range []int{1, 2, 3, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			t.Parallel()
			pool := NewPool(workers)
			defer pool.Shutdown()
			for n := 1; n <= maxCoins; n++ {
				got, err := pool.RunBatch(context.Background(), all[n])
				if err != nil {
					t.Fatalf("RunBatch(%d): %v", n, err)
				}
				assertSameMaxima(t, got, sequentialAggregate(t, all[n]))
				assertExamplesMatch(t, got)
				if got.HighestScoreCount > got.Total || got.HighestLoopCount > got.Total {
					t.Errorf("n=%d: counts exceed total: %+v", n, got)
				}
			}
		})
	}
}

func TestRunBatch_RepeatedBatchesOnSamePool(t *testing.T) {
	t.Parallel()
	positions := positionsUpTo(t, 6)[6]
	want := sequentialAggregate(t, positions)

	pool := NewPool(4)
	defer pool.Shutdown()
	for i := 0; i < 50; i++ {
		got, err := pool.RunBatch(context.Background(), positions)
		if err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
		assertSameMaxima(t, got, want)
	}
	if got, want := pool.Claims(), uint64(50*len(positions)); got != want {
		t.Errorf("Claims() = %d, want %d", got, want)
	}
}

func TestRunBatch_EmptyBatch(t *testing.T) {
	t.Parallel()
	pool := NewPool(3)
	defer pool.Shutdown()

	agg, err := pool.RunBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("RunBatch(nil): %v", err)
	}
	if agg.Total != 0 || agg.Observed != 0 || agg.HighestScore != 0 || agg.HighestLoop != 0 {
		t.Errorf("empty batch aggregate = %+v, want zero", agg)
	}
	if agg.HighestScorePosition != nil || agg.HighestLoopPosition != nil {
		t.Errorf("empty batch has example positions: %+v", agg)
	}
}

func TestNewPool_ClampsWorkers(t *testing.T) {
	t.Parallel()
	for _, n := range []int{-3, 0} {
		pool := NewPool(n)
		if pool.Workers() != 1 {
			t.Errorf("NewPool(%d).Workers() = %d, want 1", n, pool.Workers())
		}
		if _, err := pool.RunBatch(context.Background(), positionsUpTo(t, 3)[3]); err != nil {
			t.Errorf("RunBatch: %v", err)
		}
		pool.Shutdown()
	}
}

func TestRunBatch_CanceledContext(t *testing.T) {
	t.Parallel()
	pool := NewPool(2)
	defer pool.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := pool.RunBatch(ctx, positionsUpTo(t, 3)[3]); !errors.Is(err, context.Canceled) {
		t.Errorf("RunBatch(canceled) error = %v, want context.Canceled", err)
	}
	if pool.Claims() != 0 {
		t.Errorf("Claims() = %d after canceled batch, want 0", pool.Claims())
	}
}

func TestRunBatch_GameFailure(t *testing.T) {
	t.Parallel()
	all := positionsUpTo(t, 4)
	// Every game of 4 coins needs at least 3 moves.
	pool := NewPool(2, WithGameOptions(game.WithMaxMoves(1)))
	defer pool.Shutdown()

	_, err := pool.RunBatch(context.Background(), all[4])
	var inv *apperrors.InvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("RunBatch error = %v, want *InvariantError", err)
	}

	// The pool stays usable: one coin ends after a single move.
	agg, err := pool.RunBatch(context.Background(), all[1])
	if err != nil {
		t.Fatalf("RunBatch after failure: %v", err)
	}
	if agg.HighestScore != 1 {
		t.Errorf("HighestScore = %d, want 1", agg.HighestScore)
	}
}

func TestShutdown_Idempotent(t *testing.T) {
	t.Parallel()
	pool := NewPool(4)
	if _, err := pool.RunBatch(context.Background(), positionsUpTo(t, 5)[5]); err != nil {
		t.Fatalf("RunBatch: %v", err)
	}
	pool.Shutdown()
	pool.Shutdown()

	claims := pool.Claims()
	_, err := pool.RunBatch(context.Background(), positionsUpTo(t, 5)[5])
	if !errors.Is(err, ErrPoolClosed) {
		t.Errorf("RunBatch after Shutdown error = %v, want ErrPoolClosed", err)
	}
	if pool.Claims() != claims {
		t.Errorf("claims moved from %d to %d after Shutdown", claims, pool.Claims())
	}
}

func TestShutdown_WithoutBatches(t *testing.T) {
	t.Parallel()
	pool := NewPool(8)
	pool.Shutdown()
	if pool.Claims() != 0 {
		t.Errorf("Claims() = %d, want 0", pool.Claims())
	}
}

func BenchmarkRunBatch(b *testing.B) {
	positions := positionsUpTo(b, 20)[20]
	pool := NewPool(0)
	defer pool.Shutdown()
	for b.Loop() {
		if _, err := pool.RunBatch(context.Background(), positions); err != nil {
			b.Fatal(err)
		}
	}
}
