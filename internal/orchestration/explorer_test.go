package orchestration_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/pilegame/internal/orchestration"
	"github.com/agbru/pilegame/internal/orchestration/mocks"
)

func TestExplorer_ReportsInOrder(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockBatchReporter(ctrl)

	partitions := []int{1, 2, 3, 5}
	var calls []*gomock.Call
	for i, n := range partitions {
		coins := i + 1
		calls = append(calls,
			reporter.EXPECT().BatchStarted(coins, n),
			reporter.EXPECT().BatchCompleted(gomock.Any()).Do(func(res orchestration.CoinResult) {
				if res.Coins != coins || res.Partitions != n || res.Aggregate.Observed != n {
					t.Errorf("BatchCompleted(%+v), want coins=%d partitions=%d", res, coins, n)
				}
			}),
		)
	}
	gomock.InOrder(calls...)

	pool := orchestration.NewPool(3)
	defer pool.Shutdown()

	results, err := orchestration.NewExplorer(pool, reporter, nil).Run(context.Background(), 4)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("len(results) = %d, want 4", len(results))
	}
	last := results[3].Aggregate
	if last.HighestScore != 5 || last.HighestScoreCount != 1 || last.HighestLoop != 3 || last.HighestLoopCount != 5 {
		t.Errorf("coins=4 aggregate = %+v", last)
	}
}

func TestExplorer_StopsBetweenBatches(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockBatchReporter(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reporter.EXPECT().BatchStarted(gomock.Any(), gomock.Any()).Times(2)
	gomock.InOrder(
		reporter.EXPECT().BatchCompleted(gomock.Any()),
		// Cancel after the second batch; the third must never start.
		reporter.EXPECT().BatchCompleted(gomock.Any()).Do(func(orchestration.CoinResult) { cancel() }),
	)

	pool := orchestration.NewPool(2)
	defer pool.Shutdown()

	results, err := orchestration.NewExplorer(pool, reporter, nil).Run(ctx, 10)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if len(results) != 2 {
		t.Errorf("len(results) = %d, want 2", len(results))
	}
}

func TestExplorer_PoolClosed(t *testing.T) {
	t.Parallel()
	pool := orchestration.NewPool(1)
	pool.Shutdown()

	results, err := orchestration.NewExplorer(pool, nil, nil).Run(context.Background(), 3)
	if !errors.Is(err, orchestration.ErrPoolClosed) {
		t.Fatalf("Run error = %v, want ErrPoolClosed", err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestMultiReporter_FansOut(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	a := mocks.NewMockBatchReporter(ctrl)
	b := mocks.NewMockBatchReporter(ctrl)

	res := orchestration.CoinResult{Coins: 7, Partitions: 15}
	gomock.InOrder(
		a.EXPECT().BatchStarted(7, 15),
		b.EXPECT().BatchStarted(7, 15),
		a.EXPECT().BatchCompleted(res),
		b.EXPECT().BatchCompleted(res),
	)

	m := orchestration.MultiReporter{a, orchestration.NullReporter{}, b}
	m.BatchStarted(7, 15)
	m.BatchCompleted(res)
}
