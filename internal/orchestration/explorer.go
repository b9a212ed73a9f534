package orchestration

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/pilegame/internal/logging"
	"github.com/agbru/pilegame/internal/partition"
)

const tracerName = "github.com/agbru/pilegame/internal/orchestration"

// Explorer drives a Pool over coin counts 1..max: generate the partitions of
// the next coin count on the calling goroutine, run them as one batch, report,
// repeat. Generation and pool execution never overlap.
type Explorer struct {
	pool     *Pool
	reporter BatchReporter
	logger   logging.Logger
}

// NewExplorer returns an Explorer running batches on pool. A nil reporter or
// logger is replaced with a no-op.
func NewExplorer(pool *Pool, reporter BatchReporter, logger logging.Logger) *Explorer {
	if reporter == nil {
		reporter = NullReporter{}
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Explorer{pool: pool, reporter: reporter, logger: logger}
}

// Run explores coin counts 1..maxCoins in increasing order and returns one
// CoinResult per completed coin count.
//
// The context is checked between batches only; a batch in flight always
// runs to completion. On error the results completed so far are returned
// with it.
func (e *Explorer) Run(ctx context.Context, maxCoins int) ([]CoinResult, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "pilegame.explore")
	defer span.End()
	span.SetAttributes(
		attribute.Int("pilegame.max_coins", maxCoins),
		attribute.Int("pilegame.workers", e.pool.Workers()),
	)

	cache := partition.NewCache(maxCoins)
	results := make([]CoinResult, 0, maxCoins)
	for coins := 1; coins <= maxCoins; coins++ {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return results, err
		}
		res, err := e.runBatch(ctx, coins, cache)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (e *Explorer) runBatch(ctx context.Context, coins int, cache *partition.Cache) (CoinResult, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "pilegame.batch")
	defer span.End()
	span.SetAttributes(attribute.Int("pilegame.coins", coins))

	start := time.Now()
	positions, err := partition.Generate(coins, cache)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate failed")
		return CoinResult{}, fmt.Errorf("generating partitions of %d: %w", coins, err)
	}
	span.SetAttributes(attribute.Int("pilegame.partitions", len(positions)))
	e.reporter.BatchStarted(coins, len(positions))

	agg, err := e.pool.RunBatch(ctx, positions)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "batch failed")
		return CoinResult{}, fmt.Errorf("batch of %d coins: %w", coins, err)
	}

	res := CoinResult{
		Coins:      coins,
		Partitions: len(positions),
		Aggregate:  agg,
		Duration:   time.Since(start),
	}
	span.SetAttributes(
		attribute.Int("pilegame.highest_score", agg.HighestScore),
		attribute.Int("pilegame.highest_loop", agg.HighestLoop),
	)
	e.logger.Debug("batch completed",
		logging.Int("coins", coins),
		logging.Int("partitions", len(positions)),
		logging.Int("score", agg.HighestScore),
		logging.Int("loop", agg.HighestLoop),
		logging.Duration("duration", res.Duration),
	)
	e.reporter.BatchCompleted(res)
	return res, nil
}
