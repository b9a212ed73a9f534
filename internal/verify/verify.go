// Package verify cross-checks the incremental partition generator against
// independent sources: the partition-count recurrence, randomly drawn
// partitions and, for small coin counts, brute-force enumeration.
package verify

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/pilegame/internal/errors"
	"github.com/agbru/pilegame/internal/logging"
	"github.com/agbru/pilegame/internal/partition"
)

// DefaultOracleLimit is the largest coin count compared against full
// enumeration when Options.OracleLimit is zero.
const DefaultOracleLimit = 24

// Options configures a verification run.
type Options struct {
	// MaxCoins is the highest coin count checked.
	MaxCoins int
	// Samples is the number of random partitions drawn per coin count.
	Samples int
	// Seed seeds the random draws. Coin count n uses Seed+n so results do
	// not depend on scheduling.
	Seed int64
	// Concurrency caps the coin counts checked in parallel. Zero means
	// runtime.NumCPU().
	Concurrency int
	// OracleLimit is the largest coin count compared against
	// partition.Enumerate. Zero means DefaultOracleLimit; negative disables
	// the comparison.
	OracleLimit int
}

// CoinCheck is the outcome of checking one coin count.
type CoinCheck struct {
	Coins int
	// Generated is the length of the generated list and Expected is p(Coins).
	Generated int
	Expected  int
	// Invalid counts generated entries that break a StartPos invariant.
	Invalid int
	// Duplicates counts repeated entries in the generated list.
	Duplicates int
	// Sampled and Missing count random draws and those absent from the
	// generated list. FirstMissing is the first such draw.
	Sampled      int
	Missing      int
	FirstMissing partition.Partition
	// OracleChecked reports whether the list was compared against full
	// enumeration, and OracleMismatch whether the two disagreed.
	OracleChecked  bool
	OracleMismatch bool
}

// OK reports whether the coin count passed every check.
func (c CoinCheck) OK() bool {
	return c.Generated == c.Expected && c.Invalid == 0 && c.Duplicates == 0 &&
		c.Missing == 0 && !c.OracleMismatch
}

// Report collects the checks of a run in coin order.
type Report struct {
	Seed     int64
	Checks   []CoinCheck
	Duration time.Duration
}

// Failed returns the coin counts that did not verify.
func (r Report) Failed() []int {
	var failed []int
	for _, c := range r.Checks {
		if !c.OK() {
			failed = append(failed, c.Coins)
		}
	}
	return failed
}

// Run generates every coin count up to opts.MaxCoins and checks the lists
// concurrently. Generation is sequential since each coin count reads the
// cache entries of the smaller ones; the checks only read.
//
// A run whose checks disagree returns the full report together with a
// *apperrors.VerificationError.
func Run(ctx context.Context, opts Options, logger logging.Logger) (Report, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	if opts.MaxCoins < 1 {
		return Report{}, apperrors.ValidationError{Field: "max-coins", Message: "must be at least 1"}
	}
	if opts.Samples < 0 {
		return Report{}, apperrors.ValidationError{Field: "samples", Message: "must not be negative"}
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.NumCPU()
	}
	if opts.OracleLimit == 0 {
		opts.OracleLimit = DefaultOracleLimit
	}

	start := time.Now()
	cache := partition.NewCache(opts.MaxCoins)
	lists := make([][]partition.StartPos, opts.MaxCoins+1)
	for n := 1; n <= opts.MaxCoins; n++ {
		positions, err := partition.Generate(n, cache)
		if err != nil {
			return Report{}, fmt.Errorf("generating partitions of %d: %w", n, err)
		}
		lists[n] = positions
	}

	report := Report{Seed: opts.Seed, Checks: make([]CoinCheck, opts.MaxCoins)}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for n := 1; n <= opts.MaxCoins; n++ {
		g.Go(func() error {
			check, err := checkCoins(ctx, n, lists[n], opts)
			if err != nil {
				return err
			}
			report.Checks[n-1] = check
			if !check.OK() {
				logger.Warn("coin count failed verification",
					logging.Int("coins", n),
					logging.Int("generated", check.Generated),
					logging.Int("expected", check.Expected),
					logging.Int("missing", check.Missing),
				)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	report.Duration = time.Since(start)

	if failed := report.Failed(); len(failed) > 0 {
		return report, &apperrors.VerificationError{Failed: failed}
	}
	logger.Info("verification passed",
		logging.Int("max_coins", opts.MaxCoins),
		logging.Int("samples", opts.Samples),
		logging.Duration("duration", report.Duration),
	)
	return report, nil
}

func checkCoins(ctx context.Context, coins int, positions []partition.StartPos, opts Options) (CoinCheck, error) {
	check := CoinCheck{
		Coins:     coins,
		Generated: len(positions),
		Expected:  partition.Count(coins),
	}

	seen := make(map[string]struct{}, len(positions))
	for _, pos := range positions {
		if err := pos.Validate(coins); err != nil {
			check.Invalid++
		}
		key := pos.Position.Key()
		if _, dup := seen[key]; dup {
			check.Duplicates++
		}
		seen[key] = struct{}{}
	}

	rng := rand.New(rand.NewSource(opts.Seed + int64(coins)))
	for i := 0; i < opts.Samples; i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return CoinCheck{}, err
			}
		}
		sample := partition.RandomPartition(rng, coins)
		check.Sampled++
		if _, ok := seen[sample.Key()]; !ok {
			if check.Missing == 0 {
				check.FirstMissing = sample
			}
			check.Missing++
		}
	}

	if opts.OracleLimit > 0 && coins <= opts.OracleLimit {
		check.OracleChecked = true
		all := partition.Enumerate(coins)
		if len(all) != len(seen) {
			check.OracleMismatch = true
		}
		for _, p := range all {
			if _, ok := seen[p.Key()]; !ok {
				check.OracleMismatch = true
				break
			}
		}
	}
	return check, nil
}
