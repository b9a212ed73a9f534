package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/pilegame/internal/cli"
	"github.com/agbru/pilegame/internal/format"
	"github.com/agbru/pilegame/internal/verify"
)

// runVerify runs the generator self-check instead of the exploration.
func (a *Application) runVerify(ctx context.Context, out io.Writer) int {
	cfg := a.Config
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "Verifying the partitions of 1..%d coins with %s random samples each.\n",
			cfg.MaxCoins, format.FormatCount(cfg.Samples))
	}

	report, err := verify.Run(ctx, verify.Options{
		MaxCoins:    cfg.MaxCoins,
		Samples:     cfg.Samples,
		Seed:        seed,
		Concurrency: cfg.Workers,
	}, a.logger)
	if len(report.Checks) > 0 {
		cli.DisplayVerifyReport(report, out, cfg.Verbose)
	}
	return cli.CLIResultPresenter{}.HandleError(err, report.Duration, out)
}
