package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/pilegame/internal/cli"
	apperrors "github.com/agbru/pilegame/internal/errors"
	"github.com/agbru/pilegame/internal/game"
	"github.com/agbru/pilegame/internal/metrics"
	"github.com/agbru/pilegame/internal/orchestration"
	"github.com/agbru/pilegame/internal/server"
	"github.com/agbru/pilegame/internal/ui"
)

// presentFunc adapts a print callback to orchestration.BatchReporter for
// quiet runs, which have no spinner to stop.
type presentFunc func(orchestration.CoinResult)

func (presentFunc) BatchStarted(int, int) {}

func (f presentFunc) BatchCompleted(res orchestration.CoinResult) { f(res) }

// runExplore explores every coin count up to MaxCoins on one worker pool,
// printing each report block as soon as its batch completes. With
// MetricsAddr set the Prometheus endpoint is served for the length of the
// run.
func (a *Application) runExplore(ctx context.Context, out io.Writer) int {
	cfg := a.Config
	presenter := cli.CLIResultPresenter{Quiet: cfg.Quiet, Verbose: cfg.Verbose}
	if !cfg.Quiet {
		cli.PrintExecutionConfig(cfg, out)
	}

	pool := orchestration.NewPool(cfg.Workers,
		orchestration.WithGameOptions(game.WithMaxMoves(cfg.MaxMoves)),
		orchestration.WithLogger(a.logger),
	)
	defer pool.Shutdown()

	recorder := metrics.NewRecorder(nil)
	memory := metrics.NewMemoryTracker(metrics.NewMemoryCollector())
	present := func(res orchestration.CoinResult) { presenter.PresentBatch(res, out) }

	reporters := orchestration.MultiReporter{recorder, memory}
	var spin *cli.SpinnerReporter
	if cfg.Quiet {
		reporters = append(reporters, presentFunc(present))
	} else {
		spin = cli.NewSpinnerReporter(cfg.MaxCoins, out)
		spin.Present = present
		reporters = append(reporters, spin)
	}

	g, gctx := errgroup.WithContext(ctx)
	serverCtx, stopServer := context.WithCancel(gctx)
	defer stopServer()
	if cfg.MetricsAddr != "" {
		srv := server.NewServer(cfg.MetricsAddr, server.NewMetrics(recorder.Registry()), a.logger)
		g.Go(func() error { return srv.Run(serverCtx) })
	}

	start := time.Now()
	var results []orchestration.CoinResult
	g.Go(func() error {
		defer stopServer()
		var err error
		results, err = orchestration.NewExplorer(pool, reporters, a.logger).Run(gctx, cfg.MaxCoins)
		return err
	})
	err := g.Wait()
	elapsed := time.Since(start)
	if spin != nil {
		spin.Stop()
	}

	if err != nil {
		return presenter.HandleError(err, elapsed, out)
	}

	presenter.PresentSummary(results, elapsed, out)
	if cfg.Verbose {
		if peak, coins, ok := memory.Peak(); ok {
			cli.DisplayMemoryStats(peak, coins, out)
		}
	}

	if cfg.OutputFile != "" {
		outputCfg := cli.OutputConfig{OutputFile: cfg.OutputFile, Quiet: cfg.Quiet, Verbose: cfg.Verbose}
		if err := cli.WriteReportToFile(results, elapsed, pool.Workers(), outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving report: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !cfg.Quiet {
			fmt.Fprintf(out, "\n%sReport saved to: %s%s\n", ui.ColorGreen(), cfg.OutputFile, ui.ColorReset())
		}
	}
	return apperrors.ExitSuccess
}
