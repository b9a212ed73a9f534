package cli

import (
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/pilegame/internal/errors"
	"github.com/agbru/pilegame/internal/format"
	"github.com/agbru/pilegame/internal/metrics"
	"github.com/agbru/pilegame/internal/orchestration"
	"github.com/agbru/pilegame/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for console
// output.
type CLIResultPresenter struct {
	Quiet   bool
	Verbose bool
}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentBatch writes one coin count in the report or quiet format.
func (p CLIResultPresenter) PresentBatch(res orchestration.CoinResult, out io.Writer) {
	if p.Quiet {
		fmt.Fprintln(out, FormatQuietBatch(res))
		return
	}
	DisplayBatch(out, res, p.Verbose)
}

// PresentSummary writes the totals of a run and the coin counts holding the
// overall longest score and loop. Quiet mode prints nothing.
func (p CLIResultPresenter) PresentSummary(results []orchestration.CoinResult, elapsed time.Duration, out io.Writer) {
	if p.Quiet || len(results) == 0 {
		return
	}
	total := 0
	best, bestLoop := results[0], results[0]
	for _, r := range results {
		total += r.Partitions
		if r.Aggregate.HighestScore > best.Aggregate.HighestScore {
			best = r
		}
		if r.Aggregate.HighestLoop > bestLoop.Aggregate.HighestLoop {
			bestLoop = r
		}
	}
	fmt.Fprintf(out, "\n--- Summary ---\n")
	fmt.Fprintf(out, "Explored %s%d%s coin counts (%s partitions) in %s%s%s.\n",
		ui.ColorPrimary(), len(results), ui.ColorReset(),
		format.FormatCount(total),
		ui.ColorGreen(), format.FormatExecutionDuration(elapsed), ui.ColorReset())
	fmt.Fprintf(out, "Longest score: %s%d%s at %d coins %s\n",
		ui.ColorScore(), best.Aggregate.HighestScore, ui.ColorReset(), best.Coins, best.Aggregate.HighestScorePosition)
	fmt.Fprintf(out, "Longest loop:  %s%d%s at %d coins %s\n",
		ui.ColorLoop(), bestLoop.Aggregate.HighestLoop, ui.ColorReset(), bestLoop.Coins, bestLoop.Aggregate.HighestLoopPosition)
}

// HandleError prints err and returns the matching exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleRunError(err, duration, out, CLIColorProvider{})
}

// CLIColorProvider implements apperrors.ColorProvider with the active theme.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// DisplayMemoryStats shows the largest heap observed during a run.
func DisplayMemoryStats(peak metrics.MemorySnapshot, atCoins int, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:       %s (after %d coins)\n", format.FormatBytes(peak.HeapAlloc), atCoins)
	fmt.Fprintf(out, "  Heap objects:    %s\n", format.FormatCount(int(peak.HeapObjects)))
	fmt.Fprintf(out, "  Obtained from OS: %s\n", format.FormatBytes(peak.Sys))
	fmt.Fprintf(out, "  GC cycles:       %d\n", peak.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(peak.PauseTotalNs)/1e6)
}
