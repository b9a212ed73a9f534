package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/pilegame/internal/config"
	"github.com/agbru/pilegame/internal/format"
	"github.com/agbru/pilegame/internal/game"
	"github.com/agbru/pilegame/internal/partition"
	"github.com/agbru/pilegame/internal/ui"
)

// PrintExecutionConfig displays the run configuration: coin range, the
// number of partitions to play, pool size, ceiling and environment.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	total := 0
	for n := 1; n <= cfg.MaxCoins; n++ {
		total += partition.Count(n)
	}
	maxMoves := cfg.MaxMoves
	if maxMoves == 0 {
		maxMoves = game.DefaultMaxMoves
	}

	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Exploring %s1..%d coins%s (%s partitions) with a timeout of %s%s%s.\n",
		ui.ColorPrimary(), cfg.MaxCoins, ui.ColorReset(), format.FormatCount(total),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Worker pool: %s%d%s goroutines, move ceiling %s.\n",
		ui.ColorPrimary(), cfg.Workers, ui.ColorReset(), format.FormatCount(maxMoves))
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorPrimary(), runtime.NumCPU(), ui.ColorReset(), ui.ColorPrimary(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
