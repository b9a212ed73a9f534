// # Naming Conventions
//
// Functions in this package follow consistent naming patterns:
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a formatted string without performing I/O.
//   - Write* functions write data to files on the filesystem.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/pilegame/internal/format"
	"github.com/agbru/pilegame/internal/orchestration"
	"github.com/agbru/pilegame/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the report (empty for no file output).
	OutputFile string
	// Quiet prints one line per coin count.
	Quiet bool
	// Verbose adds per-batch timings.
	Verbose bool
}

// FormatBatch renders the report block of one coin count without colors.
func FormatBatch(res orchestration.CoinResult) string {
	var b strings.Builder
	writeBatch(&b, res, ui.NoColorTheme)
	return b.String()
}

// FormatQuietBatch renders the single-line form used by --quiet.
func FormatQuietBatch(res orchestration.CoinResult) string {
	a := res.Aggregate
	return fmt.Sprintf("coins=%d score=%d (%s) loop=%d (%s)",
		res.Coins,
		a.HighestScore, format.FormatShare(a.HighestScoreCount, a.Total),
		a.HighestLoop, format.FormatShare(a.HighestLoopCount, a.Total))
}

// DisplayBatch writes the colored report block of one coin count.
func DisplayBatch(out io.Writer, res orchestration.CoinResult, verbose bool) {
	var b strings.Builder
	writeBatch(&b, res, ui.GetCurrentTheme())
	if verbose {
		fmt.Fprintf(&b, " %s(%s partitions in %s)%s\n", ui.ColorSecondary(),
			format.FormatCount(res.Partitions), format.FormatExecutionDuration(res.Duration), ui.ColorReset())
	}
	io.WriteString(out, b.String())
}

func writeBatch(b *strings.Builder, res orchestration.CoinResult, th ui.Theme) {
	a := res.Aggregate
	fmt.Fprintf(b, "%sCoins=%d%s\n", th.Primary+th.Bold, res.Coins, th.Reset)
	fmt.Fprintf(b, " Highest Score is %s%d%s (shared by %s positions) and first found at %s\n",
		th.Score, a.HighestScore, th.Reset, format.FormatShare(a.HighestScoreCount, a.Total), a.HighestScorePosition)
	fmt.Fprintf(b, " Highest Loop is %s%d%s (shared by %s positions) and first found at %s\n",
		th.Loop, a.HighestLoop, th.Reset, format.FormatShare(a.HighestLoopCount, a.Total), a.HighestLoopPosition)
}

// WriteReportToFile writes the plain report of a run to config.OutputFile,
// creating parent directories as needed. It does nothing when no file is
// configured.
func WriteReportToFile(results []orchestration.CoinResult, elapsed time.Duration, workers int, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	total := 0
	for _, r := range results {
		total += r.Partitions
	}
	fmt.Fprintf(file, "# Pile game exploration\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Coins: 1..%d\n", len(results))
	fmt.Fprintf(file, "# Partitions: %d\n", total)
	fmt.Fprintf(file, "# Workers: %d\n", workers)
	fmt.Fprintf(file, "# Duration: %s\n\n", elapsed)
	for _, r := range results {
		if config.Quiet {
			fmt.Fprintln(file, FormatQuietBatch(r))
		} else {
			io.WriteString(file, FormatBatch(r))
		}
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
