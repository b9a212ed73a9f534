package cli

import (
	"fmt"
	"io"

	"github.com/agbru/pilegame/internal/format"
	"github.com/agbru/pilegame/internal/ui"
	"github.com/agbru/pilegame/internal/verify"
)

// DisplayVerifyReport writes the outcome of a self-check. Passing coin
// counts are listed only in verbose mode; failures are always listed.
func DisplayVerifyReport(report verify.Report, out io.Writer, verbose bool) {
	fmt.Fprintf(out, "--- Self-check (seed %d) ---\n", report.Seed)
	sampled := 0
	for _, c := range report.Checks {
		sampled += c.Sampled
		if c.OK() && !verbose {
			continue
		}
		status := ui.ColorGreen() + "ok" + ui.ColorReset()
		if !c.OK() {
			status = ui.ColorRed() + "FAIL" + ui.ColorReset()
		}
		fmt.Fprintf(out, "Coins=%-3d %s generated %s of %s", c.Coins, status,
			format.FormatCount(c.Generated), format.FormatCount(c.Expected))
		if c.Invalid > 0 {
			fmt.Fprintf(out, ", %d invalid", c.Invalid)
		}
		if c.Duplicates > 0 {
			fmt.Fprintf(out, ", %d duplicates", c.Duplicates)
		}
		if c.Missing > 0 {
			fmt.Fprintf(out, ", %d/%d samples missing (first %s)", c.Missing, c.Sampled, c.FirstMissing)
		}
		if c.OracleMismatch {
			fmt.Fprint(out, ", differs from full enumeration")
		}
		fmt.Fprintln(out)
	}

	failed := report.Failed()
	if len(failed) == 0 {
		fmt.Fprintf(out, "%sAll %d coin counts verified%s (%s random partitions) in %s.\n",
			ui.ColorGreen(), len(report.Checks), ui.ColorReset(),
			format.FormatCount(sampled), format.FormatExecutionDuration(report.Duration))
		return
	}
	fmt.Fprintf(out, "%s%d of %d coin counts failed: %v%s\n",
		ui.ColorRed(), len(failed), len(report.Checks), failed, ui.ColorReset())
}
