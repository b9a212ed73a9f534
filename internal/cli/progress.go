package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/briandowns/spinner"

	"github.com/agbru/pilegame/internal/format"
	"github.com/agbru/pilegame/internal/orchestration"
)

// SpinnerReporter implements orchestration.BatchReporter with a terminal
// spinner showing the coin count in flight, a progress bar and an ETA.
//
// If Present is set it is called with every completed batch while the
// spinner is stopped, so report lines never interleave with spinner frames.
type SpinnerReporter struct {
	Present func(orchestration.CoinResult)

	mu       sync.Mutex
	spinner  Spinner
	tracker  *orchestration.ProgressTracker
	maxCoins int
	last     orchestration.Progress
	running  bool
}

var _ orchestration.BatchReporter = (*SpinnerReporter)(nil)

// NewSpinnerReporter creates a reporter for a run up to maxCoins writing to
// out.
func NewSpinnerReporter(maxCoins int, out io.Writer) *SpinnerReporter {
	return &SpinnerReporter{
		spinner:  newSpinner(spinner.WithWriter(out)),
		tracker:  orchestration.NewProgressTracker(maxCoins),
		maxCoins: maxCoins,
	}
}

// BatchStarted (re)starts the spinner and shows the batch.
func (r *SpinnerReporter) BatchStarted(coins, partitions int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		r.spinner.Start()
		r.running = true
	}
	r.spinner.UpdateSuffix(r.suffix(coins, partitions))
}

// BatchCompleted folds the batch into the progress estimate.
func (r *SpinnerReporter) BatchCompleted(res orchestration.CoinResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tracker != nil {
		r.last = r.tracker.Update(res)
	}
	if r.Present == nil {
		return
	}
	if r.running {
		r.spinner.Stop()
		r.running = false
	}
	r.Present(res)
}

// Stop halts the spinner. It is safe to call when the spinner never started.
func (r *SpinnerReporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		r.spinner.Stop()
		r.running = false
	}
}

func (r *SpinnerReporter) suffix(coins, partitions int) string {
	return fmt.Sprintf(" coins %d/%d (%s partitions) %s %5.1f%% ETA %s",
		coins, r.maxCoins, format.FormatCount(partitions),
		progressBar(r.last.Fraction, ProgressBarWidth), r.last.Fraction*100,
		format.FormatETA(r.last.ETA))
}
