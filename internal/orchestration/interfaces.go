//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"time"
)

// CoinResult is the outcome of exploring every partition of one coin count.
// It is the shared domain type between orchestration and presentation layers.
type CoinResult struct {
	// Coins is the coin count of the batch.
	Coins int
	// Partitions is the number of starting positions that were played.
	Partitions int
	// Aggregate holds the extremal scores and loops of the batch.
	Aggregate Aggregate
	// Duration is the wall time of the batch, generation included.
	Duration time.Duration
}

// BatchReporter receives batch lifecycle notifications from the Explorer.
// This interface decouples the orchestration layer from the presentation
// layer: spinners, dashboards and metrics recorders all implement it.
//
// Both methods are called from the goroutine driving the Explorer, never from
// pool workers.
type BatchReporter interface {
	// BatchStarted is called once the partitions of coins are generated and
	// before they are handed to the pool.
	BatchStarted(coins, partitions int)
	// BatchCompleted is called after the pool has drained the batch.
	BatchCompleted(result CoinResult)
}

// NullReporter is a no-op implementation of BatchReporter.
type NullReporter struct{}

// BatchStarted does nothing.
func (NullReporter) BatchStarted(int, int) {}

// BatchCompleted does nothing.
func (NullReporter) BatchCompleted(CoinResult) {}

// MultiReporter fans notifications out to several reporters in order.
type MultiReporter []BatchReporter

// BatchStarted forwards to every reporter.
func (m MultiReporter) BatchStarted(coins, partitions int) {
	for _, r := range m {
		r.BatchStarted(coins, partitions)
	}
}

// BatchCompleted forwards to every reporter.
func (m MultiReporter) BatchCompleted(result CoinResult) {
	for _, r := range m {
		r.BatchCompleted(result)
	}
}

// ResultPresenter defines how exploration results are shown to the user,
// allowing different output formats without modifying the orchestration
// logic.
type ResultPresenter interface {
	// PresentBatch writes the report block of one coin count.
	PresentBatch(result CoinResult, out io.Writer)
	// PresentSummary writes the closing summary of a run.
	PresentSummary(results []CoinResult, elapsed time.Duration, out io.Writer)
}

// ErrorHandler handles run errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
