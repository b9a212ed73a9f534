// Package orchestration runs the pile game over every partition of each coin
// count on a fixed pool of worker goroutines and aggregates the extremal
// scores and loops. It decouples the computation from presentation via the
// BatchReporter and ResultPresenter interfaces.
package orchestration
