// Package metrics exposes exploration progress as Prometheus metrics and
// samples runtime memory statistics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/pilegame/internal/orchestration"
)

// Recorder is an orchestration.BatchReporter that records every completed
// batch into Prometheus collectors registered on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	batches      prometheus.Counter
	simulations  prometheus.Counter
	duration     prometheus.Histogram
	currentCoins prometheus.Gauge
	highestScore *prometheus.GaugeVec
	highestLoop  *prometheus.GaugeVec
}

// NewRecorder creates a Recorder and registers its collectors on reg. A nil
// reg gets a fresh registry, so several recorders never collide.
func NewRecorder(reg *prometheus.Registry) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	r := &Recorder{
		registry: reg,
		batches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pilegame_batches_total",
			Help: "Number of coin counts fully explored.",
		}),
		simulations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pilegame_simulations_total",
			Help: "Number of games played to a repeated position.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pilegame_batch_duration_seconds",
			Help:    "Wall time of one coin count, generation included.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		}),
		currentCoins: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pilegame_current_coins",
			Help: "Coin count of the batch in flight.",
		}),
		highestScore: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pilegame_highest_score",
			Help: "Highest score found per coin count.",
		}, []string{"coins"}),
		highestLoop: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pilegame_highest_loop",
			Help: "Highest loop length found per coin count.",
		}, []string{"coins"}),
	}
	reg.MustRegister(r.batches, r.simulations, r.duration, r.currentCoins, r.highestScore, r.highestLoop)
	return r
}

// Registry returns the registry the collectors live on.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// BatchStarted sets the in-flight coin count.
func (r *Recorder) BatchStarted(coins, _ int) {
	r.currentCoins.Set(float64(coins))
}

// BatchCompleted records the outcome of one coin count.
func (r *Recorder) BatchCompleted(res orchestration.CoinResult) {
	label := strconv.Itoa(res.Coins)
	r.batches.Inc()
	r.simulations.Add(float64(res.Aggregate.Observed))
	r.duration.Observe(res.Duration.Seconds())
	r.highestScore.WithLabelValues(label).Set(float64(res.Aggregate.HighestScore))
	r.highestLoop.WithLabelValues(label).Set(float64(res.Aggregate.HighestLoop))
}
