package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the HTTP server's own collectors and the handler that
// exposes them together with any extra gatherers, such as the exploration
// recorder's registry.
type Metrics struct {
	registry       *prometheus.Registry
	activeRequests prometheus.Gauge
	requestsTotal  *prometheus.CounterVec
	handler        http.Handler
}

// NewMetrics creates the server metrics on a private registry, adds the Go
// runtime and process collectors, and merges extra gatherers into the
// exposition.
func NewMetrics(extra ...prometheus.Gatherer) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pilegame_active_requests",
			Help: "Number of HTTP requests being served.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pilegame_requests_total",
			Help: "Number of HTTP requests served, by path.",
		}, []string{"path"}),
	}
	reg.MustRegister(
		m.activeRequests,
		m.requestsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	gatherers := prometheus.Gatherers{reg}
	for _, g := range extra {
		if g != nil {
			gatherers = append(gatherers, g)
		}
	}
	m.handler = promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests marks the start of a request.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests marks the end of a request.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// ObserveRequest counts a served request.
func (m *Metrics) ObserveRequest(path string) { m.requestsTotal.WithLabelValues(path).Inc() }

// WritePrometheus writes the exposition for r to w.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
