package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/pilegame/internal/orchestration"
)

// gatheredValue returns the value of the gauge or counter name whose labels
// include want, or -1 when it is absent.
func gatheredValue(t *testing.T, r *Recorder, name string, want map[string]string) float64 {
	t.Helper()
	families, err := r.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metrics:
		for _, m := range mf.GetMetric() {
			for k, v := range want {
				found := false
				for _, l := range m.GetLabel() {
					if l.GetName() == k && l.GetValue() == v {
						found = true
					}
				}
				if !found {
					continue metrics
				}
			}
			if m.GetGauge() != nil {
				return m.GetGauge().GetValue()
			}
			return m.GetCounter().GetValue()
		}
	}
	return -1
}

func TestRecorder_BatchCompleted(t *testing.T) {
	t.Parallel()
	r := NewRecorder(nil)

	r.BatchStarted(4, 5)
	if got := gatheredValue(t, r, "pilegame_current_coins", nil); got != 4 {
		t.Errorf("current coins = %v, want 4", got)
	}

	r.BatchCompleted(orchestration.CoinResult{
		Coins:      4,
		Partitions: 5,
		Duration:   3 * time.Millisecond,
		Aggregate: orchestration.Aggregate{
			Total: 5, Observed: 5,
			HighestScore: 5, HighestScoreCount: 1,
			HighestLoop: 3, HighestLoopCount: 5,
		},
	})
	r.BatchCompleted(orchestration.CoinResult{
		Coins:     3,
		Aggregate: orchestration.Aggregate{Observed: 3, HighestScore: 3, HighestLoop: 1},
	})

	tests := []struct {
		name   string
		labels map[string]string
		want   float64
	}{
		{"pilegame_batches_total", nil, 2},
		{"pilegame_simulations_total", nil, 8},
		{"pilegame_highest_score", map[string]string{"coins": "4"}, 5},
		{"pilegame_highest_score", map[string]string{"coins": "3"}, 3},
		{"pilegame_highest_loop", map[string]string{"coins": "4"}, 3},
		{"pilegame_highest_loop", map[string]string{"coins": "3"}, 1},
	}
	for _, tt := range tests {
		if got := gatheredValue(t, r, tt.name, tt.labels); got != tt.want {
			t.Errorf("%s%v = %v, want %v", tt.name, tt.labels, got, tt.want)
		}
	}
}

func TestRecorder_Exposition(t *testing.T) {
	t.Parallel()
	r := NewRecorder(nil)
	r.BatchCompleted(orchestration.CoinResult{Coins: 2, Duration: time.Millisecond})

	rec := httptest.NewRecorder()
	promhttp.HandlerFor(r.Registry(), promhttp.HandlerOpts{}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	body := rec.Body.String()
	for _, name := range []string{
		"pilegame_batches_total 1",
		"pilegame_batch_duration_seconds_count 1",
		`pilegame_highest_score{coins="2"} 0`,
	} {
		if !strings.Contains(body, name) {
			t.Errorf("exposition lacks %q", name)
		}
	}
}

func TestNewRecorder_Independent(t *testing.T) {
	t.Parallel()
	// Separate registries must not panic on duplicate registration.
	a, b := NewRecorder(nil), NewRecorder(nil)
	a.BatchCompleted(orchestration.CoinResult{Coins: 1})
	if got := gatheredValue(t, b, "pilegame_batches_total", nil); got != 0 {
		t.Errorf("second recorder saw %v batches, want 0", got)
	}
}
