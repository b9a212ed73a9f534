package tui

import (
	"slices"
	"testing"
)

func TestHistory(t *testing.T) {
	t.Parallel()
	h := NewHistory(3)
	if h.Last() != 0 || h.Values() != nil {
		t.Fatal("empty history should have no values")
	}
	for _, v := range []float64{1, 2, 3, 4} {
		h.Push(v)
	}
	if got := h.Values(); !slices.Equal(got, []float64{2, 3, 4}) {
		t.Errorf("Values() = %v, want [2 3 4]", got)
	}
	if h.Len() != 3 || h.Last() != 4 {
		t.Errorf("Len=%d Last=%v, want 3 and 4", h.Len(), h.Last())
	}
	h.Reset()
	if h.Len() != 0 {
		t.Errorf("Len after Reset = %d", h.Len())
	}
}

func TestHistory_ZeroCapacity(t *testing.T) {
	t.Parallel()
	h := NewHistory(0)
	h.Push(5)
	h.Push(6)
	if got := h.Values(); !slices.Equal(got, []float64{6}) {
		t.Errorf("Values() = %v, want [6]", got)
	}
}

func TestSparkline(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		values  []float64
		ceiling float64
		width   int
		want    string
	}{
		{"empty", nil, 100, 0, ""},
		{"fixed ceiling", []float64{0, 50, 100}, 100, 0, "▁▄█"},
		{"clamped", []float64{-10, 200}, 100, 0, "▁█"},
		{"auto scale", []float64{1, 2, 4}, 0, 0, "▂▄█"},
		{"all zero auto", []float64{0, 0}, 0, 0, "▁▁"},
		{"width keeps newest", []float64{100, 0, 100}, 100, 2, "▁█"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Sparkline(tt.values, tt.ceiling, tt.width); got != tt.want {
				t.Errorf("Sparkline(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}
