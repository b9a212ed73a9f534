package verify

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/agbru/pilegame/internal/errors"
	"github.com/agbru/pilegame/internal/partition"
)

func TestRun_Passes(t *testing.T) {
	t.Parallel()
	report, err := Run(context.Background(), Options{MaxCoins: 18, Samples: 2000, Seed: 42}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Checks) != 18 {
		t.Fatalf("len(Checks) = %d, want 18", len(report.Checks))
	}
	for _, c := range report.Checks {
		if !c.OK() {
			t.Errorf("coins=%d failed: %+v", c.Coins, c)
		}
		if !c.OracleChecked {
			t.Errorf("coins=%d was not compared with enumeration", c.Coins)
		}
		if c.Sampled != 2000 {
			t.Errorf("coins=%d sampled %d, want 2000", c.Coins, c.Sampled)
		}
	}
	if report.Seed != 42 {
		t.Errorf("Seed = %d, want 42", report.Seed)
	}
}

func TestRun_OracleLimit(t *testing.T) {
	t.Parallel()
	report, err := Run(context.Background(), Options{MaxCoins: 6, Samples: 10, OracleLimit: 3, Concurrency: 1}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, c := range report.Checks {
		if want := c.Coins <= 3; c.OracleChecked != want {
			t.Errorf("coins=%d OracleChecked = %v, want %v", c.Coins, c.OracleChecked, want)
		}
	}
}

func TestRun_InvalidOptions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		opts Options
	}{
		{"zero coins", Options{MaxCoins: 0, Samples: 1}},
		{"negative samples", Options{MaxCoins: 3, Samples: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Run(context.Background(), tt.opts, nil)
			var v apperrors.ValidationError
			if !errors.As(err, &v) {
				t.Errorf("Run error = %v, want ValidationError", err)
			}
		})
	}
}

func TestRun_Canceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, Options{MaxCoins: 10, Samples: 100}, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
}

func TestCheckCoins_DetectsDefects(t *testing.T) {
	t.Parallel()
	full := partition.Enumerate(5)
	var positions []partition.StartPos
	for _, p := range full {
		positions = append(positions, partition.NewStartPos(p))
	}

	tests := []struct {
		name   string
		mutate func([]partition.StartPos) []partition.StartPos
		check  func(CoinCheck) bool
	}{
		{
			name:   "missing entry",
			mutate: func(ps []partition.StartPos) []partition.StartPos { return ps[1:] },
			check:  func(c CoinCheck) bool { return c.Generated == 6 && c.OracleMismatch && c.Missing > 0 },
		},
		{
			name: "duplicate entry",
			mutate: func(ps []partition.StartPos) []partition.StartPos {
				return append(ps[:len(ps)-1:len(ps)-1], ps[0])
			},
			check: func(c CoinCheck) bool { return c.Duplicates == 1 && c.OracleMismatch },
		},
		{
			name: "bad ones count",
			mutate: func(ps []partition.StartPos) []partition.StartPos {
				out := append([]partition.StartPos(nil), ps...)
				out[0].Ones = 3
				return out
			},
			check: func(c CoinCheck) bool { return c.Invalid == 1 },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := checkCoins(context.Background(), 5, tt.mutate(positions), Options{Samples: 5000, OracleLimit: 10})
			if err != nil {
				t.Fatalf("checkCoins: %v", err)
			}
			if c.OK() || !tt.check(c) {
				t.Errorf("defect not detected: %+v", c)
			}
		})
	}
}

func TestReport_Failed(t *testing.T) {
	t.Parallel()
	r := Report{Checks: []CoinCheck{
		{Coins: 1, Generated: 1, Expected: 1},
		{Coins: 2, Generated: 1, Expected: 2},
		{Coins: 3, Generated: 3, Expected: 3, Missing: 1},
	}}
	got := r.Failed()
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("Failed() = %v, want [2 3]", got)
	}
}
