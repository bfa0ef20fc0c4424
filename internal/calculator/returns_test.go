package calculator

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeMetrics_TenPercentGain(t *testing.T) {
	m := ComputeMetrics(decimal.NewFromFloat(1.10), decimal.NewFromFloat(1.00))
	if !almostEqual(m.ReturnPct, 10.0) {
		t.Errorf("expected return_pct 10.00, got %.10f", m.ReturnPct)
	}
	if !almostEqual(m.ProfitPerUnit, 0.10) {
		t.Errorf("expected profit_per_unit 0.10, got %.10f", m.ProfitPerUnit)
	}
	if !almostEqual(m.Multiplier, 1.10) {
		t.Errorf("expected multiplier 1.10, got %.10f", m.Multiplier)
	}
}

func TestComputeMetrics_Loss(t *testing.T) {
	m := ComputeMetrics(decimal.NewFromFloat(0.50), decimal.NewFromFloat(1.00))
	if !almostEqual(m.ReturnPct, -50.0) {
		t.Errorf("expected return_pct -50.00, got %.10f", m.ReturnPct)
	}
	if !almostEqual(m.ProfitPerUnit, -0.50) {
		t.Errorf("expected profit_per_unit -0.50, got %.10f", m.ProfitPerUnit)
	}
}

func TestComputeMetrics_ZeroAverage(t *testing.T) {
	m := ComputeMetrics(decimal.NewFromFloat(1.10), decimal.Zero)
	if m.ReturnPct != 0 {
		t.Errorf("expected return_pct 0 for zero average, got %.10f", m.ReturnPct)
	}
	if m.Multiplier != 0 {
		t.Errorf("expected multiplier 0 for zero average, got %.10f", m.Multiplier)
	}
	if !almostEqual(m.ProfitPerUnit, 1.10) {
		t.Errorf("expected profit_per_unit 1.10, got %.10f", m.ProfitPerUnit)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{10.456, 10.46},
		{10.454, 10.45},
		// -3.005 is stored as -3.00499…, so it rounds toward zero.
		{-3.005, -3.0},
		{3.005, 3.0},
		// 0.125 is exact in binary; ties go to even.
		{0.125, 0.12},
		{0.375, 0.38},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); !almostEqual(got, tt.want) {
			t.Errorf("Round2(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
