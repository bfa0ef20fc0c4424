package calculator

import (
	"strconv"

	"github.com/shopspring/decimal"

	"CoinReport/internal/model"
)

var hundred = decimal.NewFromInt(100)

// ComputeMetrics derives return metrics from the current price and the
// average purchase price. A zero average yields zero return and multiplier
// rather than a division failure.
func ComputeMetrics(current, avg decimal.Decimal) model.Metrics {
	m := model.Metrics{
		ProfitPerUnit: current.Sub(avg).InexactFloat64(),
	}
	if avg.IsZero() {
		return m
	}
	m.ReturnPct = current.Sub(avg).Div(avg).Mul(hundred).InexactFloat64()
	m.Multiplier = current.Div(avg).InexactFloat64()
	return m
}

// Round2 rounds to two decimal places, half to even on the true float value.
// Scaling by 100 first would shift values sitting just under an .xx5 boundary
// (for example -3.005, stored as -3.00499…) onto the wrong side of it.
func Round2(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return f
}
