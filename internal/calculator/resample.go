package calculator

import (
	"errors"
	"sort"
	"time"

	"CoinReport/internal/model"
)

// weekEnding returns the Sunday that closes the calendar week containing d.
// A date that is itself a Sunday maps to the same day.
func weekEnding(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	offset := (7 - int(day.Weekday())) % 7
	return day.AddDate(0, 0, offset)
}

// ResampleWeekly aggregates daily observations into Sunday-ending weekly
// buckets. The result covers every calendar week between the first and last
// bucket inclusive; weeks with no observations are marked Missing. Weekly
// means are rounded to two decimals.
func ResampleWeekly(obs []model.PriceObservation) []model.WeeklyPoint {
	if len(obs) == 0 {
		return nil
	}

	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	for _, o := range obs {
		wk := weekEnding(o.Date)
		sums[wk] += o.ReturnPct
		counts[wk]++
	}

	weeks := make([]time.Time, 0, len(sums))
	for wk := range sums {
		weeks = append(weeks, wk)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	first, last := weeks[0], weeks[len(weeks)-1]
	points := make([]model.WeeklyPoint, 0, int(last.Sub(first).Hours()/(24*7))+1)
	for wk := first; !wk.After(last); wk = wk.AddDate(0, 0, 7) {
		if n, ok := counts[wk]; ok {
			points = append(points, model.WeeklyPoint{
				Week:      wk,
				AvgReturn: Round2(sums[wk] / float64(n)),
			})
		} else {
			points = append(points, model.WeeklyPoint{Week: wk, Missing: true})
		}
	}
	return points
}

// LinearFit computes a least-squares linear fit y = slope*x + intercept.
func LinearFit(xs, ys []float64) (slope, intercept float64, err error) {
	if len(xs) != len(ys) {
		return 0, 0, errors.New("x and y lengths differ")
	}
	n := float64(len(xs))
	if n < 2 {
		return 0, 0, errors.New("not enough points for a linear fit")
	}

	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, 0, errors.New("degenerate fit: all x values equal")
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept, nil
}

// OrdinalDays converts a date to a fractional day count since the Unix epoch,
// the x unit used for trend fitting.
func OrdinalDays(t time.Time) float64 {
	return float64(t.Unix()) / 86400.0
}
