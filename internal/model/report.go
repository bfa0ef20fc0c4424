package model

import "time"

// PriceObservation is one row of the historical return series.
type PriceObservation struct {
	Date      time.Time
	ReturnPct float64
}

// Metrics holds the values derived from current vs. average purchase price.
type Metrics struct {
	ReturnPct     float64
	ProfitPerUnit float64
	Multiplier    float64
}

// WeeklyPoint is one Sunday-ending bucket of the resampled series.
// Missing marks calendar weeks inside the range that had no observations.
type WeeklyPoint struct {
	Week      time.Time
	AvgReturn float64
	Missing   bool
}

// Report carries everything the notifier needs to compose one email.
type Report struct {
	Pair             string
	Date             time.Time
	CurrentPrice     float64
	AvgPurchasePrice float64
	Metrics          Metrics
	ChartPath        string // empty when rendering was skipped
	News             string
}
