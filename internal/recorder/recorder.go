package recorder

// RunRecord holds the audit data for one pipeline run.
type RunRecord struct {
	Pair             string
	CurrentPrice     float64
	AvgPurchasePrice float64
	ReturnPct        float64
	ProfitPerUnit    float64
	Multiplier       float64
	ChartRendered    bool
	NewsFromFallback bool
	EmailSent        bool
	Stage            string // final pipeline stage, e.g. "SENT" or "ABORTED"
}

// Recorder persists run history for later analysis.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
