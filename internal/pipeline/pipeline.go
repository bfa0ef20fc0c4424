package pipeline

import (
	"log"
	"time"

	"github.com/shopspring/decimal"

	"CoinReport/internal/calculator"
	"CoinReport/internal/collector"
	"CoinReport/internal/model"
	"CoinReport/internal/news"
	"CoinReport/internal/notifier"
	"CoinReport/internal/recorder"
	"CoinReport/internal/series"
)

// Stage identifies how far a run progressed.
type Stage string

const (
	StageAborted        Stage = "ABORTED"
	StageSent           Stage = "SENT"
	StageDeliveryFailed Stage = "DELIVERY_FAILED"
)

// Renderer draws the weekly chart; an empty path means rendering was skipped.
type Renderer interface {
	Render(points []model.WeeklyPoint) (string, error)
}

// Summarizer fetches a short news paragraph for a topic.
type Summarizer interface {
	Summarize(topic string) (string, error)
}

// Outcome summarizes one run.
type Outcome struct {
	Stage            Stage
	Report           *model.Report
	NewsFromFallback bool
}

// Pipeline executes the sequential report flow:
// fetch → compute → append → chart → compose → send.
type Pipeline struct {
	Pair           string
	PurchasePrices string
	Fetcher        collector.Fetcher
	Store          *series.Store
	Renderer       Renderer
	News           Summarizer
	Sender         notifier.Sender
	Recorder       recorder.Recorder
	Now            func() time.Time
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Run executes one report cycle. An unresolvable average purchase price or a
// failed price fetch aborts before any side effect; everything after metrics
// degrades instead of aborting. Run never returns an error: failures are
// logged and reflected in the outcome.
func (p *Pipeline) Run() *Outcome {
	avg, ok := calculator.AveragePurchasePrice(p.PurchasePrices)
	if !ok {
		log.Println("[ERROR] average purchase price unavailable, aborting run")
		out := &Outcome{Stage: StageAborted}
		p.record(out)
		return out
	}

	price, err := p.Fetcher.FetchSpotPrice(p.Pair)
	if err != nil {
		log.Printf("[ERROR] fetch %s spot price: %v, aborting run", p.Pair, err)
		out := &Outcome{Stage: StageAborted}
		p.record(out)
		return out
	}

	metrics := calculator.ComputeMetrics(decimal.NewFromFloat(price), avg)
	today := p.now()

	rep := &model.Report{
		Pair:             p.Pair,
		Date:             today,
		CurrentPrice:     price,
		AvgPurchasePrice: avg.InexactFloat64(),
		Metrics:          metrics,
	}

	obs, err := p.Store.Append(today, metrics.ReturnPct)
	if err != nil {
		// The original run dies on a series write failure before composing
		// any email; keep that ordering, just without the crash.
		log.Printf("[ERROR] update series: %v, aborting run", err)
		out := &Outcome{Stage: StageAborted, Report: rep}
		p.record(out)
		return out
	}

	points := calculator.ResampleWeekly(obs)
	chartPath, err := p.Renderer.Render(points)
	if err != nil {
		log.Printf("[WARN] render chart: %v, sending without image", err)
	} else {
		rep.ChartPath = chartPath
	}

	out := &Outcome{Report: rep}
	if summary, err := p.News.Summarize(news.Topic(p.Pair)); err != nil {
		log.Printf("[WARN] news summary: %v, using fallback text", err)
		rep.News = news.Fallback
		out.NewsFromFallback = true
	} else {
		rep.News = summary
	}

	if err := p.Sender.Send(rep); err != nil {
		log.Printf("[ERROR] deliver report: %v", err)
		out.Stage = StageDeliveryFailed
	} else {
		log.Printf("[INFO] report sent: %s return %+.2f%%", p.Pair, metrics.ReturnPct)
		out.Stage = StageSent
	}

	p.record(out)
	return out
}

func (p *Pipeline) record(out *Outcome) {
	if p.Recorder == nil {
		return
	}
	rec := &recorder.RunRecord{
		Pair:             p.Pair,
		NewsFromFallback: out.NewsFromFallback,
		EmailSent:        out.Stage == StageSent,
		Stage:            string(out.Stage),
	}
	if out.Report != nil {
		rec.CurrentPrice = out.Report.CurrentPrice
		rec.AvgPurchasePrice = out.Report.AvgPurchasePrice
		rec.ReturnPct = out.Report.Metrics.ReturnPct
		rec.ProfitPerUnit = out.Report.Metrics.ProfitPerUnit
		rec.Multiplier = out.Report.Metrics.Multiplier
		rec.ChartRendered = out.Report.ChartPath != ""
	}
	if err := p.Recorder.RecordRun(rec); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}
