package chart

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"CoinReport/internal/calculator"
	"CoinReport/internal/model"
)

// Output matches 4.24x2.25 inches at 200 DPI.
const (
	chartWidth  = 848
	chartHeight = 450
	chartDPI    = 200
)

var (
	lineColor  = drawing.ColorFromHex("808080")
	trendColor = drawing.ColorFromHex("ff9999")
	gridColor  = drawing.ColorFromHex("c0c0c0")
)

// lineSegments splits the weekly points into contiguous runs of valid points,
// breaking at missing weeks.
func lineSegments(points []model.WeeklyPoint) [][]model.WeeklyPoint {
	var segments [][]model.WeeklyPoint
	var cur []model.WeeklyPoint
	for _, p := range points {
		if p.Missing {
			if len(cur) > 0 {
				segments = append(segments, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		segments = append(segments, cur)
	}
	return segments
}

// Renderer draws the weekly average return chart as a PNG file.
type Renderer struct {
	OutputPath string
}

// NewRenderer creates a renderer writing to the given path.
func NewRenderer(outputPath string) *Renderer {
	return &Renderer{OutputPath: outputPath}
}

// Render draws the weekly series and returns the output file path. With fewer
// than two weekly buckets there is nothing meaningful to plot; it returns an
// empty path and no error.
func (r *Renderer) Render(points []model.WeeklyPoint) (string, error) {
	if len(points) < 2 {
		log.Println("[INFO] not enough weekly data for a chart, skipping render")
		return "", nil
	}

	var valid []model.WeeklyPoint
	for _, p := range points {
		if !p.Missing {
			valid = append(valid, p)
		}
	}

	weekXs := make([]time.Time, len(valid))
	weekYs := make([]float64, len(valid))
	for i, p := range valid {
		weekXs[i] = p.Week
		weekYs[i] = p.AvgReturn
	}

	// The line breaks at missing weeks, so each contiguous run of valid
	// points becomes its own series. Only the first carries the legend name.
	var series []chart.Series
	for i, seg := range lineSegments(points) {
		xs := make([]time.Time, 0, len(seg))
		ys := make([]float64, 0, len(seg))
		for _, p := range seg {
			xs = append(xs, p.Week)
			ys = append(ys, p.AvgReturn)
		}
		if len(seg) == 1 {
			// go-chart needs two points per series; a repeated point still
			// draws the isolated marker.
			xs = append(xs, xs[0])
			ys = append(ys, ys[0])
		}
		name := ""
		if i == 0 {
			name = "Weekly Avg. Return"
		}
		series = append(series, chart.TimeSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: lineColor,
				StrokeWidth: 1,
				DotColor:    lineColor,
				DotWidth:    3,
			},
		})
	}

	// Overlay a least-squares trend only when there are enough valid points.
	if len(valid) > 2 {
		xs := make([]float64, len(valid))
		for i, p := range valid {
			xs[i] = calculator.OrdinalDays(p.Week)
		}
		slope, intercept, err := calculator.LinearFit(xs, weekYs)
		if err != nil {
			log.Printf("[WARN] trend fit failed: %v", err)
		} else {
			trendXs := make([]time.Time, len(points))
			trendYs := make([]float64, len(points))
			for i, p := range points {
				trendXs[i] = p.Week
				trendYs[i] = slope*calculator.OrdinalDays(p.Week) + intercept
			}
			series = append(series, chart.TimeSeries{
				Name:    "Trend",
				XValues: trendXs,
				YValues: trendYs,
				Style: chart.Style{
					StrokeColor:     trendColor,
					StrokeWidth:     1,
					StrokeDashArray: []float64{4, 4},
				},
			})
		}
	}

	yMin, yMax := weekYs[0], weekYs[0]
	for _, y := range weekYs {
		if y < yMin {
			yMin = y
		}
		if y > yMax {
			yMax = y
		}
	}
	yRange := yMax - yMin
	if yRange <= 0 {
		yRange = 1
	}
	yBuffer := yRange * 0.1

	xMin := weekXs[0].AddDate(0, 0, -3)
	xMax := weekXs[len(weekXs)-1].AddDate(0, 0, 3)

	graph := chart.Chart{
		Title:      "Weekly Average Return (%)",
		TitleStyle: chart.Style{FontSize: 9},
		Width:      chartWidth,
		Height:     chartHeight,
		DPI:        chartDPI,
		XAxis: chart.XAxis{
			Style:          chart.Style{FontSize: 8},
			ValueFormatter: chart.TimeValueFormatterWithFormat("Jan"),
			Range: &chart.ContinuousRange{
				Min: float64(xMin.UnixNano()),
				Max: float64(xMax.UnixNano()),
			},
		},
		YAxis: chart.YAxis{
			Name:  "Avg. Return",
			Style: chart.Style{FontSize: 8},
			Range: &chart.ContinuousRange{
				Min: yMin - yBuffer,
				Max: yMax + yBuffer,
			},
			GridMajorStyle: chart.Style{
				StrokeColor:     gridColor,
				StrokeWidth:     0.6,
				StrokeDashArray: []float64{2, 2},
			},
			GridLines: []chart.GridLine{{Value: 0}},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.LegendThin(&graph)}

	if dir := filepath.Dir(r.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create chart dir: %w", err)
		}
	}
	f, err := os.Create(r.OutputPath)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	return r.OutputPath, nil
}
