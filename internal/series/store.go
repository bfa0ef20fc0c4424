package series

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"CoinReport/internal/calculator"
	"CoinReport/internal/model"
)

// DateLayout is the day-first date format used in the CSV.
const DateLayout = "02/01/2006"

// Store persists the historical return series as a two-column CSV
// (date, return_pct). The whole file is rewritten on every append; the file
// is the unit of durability.
type Store struct {
	Path string
}

// NewStore creates a store backed by the given CSV path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads all observations. A missing file yields an empty series.
func (s *Store) Load() ([]model.PriceObservation, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open series: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read series: %w", err)
	}

	obs := make([]model.PriceObservation, 0, len(rows))
	for i, row := range rows {
		if i == 0 && len(row) >= 1 && row[0] == "date" {
			continue // header
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("series row %d: expected 2 columns, got %d", i+1, len(row))
		}
		date, err := time.Parse(DateLayout, row[0])
		if err != nil {
			return nil, fmt.Errorf("series row %d: parse date %q: %w", i+1, row[0], err)
		}
		pct, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("series row %d: parse return_pct %q: %w", i+1, row[1], err)
		}
		obs = append(obs, model.PriceObservation{Date: date, ReturnPct: pct})
	}
	return obs, nil
}

// Append loads the existing series, adds one observation (return rounded to
// two decimals), and rewrites the file. It returns the full updated series.
func (s *Store) Append(date time.Time, returnPct float64) ([]model.PriceObservation, error) {
	obs, err := s.Load()
	if err != nil {
		return nil, err
	}
	obs = append(obs, model.PriceObservation{
		Date:      date,
		ReturnPct: calculator.Round2(returnPct),
	})
	if err := s.write(obs); err != nil {
		return nil, err
	}
	return obs, nil
}

func (s *Store) write(obs []model.PriceObservation) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create series dir: %w", err)
		}
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("create series: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"date", "return_pct"}); err != nil {
		return fmt.Errorf("write series header: %w", err)
	}
	for _, o := range obs {
		row := []string{
			o.Date.Format(DateLayout),
			strconv.FormatFloat(calculator.Round2(o.ReturnPct), 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write series row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush series: %w", err)
	}
	return nil
}
