package calculator

import (
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

// AveragePurchasePrice computes the simple average of a semicolon-delimited
// list of purchase prices. The second return value is false when the input is
// empty, blank, or contains an unparseable value.
func AveragePurchasePrice(pricesStr string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(pricesStr)
	if trimmed == "" {
		return decimal.Zero, false
	}

	sum := decimal.Zero
	count := 0
	for _, field := range strings.Split(trimmed, ";") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		d, err := decimal.NewFromString(field)
		if err != nil {
			log.Printf("[WARN] purchase prices: unparseable value %q: %v", field, err)
			return decimal.Zero, false
		}
		sum = sum.Add(d)
		count++
	}
	if count == 0 {
		return decimal.Zero, false
	}
	return sum.Div(decimal.NewFromInt(int64(count))), true
}
