package notifier

import (
	"fmt"
	"html"
	"strings"

	"github.com/dustin/go-humanize"

	"CoinReport/internal/model"
)

var quoteSymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
}

// CurrencySymbol returns the display symbol for a pair's quote currency,
// falling back to the currency code itself.
func CurrencySymbol(pair string) string {
	parts := strings.Split(pair, "-")
	quote := parts[len(parts)-1]
	if sym, ok := quoteSymbols[quote]; ok {
		return sym
	}
	return quote
}

// Subject formats the email subject line for a report.
func Subject(rep *model.Report) string {
	return fmt.Sprintf("Daily %s Report: %s", rep.Pair, rep.Date.Format("02/01/2006"))
}

// money renders a fixed two-decimal amount with thousands separators.
func money(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

func metricsBlock(rep *model.Report) string {
	sym := CurrencySymbol(rep.Pair)
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Return: %+.2f%%\n", rep.Metrics.ReturnPct))
	b.WriteString(fmt.Sprintf("Return Multiplier: x%.2f\n", rep.Metrics.Multiplier))
	b.WriteString(fmt.Sprintf("Profit/Loss per Unit: %s%s\n", sym, money(rep.Metrics.ProfitPerUnit)))
	b.WriteString("--\n")
	b.WriteString(fmt.Sprintf("Current Price: %s%s\n", sym, money(rep.CurrentPrice)))
	b.WriteString(fmt.Sprintf("Avg. Purchase Price: %s%s", sym, money(rep.AvgPurchasePrice)))
	return b.String()
}

func footerBlock(rep *model.Report) string {
	var b strings.Builder
	if rep.News != "" {
		b.WriteString("Market News:\n")
		b.WriteString(rep.News)
		b.WriteString("\n\n")
	}
	b.WriteString("(Report generated by bot)\n")
	b.WriteString(fmt.Sprintf("🌐 © %d CoinReport", rep.Date.Year()))
	return b.String()
}

// FormatPlainBody builds the text/plain body with metrics and news.
func FormatPlainBody(rep *model.Report) string {
	return metricsBlock(rep) + "\n\n" + footerBlock(rep)
}

// FormatHTMLBody builds the text/html alternative embedding the chart image
// by its content-id. Only called when a chart was rendered.
func FormatHTMLBody(rep *model.Report, imageCID string) string {
	var b strings.Builder
	b.WriteString("<html><body>\n")
	b.WriteString(fmt.Sprintf("<pre style=\"font-family: sans-serif;\">%s</pre><br>\n", html.EscapeString(metricsBlock(rep))))
	b.WriteString(fmt.Sprintf("<img src=\"cid:%s\" width=\"400\" style=\"display:block; max-width:400px; width:100%%; height:auto;\"><br>\n", imageCID))
	b.WriteString(fmt.Sprintf("<pre style=\"font-family: sans-serif;\">%s</pre>\n", html.EscapeString(footerBlock(rep))))
	b.WriteString("</body></html>")
	return b.String()
}
