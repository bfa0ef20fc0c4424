package notifier

import (
	"strings"
	"testing"
	"time"

	"CoinReport/internal/model"
)

func sampleReport() *model.Report {
	return &model.Report{
		Pair:             "XRP-EUR",
		Date:             time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
		CurrentPrice:     1.10,
		AvgPurchasePrice: 1.00,
		Metrics: model.Metrics{
			ReturnPct:     10.0,
			ProfitPerUnit: 0.10,
			Multiplier:    1.10,
		},
		News: "XRP held steady this week.",
	}
}

func TestSubject(t *testing.T) {
	got := Subject(sampleReport())
	want := "Daily XRP-EUR Report: 02/01/2025"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCurrencySymbol(t *testing.T) {
	tests := []struct {
		pair string
		want string
	}{
		{"XRP-EUR", "€"},
		{"BTC-USD", "$"},
		{"ETH-GBP", "£"},
		{"XRP-CHF", "CHF"},
		{"XRP", "XRP"},
	}
	for _, tt := range tests {
		if got := CurrencySymbol(tt.pair); got != tt.want {
			t.Errorf("pair %q: expected %q, got %q", tt.pair, tt.want, got)
		}
	}
}

func TestFormatPlainBody(t *testing.T) {
	body := FormatPlainBody(sampleReport())
	for _, want := range []string{
		"Return: +10.00%",
		"Return Multiplier: x1.10",
		"Profit/Loss per Unit: €0.10",
		"Current Price: €1.10",
		"Avg. Purchase Price: €1.00",
		"XRP held steady this week.",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("plain body missing %q:\n%s", want, body)
		}
	}
}

func TestFormatPlainBody_NegativeReturn(t *testing.T) {
	rep := sampleReport()
	rep.Metrics.ReturnPct = -12.5
	body := FormatPlainBody(rep)
	if !strings.Contains(body, "Return: -12.50%") {
		t.Errorf("expected signed negative return in body:\n%s", body)
	}
}

func TestFormatHTMLBody(t *testing.T) {
	htmlBody := FormatHTMLBody(sampleReport(), "weekly_report_graph.png")
	if !strings.Contains(htmlBody, `cid:weekly_report_graph.png`) {
		t.Errorf("expected content-id image reference:\n%s", htmlBody)
	}
	if !strings.Contains(htmlBody, "Return: +10.00%") {
		t.Errorf("expected metrics in HTML body:\n%s", htmlBody)
	}
}

func TestFormatHTMLBody_EscapesContent(t *testing.T) {
	rep := sampleReport()
	rep.News = "prices <moved> fast & loose"
	htmlBody := FormatHTMLBody(rep, "cid123")
	if strings.Contains(htmlBody, "<moved>") {
		t.Error("expected news text to be HTML-escaped")
	}
	if !strings.Contains(htmlBody, "&lt;moved&gt;") {
		t.Errorf("expected escaped entities in HTML body:\n%s", htmlBody)
	}
}
