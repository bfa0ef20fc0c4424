package news

import "testing"

func TestTopic(t *testing.T) {
	tests := []struct {
		pair string
		want string
	}{
		{"XRP-EUR", "XRP"},
		{"BTC-USD", "BTC"},
		{"DOGE", "DOGE"},
		{"-EUR", "-EUR"},
	}
	for _, tt := range tests {
		if got := Topic(tt.pair); got != tt.want {
			t.Errorf("pair %q: expected topic %q, got %q", tt.pair, tt.want, got)
		}
	}
}

func TestSummarize_NoAPIKey(t *testing.T) {
	c := NewClient("", "gemini-1.5-flash")
	if _, err := c.Summarize("XRP"); err == nil {
		t.Error("expected error without an API key")
	}
}
