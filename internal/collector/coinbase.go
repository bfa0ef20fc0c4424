package collector

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const coinbaseBaseURL = "https://api.coinbase.com"

// CoinbaseFetcher implements Fetcher using the Coinbase spot price API.
type CoinbaseFetcher struct {
	client *resty.Client
}

// spotPriceResponse is the Coinbase /v2/prices/{pair}/spot response.
type spotPriceResponse struct {
	Data struct {
		Base     string `json:"base"`
		Currency string `json:"currency"`
		Amount   string `json:"amount"`
	} `json:"data"`
	Errors []struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	} `json:"errors"`
}

// NewCoinbaseFetcher creates a fetcher with an optional API key header.
// The spot price endpoint is public; the key is only attached when set.
func NewCoinbaseFetcher(apiKey string) *CoinbaseFetcher {
	client := resty.New().
		SetBaseURL(coinbaseBaseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		client.SetHeader("CB-ACCESS-KEY", apiKey)
	}
	return &CoinbaseFetcher{client: client}
}

func (f *CoinbaseFetcher) Name() string { return "coinbase" }

// FetchSpotPrice returns the current spot price for a pair like "XRP-EUR".
func (f *CoinbaseFetcher) FetchSpotPrice(pair string) (float64, error) {
	var out spotPriceResponse
	resp, err := f.client.R().
		SetResult(&out).
		SetError(&out).
		SetPathParam("pair", pair).
		Get("/v2/prices/{pair}/spot")
	if err != nil {
		return 0, fmt.Errorf("coinbase fetch: %w", err)
	}
	if resp.IsError() {
		if len(out.Errors) > 0 {
			return 0, fmt.Errorf("coinbase api error: status %d: %s", resp.StatusCode(), out.Errors[0].Message)
		}
		return 0, fmt.Errorf("coinbase api error: status %d, body: %s", resp.StatusCode(), resp.String())
	}
	if out.Data.Amount == "" {
		return 0, fmt.Errorf("coinbase: empty amount for %s", pair)
	}
	price, err := strconv.ParseFloat(out.Data.Amount, 64)
	if err != nil {
		return 0, fmt.Errorf("coinbase: parse amount %q: %w", out.Data.Amount, err)
	}
	return price, nil
}
