package news

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com"

// Fallback is used in place of a summary when the API key is absent or the
// request fails.
const Fallback = "No market news summary is available for this report."

// Client fetches a short news summary from the Gemini generateContent API.
type Client struct {
	apiKey string
	model  string
	http   *resty.Client
}

// NewClient creates a summarizer client. An empty apiKey disables requests.
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey: apiKey,
		model:  model,
		http: resty.New().
			SetBaseURL(geminiBaseURL).
			SetTimeout(60 * time.Second).
			SetHeader("Content-Type", "application/json"),
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Summarize requests a one-paragraph news summary for a topic, e.g. "XRP".
func (c *Client) Summarize(topic string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("news: no API key configured")
	}

	prompt := fmt.Sprintf(
		"Write a single short paragraph (3-4 sentences, plain text, no markdown) summarizing the most notable recent news about %s and its market.",
		topic)
	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	var out generateResponse
	resp, err := c.http.R().
		SetQueryParam("key", c.apiKey).
		SetBody(&req).
		SetResult(&out).
		SetError(&out).
		SetPathParam("model", c.model).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		return "", fmt.Errorf("news fetch: %w", err)
	}
	if resp.IsError() {
		if out.Error != nil {
			return "", fmt.Errorf("news api error: status %d: %s", resp.StatusCode(), out.Error.Message)
		}
		return "", fmt.Errorf("news api error: status %d, body: %s", resp.StatusCode(), resp.String())
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("news: empty response")
	}

	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("news: blank summary text")
	}
	return text, nil
}

// Topic derives the summary topic from a currency pair, e.g. "XRP-EUR" → "XRP".
func Topic(pair string) string {
	if i := strings.Index(pair, "-"); i > 0 {
		return pair[:i]
	}
	return pair
}
