// Package marketprice fetches the current per-board-foot lumber price from
// an external quote endpoint.
package marketprice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Quote is the payload returned by the market price endpoint.
type Quote struct {
	MarketPrice float64   `json:"market_price"`
	LastUpdate  time.Time `json:"last_update"`
}

// Client queries an external quote service over HTTP.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New returns a client for the given endpoint. An empty URL yields a nil
// client, which callers treat as "feed not configured".
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		return nil
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Current fetches the latest quote. Errors are returned to the caller; no
// retries happen here.
func (c *Client) Current(ctx context.Context) (*Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build market price request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch market price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market price endpoint returned %s", resp.Status)
	}

	var quote Quote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return nil, fmt.Errorf("decode market price response: %w", err)
	}
	return &quote, nil
}
