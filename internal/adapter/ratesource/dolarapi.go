// Package ratesource fetches the current exchange rate from an external
// HTTP API in the dolarapi response format.
package ratesource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendanorte/ledger/internal/domain"
)

// Client implements usecase.RateSource against a dolarapi-style endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a new rate source client.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type rateResponse struct {
	Venta       decimal.Decimal `json:"venta"`
	Casa        string          `json:"casa"`
	FechaActual time.Time       `json:"fechaActualizacion"`
}

// Fetch retrieves the current selling rate. The band check happens in the
// use case, not here.
func (c *Client) Fetch(ctx context.Context) (domain.Rate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.Rate{}, fmt.Errorf("failed to build rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Rate{}, fmt.Errorf("%w: %v", domain.ErrRateUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Rate{}, fmt.Errorf("%w: unexpected status %d", domain.ErrRateUnavailable, resp.StatusCode)
	}

	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Rate{}, fmt.Errorf("%w: malformed response: %v", domain.ErrRateUnavailable, err)
	}

	source := body.Casa
	if source == "" {
		source = "external"
	}

	timestamp := body.FechaActual
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	return domain.Rate{
		Value:     body.Venta,
		Source:    source,
		Timestamp: timestamp,
	}, nil
}
