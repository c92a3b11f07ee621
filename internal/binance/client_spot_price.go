package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// SpotQuote is the spot-price ticker response. Price stays a string to avoid
// float rounding.
type SpotQuote struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// SpotPrice retrieves the current spot price for symbol. A non-success status
// is returned as *UpstreamError carrying the response body; a success body
// without a price field fails with ErrMissingPrice.
func (c *Client) SpotPrice(ctx context.Context, symbol string, opts ...Option) (SpotQuote, error) {
	override := c.clone()
	for _, opt := range opts {
		opt(override)
	}

	req, err := override.newTickerRequest(ctx, override.spotURL, symbol)
	if err != nil {
		return SpotQuote{}, err
	}

	res, err := override.httpClient.Do(req)
	if err != nil {
		return SpotQuote{}, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2<<10))
		return SpotQuote{}, &UpstreamError{
			Symbol:     symbol,
			StatusCode: res.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var quote SpotQuote
	if err := json.NewDecoder(res.Body).Decode(&quote); err != nil {
		return SpotQuote{}, fmt.Errorf("decoding spot-price response: %w", err)
	}
	if quote.Price == "" {
		return SpotQuote{}, fmt.Errorf("%s: %w", symbol, ErrMissingPrice)
	}
	if quote.Symbol == "" {
		quote.Symbol = symbol
	}
	return quote, nil
}

// newTickerRequest builds a GET request for a ticker endpoint parameterized
// by symbol.
func (c *Client) newTickerRequest(ctx context.Context, endpoint, symbol string) (*http.Request, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parsing endpoint %q: %w", endpoint, err)
	}
	q := u.Query()
	q.Set("symbol", symbol)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()
	return req, nil
}
