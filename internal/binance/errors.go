package binance

import (
	"errors"
	"fmt"
)

// ErrMissingPrice reports a success response whose body lacks a usable price
// field.
var ErrMissingPrice = errors.New("price missing in response")

// UpstreamError reports a non-success HTTP status from the Binance API.
type UpstreamError struct {
	// Symbol is the market ticker the request was for.
	Symbol string
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Body is the response body text; read on the spot-price path only.
	Body string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("binance: %s -> %d", e.Symbol, e.StatusCode)
	}
	return fmt.Sprintf("binance: %s -> %d: %s", e.Symbol, e.StatusCode, e.Body)
}
