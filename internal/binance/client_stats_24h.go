package binance

import (
	"context"
	"encoding/json"
	"fmt"
)

// Stats24h is the 24-hour rolling-window ticker response. The whole object is
// the payload; prices and volumes stay strings as the API sends them.
type Stats24h struct {
	Symbol             string `json:"symbol"`
	PriceChange        string `json:"priceChange"`
	PriceChangePercent string `json:"priceChangePercent"`
	WeightedAvgPrice   string `json:"weightedAvgPrice"`
	PrevClosePrice     string `json:"prevClosePrice"`
	LastPrice          string `json:"lastPrice"`
	LastQty            string `json:"lastQty"`
	BidPrice           string `json:"bidPrice"`
	BidQty             string `json:"bidQty"`
	AskPrice           string `json:"askPrice"`
	AskQty             string `json:"askQty"`
	OpenPrice          string `json:"openPrice"`
	HighPrice          string `json:"highPrice"`
	LowPrice           string `json:"lowPrice"`
	Volume             string `json:"volume"`
	QuoteVolume        string `json:"quoteVolume"`
	OpenTime           int64  `json:"openTime"`
	CloseTime          int64  `json:"closeTime"`
	FirstID            int64  `json:"firstId"`
	LastID             int64  `json:"lastId"`
	Count              int64  `json:"count"`
}

// Stats24h retrieves the 24-hour statistics for symbol. A non-success status
// is returned as *UpstreamError carrying the symbol and status only.
func (c *Client) Stats24h(ctx context.Context, symbol string, opts ...Option) (Stats24h, error) {
	override := c.clone()
	for _, opt := range opts {
		opt(override)
	}

	req, err := override.newTickerRequest(ctx, override.statsURL, symbol)
	if err != nil {
		return Stats24h{}, err
	}

	res, err := override.httpClient.Do(req)
	if err != nil {
		return Stats24h{}, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return Stats24h{}, &UpstreamError{Symbol: symbol, StatusCode: res.StatusCode}
	}

	var stats Stats24h
	if err := json.NewDecoder(res.Body).Decode(&stats); err != nil {
		return Stats24h{}, fmt.Errorf("decoding 24h-stats response: %w", err)
	}
	if stats.Symbol == "" {
		stats.Symbol = symbol
	}
	return stats, nil
}
