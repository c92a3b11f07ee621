package binance

import (
	"net/http"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=binance_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const (
	defaultSpotURL  = "https://api.binance.com/api/v3/ticker/price"
	defaultStatsURL = "https://data-api.binance.vision/api/v3/ticker/24hr"
)

// Client is a client for the public Binance market-data API. The endpoints
// need no authentication.
type Client struct {
	// spotURL is the spot-price ticker endpoint.
	spotURL string
	// statsURL is the 24-hour rolling-window ticker endpoint.
	statsURL string
	// httpClient is the HTTP client used to make requests.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
}

// Option is a configuration option for the Binance client.
type Option func(*Client)

// WithSpotURL overrides the spot-price endpoint.
func WithSpotURL(spotURL string) Option {
	return func(c *Client) {
		c.spotURL = spotURL
	}
}

// WithStatsURL overrides the 24-hour-statistics endpoint.
func WithStatsURL(statsURL string) Option {
	return func(c *Client) {
		c.statsURL = statsURL
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) Option {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// NewClient creates a new Binance market-data client.
func NewClient(options ...Option) *Client {
	var client = &Client{
		spotURL:    defaultSpotURL,
		statsURL:   defaultStatsURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// clone copies the client so per-call options cannot mutate it.
func (c *Client) clone() *Client {
	return &Client{
		spotURL:    c.spotURL,
		statsURL:   c.statsURL,
		httpClient: c.httpClient,
		header:     c.header.Clone(),
	}
}
