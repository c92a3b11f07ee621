package yahoo

import (
    "context"
    "encoding/json"
    "fmt"
    "net/http"
    "net/url"
    "strconv"
    "strings"
    "time"

    "golang.org/x/sync/singleflight"

    "binancemcp/internal/httpx"
)

// Config controls the Yahoo Finance options client behavior.
type Config struct {
    Name    string
    URL     string            // base options endpoint; the symbol is appended as a path segment
    Headers map[string]string // optional extra headers
}

// Client fetches option chains from the Yahoo Finance options API.
// One chain request returns every contract for an (underlying, expiry) pair,
// so concurrent identical fetches are coalesced.
type Client struct {
    cfg    Config
    client *httpx.Client

    // coalesce concurrent chain fetches per (symbol, expiry)
    sf singleflight.Group
}

func New(cfg Config, hc *httpx.Client) *Client {
    if cfg.Name == "" { cfg.Name = "YahooFinance" }
    if cfg.URL == "" { cfg.URL = "https://query2.finance.yahoo.com/v7/finance/options" }
    return &Client{cfg: cfg, client: hc}
}

func (c *Client) Name() string { return c.cfg.Name }

// Chain is one expiry's option chain for an underlying.
type Chain struct {
    UnderlyingSymbol string
    Expiry           time.Time
    Strikes          []float64
    Calls            []Contract
    Puts             []Contract
}

// Contract is a single listed option contract. Fields the upstream omits for
// illiquid contracts stay nil.
type Contract struct {
    ContractSymbol    string   `json:"contractSymbol"`
    Strike            float64  `json:"strike"`
    LastPrice         *float64 `json:"lastPrice"`
    Bid               *float64 `json:"bid"`
    Ask               *float64 `json:"ask"`
    Volume            *int64   `json:"volume"`
    OpenInterest      *int64   `json:"openInterest"`
    ImpliedVolatility *float64 `json:"impliedVolatility"`
}

// Chain fetches the option chain for symbol at expiry.
func (c *Client) Chain(ctx context.Context, symbol string, expiry time.Time) (*Chain, error) {
    key := fmt.Sprintf("%s@%d", symbol, expiry.Unix())
    v, err, _ := c.sf.Do(key, func() (any, error) {
        return c.fetchChain(ctx, symbol, expiry)
    })
    if err != nil {
        return nil, err
    }
    return v.(*Chain), nil
}

func (c *Client) fetchChain(ctx context.Context, symbol string, expiry time.Time) (*Chain, error) {
    u, err := url.Parse(strings.TrimRight(c.cfg.URL, "/") + "/" + url.PathEscape(symbol))
    if err != nil { return nil, err }
    q := u.Query()
    q.Set("date", strconv.FormatInt(expiry.Unix(), 10))
    u.RawQuery = q.Encode()

    req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
    if err != nil { return nil, err }
    for k, v := range c.cfg.Headers { req.Header.Set(k, v) }
    req.Header.Set("Accept", "application/json")
    resp, err := c.client.Do(ctx, req)
    if err != nil { return nil, err }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        return nil, fmt.Errorf("GET %s -> %d", u.String(), resp.StatusCode)
    }
    var body apiResponse
    if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
        return nil, fmt.Errorf("decode: %w", err)
    }
    if body.OptionChain.Error != nil && body.OptionChain.Error.Description != "" {
        return nil, fmt.Errorf("yahoo: %s", body.OptionChain.Error.Description)
    }
    if len(body.OptionChain.Result) == 0 || len(body.OptionChain.Result[0].Options) == 0 {
        return nil, fmt.Errorf("yahoo: no option chain for %s at %s", symbol, expiry.Format("2006-01-02"))
    }
    res := body.OptionChain.Result[0]
    opt := res.Options[0]
    return &Chain{
        UnderlyingSymbol: res.UnderlyingSymbol,
        Expiry:           expiry,
        Strikes:          res.Strikes,
        Calls:            opt.Calls,
        Puts:             opt.Puts,
    }, nil
}

// ParseExpiry parses an expiry date in YYYY-MM-DD or M/D/YYYY form into
// midnight UTC, which is how the options endpoint keys expiries.
func ParseExpiry(s string) (time.Time, error) {
    layout := "2006-01-02"
    if strings.Contains(s, "/") { layout = "1/2/2006" }
    t, err := time.Parse(layout, s)
    if err != nil {
        return time.Time{}, fmt.Errorf("invalid expiry date %q, want YYYY-MM-DD or M/D/YYYY", s)
    }
    return t.UTC(), nil
}

// Response model based on the v7 options payload.
type apiResponse struct {
    OptionChain struct {
        Result []struct {
            UnderlyingSymbol string    `json:"underlyingSymbol"`
            ExpirationDates  []int64   `json:"expirationDates"`
            Strikes          []float64 `json:"strikes"`
            Options          []struct {
                ExpirationDate int64      `json:"expirationDate"`
                Calls          []Contract `json:"calls"`
                Puts           []Contract `json:"puts"`
            } `json:"options"`
        } `json:"result"`
        Error *apiError `json:"error"`
    } `json:"optionChain"`
}

type apiError struct {
    Code        string `json:"code"`
    Description string `json:"description"`
}
