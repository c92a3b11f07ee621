package yahoo

import (
    "context"
    "fmt"
    "math"
    "sort"
    "time"
)

// strikeTolerance is how far a listed strike may sit from the requested one
// and still count as a match.
const strikeTolerance = 0.01

// nearbyCount is how many alternative strikes a missed lookup reports.
const nearbyCount = 5

// Premium is the quoted premium for a single option contract.
type Premium struct {
    Symbol            string   `json:"symbol"`
    Strike            float64  `json:"strike"`
    ExpiryDate        string   `json:"expiry_date"`
    OptionType        string   `json:"option_type"`
    LastPrice         *float64 `json:"last_price"`
    Bid               *float64 `json:"bid"`
    Ask               *float64 `json:"ask"`
    Volume            *int64   `json:"volume"`
    OpenInterest      *int64   `json:"open_interest"`
    ImpliedVolatility *float64 `json:"implied_volatility"`
    MidPrice          *float64 `json:"mid_price,omitempty"`
}

// StrikeNotFoundError reports that no contract sits at the requested strike.
// Nearby lists up to nearbyCount listed strikes closest to the request.
type StrikeNotFoundError struct {
    Symbol     string
    OptionType string
    Strike     float64
    Nearby     []float64
}

func (e *StrikeNotFoundError) Error() string {
    return fmt.Sprintf("no %s contract at strike %g for %s, nearby strikes: %v", e.OptionType, e.Strike, e.Symbol, e.Nearby)
}

// Premium fetches the chain for (symbol, expiry) and returns the premium of
// the contract at strike. optionType is "call" or "put"; anything else has
// been rejected by the caller.
func (c *Client) Premium(ctx context.Context, symbol string, strike float64, expiry time.Time, optionType string) (*Premium, error) {
    chain, err := c.Chain(ctx, symbol, expiry)
    if err != nil {
        return nil, err
    }

    contracts := chain.Calls
    if optionType == "put" { contracts = chain.Puts }

    for _, contract := range contracts {
        if math.Abs(contract.Strike-strike) >= strikeTolerance {
            continue
        }
        premium := &Premium{
            Symbol:            symbol,
            Strike:            contract.Strike,
            ExpiryDate:        expiry.Format("2006-01-02"),
            OptionType:        optionType,
            LastPrice:         contract.LastPrice,
            Bid:               contract.Bid,
            Ask:               contract.Ask,
            Volume:            contract.Volume,
            OpenInterest:      contract.OpenInterest,
            ImpliedVolatility: contract.ImpliedVolatility,
        }
        if contract.Bid != nil && contract.Ask != nil {
            mid := (*contract.Bid + *contract.Ask) / 2
            premium.MidPrice = &mid
        }
        return premium, nil
    }

    return nil, &StrikeNotFoundError{
        Symbol:     symbol,
        OptionType: optionType,
        Strike:     strike,
        Nearby:     nearestStrikes(contracts, strike, nearbyCount),
    }
}

// nearestStrikes returns up to n listed strikes ordered by distance from
// strike, re-sorted ascending for display.
func nearestStrikes(contracts []Contract, strike float64, n int) []float64 {
    strikes := make([]float64, 0, len(contracts))
    for _, c := range contracts { strikes = append(strikes, c.Strike) }
    sort.Slice(strikes, func(i, j int) bool {
        return math.Abs(strikes[i]-strike) < math.Abs(strikes[j]-strike)
    })
    if len(strikes) > n { strikes = strikes[:n] }
    sort.Float64s(strikes)
    return strikes
}
