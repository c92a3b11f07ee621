package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"binancemcp/internal/binance"
	"binancemcp/internal/symbol"
	"binancemcp/internal/yahoo"
)

// PriceArgs is the input for the two price tools.
type PriceArgs struct {
	Symbol string `json:"symbol" jsonschema:"Asset to look up: a friendly name like bitcoin or eth, or a raw ticker like SOLUSDT"`
}

// OptionPremiumArgs is the input for the option-premium tool.
type OptionPremiumArgs struct {
	Symbol     string  `json:"symbol" jsonschema:"Underlying equity ticker, e.g. TSLA"`
	Strike     float64 `json:"strike" jsonschema:"Strike price of the contract"`
	ExpiryDate string  `json:"expiry_date" jsonschema:"Expiry date, YYYY-MM-DD or M/D/YYYY"`
	OptionType string  `json:"option_type,omitempty" jsonschema:"call or put; defaults to call"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_price",
		Description: "Get the current spot price of a crypto asset from Binance.",
	}, s.handleGetPrice)
	s.tools = append(s.tools, "get_price")

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_price_price_change",
		Description: "Get 24-hour price-change statistics for a crypto asset from Binance.",
	}, s.handleGetPriceChange)
	s.tools = append(s.tools, "get_price_price_change")

	if s.options != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_option_premium",
			Description: "Get the current premium for a listed equity option contract.",
		}, s.handleGetOptionPremium)
		s.tools = append(s.tools, "get_option_premium")
	}
}

// symbolArg validates and resolves the symbol argument shared by the price
// tools. The schema has already enforced presence and type; emptiness is
// rejected here so no handler runs with a blank symbol.
func symbolArg(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("symbol must be a non-empty string")
	}
	return symbol.Resolve(raw), nil
}

func (s *Server) handleGetPrice(ctx context.Context, req *mcp.CallToolRequest, args PriceArgs) (*mcp.CallToolResult, any, error) {
	sym, err := symbolArg(args.Symbol)
	if err != nil {
		return nil, nil, err
	}

	quote, err := s.binance.SpotPrice(ctx, sym)
	if err != nil {
		s.logFailure(sym, err)
		return nil, nil, err
	}
	s.logSuccess(sym, quote.Price)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{
			Text: fmt.Sprintf("The current price of %s is %s", sym, quote.Price),
		}},
	}, nil, nil
}

func (s *Server) handleGetPriceChange(ctx context.Context, req *mcp.CallToolRequest, args PriceArgs) (*mcp.CallToolResult, any, error) {
	sym, err := symbolArg(args.Symbol)
	if err != nil {
		return nil, nil, err
	}

	stats, err := s.binance.Stats24h(ctx, sym)
	if err != nil {
		return nil, nil, err
	}
	return nil, stats, nil
}

// strikeMiss is returned as data when the requested strike is not listed, so
// the caller can pick an alternative instead of treating it as a malfunction.
type strikeMiss struct {
	Error                  string    `json:"error"`
	Symbol                 string    `json:"symbol"`
	OptionType             string    `json:"option_type"`
	RequestedStrike        float64   `json:"requested_strike"`
	AvailableStrikesNearby []float64 `json:"available_strikes_nearby"`
}

func (s *Server) handleGetOptionPremium(ctx context.Context, req *mcp.CallToolRequest, args OptionPremiumArgs) (*mcp.CallToolResult, any, error) {
	if args.Symbol == "" {
		return nil, nil, errors.New("symbol must be a non-empty string")
	}
	sym := strings.ToUpper(args.Symbol)

	expiry, err := yahoo.ParseExpiry(args.ExpiryDate)
	if err != nil {
		return nil, nil, err
	}

	optionType := strings.ToLower(args.OptionType)
	if optionType == "" {
		optionType = "call"
	}
	if optionType != "call" && optionType != "put" {
		return nil, nil, fmt.Errorf("option_type must be call or put, got %q", args.OptionType)
	}

	premium, err := s.options.Premium(ctx, sym, args.Strike, expiry, optionType)
	var notFound *yahoo.StrikeNotFoundError
	if errors.As(err, &notFound) {
		return nil, strikeMiss{
			Error:                  fmt.Sprintf("No %s option found at strike %g for %s", optionType, args.Strike, sym),
			Symbol:                 sym,
			OptionType:             optionType,
			RequestedStrike:        args.Strike,
			AvailableStrikesNearby: notFound.Nearby,
		}, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return nil, premium, nil
}

// logSuccess appends the audit line for a completed spot-price fetch. Append
// failures must not mask the fetched price, so they go to stderr only.
func (s *Server) logSuccess(sym, price string) {
	now := time.Now().UTC().Format(time.RFC3339)
	if err := s.activity.Appendf("Successfully fetched price for %s: %s, Current Time: %s", sym, price, now); err != nil {
		log.Printf("activity append failed: %v", err)
	}
}

// logFailure appends the audit line for a failed spot-price fetch before the
// error propagates to the caller.
func (s *Server) logFailure(sym string, cause error) {
	var upstreamErr *binance.UpstreamError
	var line string
	if errors.As(cause, &upstreamErr) {
		line = fmt.Sprintf("Error getting price for %s: %d - %s", sym, upstreamErr.StatusCode, upstreamErr.Body)
	} else {
		line = fmt.Sprintf("Error getting price for %s: %v", sym, cause)
	}
	if err := s.activity.Append(line); err != nil {
		log.Printf("activity append failed: %v", err)
	}
}
