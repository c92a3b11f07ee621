package mcpserver

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"binancemcp/internal/symbol"
)

const (
	activityLogURI    = "file://activity.log"
	symbolMapURI      = "file://symbol_map.csv"
	cryptoPriceURI    = "resource://crypto_price/{symbol}"
	cryptoPricePrefix = "resource://crypto_price/"
)

func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         activityLogURI,
		Name:        "activity_log",
		Description: "Full contents of the server's activity log.",
		MIMEType:    "text/plain",
	}, s.handleActivityLog)
	s.resources = append(s.resources, activityLogURI)

	s.server.AddResource(&mcp.Resource{
		URI:         symbolMapURI,
		Name:        "symbol_map",
		Description: "Friendly-name to ticker mappings used for symbol resolution, as CSV.",
		MIMEType:    "text/csv",
	}, s.handleSymbolMap)
	s.resources = append(s.resources, symbolMapURI)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: cryptoPriceURI,
		Name:        "crypto_price",
		Description: "Current spot price for the symbol embedded in the URI.",
		MIMEType:    "text/plain",
	}, s.handleCryptoPrice)
	s.resources = append(s.resources, cryptoPriceURI)
}

// Resource reads never return an error: the addressing model has no error
// channel, so failures are answered in-band as text.

func (s *Server) handleActivityLog(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	text, err := s.activity.ReadAll()
	if err != nil {
		text = fmt.Sprintf("Failed to read activity log: %v", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{URI: req.Params.URI, MIMEType: "text/plain", Text: text}},
	}, nil
}

func (s *Server) handleSymbolMap(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{URI: req.Params.URI, MIMEType: "text/csv", Text: symbol.MapCSV()}},
	}, nil
}

func (s *Server) handleCryptoPrice(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	raw := strings.TrimPrefix(req.Params.URI, cryptoPricePrefix)
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	sym := symbol.Resolve(raw)

	var text string
	if quote, err := s.binance.SpotPrice(ctx, sym); err != nil {
		text = fmt.Sprintf("Failed to fetch price for %s: %v", sym, err)
	} else {
		text = fmt.Sprintf("The current price of %s is %s", sym, quote.Price)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{URI: req.Params.URI, MIMEType: "text/plain", Text: text}},
	}, nil
}
