package mcpserver

import (
	"context"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"binancemcp/internal/activity"
	"binancemcp/internal/binance"
	"binancemcp/internal/yahoo"
)

// Config identifies the server to connecting clients.
type Config struct {
	Name    string
	Version string
}

// Deps are the collaborators the handlers dispatch to.
type Deps struct {
	Binance *binance.Client
	// Options may be nil, which leaves the option-premium tool unregistered.
	Options  *yahoo.Client
	Activity *activity.Log
}

// Server owns the tool and resource registry and translates between the MCP
// request/response shapes and the upstream clients. One instance serves one
// stdio session.
type Server struct {
	server   *mcp.Server
	binance  *binance.Client
	options  *yahoo.Client
	activity *activity.Log

	tools     []string
	resources []string
}

func New(cfg Config, deps Deps) *Server {
	s := &Server{
		server:   mcp.NewServer(&mcp.Implementation{Name: cfg.Name, Version: cfg.Version}, nil),
		binance:  deps.Binance,
		options:  deps.Options,
		activity: deps.Activity,
	}
	s.registerTools()
	s.registerResources()
	return s
}

// Tools lists the registered tool names, for the startup banner.
func (s *Server) Tools() []string { return slices.Clone(s.tools) }

// Resources lists the registered resource URIs, for the startup banner.
func (s *Server) Resources() []string { return slices.Clone(s.resources) }

// Serve runs the server over t until the session ends or ctx is canceled.
func (s *Server) Serve(ctx context.Context, t mcp.Transport) error {
	return s.server.Run(ctx, t)
}

// Run serves over stdio, which is how the host launches this process.
func (s *Server) Run(ctx context.Context) error {
	return s.Serve(ctx, &mcp.StdioTransport{})
}
