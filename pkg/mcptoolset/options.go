package mcptoolset

import (
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vikashloomba/mcp-toolset-go/pkg/mcpconfig"
)

// Options configure one discovery pass. The zero value (or nil) selects
// sensible defaults.
type Options struct {
	// ClientName is advertised to servers during the initialize handshake.
	// Defaults to "mcp-toolset".
	ClientName string
	// ClientVersion controls the semantic version reported to servers.
	ClientVersion string
	// CallTimeout bounds each remote tool invocation. Defaults to 30s.
	CallTimeout time.Duration
	// Logger receives structured diagnostics for per-server failures.
	Logger *slog.Logger
	// DialTransport overrides transport construction for a server. Intended
	// for tests and embedders that supply their own connection; when nil,
	// the transport is derived from the server definition.
	DialTransport func(serverName string, def *mcpconfig.ServerDefinition) (mcp.Transport, error)
}

func (o *Options) withDefaults() Options {
	if o == nil {
		o = &Options{}
	}
	opts := *o
	if opts.ClientName == "" {
		opts.ClientName = "mcp-toolset"
	}
	if opts.ClientVersion == "" {
		opts.ClientVersion = "1.0.0"
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return opts
}
