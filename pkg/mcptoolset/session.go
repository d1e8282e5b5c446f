package mcptoolset

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// serverConn owns the live protocol session for exactly one server. Tools
// hold a non-owning reference to it; the enclosing Toolset controls its
// lifetime.
type serverConn struct {
	name    string
	session *mcp.ClientSession
}

// connect opens the transport, performs the initialize handshake, and lists
// the server's tools. If listing fails after the session opened, the session
// is closed before returning so the caller never tracks a half-built
// connection.
func connect(ctx context.Context, name string, transport mcp.Transport, opts Options) (*serverConn, []*mcp.Tool, error) {
	client := mcp.NewClient(&mcp.Implementation{
		Name:    opts.ClientName,
		Version: opts.ClientVersion,
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}

	listed, err := session.ListTools(ctx, nil)
	if err != nil {
		_ = session.Close()
		return nil, nil, fmt.Errorf("list tools: %w", err)
	}
	var tools []*mcp.Tool
	if listed != nil {
		tools = listed.Tools
	}
	return &serverConn{name: name, session: session}, tools, nil
}

func (c *serverConn) callTool(ctx context.Context, name string, args map[string]any, timeout time.Duration) (*mcp.CallToolResult, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return c.session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
}

func (c *serverConn) close() error {
	return c.session.Close()
}
