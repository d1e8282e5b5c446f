package mcptoolset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vikashloomba/mcp-toolset-go/pkg/mcpconfig"
)

// Toolset is the aggregate outcome of one discovery pass. It owns every
// session opened on behalf of its tools; Close releases them all as one
// scope, after which no tool may be invoked.
type Toolset struct {
	tools      []*Tool
	byName     map[string]*Tool
	configPath string
	errs       []string

	conns     []*serverConn
	closeOnce sync.Once
	closeErr  error
}

// Open locates the nearest configuration file, connects to every configured
// server in lexicographic name order, and republishes each discovered tool
// as an invocable Tool. Per-server failures are collected in Errors and
// never abort discovery of the remaining servers; a missing configuration
// file yields an empty toolset with no errors. Open itself fails only when
// ctx is cancelled, in which case every session opened so far is closed.
func Open(ctx context.Context, startDir string, opts *Options) (*Toolset, error) {
	options := opts.withDefaults()
	ts := &Toolset{byName: make(map[string]*Tool)}

	configPath, ok := mcpconfig.Locate(startDir)
	if !ok {
		return ts, nil
	}
	ts.configPath = configPath

	raw, err := os.ReadFile(configPath)
	var doc any
	if err == nil {
		err = json.Unmarshal(raw, &doc)
	}
	if err != nil {
		ts.errs = append(ts.errs, fmt.Sprintf("failed to read %s: %v", configPath, err))
		return ts, nil
	}

	servers := mcpconfig.ExtractServers(doc)
	if len(servers) == 0 {
		ts.errs = append(ts.errs, fmt.Sprintf(
			"no MCP servers configured in %s: expected a top-level %q or %q object or a flattened server map",
			configPath, "mcpServers", "servers"))
		return ts, nil
	}

	names := make([]string, 0, len(servers))
	for name := range servers {
		names = append(names, name)
	}
	sort.Strings(names)

	baseDir, absErr := filepath.Abs(startDir)
	if absErr != nil {
		baseDir = startDir
	}

	for _, name := range names {
		if err := ts.connectServer(ctx, name, servers[name], baseDir, options); err != nil {
			if ctx.Err() != nil {
				return nil, errors.Join(ctx.Err(), ts.Close())
			}
			ts.errs = append(ts.errs, fmt.Sprintf("failed to connect MCP server %q: %v", name, err))
			options.Logger.Warn("mcp server connection failed", "server", name, "error", err)
		}
	}
	return ts, nil
}

// connectServer decodes one server definition, opens its transport, and
// registers the resulting session and tools. Any failure leaves the toolset
// exactly as it was, except that a session opened before the failure is
// already tracked for cleanup.
func (ts *Toolset) connectServer(ctx context.Context, name string, raw any, baseDir string, opts Options) error {
	def, err := mcpconfig.DecodeDefinition(raw)
	if err != nil {
		return err
	}

	var transport mcp.Transport
	if opts.DialTransport != nil {
		transport, err = opts.DialTransport(name, def)
	} else {
		transport, err = buildTransport(def, baseDir)
	}
	if err != nil {
		return err
	}

	conn, remoteTools, err := connect(ctx, name, transport, opts)
	if err != nil {
		return err
	}
	ts.conns = append(ts.conns, conn)

	kind := def.Transport()
	for _, remote := range remoteTools {
		if remote == nil {
			continue
		}
		tool := newTool(conn, remote, kind, opts.CallTimeout)
		ts.tools = append(ts.tools, tool)
		ts.byName[tool.Name] = tool
	}
	return nil
}

// Tools returns the discovered tools, ordered by server name and, within a
// server, by the order the remote side reported them.
func (ts *Toolset) Tools() []*Tool {
	return ts.tools
}

// Tool looks up a discovered tool by its namespaced name.
func (ts *Toolset) Tool(name string) (*Tool, bool) {
	tool, ok := ts.byName[name]
	return tool, ok
}

// ConfigPath returns the configuration file used for this pass, or "" when
// none was found.
func (ts *Toolset) ConfigPath() string {
	return ts.configPath
}

// Errors returns one human-readable message per server that failed to
// connect or was malformed, plus any aggregate-level configuration error.
// Servers that succeeded never appear here.
func (ts *Toolset) Errors() []string {
	return ts.errs
}

// Close releases every open session in reverse-acquisition order. It is
// safe to call more than once; later calls return the first result.
func (ts *Toolset) Close() error {
	ts.closeOnce.Do(func() {
		var errs []error
		for i := len(ts.conns) - 1; i >= 0; i-- {
			if err := ts.conns[i].close(); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", ts.conns[i].name, err))
			}
		}
		ts.closeErr = errors.Join(errs...)
	})
	return ts.closeErr
}
