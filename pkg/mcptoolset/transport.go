package mcptoolset

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vikashloomba/mcp-toolset-go/pkg/mcpconfig"
)

// buildTransport decides which connection binding a server definition opens
// and constructs it. baseDir becomes the working directory of stdio servers.
func buildTransport(def *mcpconfig.ServerDefinition, baseDir string) (mcp.Transport, error) {
	switch def.Transport() {
	case mcpconfig.TransportStdio:
		return buildStdioTransport(def, baseDir)
	case mcpconfig.TransportSSE:
		return &mcp.SSEClientTransport{
			Endpoint:   def.URL,
			HTTPClient: headerClient(def.Headers),
		}, nil
	case mcpconfig.TransportHTTP:
		// The Streamable transport negotiates its own session ID; nothing
		// in this layer consumes it.
		return &mcp.StreamableClientTransport{
			Endpoint:   def.URL,
			HTTPClient: headerClient(def.Headers),
		}, nil
	default:
		return nil, fmt.Errorf("mcptoolset: server must specify either command or url")
	}
}

func buildStdioTransport(def *mcpconfig.ServerDefinition, baseDir string) (mcp.Transport, error) {
	command, args, err := def.ResolveCommand()
	if err != nil {
		return nil, err
	}
	cmd := exec.Command(command, args...)
	cmd.Dir = baseDir
	if len(def.Env) > 0 {
		env := os.Environ()
		for k, v := range def.Env {
			env = append(env, fmt.Sprintf("%s=%s", k, v))
		}
		cmd.Env = env
	}
	return &mcp.CommandTransport{Command: cmd}, nil
}

// headerClient decorates the default HTTP client so every outbound request
// carries the configured headers. Returns nil when no headers are set,
// letting the SDK fall back to http.DefaultClient.
func headerClient(headers map[string]string) *http.Client {
	if len(headers) == 0 {
		return nil
	}
	clone := *http.DefaultClient
	clone.Transport = &headerDecorator{next: defaultRoundTripper(clone.Transport), headers: headers}
	return &clone
}

type headerDecorator struct {
	next    http.RoundTripper
	headers map[string]string
}

func (d *headerDecorator) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	for k, v := range d.headers {
		req.Header.Set(k, v)
	}
	return d.next.RoundTrip(req)
}

func defaultRoundTripper(next http.RoundTripper) http.RoundTripper {
	if next != nil {
		return next
	}
	return http.DefaultTransport
}
