package mcpconfig

import (
	"reflect"
	"strings"
	"testing"
)

func TestDecodeDefinitionStdio(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"command": "npx",
		"args":    []any{"-y", "tavily-mcp"},
		"env":     map[string]any{"API_KEY": "secret", "RETRIES": float64(3), "DEBUG": true},
	}
	def, err := DecodeDefinition(raw)
	if err != nil {
		t.Fatalf("DecodeDefinition error: %v", err)
	}
	if def.Command != "npx" {
		t.Fatalf("command = %q", def.Command)
	}
	if !reflect.DeepEqual(def.Args, []string{"-y", "tavily-mcp"}) {
		t.Fatalf("args = %v", def.Args)
	}
	expectedEnv := map[string]string{"API_KEY": "secret", "RETRIES": "3", "DEBUG": "true"}
	if !reflect.DeepEqual(def.Env, expectedEnv) {
		t.Fatalf("env = %v, expected %v", def.Env, expectedEnv)
	}
	if def.Transport() != TransportStdio {
		t.Fatalf("transport = %q, expected stdio", def.Transport())
	}
}

func TestDecodeDefinitionRejectsWrongTypes(t *testing.T) {
	t.Parallel()

	cases := map[string]any{
		"not an object":       "npx",
		"command not string":  map[string]any{"command": 42},
		"args not array":      map[string]any{"command": "npx", "args": "-y"},
		"args mixed types":    map[string]any{"command": "npx", "args": []any{"-y", 1}},
		"env not object":      map[string]any{"command": "npx", "env": "PATH=x"},
		"env nested object":   map[string]any{"command": "npx", "env": map[string]any{"K": map[string]any{}}},
		"url not string":      map[string]any{"url": 7},
		"headers not object":  map[string]any{"url": "https://x", "headers": []any{}},
	}
	for name, raw := range cases {
		if _, err := DecodeDefinition(raw); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestTransportSelection(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		def      ServerDefinition
		expected Transport
	}{
		{"command wins", ServerDefinition{Command: "npx", URL: "https://x"}, TransportStdio},
		{"url defaults to http", ServerDefinition{URL: "https://x"}, TransportHTTP},
		{"explicit http", ServerDefinition{URL: "https://x", Type: "http"}, TransportHTTP},
		{"explicit sse", ServerDefinition{URL: "https://x", Type: "sse"}, TransportSSE},
		{"sse case-insensitive", ServerDefinition{URL: "https://x", Type: "SSE"}, TransportSSE},
		{"neither", ServerDefinition{}, TransportUnknown},
	}
	for _, tc := range cases {
		if got := tc.def.Transport(); got != tc.expected {
			t.Fatalf("%s: Transport() = %q, expected %q", tc.name, got, tc.expected)
		}
	}
}

func TestDecodeDefinitionEmptyCommandClaimsStdio(t *testing.T) {
	t.Parallel()

	// A present-but-empty command key still selects the stdio binding and
	// fails command resolution; it never falls back to the URL.
	def, err := DecodeDefinition(map[string]any{"command": "", "url": "https://example.com/mcp"})
	if err != nil {
		t.Fatalf("DecodeDefinition error: %v", err)
	}
	if def.Transport() != TransportStdio {
		t.Fatalf("transport = %q, expected stdio", def.Transport())
	}
	if _, _, err := def.ResolveCommand(); err == nil || !strings.Contains(err.Error(), "missing command") {
		t.Fatalf("expected missing command error, got %v", err)
	}
}

func TestResolveCommandShellLexesEmbeddedArgs(t *testing.T) {
	t.Parallel()

	def := ServerDefinition{Command: "npx -y mcp-remote https://example.com"}
	command, args, err := def.ResolveCommand()
	if err != nil {
		t.Fatalf("ResolveCommand error: %v", err)
	}
	if command != "npx" {
		t.Fatalf("command = %q, expected npx", command)
	}
	expected := []string{"-y", "mcp-remote", "https://example.com"}
	if !reflect.DeepEqual(args, expected) {
		t.Fatalf("args = %v, expected %v", args, expected)
	}
}

func TestResolveCommandKeepsExplicitArgs(t *testing.T) {
	t.Parallel()

	def := ServerDefinition{Command: "npx -y", Args: []string{"tavily-mcp"}}
	command, args, err := def.ResolveCommand()
	if err != nil {
		t.Fatalf("ResolveCommand error: %v", err)
	}
	// With explicit args the command is never re-split.
	if command != "npx -y" || !reflect.DeepEqual(args, []string{"tavily-mcp"}) {
		t.Fatalf("got %q %v", command, args)
	}
}

func TestResolveCommandHonorsQuoting(t *testing.T) {
	t.Parallel()

	def := ServerDefinition{Command: `run-server "two words"`}
	command, args, err := def.ResolveCommand()
	if err != nil {
		t.Fatalf("ResolveCommand error: %v", err)
	}
	if command != "run-server" || !reflect.DeepEqual(args, []string{"two words"}) {
		t.Fatalf("got %q %v", command, args)
	}
}

func TestResolveCommandBareExecutable(t *testing.T) {
	t.Parallel()

	def := ServerDefinition{Command: "./my-mcp-server"}
	command, args, err := def.ResolveCommand()
	if err != nil {
		t.Fatalf("ResolveCommand error: %v", err)
	}
	if command != "./my-mcp-server" || len(args) != 0 {
		t.Fatalf("got %q %v", command, args)
	}
}

func TestResolveCommandMissing(t *testing.T) {
	t.Parallel()

	def := ServerDefinition{}
	if _, _, err := def.ResolveCommand(); err == nil || !strings.Contains(err.Error(), "missing command") {
		t.Fatalf("expected missing command error, got %v", err)
	}
}
