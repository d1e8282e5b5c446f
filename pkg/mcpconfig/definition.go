package mcpconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Transport identifies the connection binding derived from a ServerDefinition.
type Transport string

const (
	TransportStdio   Transport = "stdio"
	TransportHTTP    Transport = "http"
	TransportSSE     Transport = "sse"
	TransportUnknown Transport = ""
)

// ServerDefinition is one named configuration entry describing how to reach
// a single MCP server. Stdio servers set Command (plus optional Args and
// Env); HTTP and SSE servers set URL (plus optional Type and Headers).
// Definitions are immutable once decoded.
type ServerDefinition struct {
	Command string
	Args    []string
	Env     map[string]string
	URL     string
	Type    string
	Headers map[string]string

	// commandPresent records that the entry carried a "command" key, even
	// an empty one. An empty-but-present command still claims the stdio
	// binding and fails command resolution instead of falling back to URL.
	commandPresent bool
}

// DecodeDefinition validates a raw configuration value and decodes it into
// a ServerDefinition. Wrong field types are reported per field so the error
// names the offending key.
func DecodeDefinition(raw any) (*ServerDefinition, error) {
	entry, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("mcpconfig: server config must be an object")
	}

	def := &ServerDefinition{}
	var err error
	if def.Command, err = optionalString(entry, "command"); err != nil {
		return nil, err
	}
	_, def.commandPresent = entry["command"]
	if def.Args, err = optionalStringSlice(entry, "args"); err != nil {
		return nil, err
	}
	if def.Env, err = optionalStringMap(entry, "env"); err != nil {
		return nil, err
	}
	if def.URL, err = optionalString(entry, "url"); err != nil {
		return nil, err
	}
	if def.Type, err = optionalString(entry, "type"); err != nil {
		return nil, err
	}
	if def.Headers, err = optionalStringMap(entry, "headers"); err != nil {
		return nil, err
	}
	return def, nil
}

// Transport reports which connection binding the definition opens. A
// command key wins over URL when both are present, matching the
// configuration contract.
func (d *ServerDefinition) Transport() Transport {
	switch {
	case d.Command != "" || d.commandPresent:
		return TransportStdio
	case d.URL != "":
		if strings.EqualFold(d.Type, "sse") {
			return TransportSSE
		}
		return TransportHTTP
	default:
		return TransportUnknown
	}
}

// ResolveCommand normalizes the stdio command and argument list. An explicit
// args list is used as given. A lone command containing whitespace is
// shell-lexed, with the first word becoming the executable and the rest the
// arguments.
func (d *ServerDefinition) ResolveCommand() (string, []string, error) {
	if d.Command == "" {
		return "", nil, fmt.Errorf("mcpconfig: missing command for stdio server")
	}
	if len(d.Args) > 0 {
		return d.Command, d.Args, nil
	}
	if strings.ContainsAny(d.Command, " \t\r\n") {
		words, err := shellquote.Split(d.Command)
		if err != nil {
			return "", nil, fmt.Errorf("mcpconfig: invalid command %q: %w", d.Command, err)
		}
		if len(words) > 0 {
			return words[0], words[1:], nil
		}
	}
	return d.Command, nil, nil
}

func optionalString(entry map[string]any, key string) (string, error) {
	value, ok := entry[key]
	if !ok || value == nil {
		return "", nil
	}
	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("mcpconfig: %s must be a string", key)
	}
	return text, nil
}

func optionalStringSlice(entry map[string]any, key string) ([]string, error) {
	value, ok := entry[key]
	if !ok || value == nil {
		return nil, nil
	}
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("mcpconfig: %s must be an array of strings", key)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		text, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("mcpconfig: %s[%d] must be a string", key, i)
		}
		out = append(out, text)
	}
	return out, nil
}

func optionalStringMap(entry map[string]any, key string) (map[string]string, error) {
	value, ok := entry[key]
	if !ok || value == nil {
		return nil, nil
	}
	items, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("mcpconfig: %s must be an object", key)
	}
	out := make(map[string]string, len(items))
	for k, v := range items {
		text, ok := scalarString(v)
		if !ok {
			return nil, fmt.Errorf("mcpconfig: %s.%s must be a string", key, k)
		}
		out[k] = text
	}
	return out, nil
}

func scalarString(v any) (string, bool) {
	switch typed := v.(type) {
	case string:
		return typed, true
	case bool:
		return strconv.FormatBool(typed), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	default:
		return "", false
	}
}
