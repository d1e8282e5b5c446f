package mcptoolset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FormatResult converts one remote call outcome into a single text string.
//
// A structured payload wins outright and is rendered as two-space-indented
// JSON with HTML escaping disabled. Otherwise the text of every text block
// is collected, non-text blocks fall back to their JSON serialization, and
// the non-empty parts are joined with newlines. An outcome carrying neither
// payload kind yields the empty string.
func FormatResult(res *mcp.CallToolResult) string {
	if res == nil {
		return ""
	}
	if res.StructuredContent != nil {
		return jsonText(res.StructuredContent, true)
	}
	parts := make([]string, 0, len(res.Content))
	for _, block := range res.Content {
		if text := contentText(block); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

// contentText renders one content block. Text blocks contribute their text
// verbatim; every other block kind contributes its JSON form.
func contentText(block mcp.Content) string {
	switch typed := block.(type) {
	case nil:
		return ""
	case *mcp.TextContent:
		return typed.Text
	default:
		return jsonText(block, false)
	}
}

func jsonText(v any, indent bool) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
