package mcptoolset

import (
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestFormatResultStructuredContent(t *testing.T) {
	t.Parallel()

	res := &mcp.CallToolResult{StructuredContent: map[string]any{"a": 1}}
	expected := "{\n  \"a\": 1\n}"
	if got := FormatResult(res); got != expected {
		t.Fatalf("FormatResult = %q, expected %q", got, expected)
	}
}

func TestFormatResultStructuredContentWinsOverBlocks(t *testing.T) {
	t.Parallel()

	res := &mcp.CallToolResult{
		StructuredContent: map[string]any{"a": 1},
		Content:           []mcp.Content{&mcp.TextContent{Text: "ignored"}},
	}
	if got := FormatResult(res); strings.Contains(got, "ignored") {
		t.Fatalf("structured content should take precedence, got %q", got)
	}
}

func TestFormatResultStructuredContentKeepsRawCharacters(t *testing.T) {
	t.Parallel()

	res := &mcp.CallToolResult{StructuredContent: map[string]any{"note": "a<b & ünïcode"}}
	got := FormatResult(res)
	if !strings.Contains(got, "a<b & ünïcode") {
		t.Fatalf("expected unescaped text, got %q", got)
	}
}

func TestFormatResultJoinsTextBlocks(t *testing.T) {
	t.Parallel()

	res := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "first"},
			&mcp.TextContent{Text: ""},
			&mcp.TextContent{Text: "second"},
		},
	}
	if got := FormatResult(res); got != "first\nsecond" {
		t.Fatalf("FormatResult = %q, expected %q", got, "first\nsecond")
	}
}

func TestFormatResultSingleTextBlock(t *testing.T) {
	t.Parallel()

	res := &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: "ok"}}}
	if got := FormatResult(res); got != "ok" {
		t.Fatalf("FormatResult = %q, expected %q", got, "ok")
	}
}

func TestFormatResultNonTextBlockFallsBackToJSON(t *testing.T) {
	t.Parallel()

	res := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "caption"},
			&mcp.ImageContent{Data: []byte{0x1}, MIMEType: "image/png"},
		},
	}
	got := FormatResult(res)
	if !strings.HasPrefix(got, "caption\n") {
		t.Fatalf("expected text block first, got %q", got)
	}
	if !strings.Contains(got, "image") {
		t.Fatalf("expected JSON fallback for image block, got %q", got)
	}
}

func TestFormatResultEmptyOutcome(t *testing.T) {
	t.Parallel()

	if got := FormatResult(nil); got != "" {
		t.Fatalf("FormatResult(nil) = %q", got)
	}
	if got := FormatResult(&mcp.CallToolResult{}); got != "" {
		t.Fatalf("FormatResult(empty) = %q", got)
	}
}
