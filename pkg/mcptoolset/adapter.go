package mcptoolset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vikashloomba/mcp-toolset-go/pkg/mcpconfig"
)

// toolSeparator joins the owning server's name with the remote tool name,
// staying within the MCP spec's character guidance for tool names.
const toolSeparator = "__"

// genericFailureMessage is surfaced when a remote error outcome carries no
// usable text.
const genericFailureMessage = "MCP tool call failed"

// Tool wraps one discovered remote capability as a locally callable unit.
// Its lifetime is bounded by the Toolset that produced it; calling a tool
// after the Toolset is closed is the caller's error.
type Tool struct {
	// Name is the namespaced tool name, always serverName__toolName.
	Name string
	// Description is the remote description (or title) prefixed with the
	// owning server's bracketed tag.
	Description string
	// InputSchema describes the named arguments accepted by Call.
	InputSchema *jsonschema.Schema
	// Server and RemoteName identify the capability's origin.
	Server     string
	RemoteName string
	// Transport records which connection binding carries invocations.
	Transport mcpconfig.Transport

	conn        *serverConn
	callTimeout time.Duration
}

func newTool(conn *serverConn, remote *mcp.Tool, transport mcpconfig.Transport, callTimeout time.Duration) *Tool {
	tag := fmt.Sprintf("[MCP:%s]", conn.name)
	description := remote.Description
	if description == "" {
		description = remote.Title
	}
	if description != "" {
		description = tag + " " + description
	} else {
		description = tag
	}

	return &Tool{
		Name:        conn.name + toolSeparator + remote.Name,
		Description: description,
		InputSchema: toolSchema(remote.InputSchema),
		Server:      conn.name,
		RemoteName:  remote.Name,
		Transport:   transport,
		conn:        conn,
		callTimeout: callTimeout,
	}
}

// toolSchema normalizes the schema value listed by the remote side. Over a
// wire transport it arrives as the plain JSON decoding of the server's
// schema, so it is re-decoded into a typed descriptor; an in-process server
// may hand over a typed descriptor directly. A nil or undecodable value
// yields the empty-object default.
func toolSchema(raw any) *jsonschema.Schema {
	switch typed := raw.(type) {
	case nil:
	case *jsonschema.Schema:
		return typed
	default:
		if data, err := json.Marshal(raw); err == nil {
			schema := new(jsonschema.Schema)
			if json.Unmarshal(data, schema) == nil {
				return schema
			}
		}
	}
	return &jsonschema.Schema{Type: "object", Properties: map[string]*jsonschema.Schema{}}
}

// Call forwards the named arguments verbatim to the owning session using the
// tool's original (non-namespaced) name and returns the normalized text of
// the outcome. When the outcome carries the remote error flag, Call fails
// with the outcome's text as the message.
func (t *Tool) Call(ctx context.Context, args map[string]any) (string, error) {
	res, err := t.conn.callTool(ctx, t.RemoteName, args, t.callTimeout)
	if err != nil {
		return "", fmt.Errorf("mcptoolset: call %s: %w", t.Name, err)
	}
	text := FormatResult(res)
	if res != nil && res.IsError {
		if text == "" {
			text = genericFailureMessage
		}
		return "", errors.New(text)
	}
	return text, nil
}
