// Package mcptoolset discovers the MCP servers named in the nearest
// .mcp.json, connects to each over its declared transport (stdio subprocess,
// Streamable HTTP, or SSE), and republishes every remote tool as a locally
// invocable, schema-described unit. One discovery pass produces a Toolset
// whose tools stay callable until the Toolset is closed; closing releases
// every underlying session as one scope.
//
// Failures are isolated per server: an unreachable or misconfigured server
// contributes one entry to Toolset.Errors while discovery of the remaining
// servers continues. Tool names are always namespaced as
// serverName__toolName, so two servers exposing same-named tools never
// collide with each other or with locally built-in tools.
package mcptoolset
