// Package mcpconfig locates and normalizes the declarative .mcp.json file
// that names the MCP servers a session should connect to. Locate walks
// upward from a starting directory to the nearest configuration file, and
// ExtractServers reduces any of the three historically coexisting document
// shapes to one canonical name-to-definition mapping. Documents that match
// no recognized shape degrade to an empty mapping rather than an error;
// individual definitions are validated by DecodeDefinition at the point of
// use so one malformed entry never hides the rest.
package mcpconfig
