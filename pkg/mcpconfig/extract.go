package mcpconfig

// Recognized server-group keys, in priority order.
const (
	primaryGroupKey   = "mcpServers"
	alternateGroupKey = "servers"
)

// metaKeys are top-level fields that never denote a server in the flattened
// configuration shape.
var metaKeys = map[string]struct{}{
	"$schema": {},
	"version": {},
	"inputs":  {},
	"env":     {},
}

// ExtractServers reduces a parsed configuration document to a mapping of
// server name to raw server definition. Three shapes are accepted:
//
//   - {"mcpServers": {name: {...}, ...}}
//   - {"servers": {name: {...}, ...}}
//   - a flattened root map whose every non-meta value is an object carrying
//     a command, url, or type field
//
// A document matching none of the shapes yields an empty mapping.
func ExtractServers(doc any) map[string]any {
	root, ok := doc.(map[string]any)
	if !ok {
		return map[string]any{}
	}

	if group, ok := root[primaryGroupKey].(map[string]any); ok {
		return group
	}
	if group, ok := root[alternateGroupKey].(map[string]any); ok {
		return group
	}

	candidates := make(map[string]any, len(root))
	for name, value := range root {
		if _, reserved := metaKeys[name]; reserved {
			continue
		}
		candidates[name] = value
	}
	if len(candidates) == 0 {
		return map[string]any{}
	}
	for _, value := range candidates {
		entry, ok := value.(map[string]any)
		if !ok || !looksLikeServer(entry) {
			return map[string]any{}
		}
	}
	return candidates
}

func looksLikeServer(entry map[string]any) bool {
	for _, key := range []string{"command", "url", "type"} {
		if _, ok := entry[key]; ok {
			return true
		}
	}
	return false
}
