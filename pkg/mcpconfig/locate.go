package mcpconfig

import (
	"os"
	"path/filepath"
)

// FileName is the fixed configuration file name discovered by Locate.
const FileName = ".mcp.json"

// Locate searches startDir and each of its ancestors, nearest first, for
// FileName and returns the first match. The search order is strictly the
// path from startDir to the filesystem root.
func Locate(startDir string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
