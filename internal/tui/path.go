package tui

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

func canonicalize(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err == nil {
			path = abs
		}
	}
	return filepath.Clean(path)
}

// abbreviatePath shortens path for display by replacing the home directory
// with "~".
func abbreviatePath(path string) string {
	path = canonicalize(path)
	if path == "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	home = canonicalize(home)
	sep := string(filepath.Separator)
	if runtime.GOOS == "windows" {
		if strings.HasPrefix(strings.ToLower(path), strings.ToLower(home)+sep) {
			return "~" + path[len(home):]
		}
		if strings.EqualFold(path, home) {
			return "~"
		}
		return path
	}
	if strings.HasPrefix(path, home+sep) {
		return "~" + strings.TrimPrefix(path, home)
	}
	if path == home {
		return "~"
	}
	return path
}
