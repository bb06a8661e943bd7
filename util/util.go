// Package util provides utility functions for agentchat.
package util

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// AppName is the directory name used for agentchat data.
const AppName = "agentchat"

// DataDir returns the platform-appropriate directory for agentchat data.
// - macOS: ~/Library/Application Support/agentchat
// - Linux: ~/.local/share/agentchat (or $XDG_DATA_HOME/agentchat)
// - Windows: %APPDATA%\agentchat
func DataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(home, "Library", "Application Support", AppName)
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		baseDir = filepath.Join(appData, AppName)
	default: // Linux and others
		xdgData := os.Getenv("XDG_DATA_HOME")
		if xdgData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			xdgData = filepath.Join(home, ".local", "share")
		}
		baseDir = filepath.Join(xdgData, AppName)
	}

	return baseDir, nil
}

// DisplayPath shortens path for display by replacing the home directory with ~.
func DisplayPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	prefix := home + string(filepath.Separator)
	if strings.HasPrefix(path, prefix) {
		return "~" + string(filepath.Separator) + strings.TrimPrefix(path, prefix)
	}
	return path
}
