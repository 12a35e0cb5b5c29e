// Package config holds the docfx2astro run options, their environment
// overrides, and the user configuration directory.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "docfx2astro"

// Dir returns the docfx2astro configuration directory.
//
// Resolution:
//   - $DOCFX2ASTRO_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/docfx2astro if set (respects XDG on any platform)
//   - %AppData%/docfx2astro on Windows
//   - ~/.config/docfx2astro on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	// macOS and Linux: ~/.config/docfx2astro
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}
