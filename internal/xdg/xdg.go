// Package xdg resolves the handful of XDG base-directory paths jdb needs:
// the history file (XDG_CACHE_HOME), the log file (XDG_STATE_HOME), and the
// optional defaults file (XDG_CONFIG_HOME). An explicit override always
// wins, a leading "~/" is expanded against $HOME, and having neither the
// relevant env var nor $HOME set is a ConfigError.
package xdg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jdb-go/jdb/internal/jdberr"
)

// ResolvePath expands a leading "~/" against $HOME. Paths that don't start
// with "~/" are returned unchanged.
func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home := os.Getenv("HOME")
	if home == "" {
		return "", jdberr.NewConfigError("HOME is not set, cannot expand ~/", nil)
	}
	return filepath.Join(home, path[2:]), nil
}

// baseDir resolves one XDG base directory: the primary env var, falling
// back to $HOME/fallback, failing if neither is set.
func baseDir(primaryEnv, fallback string) (string, error) {
	if v := os.Getenv(primaryEnv); v != "" {
		return v, nil
	}
	home := os.Getenv("HOME")
	if home == "" {
		return "", jdberr.NewConfigError("neither "+primaryEnv+" nor HOME is set", nil)
	}
	return filepath.Join(home, fallback), nil
}

// CacheFile resolves "$XDG_CACHE_HOME/app/name" (fallback "$HOME/.cache").
func CacheFile(app, name string) (string, error) {
	dir, err := baseDir("XDG_CACHE_HOME", ".cache")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, app, name), nil
}

// StateFile resolves "$XDG_STATE_HOME/app/name" (fallback
// "$HOME/.local/state").
func StateFile(app, name string) (string, error) {
	dir, err := baseDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, app, name), nil
}

// ConfigFile resolves "$XDG_CONFIG_HOME/app/name" (fallback
// "$HOME/.config").
func ConfigFile(app, name string) (string, error) {
	dir, err := baseDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, app, name), nil
}
