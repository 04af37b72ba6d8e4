// Package xdg resolves XDG Base Directory paths for snapcli.
//
// Falls back to the traditional ~/.config and ~/.local/share locations when
// the XDG variables are unset. Directories are created private (0700).
package xdg

import (
	"os"
	"path/filepath"
)

const appName = "snapcli"

// ConfigDir returns the XDG config directory for snapcli.
// It falls back to ~/.config/snapcli when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return appDir("XDG_CONFIG_HOME", ".config")
}

// DataDir returns the XDG data directory for snapcli, used by the file
// keyring backend. It falls back to ~/.local/share/snapcli.
func DataDir() (string, error) {
	return appDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

func appDir(env, fallback string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, fallback)
	}
	dir := filepath.Join(base, appName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
