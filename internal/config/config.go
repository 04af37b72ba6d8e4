// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; credentials live in the snap auth
// file or the OS keychain.
//
// The file is JSON with comments and trailing commas tolerated.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"snapcli/cli/internal/xdg"

	"github.com/tidwall/jsonc"
)

// Credential sources.
const (
	SourceFile     = "file"
	SourceKeychain = "keychain"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Environment overrides.
const (
	EnvSocket   = "SNAPCLI_SOCKET"
	EnvAuthFile = "SNAPCLI_AUTH_FILE"
	// EnvMacaroon and EnvEmail supply a credential directly, for CI.
	EnvMacaroon = "SNAPCLI_MACAROON"
	EnvEmail    = "SNAPCLI_EMAIL"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	// SocketPath is the daemon socket; empty means /run/snapd.socket.
	SocketPath string `json:"socket_path"`
	// AuthFile is the credential file; empty means ~/.snap/auth.json.
	AuthFile         string `json:"auth_file"`
	CredentialSource string `json:"credential_source"`
	LogLevel         string `json:"log_level"`
	Output           string `json:"output"`
	// Concurrency bounds parallel info calls in `list --details`.
	Concurrency int `json:"concurrency"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		CredentialSource: SourceFile,
		LogLevel:         "info",
		Output:           OutputTable,
		Concurrency:      4,
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file and applies environment overrides.
// A missing file yields defaults.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Default(), err
	}
	c, err := LoadFile(p)
	if err != nil {
		return c, err
	}
	c.ApplyEnv()
	return c, nil
}

// LoadFile reads configuration from p. Unset fields keep their defaults.
func LoadFile(p string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", p, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", p, err)
	}
	return c, nil
}

// ApplyEnv overrides file settings with SNAPCLI_SOCKET and SNAPCLI_AUTH_FILE.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvSocket); v != "" {
		c.SocketPath = v
	}
	if v := os.Getenv(EnvAuthFile); v != "" {
		c.AuthFile = v
	}
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch c.CredentialSource {
	case SourceFile, SourceKeychain:
	default:
		return fmt.Errorf("credential_source must be %q or %q, got %q", SourceFile, SourceKeychain, c.CredentialSource)
	}
	switch c.Output {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("output must be table, json or yaml, got %q", c.Output)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	return nil
}

// Save writes configuration with 0600 permissions. Path creates the config
// dir when it is missing.
func Save(c Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
