// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"snapcli/cli/internal/config"
	"snapcli/cli/internal/output"

	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the snapcli config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := initConfig(configForce)
		if err != nil {
			return err
		}
		fmt.Printf("✅ Wrote %s\n", p)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings after env and flag overrides",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return render(configView(cfg))
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
}

// initConfig writes config.Default to the config path. An existing file is
// kept unless force is set.
func initConfig(force bool) (string, error) {
	p, err := config.Path()
	if err != nil {
		return "", err
	}
	if !force {
		if _, err := os.Stat(p); err == nil {
			return p, fmt.Errorf("%s already exists; use --force to overwrite", p)
		} else if !errors.Is(err, os.ErrNotExist) {
			return p, err
		}
	}
	return p, config.Save(config.Default())
}

// settings renders a Config as a field/value table while keeping the file's
// JSON keys for json and yaml output.
type settings struct {
	config.Config
}

func configView(c config.Config) settings { return settings{c} }

func (s settings) Table() output.Table {
	return output.Table{
		Header: []string{"Setting", "Value"},
		Rows: [][]string{
			{"socket_path", orDefault(s.SocketPath, "/run/snapd.socket")},
			{"auth_file", orDefault(s.AuthFile, "~/.snap/auth.json")},
			{"credential_source", s.CredentialSource},
			{"log_level", s.LogLevel},
			{"output", s.Output},
			{"concurrency", strconv.Itoa(s.Concurrency)},
		},
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def + " (default)"
	}
	return v
}
