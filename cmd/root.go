// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for snapcli.
// It implements subcommands for managing snaps, changes, interfaces and
// store credentials on top of the snapd socket client, using the Cobra CLI
// framework and pterm for terminal output.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"snapcli/cli/internal/auth"
	"snapcli/cli/internal/config"
	snaperr "snapcli/cli/internal/errors"
	"snapcli/cli/internal/keychain"
	"snapcli/cli/internal/logging"
	"snapcli/cli/internal/rest"
	"snapcli/cli/internal/snapd"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	showVersion      bool
	socketPath       string
	authFile         string
	credentialSource string
	outputFormat     string
	verbose          bool

	// cfg is the effective configuration after flags are applied.
	cfg    config.Config
	logger *pterm.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "snapcli",
	Short:         "Manage snaps through the snapd socket",
	Long:          `snapcli talks to the local snap daemon over its Unix socket to list, install and configure snaps and their interface connections.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			return printVersion(cmd.Context())
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application with ctx as the root context.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var r reportedError
		if !errors.As(err, &r) {
			fmt.Fprintln(os.Stderr, logging.Mask(err.Error()))
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI and snapd version information")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&socketPath, "socket", "", "snapd socket path (default /run/snapd.socket)")
	pf.StringVar(&authFile, "auth-file", "", "credential file (default ~/.snap/auth.json)")
	pf.StringVar(&credentialSource, "credential-source", "", "where credentials are read from: file or keychain")
	pf.StringVarP(&outputFormat, "output", "o", "", "output format: table, json or yaml")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug output")
}

// setup loads the config file, applies environment and flag overrides and
// builds the logger shared by every subcommand.
func setup(cmd *cobra.Command) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("socket") {
		c.SocketPath = socketPath
	}
	if flags.Changed("auth-file") {
		c.AuthFile = authFile
	}
	if flags.Changed("credential-source") {
		c.CredentialSource = credentialSource
	}
	if flags.Changed("output") {
		c.Output = outputFormat
	}
	if verbose {
		c.LogLevel = "debug"
	}
	if err := c.Validate(); err != nil {
		return err
	}

	l, err := logging.New(c.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	logger.Debug("configuration loaded", logger.Args(
		"socket", cfg.SocketPath,
		"credential_source", cfg.CredentialSource,
		"output", cfg.Output,
	))
	return nil
}

// newClient returns a daemon client for the configured socket.
func newClient() *snapd.Client {
	return snapd.New(rest.New(cfg.SocketPath, logger))
}

// credentials returns the provider for the configured credential source.
// A macaroon in SNAPCLI_MACAROON takes precedence over either source. The
// keychain is opened lazily so that commands that never authorize do not
// touch it.
func credentials() auth.Provider {
	env := envCredential()
	if cfg.CredentialSource == config.SourceKeychain {
		return auth.Or(env, func(ctx context.Context) (auth.Credential, error) {
			km, err := keychain.GetManager()
			if err != nil {
				return auth.Credential{}, snaperr.Wrap(snaperr.CredentialRead, "open keychain", err)
			}
			return auth.FromKeychain(km)(ctx)
		})
	}
	return auth.Or(env, auth.FromFile(cfg.AuthFile))
}

// envCredential is the credential given through SNAPCLI_MACAROON and
// SNAPCLI_EMAIL. It is invalid when no macaroon is set.
func envCredential() auth.Credential {
	return auth.Credential{Email: os.Getenv(config.EnvEmail), Macaroon: os.Getenv(config.EnvMacaroon)}
}

// keychainInUse reports whether authorized calls read the keychain, that is
// the keychain is the configured source and no env credential overrides it.
func keychainInUse() bool {
	return cfg.CredentialSource == config.SourceKeychain && !envCredential().Valid()
}
