// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"

	"snapcli/cli/internal/snapd"

	"github.com/spf13/cobra"
)

var (
	// Version holds the CLI version information.
	// This value is typically set at build time using -ldflags.
	Version = "0.0.0-dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show CLI and snapd version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printVersion(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// printVersion prints the CLI version and the version of the snapd snap, or
// of core on systems where snapd is not a separate snap.
func printVersion(ctx context.Context) error {
	fmt.Printf("snapcli %s\n", Version)

	client := newClient()
	for _, name := range []string{"snapd", "core"} {
		raw, err := client.Info(ctx, name)
		if err != nil {
			continue
		}
		if s, err := snapd.DecodeSnap(raw); err == nil {
			fmt.Printf("%s   %s\n", name, s.Version)
			return nil
		}
	}
	fmt.Println("snapd   unavailable")
	return nil
}
