// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"

	"snapcli/cli/internal/output"
	"snapcli/cli/internal/snapd"

	"github.com/spf13/cobra"
)

var listDetails bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed snaps",
	Long: `The list command shows the names of installed snaps. With --details it
fetches every snap's record, a few at a time, and shows version, revision,
tracking channel, publisher and installed size.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client := newClient()

		names, err := withSpinner(ctx, "Listing snaps", client.ListSnaps)
		if err != nil {
			return report("listing snaps", err)
		}
		if !listDetails {
			return render(output.Names(names))
		}

		snaps, err := withSpinner(ctx, "Reading snap details", func(ctx context.Context) ([]snapd.Snap, error) {
			return snapd.FetchSnaps(ctx, client, names, cfg.Concurrency)
		})
		if err != nil {
			return report("reading snap details", err)
		}
		return render(output.Snaps(snaps))
	},
}

var infoCmd = &cobra.Command{
	Use:   "info NAME",
	Short: "Show details of an installed snap",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := newClient().Info(cmd.Context(), args[0])
		if err != nil {
			return report("reading "+args[0], err)
		}
		s, err := snapd.DecodeSnap(raw)
		if err != nil {
			return report("reading "+args[0], err)
		}
		return render(output.Record{Raw: raw, View: output.SnapDetail(s)})
	},
}

func init() {
	rootCmd.AddCommand(listCmd, infoCmd)
	listCmd.Flags().BoolVar(&listDetails, "details", false, "Fetch and show each snap's record")
}
