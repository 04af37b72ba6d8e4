// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"

	"snapcli/cli/internal/auth"
	"snapcli/cli/internal/snapd"

	"github.com/spf13/cobra"
)

// snapAction is the signature shared by the snap-modifying client methods.
type snapAction func(ctx context.Context, name string, opts snapd.Options, creds auth.Provider) (string, error)

// actionSpec describes one snap-modifying subcommand.
type actionSpec struct {
	use   string
	short string
	verb  string
	run   func(*snapd.Client) snapAction
}

var actionSpecs = []actionSpec{
	{use: "install", short: "Install a snap", verb: "installing", run: func(c *snapd.Client) snapAction { return c.Install }},
	{use: "remove", short: "Remove a snap", verb: "removing", run: func(c *snapd.Client) snapAction { return c.Remove }},
	{use: "refresh", short: "Refresh a snap to the latest revision of its channel", verb: "refreshing", run: func(c *snapd.Client) snapAction { return c.Refresh }},
	{use: "revert", short: "Revert a snap to its previous revision", verb: "reverting", run: func(c *snapd.Client) snapAction { return c.Revert }},
	{use: "enable", short: "Enable a disabled snap", verb: "enabling", run: func(c *snapd.Client) snapAction { return c.Enable }},
	{use: "disable", short: "Disable a snap", verb: "disabling", run: func(c *snapd.Client) snapAction { return c.Disable }},
	{use: "switch", short: "Switch the channel a snap tracks without refreshing it", verb: "switching", run: func(c *snapd.Client) snapAction { return c.Switch }},
}

// actionFlags holds the flag values of one subcommand.
type actionFlags struct {
	classic          bool
	devmode          bool
	ignoreValidation bool
	jailmode         bool
	channel          string
	version          string
	wait             bool
}

// options converts the flags to snapd.Options. Channel and version are only
// sent when the flag was given, even if empty.
func (f *actionFlags) options(cmd *cobra.Command) snapd.Options {
	opts := snapd.Options{
		Classic:          f.classic,
		Devmode:          f.devmode,
		IgnoreValidation: f.ignoreValidation,
		Jailmode:         f.jailmode,
	}
	if cmd.Flags().Changed("channel") {
		opts.Channel = snapd.String(f.channel)
	}
	if cmd.Flags().Changed("version") {
		opts.Version = snapd.String(f.version)
	}
	return opts
}

func newActionCmd(spec actionSpec) *cobra.Command {
	flags := &actionFlags{}
	cmd := &cobra.Command{
		Use:   spec.use + " NAME",
		Short: spec.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]
			client := newClient()

			id, err := spec.run(client)(ctx, name, flags.options(cmd), credentials())
			if err != nil {
				return report(spec.verb+" "+name, err)
			}
			if !flags.wait {
				fmt.Printf("Change %s started (%s %s)\n", id, spec.verb, name)
				return nil
			}
			return watch(ctx, client, id)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&flags.classic, "classic", false, "Put the snap in classic mode and disable security confinement")
	f.BoolVar(&flags.devmode, "devmode", false, "Put the snap in development mode")
	f.BoolVar(&flags.ignoreValidation, "ignore-validation", false, "Ignore validation by other snaps blocking the action")
	f.BoolVar(&flags.jailmode, "jailmode", false, "Put the snap in enforced confinement mode")
	f.StringVar(&flags.channel, "channel", "", "Use this channel")
	// the global --version flag only exists on the root command
	f.StringVar(&flags.version, "version", "", "Use this version")
	f.BoolVarP(&flags.wait, "wait", "w", false, "Wait for the change to finish")
	return cmd
}

func init() {
	for _, spec := range actionSpecs {
		rootCmd.AddCommand(newActionCmd(spec))
	}
}
