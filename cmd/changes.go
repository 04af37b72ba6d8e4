// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"snapcli/cli/internal/output"
	"snapcli/cli/internal/snapd"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var watchInterval time.Duration

var changesCmd = &cobra.Command{
	Use:   "changes [ID]",
	Short: "List recent changes, or the tasks of one change",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client := newClient()

		if len(args) == 0 {
			raw, err := client.Status(ctx, "")
			if err != nil {
				return report("listing changes", err)
			}
			changes, err := snapd.DecodeChanges(raw)
			if err != nil {
				return report("listing changes", err)
			}
			return render(output.Record{Raw: raw, View: output.Changes(changes)})
		}

		raw, err := client.Status(ctx, args[0])
		if err != nil {
			return report("reading change "+args[0], err)
		}
		change, err := snapd.DecodeChange(raw)
		if err != nil {
			return report("reading change "+args[0], err)
		}
		return render(output.Record{Raw: raw, View: output.TaskRows(change)})
	},
}

var abortCmd = &cobra.Command{
	Use:   "abort ID",
	Short: "Abort a pending change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := newClient().Abort(cmd.Context(), args[0], credentials())
		if err != nil {
			return report("aborting change "+args[0], err)
		}
		if cfg.Output != output.FormatTable {
			return render(output.Record{Raw: raw})
		}
		change, err := snapd.DecodeChange(raw)
		if err != nil {
			return report("aborting change "+args[0], err)
		}
		pterm.Printf("Change %s is now %s\n", change.ID, change.Status)
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch ID",
	Short: "Wait for a change to finish, showing its progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return watch(cmd.Context(), newClient(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(changesCmd, abortCmd, watchCmd)
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 500*time.Millisecond, "Polling interval")
}

// statusReader is the part of the client pollChange needs.
type statusReader interface {
	Status(ctx context.Context, id string) (json.RawMessage, error)
}

// pollChange calls Status every interval until the change is ready, the
// context ends or a call fails. update is called with every decoded state.
func pollChange(ctx context.Context, api statusReader, id string, interval time.Duration, update func(snapd.Change)) (snapd.Change, error) {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		raw, err := api.Status(ctx, id)
		if err != nil {
			return snapd.Change{}, err
		}
		change, err := snapd.DecodeChange(raw)
		if err != nil {
			return snapd.Change{}, err
		}
		if update != nil {
			update(change)
		}
		if change.Ready {
			return change, nil
		}

		select {
		case <-ctx.Done():
			return change, ctx.Err()
		case <-ticker.C:
		}
	}
}

// watch polls change id with a spinner and prints a summary box at the end.
func watch(ctx context.Context, client *snapd.Client, id string) error {
	start := time.Now()
	var spinner *pterm.SpinnerPrinter
	if cfg.Output == output.FormatTable {
		cursor.Hide()
		defer cursor.Show()
		spinner, _ = pterm.DefaultSpinner.WithRemoveWhenDone(true).Start("Waiting for change " + id)
	}

	change, err := pollChange(ctx, client, id, watchInterval, func(c snapd.Change) {
		if spinner != nil {
			spinner.UpdateText(progressLine(c))
		}
	})
	if spinner != nil {
		_ = spinner.Stop()
	}
	if err != nil {
		return report("watching change "+id, err)
	}

	if cfg.Output != output.FormatTable {
		return render(change)
	}
	notifyChange(change, time.Since(start))
	if change.Failed() {
		return reportedError{err: fmt.Errorf("change %s failed: %s", change.ID, change.Err)}
	}
	return nil
}

// progressLine describes the task currently running in c.
func progressLine(c snapd.Change) string {
	for _, t := range c.Tasks {
		if t.Status != "Doing" {
			continue
		}
		if t.Progress.Total > 1 {
			return fmt.Sprintf("%s (%d%%)", t.Summary, t.Progress.Done*100/t.Progress.Total)
		}
		return t.Summary
	}
	return c.Summary
}

func notifyChange(c snapd.Change, elapsed time.Duration) {
	details := fmt.Sprintf("%s\nDuration: %s\nStatus: %s", c.Summary, elapsed.Round(time.Millisecond), c.Status)
	if c.Failed() {
		if c.Err != "" {
			details += "\n\n" + c.Err
		}
		title := pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Change " + c.ID + " failed")
		pterm.Println(pterm.DefaultBox.WithTitle(title).WithTopPadding(1).WithBottomPadding(1).WithLeftPadding(1).WithRightPadding(1).Sprint(details))
		return
	}
	title := pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint("Change " + c.ID + " done")
	pterm.Println(pterm.DefaultBox.WithTitle(title).WithTopPadding(1).WithBottomPadding(1).WithLeftPadding(1).WithRightPadding(1).Sprint(details))
}
