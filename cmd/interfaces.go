// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"snapcli/cli/internal/output"
	"snapcli/cli/internal/snapd"

	"github.com/spf13/cobra"
)

// systemSnap stands in for an omitted snap name on the slot side.
const systemSnap = "core"

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List slots and the plugs connected to them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := newClient().ListInterfaces(cmd.Context(), credentials())
		if err != nil {
			return report("listing interfaces", err)
		}
		ifaces, err := snapd.DecodeInterfaces(raw)
		if err != nil {
			return report("listing interfaces", err)
		}
		return render(output.Record{Raw: raw, View: output.Interfaces(ifaces)})
	},
}

var connectCmd = &cobra.Command{
	Use:   "connect SNAP:PLUG [SNAP][:SLOT]",
	Short: "Connect a plug to a slot",
	Long: `The connect command connects a plug to a slot. When the slot side is
omitted the plug is connected to the system slot of the same name.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInterfaceAction(cmd, "connect", args)
	},
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect SNAP:PLUG [SNAP][:SLOT]",
	Short: "Disconnect a plug from a slot",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInterfaceAction(cmd, "disconnect", args)
	},
}

func init() {
	rootCmd.AddCommand(interfacesCmd, connectCmd, disconnectCmd)
}

func runInterfaceAction(cmd *cobra.Command, action string, args []string) error {
	plug, err := parsePlug(args[0])
	if err != nil {
		return err
	}
	slotArg := ""
	if len(args) > 1 {
		slotArg = args[1]
	}
	slot := parseSlot(slotArg, plug.Plug)

	client := newClient()
	call := client.Connect
	if action == "disconnect" {
		call = client.Disconnect
	}
	id, err := call(cmd.Context(), slot, plug, credentials())
	if err != nil {
		return report(fmt.Sprintf("%sing %s:%s", action, plug.Snap, plug.Plug), err)
	}
	fmt.Printf("Change %s started (%s %s:%s %s:%s)\n", id, action, plug.Snap, plug.Plug, slot.Snap, slot.Slot)
	return nil
}

// parsePlug parses SNAP:PLUG. Both parts are required.
func parsePlug(s string) (snapd.PlugRef, error) {
	snap, plug, ok := strings.Cut(s, ":")
	if !ok || snap == "" || plug == "" {
		return snapd.PlugRef{}, fmt.Errorf("plug must be given as SNAP:PLUG, got %q", s)
	}
	return snapd.PlugRef{Snap: snap, Plug: plug}, nil
}

// parseSlot parses SNAP, SNAP:SLOT or :SLOT. A missing snap means the system
// snap and a missing slot name defaults to the plug name.
func parseSlot(s, plugName string) snapd.SlotRef {
	snap, slot, _ := strings.Cut(s, ":")
	if snap == "" {
		snap = systemSnap
	}
	if slot == "" {
		slot = plugName
	}
	return snapd.SlotRef{Snap: snap, Slot: slot}
}
