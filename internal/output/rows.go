// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package output

import (
	"fmt"
	"strings"

	"snapcli/cli/internal/snapd"

	"github.com/dustin/go-humanize"
)

// Snaps is a list of installed snaps.
type Snaps []snapd.Snap

func (s Snaps) Table() Table { return SnapRows(s) }

// Changes is a list of changes.
type Changes []snapd.Change

func (c Changes) Table() Table { return ChangeRows(c) }

// Interfaces is the daemon's slot and plug listing.
type Interfaces snapd.Interfaces

func (i Interfaces) Table() Table { return InterfaceRows(snapd.Interfaces(i)) }

// Names is a plain list of snap names.
type Names []string

func (n Names) Table() Table {
	t := Table{Header: []string{"Name"}}
	for _, name := range n {
		t.Rows = append(t.Rows, []string{name})
	}
	return t
}

// SnapRows lists snaps one per row.
func SnapRows(snaps []snapd.Snap) Table {
	t := Table{Header: []string{"Name", "Version", "Rev", "Tracking", "Publisher", "Size", "Notes"}}
	for _, s := range snaps {
		t.Rows = append(t.Rows, []string{
			s.Name,
			s.Version,
			s.Revision,
			tracking(s),
			publisher(s),
			size(s.InstalledSize),
			notes(s),
		})
	}
	return t
}

// SnapDetail shows one snap as field/value pairs.
func SnapDetail(s snapd.Snap) Table {
	t := Table{Header: []string{"Field", "Value"}}
	add := func(k, v string) {
		if v != "" {
			t.Rows = append(t.Rows, []string{k, v})
		}
	}
	add("name", s.Name)
	add("summary", s.Summary)
	add("publisher", publisher(s))
	add("version", s.Version)
	add("revision", s.Revision)
	add("tracking", tracking(s))
	add("confinement", s.Confinement)
	add("type", s.Type)
	add("status", s.Status)
	add("installed", size(s.InstalledSize))
	if s.InstallDate != nil {
		add("install-date", s.InstallDate.Format("2006-01-02"))
	}
	return t
}

// ChangeRows lists changes one per row.
func ChangeRows(changes []snapd.Change) Table {
	t := Table{Header: []string{"ID", "Status", "Spawn", "Ready", "Summary"}}
	for _, c := range changes {
		ready := ""
		if c.ReadyTime != nil {
			ready = humanize.Time(*c.ReadyTime)
		}
		t.Rows = append(t.Rows, []string{c.ID, c.Status, humanize.Time(c.SpawnTime), ready, c.Summary})
	}
	return t
}

// TaskRows lists the tasks of one change with their progress.
func TaskRows(c snapd.Change) Table {
	t := Table{Header: []string{"Status", "Progress", "Summary"}}
	for _, task := range c.Tasks {
		t.Rows = append(t.Rows, []string{task.Status, progress(task.Progress), task.Summary})
	}
	return t
}

// InterfaceRows lists every slot with its connected plugs, followed by plugs
// that are not connected anywhere.
func InterfaceRows(ifaces snapd.Interfaces) Table {
	t := Table{Header: []string{"Slot", "Plug"}}
	for _, slot := range ifaces.Slots {
		plugs := make([]string, 0, len(slot.Connections))
		for _, p := range slot.Connections {
			plugs = append(plugs, p.Snap+":"+p.Plug)
		}
		plug := "-"
		if len(plugs) > 0 {
			plug = strings.Join(plugs, ",")
		}
		t.Rows = append(t.Rows, []string{slotName(slot), plug})
	}
	for _, plug := range ifaces.Plugs {
		if len(plug.Connections) == 0 {
			t.Rows = append(t.Rows, []string{"-", plug.Snap + ":" + plug.Plug})
		}
	}
	return t
}

func slotName(s snapd.SlotInfo) string {
	// core slots are shown without the snap name
	if s.Snap == "core" || s.Snap == "snapd" || s.Snap == "system" {
		return ":" + s.Slot
	}
	return s.Snap + ":" + s.Slot
}

func tracking(s snapd.Snap) string {
	if s.TrackingChannel != "" {
		return s.TrackingChannel
	}
	if s.Channel != "" {
		return s.Channel
	}
	return "-"
}

func publisher(s snapd.Snap) string {
	if s.Publisher != nil {
		if s.Publisher.DisplayName != "" {
			return s.Publisher.DisplayName
		}
		return s.Publisher.Username
	}
	if s.Developer != "" {
		return s.Developer
	}
	return "-"
}

func size(n int64) string {
	if n <= 0 {
		return "-"
	}
	return humanize.Bytes(uint64(n))
}

func notes(s snapd.Snap) string {
	var n []string
	if s.Confinement != "" && s.Confinement != "strict" {
		n = append(n, s.Confinement)
	}
	if s.Devmode {
		n = append(n, "devmode")
	}
	if s.Jailmode {
		n = append(n, "jailmode")
	}
	if s.Status == "installed" {
		n = append(n, "disabled")
	}
	if len(n) == 0 {
		return "-"
	}
	return strings.Join(n, ",")
}

func progress(p snapd.TaskProgress) string {
	if p.Total <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d%%", p.Done*100/p.Total)
}
