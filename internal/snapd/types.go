// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package snapd

import (
	"encoding/json"
	"time"

	snaperr "snapcli/cli/internal/errors"
)

// The operations return the daemon's records verbatim. The types below are
// read-only views over the fields the CLI renders; unknown fields are ignored.

// Publisher identifies who published a snap.
type Publisher struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display-name"`
	Validation  string `json:"validation"`
}

// Snap is an installed snap as reported by GET /v2/snaps/{name}.
type Snap struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Summary         string     `json:"summary"`
	Version         string     `json:"version"`
	Revision        string     `json:"revision"`
	Channel         string     `json:"channel"`
	TrackingChannel string     `json:"tracking-channel"`
	Developer       string     `json:"developer"`
	Publisher       *Publisher `json:"publisher,omitempty"`
	InstalledSize   int64      `json:"installed-size"`
	Status          string     `json:"status"`
	Confinement     string     `json:"confinement"`
	Type            string     `json:"type"`
	Devmode         bool       `json:"devmode"`
	Jailmode        bool       `json:"jailmode"`
	InstallDate     *time.Time `json:"install-date,omitempty"`
}

// TaskProgress is the progress of a single task.
type TaskProgress struct {
	Label string `json:"label"`
	Done  int    `json:"done"`
	Total int    `json:"total"`
}

// Task is one step of a change.
type Task struct {
	ID        string       `json:"id"`
	Kind      string       `json:"kind"`
	Summary   string       `json:"summary"`
	Status    string       `json:"status"`
	Progress  TaskProgress `json:"progress"`
	SpawnTime time.Time    `json:"spawn-time"`
	ReadyTime *time.Time   `json:"ready-time,omitempty"`
}

// Change is an asynchronous unit of work tracked by the daemon.
type Change struct {
	ID        string     `json:"id"`
	Kind      string     `json:"kind"`
	Summary   string     `json:"summary"`
	Status    string     `json:"status"`
	Ready     bool       `json:"ready"`
	Err       string     `json:"err,omitempty"`
	SpawnTime time.Time  `json:"spawn-time"`
	ReadyTime *time.Time `json:"ready-time,omitempty"`
	Tasks     []Task     `json:"tasks,omitempty"`
}

// Failed reports whether a ready change ended in error.
func (c Change) Failed() bool {
	return c.Ready && (c.Err != "" || c.Status == "Error")
}

// SlotInfo is a slot and the plugs connected to it.
type SlotInfo struct {
	Snap        string    `json:"snap"`
	Slot        string    `json:"slot"`
	Interface   string    `json:"interface"`
	Label       string    `json:"label,omitempty"`
	Connections []PlugRef `json:"connections,omitempty"`
}

// PlugInfo is a plug and the slots it is connected to.
type PlugInfo struct {
	Snap        string    `json:"snap"`
	Plug        string    `json:"plug"`
	Interface   string    `json:"interface"`
	Label       string    `json:"label,omitempty"`
	Connections []SlotRef `json:"connections,omitempty"`
}

// Interfaces is the result of GET /v2/interfaces.
type Interfaces struct {
	Slots []SlotInfo `json:"slots"`
	Plugs []PlugInfo `json:"plugs"`
}

func decode[T any](raw json.RawMessage, what string) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, snaperr.Wrap(snaperr.MalformedResponse, "malformed response: "+what, err)
	}
	return v, nil
}

// DecodeSnap decodes the result of Info.
func DecodeSnap(raw json.RawMessage) (Snap, error) { return decode[Snap](raw, "snap") }

// DecodeChange decodes the result of Status with an id, or of Abort.
func DecodeChange(raw json.RawMessage) (Change, error) { return decode[Change](raw, "change") }

// DecodeChanges decodes the result of Status without an id.
func DecodeChanges(raw json.RawMessage) ([]Change, error) { return decode[[]Change](raw, "changes") }

// DecodeInterfaces decodes the result of ListInterfaces.
func DecodeInterfaces(raw json.RawMessage) (Interfaces, error) {
	return decode[Interfaces](raw, "interfaces")
}
