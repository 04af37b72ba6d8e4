// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package snapd

import (
	"context"
	"encoding/json"

	"snapcli/cli/internal/auth"
	snaperr "snapcli/cli/internal/errors"
)

// Action names accepted by POST /v2/snaps/{name}.
const (
	ActionInstall = "install"
	ActionRemove  = "remove"
	ActionRefresh = "refresh"
	ActionRevert  = "revert"
	ActionEnable  = "enable"
	ActionDisable = "disable"
	ActionSwitch  = "switch"
)

// Options are the recognized modifiers of a snap action. Flags are sent only
// when true; Channel and Version only when set.
type Options struct {
	Classic          bool
	Devmode          bool
	IgnoreValidation bool
	Jailmode         bool
	Channel          *string
	Version          *string
}

// String returns a pointer to s, for Options.Channel and Options.Version.
func String(s string) *string {
	return &s
}

// snapAction is the wire body of a snap action. Field order is the order the
// keys appear on the wire.
type snapAction struct {
	Action           string  `json:"action"`
	Classic          bool    `json:"classic,omitempty"`
	Devmode          bool    `json:"devmode,omitempty"`
	IgnoreValidation bool    `json:"ignore-validation,omitempty"`
	Jailmode         bool    `json:"jailmode,omitempty"`
	Channel          *string `json:"channel,omitempty"`
	Version          *string `json:"version,omitempty"`
}

func newSnapAction(action string, opts Options) snapAction {
	return snapAction{
		Action:           action,
		Classic:          opts.Classic,
		Devmode:          opts.Devmode,
		IgnoreValidation: opts.IgnoreValidation,
		Jailmode:         opts.Jailmode,
		Channel:          opts.Channel,
		Version:          opts.Version,
	}
}

// ListSnaps calls GET /v2/snaps and returns the name of each installed snap.
func (c *Client) ListSnaps(ctx context.Context) ([]string, error) {
	raw, err := c.get(ctx, "/v2/snaps")
	if err != nil {
		return nil, err
	}
	var entries []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, snaperr.Wrap(snaperr.MalformedResponse, "malformed response: snap list", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names, nil
}

// Info calls GET /v2/snaps/{name}.
func (c *Client) Info(ctx context.Context, name string) (json.RawMessage, error) {
	if err := checkName("name", name); err != nil {
		return nil, err
	}
	return c.get(ctx, "/v2/snaps/"+name)
}

// modify posts a snap action and returns the id of the change it started.
func (c *Client) modify(ctx context.Context, action, name string, opts Options, creds auth.Provider) (string, error) {
	if err := checkName("name", name); err != nil {
		return "", err
	}
	resp, err := c.post(ctx, "/v2/snaps/"+name, newSnapAction(action, opts), creds)
	if err != nil {
		return "", err
	}
	return resp.ChangeID(202)
}

func (c *Client) Install(ctx context.Context, name string, opts Options, creds auth.Provider) (string, error) {
	return c.modify(ctx, ActionInstall, name, opts, creds)
}

func (c *Client) Remove(ctx context.Context, name string, opts Options, creds auth.Provider) (string, error) {
	return c.modify(ctx, ActionRemove, name, opts, creds)
}

func (c *Client) Refresh(ctx context.Context, name string, opts Options, creds auth.Provider) (string, error) {
	return c.modify(ctx, ActionRefresh, name, opts, creds)
}

func (c *Client) Revert(ctx context.Context, name string, opts Options, creds auth.Provider) (string, error) {
	return c.modify(ctx, ActionRevert, name, opts, creds)
}

func (c *Client) Enable(ctx context.Context, name string, opts Options, creds auth.Provider) (string, error) {
	return c.modify(ctx, ActionEnable, name, opts, creds)
}

func (c *Client) Disable(ctx context.Context, name string, opts Options, creds auth.Provider) (string, error) {
	return c.modify(ctx, ActionDisable, name, opts, creds)
}

// Switch changes the tracked channel without refreshing.
func (c *Client) Switch(ctx context.Context, name string, opts Options, creds auth.Provider) (string, error) {
	return c.modify(ctx, ActionSwitch, name, opts, creds)
}
