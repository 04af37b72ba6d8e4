// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package snapd

import (
	"context"
	"encoding/json"

	"snapcli/cli/internal/auth"
	"snapcli/cli/internal/rest"
)

// SlotRef names a slot on a snap.
type SlotRef struct {
	Snap string `json:"snap"`
	Slot string `json:"slot"`
}

// PlugRef names a plug on a snap.
type PlugRef struct {
	Snap string `json:"snap"`
	Plug string `json:"plug"`
}

// interfaceAction is the body of POST /v2/interfaces. The daemon accepts lists
// but this client always sends exactly one slot and one plug.
type interfaceAction struct {
	Action string    `json:"action"`
	Slots  []SlotRef `json:"slots"`
	Plugs  []PlugRef `json:"plugs"`
}

// ListInterfaces calls GET /v2/interfaces with the credential attached.
func (c *Client) ListInterfaces(ctx context.Context, creds auth.Provider) (json.RawMessage, error) {
	cred, err := credential(ctx, creds)
	if err != nil {
		return nil, err
	}
	resp, err := c.rest.Do(ctx, rest.Get("/v2/interfaces").WithAuth(cred))
	if err != nil {
		return nil, err
	}
	return resp.ResultRaw(200)
}

func (c *Client) modifyInterface(ctx context.Context, action string, slot SlotRef, plug PlugRef, creds auth.Provider) (string, error) {
	body := interfaceAction{
		Action: action,
		Slots:  []SlotRef{slot},
		Plugs:  []PlugRef{plug},
	}
	resp, err := c.post(ctx, "/v2/interfaces", body, creds)
	if err != nil {
		return "", err
	}
	return resp.ChangeID(202)
}

// Connect binds plug to slot.
func (c *Client) Connect(ctx context.Context, slot SlotRef, plug PlugRef, creds auth.Provider) (string, error) {
	return c.modifyInterface(ctx, "connect", slot, plug, creds)
}

// Disconnect removes the binding between plug and slot.
func (c *Client) Disconnect(ctx context.Context, slot SlotRef, plug PlugRef, creds auth.Provider) (string, error) {
	return c.modifyInterface(ctx, "disconnect", slot, plug, creds)
}
