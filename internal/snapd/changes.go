// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package snapd

import (
	"context"
	"encoding/json"

	"snapcli/cli/internal/auth"
)

// Status calls GET /v2/changes/{id}, or GET /v2/changes when id is empty.
// Polling until a change is ready is left to the caller.
func (c *Client) Status(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return c.get(ctx, "/v2/changes")
	}
	if err := checkName("id", id); err != nil {
		return nil, err
	}
	return c.get(ctx, "/v2/changes/"+id)
}

// Abort posts {"action":"abort"} to the change. The daemon refuses to abort
// changes that are already done; that surfaces as an UnexpectedStatus error.
func (c *Client) Abort(ctx context.Context, id string, creds auth.Provider) (json.RawMessage, error) {
	if err := checkName("id", id); err != nil {
		return nil, err
	}
	resp, err := c.post(ctx, "/v2/changes/"+id, map[string]string{"action": "abort"}, creds)
	if err != nil {
		return nil, err
	}
	return resp.ResultRaw(200)
}
