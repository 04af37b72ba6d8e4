// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package snapd

import (
	"context"
	"encoding/json"
	"strings"

	"snapcli/cli/internal/auth"
	snaperr "snapcli/cli/internal/errors"
	"snapcli/cli/internal/rest"
)

// Client implements API over the daemon socket.
type Client struct {
	rest *rest.Client
}

// New creates a Client on top of the given transport.
func New(rc *rest.Client) *Client {
	return &Client{rest: rc}
}

// credential resolves the credential for one authorized call.
func credential(ctx context.Context, creds auth.Provider) (auth.Credential, error) {
	if creds == nil {
		return auth.Credential{}, snaperr.New(snaperr.InvalidArgument, "credential provider required")
	}
	return creds(ctx)
}

// get issues an unauthenticated GET and returns the result of a 200 envelope.
func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	resp, err := c.rest.Do(ctx, rest.Get(path))
	if err != nil {
		return nil, err
	}
	return resp.ResultRaw(200)
}

// post issues an authorized POST with body encoded as JSON.
func (c *Client) post(ctx context.Context, path string, body any, creds auth.Provider) (*rest.Response, error) {
	cred, err := credential(ctx, creds)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, snaperr.Wrap(snaperr.InvalidArgument, "encode request body", err)
	}
	return c.rest.Do(ctx, rest.Post(path, data).WithAuth(cred))
}

// checkName rejects names that cannot be placed in a target path.
func checkName(what, name string) error {
	if name == "" {
		return snaperr.Newf(snaperr.InvalidArgument, "malformed %s argument: empty", what)
	}
	if strings.ContainsAny(name, "/?#") {
		return snaperr.Newf(snaperr.InvalidArgument, "malformed %s argument: %q", what, name)
	}
	return nil
}
