// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package snapd

import (
	"context"
	"encoding/json"

	"snapcli/cli/internal/auth"
	snaperr "snapcli/cli/internal/errors"
	"snapcli/cli/internal/rest"
)

// LoginRequest is the body of POST /v2/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// OTP is the one-time passcode for accounts with two-factor auth.
	OTP string `json:"otp,omitempty"`
}

// Login posts store credentials and returns the email and macaroon the daemon
// answered with. Both login and logout need root on the daemon side.
//
// The returned credential is not persisted and does not log the caller in:
// the daemon hands back a macaroon without binding it to a session, so a later
// Logout with it is expected to fail.
func (c *Client) Login(ctx context.Context, req LoginRequest) (auth.Credential, error) {
	if req.Email == "" {
		return auth.Credential{}, snaperr.New(snaperr.InvalidArgument, "malformed email argument: empty")
	}
	data, err := json.Marshal(req)
	if err != nil {
		return auth.Credential{}, snaperr.Wrap(snaperr.InvalidArgument, "encode request body", err)
	}
	resp, err := c.rest.Do(ctx, rest.Post("/v2/login", data))
	if err != nil {
		return auth.Credential{}, err
	}

	var result struct {
		Email    string `json:"email"`
		Macaroon string `json:"macaroon"`
	}
	if err := resp.DecodeResult(200, &result); err != nil {
		return auth.Credential{}, err
	}
	if result.Macaroon == "" {
		return auth.Credential{}, snaperr.New(snaperr.MalformedResponse, "malformed response: missing macaroon")
	}
	return auth.Credential{Email: result.Email, Macaroon: result.Macaroon}, nil
}

// Logout posts to /v2/logout with the credential attached and reports true on
// a 200 envelope. The body is an empty JSON object.
func (c *Client) Logout(ctx context.Context, creds auth.Provider) (bool, error) {
	resp, err := c.post(ctx, "/v2/logout", struct{}{}, creds)
	if err != nil {
		return false, err
	}
	if err := resp.Expect(200); err != nil {
		return false, err
	}
	return true, nil
}
