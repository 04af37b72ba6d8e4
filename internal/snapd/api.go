// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package snapd is the catalog of operations the CLI can run against the snap
// daemon. Each operation validates its arguments, builds one request through
// internal/rest, checks the status-code of the reply envelope and returns the
// payload the daemon produced. The daemon owns all state; nothing here is
// cached or retried.
package snapd

import (
	"context"
	"encoding/json"

	"snapcli/cli/internal/auth"
)

// API defines the daemon operations the CLI depends on.
// Implementations may call the real socket or provide mocks for tests.
type API interface {
	// ListSnaps returns the names of the installed snaps.
	ListSnaps(ctx context.Context) ([]string, error)
	// Info returns the daemon's record for an installed snap.
	Info(ctx context.Context, name string) (json.RawMessage, error)
	// Status returns one change when id is set, or every change otherwise.
	Status(ctx context.Context, id string) (json.RawMessage, error)
	// ListInterfaces returns the slot and plug bindings.
	ListInterfaces(ctx context.Context, creds auth.Provider) (json.RawMessage, error)

	Install(ctx context.Context, name string, opts Options, creds auth.Provider) (string, error)
	Remove(ctx context.Context, name string, opts Options, creds auth.Provider) (string, error)
	Refresh(ctx context.Context, name string, opts Options, creds auth.Provider) (string, error)
	Revert(ctx context.Context, name string, opts Options, creds auth.Provider) (string, error)
	Enable(ctx context.Context, name string, opts Options, creds auth.Provider) (string, error)
	Disable(ctx context.Context, name string, opts Options, creds auth.Provider) (string, error)
	Switch(ctx context.Context, name string, opts Options, creds auth.Provider) (string, error)

	// Abort asks the daemon to abort a change and returns the updated change.
	Abort(ctx context.Context, id string, creds auth.Provider) (json.RawMessage, error)

	Connect(ctx context.Context, slot SlotRef, plug PlugRef, creds auth.Provider) (string, error)
	Disconnect(ctx context.Context, slot SlotRef, plug PlugRef, creds auth.Provider) (string, error)

	// Login exchanges store credentials for a macaroon. The result is
	// informational; it does not establish a session.
	Login(ctx context.Context, req LoginRequest) (auth.Credential, error)
	// Logout asks the daemon to drop the credential's session.
	Logout(ctx context.Context, creds auth.Provider) (bool, error)
}

var _ API = (*Client)(nil)
