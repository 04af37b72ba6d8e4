// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
)

// Provider supplies the credential for a single authorized call.
// Providers are invoked once per operation and must not cache.
type Provider func(ctx context.Context) (Credential, error)

// Static returns a Provider that always yields c.
func Static(c Credential) Provider {
	return func(context.Context) (Credential, error) {
		return c, nil
	}
}

// FromFile returns a Provider that reads the auth file at path on every call.
// An empty path selects DefaultPath.
func FromFile(path string) Provider {
	return func(context.Context) (Credential, error) {
		return ReadAuth(path)
	}
}

// Store is the subset of the keychain manager the credential providers need.
type Store interface {
	LoadCredential() ([]byte, error)
	SaveCredential(data []byte) error
	ClearCredential() error
}

// FromKeychain returns a Provider that loads the credential saved in store.
func FromKeychain(store Store) Provider {
	return func(context.Context) (Credential, error) {
		return Load(store)
	}
}

// Or returns a Provider that yields c when it is valid and falls back to p otherwise.
func Or(c Credential, p Provider) Provider {
	if c.Valid() {
		return Static(c)
	}
	return p
}
