// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth implements persistence for imported credentials.
//
// This file stores the serialized credential in the OS keychain via internal/keychain.
package auth

import (
	"fmt"
	"os"

	snaperr "snapcli/cli/internal/errors"
)

var verboseAuth = os.Getenv("SNAPCLI_VERBOSE") == "1"

// Load reads the credential from the keychain store.
func Load(store Store) (Credential, error) {
	if verboseAuth {
		fmt.Printf("[DEBUG] auth.Load: Loading credential from keychain\n")
	}

	data, err := store.LoadCredential()
	if err != nil {
		if verboseAuth {
			fmt.Printf("[DEBUG] auth.Load: LoadCredential failed: %v\n", err)
		}
		return Credential{}, snaperr.Wrap(snaperr.CredentialRead, "load credential from keychain", err)
	}

	if len(data) == 0 {
		return Credential{}, snaperr.New(snaperr.CredentialRead, "no credential stored in keychain")
	}

	c, err := Parse(data)
	if err != nil {
		if verboseAuth {
			fmt.Printf("[DEBUG] auth.Load: Parse failed: %v\n", err)
		}
		return Credential{}, err
	}

	if verboseAuth {
		fmt.Printf("[DEBUG] auth.Load: Success - Email: %s\n", c.Email)
	}
	return c, nil
}

// Save writes the credential to the keychain store.
func Save(store Store, c Credential) error {
	if !c.Valid() {
		return snaperr.New(snaperr.MalformedCredential, "credential has no macaroon")
	}

	b, err := c.Marshal()
	if err != nil {
		return err
	}

	if verboseAuth {
		fmt.Printf("[DEBUG] auth.Save: Saving credential for %s, length: %d\n", c.Email, len(b))
	}

	if err := store.SaveCredential(b); err != nil {
		if verboseAuth {
			fmt.Printf("[DEBUG] auth.Save: SaveCredential failed: %v\n", err)
		}
		return err
	}
	return nil
}

// Clear removes the credential from the keychain store.
func Clear(store Store) error {
	return store.ClearCredential()
}
