// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth provides the credential used to authorize snapd requests.
// A credential is an email plus the macaroon the daemon issued for it. It is
// loaded from the snap auth file, the OS keychain, or supplied by the caller,
// and every authorized operation receives it through an explicit Provider.
// Nothing in this package caches a credential between calls.
package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	snaperr "snapcli/cli/internal/errors"
)

// Credential is the email/macaroon pair sent with authorized requests.
type Credential struct {
	Email    string `json:"email"`
	Macaroon string `json:"macaroon"`
}

// Valid reports whether the credential carries a macaroon. Only valid
// credentials produce an Authorization header.
func (c Credential) Valid() bool {
	return c.Macaroon != ""
}

// Header returns the Authorization header value for the credential.
func (c Credential) Header() string {
	return fmt.Sprintf(`Macaroon root="%s"`, c.Macaroon)
}

// DefaultPath returns ~/.snap/auth.json for the current user.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", snaperr.Wrap(snaperr.CredentialRead, "resolve home directory", err)
	}
	return filepath.Join(home, ".snap", "auth.json"), nil
}

// ReadAuth reads the email and macaroon from the auth file at path.
// An empty path selects DefaultPath. The file is read on every call.
func ReadAuth(path string) (Credential, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Credential{}, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Credential{}, snaperr.Wrap(snaperr.CredentialRead, "read auth file "+path, err)
	}
	return Parse(data)
}

// Parse decodes a serialized credential. The document must be a JSON object
// whose macaroon field is a string; email is optional.
func Parse(data []byte) (Credential, error) {
	var raw struct {
		Email    any `json:"email"`
		Macaroon any `json:"macaroon"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Credential{}, snaperr.Wrap(snaperr.MalformedCredential, "decode auth file", err)
	}

	macaroon, ok := raw.Macaroon.(string)
	if !ok {
		return Credential{}, snaperr.New(snaperr.MalformedCredential, "failed to read macaroon from auth file")
	}
	email, _ := raw.Email.(string)
	return Credential{Email: email, Macaroon: macaroon}, nil
}

// Marshal serializes the credential in the auth file format.
func (c Credential) Marshal() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
