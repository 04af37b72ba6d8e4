// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package keychain

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/require"
)

func TestCredentialLifecycle(t *testing.T) {
	m := NewManagerWithRing(keyring.NewArrayKeyring(nil))

	_, err := m.LoadCredential()
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.SaveCredential([]byte(`{"email":"a@b.c","macaroon":"m"}`)))

	data, err := m.LoadCredential()
	require.NoError(t, err)
	require.JSONEq(t, `{"email":"a@b.c","macaroon":"m"}`, string(data))

	require.NoError(t, m.ClearCredential())
	_, err = m.LoadCredential()
	require.ErrorIs(t, err, ErrNotFound)

	// clearing twice is fine
	require.NoError(t, m.ClearCredential())
}

func TestLoadCredentialEmptyData(t *testing.T) {
	ring := keyring.NewArrayKeyring([]keyring.Item{{Key: KeyCredential}})
	m := NewManagerWithRing(ring)

	_, err := m.LoadCredential()
	require.ErrorIs(t, err, ErrNotFound)
}
