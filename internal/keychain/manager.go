// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for snapcli.
// It keeps an imported snapd credential in the OS credential store so that
// authorized commands can run without reading ~/.snap/auth.json each time.
//
// On Linux the Secret Service, KWallet, kernel keyctl and pass backends are tried
// in that order. An encrypted file backend is used only when
// SNAPCLI_KEYRING_PASSWORD is set.
package keychain

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"snapcli/cli/internal/xdg"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "snapcli"

// KeyCredential is the key used for storing the serialized snapd credential.
const KeyCredential = "snapd_credential"

// ErrNotFound is returned when no credential has been stored.
var ErrNotFound = errors.New("no credential stored")

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// NewManagerWithRing wraps an already opened keyring.
func NewManagerWithRing(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		return nil, globalError
	}

	return globalManager, nil
}

// openRing opens the OS keyring using the desktop backends available on Linux.
func openRing() (keyring.Keyring, error) {
	allowedBackends := []keyring.BackendType{
		keyring.SecretServiceBackend,
		keyring.KWalletBackend,
		keyring.KeyCtlBackend,
		keyring.PassBackend,
	}

	cfg := keyring.Config{
		ServiceName:             ServiceName,
		AllowedBackends:         allowedBackends,
		KeyCtlScope:             "user",
		KWalletAppID:            ServiceName,
		KWalletFolder:           ServiceName,
		LibSecretCollectionName: "login",
		PassPrefix:              ServiceName,
	}

	if password := os.Getenv("SNAPCLI_KEYRING_PASSWORD"); password != "" {
		cfg.AllowedBackends = append(cfg.AllowedBackends, keyring.FileBackend)
		cfg.FilePasswordFunc = keyring.FixedStringPrompt(password)
		if dir, err := xdg.DataDir(); err == nil {
			cfg.FileDir = filepath.Join(dir, "keyring")
		}
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, errors.New("no secure storage available; install a Secret Service provider or set SNAPCLI_KEYRING_PASSWORD")
	}
	return ring, nil
}

// SaveCredential stores the serialized credential in the keychain.
// This method is thread-safe.
func (m *Manager) SaveCredential(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ring.Set(keyring.Item{
		Key:         KeyCredential,
		Data:        data,
		Label:       "snapd credential",
		Description: "macaroon used to authorize snapd requests",
	})
}

// LoadCredential retrieves the serialized credential from the keychain.
// This method is thread-safe.
func (m *Manager) LoadCredential() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(KeyCredential)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(it.Data) == 0 {
		return nil, ErrNotFound
	}
	return it.Data, nil
}

// ClearCredential removes the stored credential. A missing entry is not an error.
// This method is thread-safe.
func (m *Manager) ClearCredential() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Remove(KeyCredential); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}
