// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package snapd

import (
	"io"
	"net"
	"net/http"
	"path/filepath"
	"sync"
	"testing"

	"snapcli/cli/internal/auth"
	"snapcli/cli/internal/rest"

	"github.com/stretchr/testify/require"
)

var testCred = auth.Credential{Email: "me@example.com", Macaroon: "MDAxY2xvY2F0aW9u"}

type call struct {
	method string
	path   string
	auth   string
	body   string
}

// fakeDaemon answers every request with the same status and body and
// records what it received.
type fakeDaemon struct {
	mu     sync.Mutex
	calls  []call
	status int
	reply  string
}

func newFakeDaemon(t *testing.T, status int, reply string) (*Client, *fakeDaemon) {
	t.Helper()
	f := &fakeDaemon{status: status, reply: reply}

	socketPath := filepath.Join(t.TempDir(), "snapd.socket")
	listener, err := net.Listen("unix", socketPath)
	require.NoError(t, err)

	server := &http.Server{Handler: f}
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(func() { _ = server.Close() })

	return New(rest.New(socketPath, nil)), f
}

func (f *fakeDaemon) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.calls = append(f.calls, call{
		method: r.Method,
		path:   r.URL.Path,
		auth:   r.Header.Get("Authorization"),
		body:   string(b),
	})
	status, reply := f.status, f.reply
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, reply)
}

func (f *fakeDaemon) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeDaemon) last(t *testing.T) call {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.calls, "daemon received no request")
	return f.calls[len(f.calls)-1]
}
