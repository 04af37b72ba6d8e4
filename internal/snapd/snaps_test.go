// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package snapd

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"snapcli/cli/internal/auth"
	snaperr "snapcli/cli/internal/errors"

	"github.com/stretchr/testify/require"
)

func TestListSnaps(t *testing.T) {
	client, daemon := newFakeDaemon(t, http.StatusOK, `{"status-code":200,"result":[{"name":"core"},{"name":"vectr"}]}`)

	names, err := client.ListSnaps(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"core", "vectr"}, names)

	got := daemon.last(t)
	require.Equal(t, http.MethodGet, got.method)
	require.Equal(t, "/v2/snaps", got.path)
	require.Empty(t, got.auth)
}

func TestListSnapsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{name: "wrong status-code", reply: `{"status-code":202,"result":[]}`},
		{name: "missing result", reply: `{"status-code":200}`},
		{name: "result not a list", reply: `{"status-code":200,"result":{"name":"core"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newFakeDaemon(t, http.StatusOK, tt.reply)
			_, err := client.ListSnaps(context.Background())
			require.Equal(t, snaperr.MalformedResponse, snaperr.KindOf(err))
		})
	}
}

func TestInfo(t *testing.T) {
	client, daemon := newFakeDaemon(t, http.StatusOK, `{"status-code":200,"result":{"name":"core","version":"16-2.61","installed-size":110000000}}`)

	raw, err := client.Info(context.Background(), "core")
	require.NoError(t, err)
	require.Equal(t, "/v2/snaps/core", daemon.last(t).path)

	snap, err := DecodeSnap(raw)
	require.NoError(t, err)
	require.Equal(t, "core", snap.Name)
	require.Equal(t, "16-2.61", snap.Version)
	require.Equal(t, int64(110000000), snap.InstalledSize)
}

func TestInfoInvalidName(t *testing.T) {
	client, daemon := newFakeDaemon(t, http.StatusOK, `{"status-code":200,"result":{}}`)

	for _, name := range []string{"", "core/../x", "core?x=1"} {
		_, err := client.Info(context.Background(), name)
		require.Equal(t, snaperr.InvalidArgument, snaperr.KindOf(err), "name %q", name)
	}
	require.Zero(t, daemon.count())
}

func TestInstallBody(t *testing.T) {
	client, daemon := newFakeDaemon(t, http.StatusAccepted, `{"type":"async","status-code":202,"change":"123"}`)

	id, err := client.Install(context.Background(), "vectr", Options{Classic: true, Channel: String("stable")}, auth.Static(testCred))
	require.NoError(t, err)
	require.Equal(t, "123", id)

	got := daemon.last(t)
	require.Equal(t, http.MethodPost, got.method)
	require.Equal(t, "/v2/snaps/vectr", got.path)
	require.Equal(t, `{"action":"install","classic":true,"channel":"stable"}`, got.body)
	require.Equal(t, `Macaroon root="MDAxY2xvY2F0aW9u"`, got.auth)
}

func TestSnapActionBodies(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "no options",
			opts: Options{},
			want: `{"action":"install"}`,
		},
		{
			name: "false flags are dropped",
			opts: Options{Classic: false, Devmode: false},
			want: `{"action":"install"}`,
		},
		{
			name: "every option",
			opts: Options{Classic: true, Devmode: true, IgnoreValidation: true, Jailmode: true, Channel: String("edge"), Version: String("1.2")},
			want: `{"action":"install","classic":true,"devmode":true,"ignore-validation":true,"jailmode":true,"channel":"edge","version":"1.2"}`,
		},
		{
			name: "empty channel string is still sent",
			opts: Options{Channel: String("")},
			want: `{"action":"install","channel":""}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, daemon := newFakeDaemon(t, http.StatusAccepted, `{"status-code":202,"change":"1"}`)
			_, err := client.Install(context.Background(), "vectr", tt.opts, auth.Static(testCred))
			require.NoError(t, err)
			require.Equal(t, tt.want, daemon.last(t).body)
		})
	}
}

func TestSnapActions(t *testing.T) {
	type op func(*Client, context.Context, string, Options, auth.Provider) (string, error)
	tests := []struct {
		action string
		call   op
	}{
		{ActionInstall, (*Client).Install},
		{ActionRemove, (*Client).Remove},
		{ActionRefresh, (*Client).Refresh},
		{ActionRevert, (*Client).Revert},
		{ActionEnable, (*Client).Enable},
		{ActionDisable, (*Client).Disable},
		{ActionSwitch, (*Client).Switch},
	}
	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			client, daemon := newFakeDaemon(t, http.StatusAccepted, `{"status-code":202,"change":"9"}`)
			id, err := tt.call(client, context.Background(), "spotify", Options{}, auth.Static(testCred))
			require.NoError(t, err)
			require.Equal(t, "9", id)
			require.Equal(t, `{"action":"`+tt.action+`"}`, daemon.last(t).body)
		})
	}
}

func TestModifyMalformedResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
		reply  string
		kind   snaperr.Kind
	}{
		{name: "sync instead of async", status: http.StatusOK, reply: `{"status-code":200,"result":{}}`, kind: snaperr.MalformedResponse},
		{name: "missing change", status: http.StatusAccepted, reply: `{"status-code":202}`, kind: snaperr.MalformedResponse},
		{name: "daemon error", status: http.StatusBadRequest, reply: `{"type":"error","status-code":400,"result":{"message":"snap \"core\" is already installed","kind":"snap-already-installed"}}`, kind: snaperr.UnexpectedStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newFakeDaemon(t, tt.status, tt.reply)
			_, err := client.Install(context.Background(), "core", Options{}, auth.Static(testCred))
			require.Equal(t, tt.kind, snaperr.KindOf(err))
		})
	}
}

func TestModifyDaemonKindPassThrough(t *testing.T) {
	client, _ := newFakeDaemon(t, http.StatusBadRequest, `{"type":"error","status-code":400,"result":{"message":"already installed","kind":"snap-already-installed"}}`)
	_, err := client.Install(context.Background(), "spotify", Options{}, auth.Static(testCred))
	require.Equal(t, "snap-already-installed", snaperr.DaemonKindOf(err))
	require.Equal(t, 400, snaperr.StatusOf(err))
}

func TestModifyCredentialFailures(t *testing.T) {
	client, daemon := newFakeDaemon(t, http.StatusAccepted, `{"status-code":202,"change":"1"}`)

	failing := func(context.Context) (auth.Credential, error) {
		return auth.Credential{}, snaperr.Wrap(snaperr.CredentialRead, "read auth file", errors.New("permission denied"))
	}
	_, err := client.Remove(context.Background(), "vectr", Options{}, failing)
	require.True(t, snaperr.IsCredential(err))

	_, err = client.Remove(context.Background(), "vectr", Options{}, nil)
	require.Equal(t, snaperr.InvalidArgument, snaperr.KindOf(err))

	_, err = client.Remove(context.Background(), "", Options{}, auth.Static(testCred))
	require.Equal(t, snaperr.InvalidArgument, snaperr.KindOf(err))

	require.Zero(t, daemon.count())
}

func TestModifyWithoutMacaroonIsUnauthenticated(t *testing.T) {
	client, daemon := newFakeDaemon(t, http.StatusAccepted, `{"status-code":202,"change":"1"}`)

	_, err := client.Enable(context.Background(), "vectr", Options{}, auth.Static(auth.Credential{Email: "me@example.com"}))
	require.NoError(t, err)
	require.Empty(t, daemon.last(t).auth)
}

func TestFetchSnapsKeepsOrder(t *testing.T) {
	client, daemon := newFakeDaemon(t, http.StatusOK, `{"status-code":200,"result":{"name":"same","version":"1"}}`)

	snaps, err := FetchSnaps(context.Background(), client, []string{"a", "b", "c", "d"}, 2)
	require.NoError(t, err)
	require.Len(t, snaps, 4)
	require.Equal(t, 4, daemon.count())
}

func TestFetchSnapsPropagatesError(t *testing.T) {
	client, _ := newFakeDaemon(t, http.StatusNotFound, `{"type":"error","status-code":404,"result":{"kind":"snap-not-installed","message":"nope"}}`)

	_, err := FetchSnaps(context.Background(), client, []string{"a"}, 0)
	require.Equal(t, snaperr.UnexpectedStatus, snaperr.KindOf(err))
}
