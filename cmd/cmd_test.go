// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"snapcli/cli/internal/config"
	snaperr "snapcli/cli/internal/errors"
	"snapcli/cli/internal/snapd"

	"github.com/stretchr/testify/require"
)

func TestParsePlug(t *testing.T) {
	tests := []struct {
		in      string
		want    snapd.PlugRef
		wantErr bool
	}{
		{in: "spotify:network", want: snapd.PlugRef{Snap: "spotify", Plug: "network"}},
		{in: "spotify", wantErr: true},
		{in: ":network", wantErr: true},
		{in: "spotify:", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePlug(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseSlot(t *testing.T) {
	tests := []struct {
		in   string
		want snapd.SlotRef
	}{
		{in: "", want: snapd.SlotRef{Snap: "core", Slot: "network"}},
		{in: "core", want: snapd.SlotRef{Snap: "core", Slot: "network"}},
		{in: ":network-bind", want: snapd.SlotRef{Snap: "core", Slot: "network-bind"}},
		{in: "pulseaudio:audio", want: snapd.SlotRef{Snap: "pulseaudio", Slot: "audio"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, parseSlot(tt.in, "network"))
		})
	}
}

func TestActionFlagsOptions(t *testing.T) {
	cmd := newActionCmd(actionSpecs[0])
	require.Equal(t, "install NAME", cmd.Use)

	opts := (&actionFlags{}).options(cmd)
	require.Nil(t, opts.Channel)
	require.Nil(t, opts.Version)

	flags := &actionFlags{classic: true, channel: ""}
	require.NoError(t, cmd.Flags().Set("channel", ""))
	opts = flags.options(cmd)
	require.True(t, opts.Classic)
	require.NotNil(t, opts.Channel)
	require.Equal(t, "", *opts.Channel)
	require.Nil(t, opts.Version)
}

func TestActionSpecsCoverEveryAction(t *testing.T) {
	var uses []string
	for _, s := range actionSpecs {
		uses = append(uses, s.use)
	}
	require.Equal(t, []string{
		snapd.ActionInstall, snapd.ActionRemove, snapd.ActionRefresh, snapd.ActionRevert,
		snapd.ActionEnable, snapd.ActionDisable, snapd.ActionSwitch,
	}, uses)
}

// scriptedStatus replays one reply per Status call, repeating the last.
type scriptedStatus struct {
	mu      sync.Mutex
	replies []string
	err     error
	calls   int
}

func (s *scriptedStatus) Status(_ context.Context, id string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	i := s.calls - 1
	if i >= len(s.replies) {
		i = len(s.replies) - 1
	}
	return json.RawMessage(s.replies[i]), nil
}

func TestPollChangeUntilReady(t *testing.T) {
	api := &scriptedStatus{replies: []string{
		`{"id":"7","status":"Doing","ready":false}`,
		`{"id":"7","status":"Doing","ready":false}`,
		`{"id":"7","status":"Done","ready":true}`,
	}}

	var seen []string
	change, err := pollChange(context.Background(), api, "7", time.Millisecond, func(c snapd.Change) {
		seen = append(seen, c.Status)
	})
	require.NoError(t, err)
	require.True(t, change.Ready)
	require.Equal(t, []string{"Doing", "Doing", "Done"}, seen)
	require.Equal(t, 3, api.calls)
}

func TestPollChangeStopsOnError(t *testing.T) {
	api := &scriptedStatus{err: snaperr.New(snaperr.Transport, "GET /v2/changes/7")}

	_, err := pollChange(context.Background(), api, "7", time.Millisecond, nil)
	require.Equal(t, snaperr.Transport, snaperr.KindOf(err))
	require.Equal(t, 1, api.calls)
}

func TestPollChangeHonorsCancel(t *testing.T) {
	api := &scriptedStatus{replies: []string{`{"id":"7","status":"Doing","ready":false}`}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	change, err := pollChange(ctx, api, "7", time.Hour, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, "7", change.ID)
}

func TestProgressLine(t *testing.T) {
	c := snapd.Change{Summary: "Install \"vectr\" snap", Tasks: []snapd.Task{
		{Status: "Done", Summary: "Ensure prerequisites"},
		{Status: "Doing", Summary: "Download snap \"vectr\"", Progress: snapd.TaskProgress{Done: 3, Total: 4}},
	}}
	require.Equal(t, "Download snap \"vectr\" (75%)", progressLine(c))

	c.Tasks[1].Status = "Done"
	require.Equal(t, "Install \"vectr\" snap", progressLine(c))
}

func TestMaskMacaroon(t *testing.T) {
	require.Equal(t, "****", maskMacaroon("short"))
	require.Equal(t, "MDAx…9uCg", maskMacaroon("MDAxY2xvY2F0aW9uCg"))
}

func TestReportMarksError(t *testing.T) {
	err := report("testing", errors.New("boom"))
	var r reportedError
	require.True(t, errors.As(err, &r))
	require.EqualError(t, err, "boom")
	require.NoError(t, report("testing", nil))

	wrapped := report("testing", fmt.Errorf("outer: %w", snaperr.New(snaperr.InvalidArgument, "bad")))
	require.Equal(t, snaperr.InvalidArgument, snaperr.KindOf(wrapped))
}

func TestInitConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p, err := initConfig(false)
	require.NoError(t, err)

	got, err := config.LoadFile(p)
	require.NoError(t, err)
	require.Equal(t, config.Default(), got)

	_, err = initConfig(false)
	require.ErrorContains(t, err, "already exists")

	_, err = initConfig(true)
	require.NoError(t, err)
}

func TestConfigViewTable(t *testing.T) {
	rows := configView(config.Default()).Table().Rows
	require.Equal(t, []string{"socket_path", "/run/snapd.socket (default)"}, rows[0])
	require.Equal(t, []string{"credential_source", "file"}, rows[2])
}

func TestKeychainInUse(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })

	tests := []struct {
		name     string
		source   string
		macaroon string
		want     bool
	}{
		{name: "keychain source", source: config.SourceKeychain, want: true},
		{name: "env credential overrides keychain", source: config.SourceKeychain, macaroon: "MDAx"},
		{name: "file source", source: config.SourceFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvMacaroon, tt.macaroon)
			cfg = config.Config{CredentialSource: tt.source}
			require.Equal(t, tt.want, keychainInUse())
		})
	}
}
