// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    pterm.LogLevel
		wantErr bool
	}{
		{in: "", want: pterm.LogLevelInfo},
		{in: "debug", want: pterm.LogLevelDebug},
		{in: " TRACE ", want: pterm.LogLevelTrace},
		{in: "disabled", want: pterm.LogLevelDisabled},
		{in: "loud", want: pterm.LogLevelInfo, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	require.Empty(t, buf.String())

	logger.Warn("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestPresentErrorMasks(t *testing.T) {
	err := errors.New(`bad header Macaroon root="secret"`)
	require.Equal(t, `install: bad header Macaroon root="***"`, PresentError("install", err))
	require.Equal(t, "", PresentError("install", nil))
}
