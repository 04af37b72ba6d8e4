// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"testing"

	snaperr "snapcli/cli/internal/errors"

	"github.com/stretchr/testify/require"
)

func TestParseDaemonErrorKind(t *testing.T) {
	tests := []struct {
		kind string
		want DaemonErrorType
	}{
		{"login-required", DaemonErrorAuth},
		{"two-factor-required", DaemonErrorTwoFactor},
		{"snap-not-found", DaemonErrorNotFound},
		{"snap-already-installed", DaemonErrorAlreadyInstalled},
		{"snap-not-installed", DaemonErrorNotInstalled},
		{"snap-needs-classic", DaemonErrorConfinement},
		{"snap-change-conflict", DaemonErrorConflict},
		{"snap-no-update-available", DaemonErrorNoUpdate},
		{"", DaemonErrorUnknown},
		{"something-new", DaemonErrorUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			require.Equal(t, tt.want, ParseDaemonErrorKind(tt.kind))
		})
	}
}

func TestFormatDaemonError(t *testing.T) {
	err := snaperr.NewStatus(400, nil, "snap-already-installed", `snap "core" is already installed`)
	out := FormatDaemonError(err)
	require.Contains(t, out, "already installed")
	require.Contains(t, out, "kind: snap-already-installed")

	plain := FormatDaemonError(errors.New(`token=abc`))
	require.Equal(t, "token=***", plain)

	require.Equal(t, "", FormatDaemonError(nil))
}
