// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"strings"

	snaperr "snapcli/cli/internal/errors"

	"github.com/pterm/pterm"
)

// DaemonErrorType represents the category of a daemon error kind
type DaemonErrorType int

const (
	DaemonErrorUnknown DaemonErrorType = iota
	DaemonErrorAuth
	DaemonErrorTwoFactor
	DaemonErrorNotFound
	DaemonErrorAlreadyInstalled
	DaemonErrorNotInstalled
	DaemonErrorConfinement
	DaemonErrorConflict
	DaemonErrorNoUpdate
)

// ParseDaemonErrorKind categorizes the kind string snapd puts in error envelopes
func ParseDaemonErrorKind(kind string) DaemonErrorType {
	switch kind {
	case "login-required", "auth-cancelled", "password-policy":
		return DaemonErrorAuth
	case "two-factor-required", "two-factor-failed":
		return DaemonErrorTwoFactor
	case "snap-not-found", "snap-channel-not-available", "snap-revision-not-available", "snap-architecture-not-available":
		return DaemonErrorNotFound
	case "snap-already-installed":
		return DaemonErrorAlreadyInstalled
	case "snap-not-installed":
		return DaemonErrorNotInstalled
	case "snap-needs-classic", "snap-needs-devmode", "snap-needs-classic-system":
		return DaemonErrorConfinement
	case "snap-change-conflict":
		return DaemonErrorConflict
	case "snap-no-update-available":
		return DaemonErrorNoUpdate
	}
	return DaemonErrorUnknown
}

// FormatDaemonError formats an UnexpectedStatus error in a user-friendly way.
// Errors of other kinds are returned masked without decoration.
func FormatDaemonError(err error) string {
	if err == nil {
		return ""
	}
	if !snaperr.Is(err, snaperr.UnexpectedStatus) {
		return Mask(err.Error())
	}

	kind := snaperr.DaemonKindOf(err)
	var builder strings.Builder

	builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("snapd refused the request"))
	builder.WriteString("\n\n")

	switch ParseDaemonErrorKind(kind) {
	case DaemonErrorAuth:
		builder.WriteString("This operation needs an authorized user.\n")
		builder.WriteString("  • Run the command with sudo, or\n")
		builder.WriteString("  • Import a credential with 'snapcli credential import'\n")
	case DaemonErrorTwoFactor:
		builder.WriteString("The store account requires a one-time passcode.\n")
		builder.WriteString("  • Pass it with 'snapcli login --otp <code>'\n")
	case DaemonErrorNotFound:
		builder.WriteString("The snap, channel or revision could not be found in the store.\n")
	case DaemonErrorAlreadyInstalled:
		builder.WriteString("The snap is already installed.\n")
		builder.WriteString("  • Use 'snapcli refresh' to move it to another channel\n")
	case DaemonErrorNotInstalled:
		builder.WriteString("The snap is not installed.\n")
	case DaemonErrorConfinement:
		builder.WriteString("The snap needs a different confinement.\n")
		builder.WriteString("  • Retry with --classic or --devmode\n")
	case DaemonErrorConflict:
		builder.WriteString("Another change is already in progress for this snap.\n")
		builder.WriteString("  • Watch it with 'snapcli changes' and retry when it is done\n")
	case DaemonErrorNoUpdate:
		builder.WriteString("No update is available.\n")
	default:
		builder.WriteString("The daemon answered with an unexpected status.\n")
	}

	if strings.TrimSpace(kind) != "" {
		builder.WriteString("\n")
		builder.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("kind: " + kind))
	}
	builder.WriteString("\n")
	builder.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Technical details: " + Mask(err.Error())))

	return builder.String()
}
