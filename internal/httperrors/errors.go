// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly handling of failures to reach the
// snap daemon over its socket.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"syscall"

	snaperr "snapcli/cli/internal/errors"

	"github.com/pterm/pterm"
)

// Cause is the reason a socket exchange failed.
type Cause int

const (
	CauseUnknown Cause = iota
	CauseSocketMissing
	CauseConnectionRefused
	CausePermissionDenied
	CauseTimeout
)

func (c Cause) String() string {
	switch c {
	case CauseSocketMissing:
		return "socket missing"
	case CauseConnectionRefused:
		return "connection refused"
	case CausePermissionDenied:
		return "permission denied"
	case CauseTimeout:
		return "timeout"
	}
	return "unknown"
}

// FormatSocketError prints troubleshooting guidance for a transport error
// and returns it wrapped. Errors of other kinds are returned unchanged.
func FormatSocketError(err error, action, socketPath string) error {
	if err == nil {
		return nil
	}
	if !snaperr.Is(err, snaperr.Transport) {
		return err
	}

	displayErrorMessage(Classify(err), action, socketPath, err.Error())

	return fmt.Errorf("cannot reach snapd: %w", err)
}

// Classify inspects the cause chain of err.
func Classify(err error) Cause {
	switch {
	case err == nil:
		return CauseUnknown
	case isTimeoutError(err):
		return CauseTimeout
	case errors.Is(err, syscall.ENOENT) || errors.Is(err, os.ErrNotExist):
		return CauseSocketMissing
	case errors.Is(err, syscall.ECONNREFUSED):
		return CauseConnectionRefused
	case errors.Is(err, syscall.EACCES) || errors.Is(err, syscall.EPERM) || errors.Is(err, os.ErrPermission):
		return CausePermissionDenied
	}

	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "no such file or directory"):
		return CauseSocketMissing
	case strings.Contains(errStr, "connection refused"):
		return CauseConnectionRefused
	case strings.Contains(errStr, "permission denied"):
		return CausePermissionDenied
	}
	return CauseUnknown
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func displayErrorMessage(cause Cause, action, socketPath, details string) {
	switch cause {
	case CauseSocketMissing:
		pterm.Printf("🔌 snapd socket not found while %s\n", action)
		pterm.Println()
		pterm.Printf("Nothing is listening at %s. This could mean:\n", socketPath)
		pterm.Println("  • snapd is not installed on this system")
		pterm.Println("  • snapd.socket is not enabled (systemctl enable --now snapd.socket)")
		pterm.Println("  • --socket or SNAPCLI_SOCKET points to the wrong path")
	case CauseConnectionRefused:
		pterm.Printf("🚫 Connection refused while %s\n", action)
		pterm.Println()
		pterm.Println("The socket exists but snapd is not accepting connections.")
		pterm.Println("  • Check 'systemctl status snapd'")
		pterm.Println("  • snapd may be restarting after a refresh; try again shortly")
	case CausePermissionDenied:
		pterm.Printf("🔒 Permission denied while %s\n", action)
		pterm.Println()
		pterm.Printf("Your user cannot open %s.\n", socketPath)
		pterm.Println("  • Run the command with sudo")
	case CauseTimeout:
		pterm.Printf("⏱️  snapd did not answer in time while %s\n", action)
		pterm.Println()
		pterm.Println("The daemon may be busy with another change.")
		pterm.Println("  • Check pending work with 'snapcli changes'")
	default:
		pterm.Printf("❌ Cannot talk to snapd while %s\n", action)
	}
	pterm.Println()

	shortErr := details
	if len(shortErr) > 100 {
		shortErr = shortErr[:100] + "..."
	}
	pterm.Debug.Printf("Technical details: %s\n", shortErr)
}
