// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	snaperr "snapcli/cli/internal/errors"
	"snapcli/cli/internal/httperrors"
	"snapcli/cli/internal/logging"
	"snapcli/cli/internal/output"
	"snapcli/cli/internal/rest"

	"github.com/pterm/pterm"
)

// reportedError marks an error that has already been shown to the user, so
// Execute only sets the exit status.
type reportedError struct {
	err error
}

func (r reportedError) Error() string { return r.err.Error() }
func (r reportedError) Unwrap() error { return r.err }

// report shows err in the form that fits its kind and returns it marked as
// reported. action reads as "while <action>".
func report(action string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case snaperr.Is(err, snaperr.Transport):
		socket := cfg.SocketPath
		if socket == "" {
			socket = rest.DefaultSocketPath
		}
		err = httperrors.FormatSocketError(err, action, socket)
	case snaperr.Is(err, snaperr.UnexpectedStatus):
		pterm.Println(logging.FormatDaemonError(err))
	case snaperr.IsCredential(err):
		pterm.Printf("🔒 Cannot read your snap credential while %s\n", action)
		pterm.Println("   Run 'snapcli login' or 'snapcli credential import' first.")
		pterm.Println(pterm.NewStyle(pterm.FgGray).Sprint(logging.PresentError("details", err)))
	default:
		pterm.Println("❌ " + logging.PresentError(action, err))
	}
	return reportedError{err: err}
}

// render writes value to stdout in the configured output format.
func render(value any) error {
	return output.Render(os.Stdout, cfg.Output, value)
}

// startInlineSpinner starts a simple inline spinner animation on a single line.
// It displays rotating animation frames followed by the provided text, updating
// the same line in the terminal. Call the returned function to stop it; the
// line is cleared on stop.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], text)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
	}
}

// withSpinner runs fn while an inline spinner is shown on stderr. The spinner
// is skipped for machine-readable output.
func withSpinner[T any](ctx context.Context, text string, fn func(context.Context) (T, error)) (T, error) {
	if cfg.Output != output.FormatTable {
		return fn(ctx)
	}
	stop := startInlineSpinner(os.Stderr, text, []string{"|", "/", "-", "\\"}, 120*time.Millisecond)
	defer stop()
	return fn(ctx)
}
