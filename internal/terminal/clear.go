// Package terminal provides prompts and small cursor helpers for the CLI.
package terminal

import (
	"fmt"
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

// ClearPreviousLines clears text from the terminal that was previously printed.
// It calculates how many lines were used by the provided text based on the current
// terminal width, then moves up and clears each line.
//
// The login command uses it to wipe the email prompt once answered. Nothing
// is cleared when stdout is not a terminal.
func ClearPreviousLines(textLength int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	termWidth := 80
	if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		termWidth = width
	}
	fmt.Print(clearSequence(LinesUsed(textLength, termWidth)))
}

// LinesUsed returns how many terminal rows text of textLength occupies at the
// given width, plus the empty row left by Enter.
func LinesUsed(textLength, width int) int {
	if width < 1 {
		width = 80
	}
	lines := int(math.Ceil(float64(textLength) / float64(width)))
	if lines < 1 {
		lines = 1
	}
	return lines + 1
}

func clearSequence(lines int) string {
	var b strings.Builder
	for i := 0; i < lines; i++ {
		b.WriteString("\r\x1b[2K")
		if i < lines-1 {
			b.WriteString("\x1b[1A")
		}
	}
	return b.String()
}
