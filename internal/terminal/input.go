package terminal

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// One buffered reader serves every prompt. A reader per call would swallow
// the lines piped in after the first one.
var (
	inputMu   sync.Mutex
	inputFile *os.File
	input     *bufio.Reader
)

func stdin() *bufio.Reader {
	if input == nil || inputFile != os.Stdin {
		inputFile = os.Stdin
		input = bufio.NewReader(os.Stdin)
	}
	return input
}

// ReadLine prints prompt and reads one line from stdin, trimmed.
func ReadLine(prompt string) (string, error) {
	inputMu.Lock()
	defer inputMu.Unlock()
	return readLine(prompt)
}

func readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := stdin().ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadPassword prints prompt and reads a line without echo. When stdin is not
// a terminal the line is read as-is so that passwords can be piped in.
func ReadPassword(prompt string) (string, error) {
	inputMu.Lock()
	defer inputMu.Unlock()

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return readLine(prompt)
	}
	fmt.Print(prompt)
	b, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
