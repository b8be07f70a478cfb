package logincmder

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// promptLine reads one line from stdin, prompting when interactive.
func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return "", fmt.Errorf("checking stdin: %w", err)
	}
	if (fi.Mode() & os.ModeCharDevice) != 0 {
		cmd.Print(prompt)
	}

	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return "", errors.New("no input received on stdin")
}

// readSecret reads a value from stdin. If stdin is a pipe, it reads the
// first line. Otherwise, it prompts interactively with hidden input.
func readSecret(cmd *cobra.Command, prompt string) (string, error) {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return "", fmt.Errorf("checking stdin: %w", err)
	}

	// Piped input
	if (fi.Mode() & os.ModeCharDevice) == 0 {
		return promptLine(cmd, prompt)
	}

	// Interactive terminal
	cmd.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	cmd.Println() // newline after hidden input
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	return strings.TrimSpace(string(raw)), nil
}
