package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"tido/internal/api"
	"tido/internal/exitcode"
	"tido/internal/service"
)

// confirm asks a y/N question on errOut and reads one line from sc.
// Anything but an explicit yes declines. The scanner must be shared across
// prompts within a command so buffered input is not lost between reads.
func confirm(sc *bufio.Scanner, errOut io.Writer, prompt string) bool {
	fmt.Fprintf(errOut, "%s [y/N]: ", prompt)
	if !sc.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(sc.Text()))
	return answer == "y" || answer == "yes"
}

// promptLine prints a label on errOut and reads one trimmed line from sc.
func promptLine(sc *bufio.Scanner, errOut io.Writer, label string) string {
	fmt.Fprintf(errOut, "%s: ", label)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}

// reportAPIError prints a gateway failure and maps it to an exit code:
// unauthorized responses get the auth code with a login hint, 404s are user
// errors, everything else is a backend error.
func reportAPIError(errOut io.Writer, err error) int {
	switch {
	case api.IsUnauthorized(err):
		fmt.Fprintln(errOut, "error: unauthorized (run: tido login)")
		return exitcode.AuthError
	case api.IsNotFound(err):
		fmt.Fprintln(errOut, "error: not found")
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}

// resolveDate turns the --date/--all flag pair into a filter value:
// "" for all dates, today when neither is given.
func resolveDate(date string, all bool) (string, error) {
	if all {
		if date != "" {
			return "", fmt.Errorf("cannot use both --date and --all")
		}
		return "", nil
	}
	if date == "" {
		return time.Now().Format(service.DateFormat), nil
	}
	if _, err := time.Parse(service.DateFormat, date); err != nil {
		return "", fmt.Errorf("invalid date: %s (want yyyy-MM-dd)", date)
	}
	return date, nil
}
