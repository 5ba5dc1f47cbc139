package runner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"wezbits/internal/task"
)

// StatusChannel hands the exit code of a command typed into a pane back to
// the process that typed it.
type StatusChannel interface {
	// Report returns the shell fragment that writes $? into the channel.
	Report() string
	// Wait blocks until the pane reports.
	Wait() (task.ExitStatus, error)
	Close() error
}

// OpenStatusChannel creates a channel for a single delivery.
func OpenStatusChannel() (StatusChannel, error) {
	return openStatusChannel()
}

// ShellLine quotes argv so a POSIX shell splits it back into the same words.
func ShellLine(argv []string) string {
	return shellquote.Join(argv...)
}

// CommandLine is the text typed into a pane: argv, then the status report.
// The report runs whether or not the command succeeds.
func CommandLine(argv []string, channel StatusChannel) string {
	return ShellLine(argv) + "; " + channel.Report() + "\n"
}

// ParseStatus reads an exit code written by a pane shell.
func ParseStatus(data []byte) (task.ExitStatus, error) {
	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return task.ExitAbnormal, errors.New("pane closed before reporting a status")
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return task.ExitAbnormal, fmt.Errorf("invalid status %q from pane", raw)
	}
	return task.ExitStatus(code), nil
}
