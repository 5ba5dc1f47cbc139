// Package runner holds the process seam shared by the multiplexer backends.
package runner

import (
	"bytes"
	"errors"
	"os/exec"

	"wezbits/internal/task"
)

// CommandRunner executes a multiplexer CLI with optional stdin data.
type CommandRunner interface {
	Run(args []string, input []byte) ([]byte, error)
}

// ExecRunner runs Binary as a child process. On success it returns stdout;
// on failure it returns stderr when there is any, so callers can report it.
type ExecRunner struct {
	Binary string
}

func (r ExecRunner) Run(args []string, input []byte) ([]byte, error) {
	cmd := exec.Command(r.Binary, args...)
	if len(input) > 0 {
		cmd.Stdin = bytes.NewReader(input)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return stderr.Bytes(), err
		}
		return stdout.Bytes(), err
	}
	return stdout.Bytes(), nil
}

type exitCoder interface {
	ExitCode() int
}

// StatusFromError extracts the exit code carried by err, if any.
// A nil error is a successful exit.
func StatusFromError(err error) (task.ExitStatus, bool) {
	if err == nil {
		return task.ExitSuccess, true
	}
	var coded exitCoder
	if errors.As(err, &coded) {
		return task.ExitStatus(coded.ExitCode()), true
	}
	return task.ExitAbnormal, false
}
