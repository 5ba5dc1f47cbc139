// Package inline runs tasks in the current terminal when no multiplexer is
// available. The "pane" is the terminal wez-bits itself runs in.
package inline

import (
	"io"
	"os"

	"wezbits/internal/task"
)

// PaneID is the pseudo pane id reported by OpenPane.
const PaneID = "inline"

// eot is the end-of-transmission byte a pty reads as end of input.
const eot = 0x04

// Terminal runs each delivered command under a pseudo-terminal. Input is
// forwarded to the command and its output is copied to output.
type Terminal struct {
	input  io.Reader
	output io.Writer
}

// New falls back to the process stdin and stdout for nil arguments.
func New(input io.Reader, output io.Writer) *Terminal {
	if input == nil {
		input = os.Stdin
	}
	if output == nil {
		output = os.Stdout
	}
	return &Terminal{input: input, output: output}
}

func (t *Terminal) OpenPane(task.Direction, int) (string, error) {
	return PaneID, nil
}

// ClosePane is a no-op: there is no pane to close.
func (t *Terminal) ClosePane(string) error {
	return nil
}
