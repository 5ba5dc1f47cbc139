// Package wezterm drives task panes through the `wezterm cli` interface.
package wezterm

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wezbits/internal/runner"
	"wezbits/internal/task"
)

// Client executes wezterm cli commands.
type Client struct {
	runner     runner.CommandRunner
	openStatus func() (runner.StatusChannel, error)
}

// NewClient returns a wezterm client using the wezterm binary on PATH.
func NewClient() *Client {
	return NewClientWithRunner(runner.ExecRunner{Binary: "wezterm"})
}

// NewClientWithRunner returns a wezterm client using a custom command runner.
func NewClientWithRunner(r runner.CommandRunner) *Client {
	return &Client{runner: r, openStatus: runner.OpenStatusChannel}
}

// OpenPane splits the active pane. Right splits horizontally; Down splits
// below. The new pane id is read from stdout.
func (c *Client) OpenPane(direction task.Direction, sizePercent int) (string, error) {
	args := []string{"cli", "split-pane"}
	if direction == task.DirectionRight {
		args = append(args, "--horizontal")
	}
	args = append(args, "--percent", strconv.Itoa(sizePercent))

	output, err := c.runWithOutput(args, nil)
	if err != nil {
		return "", &task.TerminalError{Op: task.OpOpen, Err: err}
	}
	paneID := strings.TrimSpace(string(output))
	if paneID == "" {
		return "", &task.TerminalError{Op: task.OpOpen, Err: fmt.Errorf("no pane opened to the %s", direction)}
	}
	return paneID, nil
}

// ClosePane kills the given pane.
func (c *Client) ClosePane(paneID string) error {
	if _, err := c.runWithOutput([]string{"cli", "kill-pane", "--pane-id", paneID}, nil); err != nil {
		return &task.TerminalError{Op: task.OpClose, PaneID: paneID, Err: err}
	}
	return nil
}

// Deliver types argv into the pane followed by a status report, then blocks
// until the pane shell reports the command's exit code.
func (c *Client) Deliver(argv []string, paneID string) (task.ExitStatus, error) {
	if c == nil || c.runner == nil {
		return task.ExitAbnormal, &task.TerminalError{Op: task.OpDeliver, PaneID: paneID, Err: errors.New("wezterm runner unavailable")}
	}
	channel, err := c.openStatus()
	if err != nil {
		return task.ExitAbnormal, &task.TerminalError{Op: task.OpDeliver, PaneID: paneID, Err: err}
	}
	defer channel.Close()

	args := []string{"cli", "send-text", "--pane-id", paneID, "--no-paste"}
	if _, err := c.runWithOutput(args, []byte(runner.CommandLine(argv, channel))); err != nil {
		return task.ExitAbnormal, &task.TerminalError{Op: task.OpDeliver, PaneID: paneID, Err: err}
	}
	status, err := channel.Wait()
	if err != nil {
		return task.ExitAbnormal, &task.TerminalError{Op: task.OpDeliver, PaneID: paneID, Err: err}
	}
	return status, nil
}

func (c *Client) runWithOutput(args []string, input []byte) ([]byte, error) {
	if c == nil || c.runner == nil {
		return nil, errors.New("wezterm runner unavailable")
	}
	output, err := c.runner.Run(args, input)
	if err != nil {
		if len(output) > 0 {
			return nil, fmt.Errorf("wezterm %s failed: %s", args[1], bytes.TrimSpace(output))
		}
		return nil, fmt.Errorf("wezterm %s failed: %w", args[1], err)
	}
	return output, nil
}
