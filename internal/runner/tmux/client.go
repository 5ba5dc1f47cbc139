// Package tmux drives task panes through the tmux command line.
package tmux

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wezbits/internal/runner"
	"wezbits/internal/task"
)

// bufferName keeps task text out of the user's default paste buffer.
const bufferName = "wez-bits"

// Client executes tmux commands.
type Client struct {
	runner     runner.CommandRunner
	openStatus func() (runner.StatusChannel, error)
}

// NewClient returns a tmux client using the default command runner.
func NewClient() *Client {
	return NewClientWithRunner(runner.ExecRunner{Binary: "tmux"})
}

// NewClientWithRunner returns a tmux client using a custom command runner.
func NewClientWithRunner(r runner.CommandRunner) *Client {
	return &Client{runner: r, openStatus: runner.OpenStatusChannel}
}

// SplitPane splits the current pane and prints the new pane id.
func (c *Client) SplitPane(horizontal bool, sizePercent int) (string, error) {
	args := []string{"split-window"}
	if horizontal {
		args = append(args, "-h")
	} else {
		args = append(args, "-v")
	}
	args = append(args, "-l", strconv.Itoa(sizePercent)+"%", "-P", "-F", "#{pane_id}")
	output, err := c.runWithOutput(args, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// KillPane terminates a tmux pane.
func (c *Client) KillPane(target string) error {
	return c.run([]string{"kill-pane", "-t", target}, nil)
}

// LoadBuffer loads data into the named tmux paste buffer.
func (c *Client) LoadBuffer(data []byte) error {
	return c.run([]string{"load-buffer", "-b", bufferName, "-"}, data)
}

// PasteBuffer pastes the named buffer into a target pane and deletes it.
func (c *Client) PasteBuffer(target string) error {
	return c.run([]string{"paste-buffer", "-d", "-b", bufferName, "-t", target}, nil)
}

// OpenPane implements the task terminal capability on top of SplitPane.
func (c *Client) OpenPane(direction task.Direction, sizePercent int) (string, error) {
	paneID, err := c.SplitPane(direction == task.DirectionRight, sizePercent)
	if err != nil {
		return "", &task.TerminalError{Op: task.OpOpen, Err: err}
	}
	if paneID == "" {
		return "", &task.TerminalError{Op: task.OpOpen, Err: fmt.Errorf("no pane opened to the %s", direction)}
	}
	return paneID, nil
}

func (c *Client) ClosePane(paneID string) error {
	if err := c.KillPane(paneID); err != nil {
		return &task.TerminalError{Op: task.OpClose, PaneID: paneID, Err: err}
	}
	return nil
}

// Deliver pastes argv into the pane followed by a status report, then
// blocks until the pane shell reports the command's exit code.
func (c *Client) Deliver(argv []string, paneID string) (task.ExitStatus, error) {
	if c == nil || c.openStatus == nil {
		return task.ExitAbnormal, &task.TerminalError{Op: task.OpDeliver, PaneID: paneID, Err: errors.New("tmux runner unavailable")}
	}
	channel, err := c.openStatus()
	if err != nil {
		return task.ExitAbnormal, &task.TerminalError{Op: task.OpDeliver, PaneID: paneID, Err: err}
	}
	defer channel.Close()

	err = c.LoadBuffer([]byte(runner.CommandLine(argv, channel)))
	if err == nil {
		err = c.PasteBuffer(paneID)
	}
	if err != nil {
		return task.ExitAbnormal, &task.TerminalError{Op: task.OpDeliver, PaneID: paneID, Err: err}
	}
	status, err := channel.Wait()
	if err != nil {
		return task.ExitAbnormal, &task.TerminalError{Op: task.OpDeliver, PaneID: paneID, Err: err}
	}
	return status, nil
}

func (c *Client) run(args []string, input []byte) error {
	_, err := c.runWithOutput(args, input)
	return err
}

func (c *Client) runWithOutput(args []string, input []byte) ([]byte, error) {
	if c == nil || c.runner == nil {
		return nil, errors.New("tmux runner unavailable")
	}
	output, err := c.runner.Run(args, input)
	if err != nil {
		if len(output) > 0 {
			return nil, fmt.Errorf("tmux %s failed: %s: %w", args[0], bytes.TrimSpace(output), err)
		}
		return nil, fmt.Errorf("tmux %s failed: %w", args[0], err)
	}
	return output, nil
}
