package task

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured matches any lookup of a task name missing from the config.
var ErrNotConfigured = errors.New("task not configured")

// NotConfiguredError reports a task name missing from the loaded config.
type NotConfiguredError struct {
	Name       string
	Suggestion string
}

func (e *NotConfiguredError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("task %q not configured (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("task %q not configured", e.Name)
}

func (e *NotConfiguredError) Is(target error) bool {
	return target == ErrNotConfigured
}

// TerminalError wraps a failed multiplexer operation with the pane it targeted.
type TerminalError struct {
	Op     string
	PaneID string
	Err    error
}

func (e *TerminalError) Error() string {
	builder := strings.Builder{}
	builder.WriteString(e.Op)
	builder.WriteString(" pane")
	if e.PaneID != "" {
		builder.WriteString(" ")
		builder.WriteString(e.PaneID)
	}
	builder.WriteString(" failed")
	if e.Err != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Err.Error())
	}
	return builder.String()
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

const (
	OpOpen    = "open"
	OpClose   = "close"
	OpDeliver = "deliver"
)
