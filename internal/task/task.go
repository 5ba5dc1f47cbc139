package task

import (
	"fmt"
	"strings"
)

// Command is an invocable external program with its arguments.
// An empty Program means the task exists in the config but is not set up yet.
type Command struct {
	Program string   `toml:"program" yaml:"program"`
	Args    []string `toml:"args" yaml:"args"`
}

// Argv returns the program followed by its arguments.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Program)
	return append(argv, c.Args...)
}

func (c Command) clone() Command {
	return Command{Program: c.Program, Args: append([]string(nil), c.Args...)}
}

// Direction is where a new pane is placed relative to the current one.
type Direction string

const (
	DirectionRight Direction = "right"
	DirectionDown  Direction = "down"
)

func ParseDirection(value string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(value))) {
	case DirectionRight:
		return DirectionRight, nil
	case DirectionDown:
		return DirectionDown, nil
	default:
		return "", fmt.Errorf("invalid direction %q (expected right or down)", value)
	}
}

// TaskClose decides whether the pane is closed after the command finishes.
type TaskClose string

const (
	CloseAlways    TaskClose = "always"
	CloseOnSuccess TaskClose = "on-success"
	CloseNever     TaskClose = "never"
)

func ParseTaskClose(value string) (TaskClose, error) {
	switch TaskClose(strings.ToLower(strings.TrimSpace(value))) {
	case CloseAlways:
		return CloseAlways, nil
	case CloseOnSuccess:
		return CloseOnSuccess, nil
	case CloseNever:
		return CloseNever, nil
	default:
		return "", fmt.Errorf("invalid close policy %q (expected always, on-success or never)", value)
	}
}

type TaskSettings struct {
	Close     TaskClose
	Direction Direction
}

// Task binds a configured command to the settings of a single run.
type Task struct {
	Command  Command
	Settings TaskSettings
}

// TaskConfig maps task names to commands. Lookups are case-sensitive.
type TaskConfig map[string]Command

// Names returns the configured task names in no particular order.
func (c TaskConfig) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	return names
}

// ExitStatus is the exit code of a delivered command.
// -1 means the command ended without reporting a code.
type ExitStatus int

const (
	ExitSuccess    ExitStatus = 0
	ExitNotStarted ExitStatus = 127
	ExitAbnormal   ExitStatus = -1
)

func (s ExitStatus) Success() bool {
	return s == ExitSuccess
}

// Code returns a value usable as a process exit code.
func (s ExitStatus) Code() int {
	if s < 0 {
		return 1
	}
	return int(s)
}
