package main

import (
	"fmt"
	"io"
	"os"

	"wezbits/internal/config"
	"wezbits/internal/fsutil"
	"wezbits/internal/task"
)

type command interface {
	Run(args []string) int
}

type commandDeps struct {
	Stdin        io.Reader
	Stdout       io.Writer
	Stderr       io.Writer
	Getenv       func(string) string
	FS           fsutil.FS
	LoadSettings func() (config.Settings, error)
	NewTerminal  func(mux config.Multiplexer, in io.Reader, out io.Writer) (task.Terminal, error)
}

func defaultCommandDeps() commandDeps {
	return commandDeps{
		Stdin:        os.Stdin,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Getenv:       os.Getenv,
		FS:           fsutil.OS{},
		LoadSettings: config.LoadSettings,
		NewTerminal:  newTerminal,
	}
}

type taskRunnerCommand struct {
	deps commandDeps
}

func (c taskRunnerCommand) Run(args []string) int {
	return runTaskRunner(args, c.deps)
}

type configCreateCommand struct {
	deps commandDeps
}

func (c configCreateCommand) Run(args []string) int {
	return runConfigCreate(args, c.deps)
}

type configViewCommand struct {
	deps commandDeps
}

func (c configViewCommand) Run(args []string) int {
	return runConfigView(args, c.deps)
}

type helpCommand struct {
	deps commandDeps
}

func (c helpCommand) Run(args []string) int {
	printUsage(c.deps.Stdout)
	return exitCodeSuccess
}

type versionCommand struct {
	deps commandDeps
}

func (c versionCommand) Run(args []string) int {
	printVersion(c.deps.Stdout)
	return exitCodeSuccess
}

type usageErrorCommand struct {
	deps    commandDeps
	message string
}

func (c usageErrorCommand) Run(args []string) int {
	fmt.Fprintf(c.deps.Stderr, "error: %s\n\n", c.message)
	printUsage(c.deps.Stderr)
	return exitCodeUsage
}

func resolveCommand(args []string, deps commandDeps) (command, []string) {
	if len(args) == 0 {
		return usageErrorCommand{deps: deps, message: "missing command"}, nil
	}
	switch args[0] {
	case "task-runner", "run":
		return taskRunnerCommand{deps: deps}, args[1:]
	case "config":
		if len(args) < 2 {
			return usageErrorCommand{deps: deps, message: "config requires an action: create or view"}, nil
		}
		switch args[1] {
		case "create":
			return configCreateCommand{deps: deps}, args[2:]
		case "view":
			return configViewCommand{deps: deps}, args[2:]
		default:
			return usageErrorCommand{deps: deps, message: fmt.Sprintf("unknown config action %q", args[1])}, nil
		}
	case "help", "-h", "--help":
		return helpCommand{deps: deps}, args[1:]
	case "version", "-v", "--version":
		return versionCommand{deps: deps}, args[1:]
	default:
		return usageErrorCommand{deps: deps, message: fmt.Sprintf("unknown command %q", args[0])}, nil
	}
}
