package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"wezbits/internal/cli"
	"wezbits/internal/task"
)

type taskRunnerOptions struct {
	Name      string
	Close     task.TaskClose
	Direction task.Direction
	Version   bool
}

func parseTaskRunnerArgs(args []string, errOut io.Writer) (taskRunnerOptions, error) {
	fs := flag.NewFlagSet("task-runner", flag.ContinueOnError)
	fs.SetOutput(errOut)
	closeFlag := cli.AddChoiceFlag(fs, "close", "c", string(task.CloseOnSuccess), "When to close the task pane",
		string(task.CloseAlways), string(task.CloseOnSuccess), string(task.CloseNever))
	directionFlag := cli.AddChoiceFlag(fs, "direction", "d", string(task.DirectionRight), "Where to open the task pane",
		string(task.DirectionRight), string(task.DirectionDown))
	helpFlags := cli.AddHelpVersionFlags(fs, "", "")
	fs.Usage = func() {
		fmt.Fprintf(errOut, "Usage: %s task-runner <name> [options]\n\nOptions:\n", binaryName)
		fs.PrintDefaults()
	}

	positional, err := cli.Interspersed(fs, args)
	if err != nil {
		return taskRunnerOptions{}, err
	}
	if helpFlags.Help {
		fs.Usage()
		return taskRunnerOptions{}, flag.ErrHelp
	}
	if helpFlags.Version {
		return taskRunnerOptions{Version: true}, nil
	}
	if len(positional) == 0 {
		return taskRunnerOptions{}, errors.New("task name is required")
	}
	if len(positional) > 1 {
		return taskRunnerOptions{}, fmt.Errorf("unexpected arguments: %v", positional[1:])
	}

	closePolicy, err := task.ParseTaskClose(closeFlag.Value)
	if err != nil {
		return taskRunnerOptions{}, err
	}
	direction, err := task.ParseDirection(directionFlag.Value)
	if err != nil {
		return taskRunnerOptions{}, err
	}
	return taskRunnerOptions{Name: positional[0], Close: closePolicy, Direction: direction}, nil
}

func runTaskRunner(args []string, deps commandDeps) int {
	options, err := parseTaskRunnerArgs(args, deps.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitCodeSuccess
		}
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return exitCodeUsage
	}
	if options.Version {
		printVersion(deps.Stdout)
		return exitCodeSuccess
	}

	env, err := loadEnvironment(deps)
	if err != nil {
		reportError(deps.Stderr, err)
		return exitCodeError
	}

	taskConfig, err := env.store.Load()
	if err != nil {
		reportError(deps.Stderr, err)
		return exitCodeError
	}
	resolved, err := task.FindTask(options.Name, taskConfig, options.Close, options.Direction)
	if err != nil {
		reportError(deps.Stderr, err)
		return exitCodeError
	}

	multiplexer := env.settings.Multiplexer.Resolve(deps.Getenv)
	terminal, err := deps.NewTerminal(multiplexer, deps.Stdin, deps.Stdout)
	if err != nil {
		reportError(deps.Stderr, err)
		return exitCodeError
	}
	logger := env.logger.With(map[string]string{"task": options.Name, "multiplexer": string(multiplexer)})

	status, err := task.NewService(terminal, logger).Execute(resolved)
	if err != nil {
		logger.Debug("task failed", map[string]string{"error": err.Error()})
		reportError(deps.Stderr, err)
		return exitCodeError
	}
	return status.Code()
}
