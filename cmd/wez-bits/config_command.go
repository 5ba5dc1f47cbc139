package main

import (
	"errors"
	"flag"
	"fmt"

	"wezbits/internal/cli"
	"wezbits/internal/config"
)

func runConfigCreate(args []string, deps commandDeps) int {
	fs := flag.NewFlagSet("config create", flag.ContinueOnError)
	fs.SetOutput(deps.Stderr)
	formatFlag := cli.AddChoiceFlag(fs, "format", "f", string(config.FormatTOML), "Config file format",
		string(config.FormatTOML), string(config.FormatYAML))
	force := fs.Bool("force", false, "Replace an existing config with the defaults")
	helpFlags := cli.AddHelpVersionFlags(fs, "", "")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitCodeSuccess
		}
		return exitCodeUsage
	}
	if helpFlags.Help {
		fmt.Fprintf(deps.Stderr, "Usage: %s config create [--format toml|yaml] [--force]\n", binaryName)
		return exitCodeSuccess
	}
	if helpFlags.Version {
		printVersion(deps.Stdout)
		return exitCodeSuccess
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(deps.Stderr, "error: unexpected arguments: %v\n", fs.Args())
		return exitCodeUsage
	}
	format, err := config.ParseFormat(formatFlag.Value)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return exitCodeUsage
	}

	env, err := loadEnvironment(deps)
	if err != nil {
		reportError(deps.Stderr, err)
		return exitCodeError
	}
	path, err := env.store.Create(format, *force)
	if err != nil {
		reportError(deps.Stderr, err)
		return exitCodeError
	}
	fmt.Fprintf(deps.Stdout, "Config created at %s\n", path)
	return exitCodeSuccess
}

func runConfigView(args []string, deps commandDeps) int {
	if len(args) > 0 {
		fmt.Fprintf(deps.Stderr, "error: unexpected arguments: %v\n", args)
		return exitCodeUsage
	}
	env, err := loadEnvironment(deps)
	if err != nil {
		reportError(deps.Stderr, err)
		return exitCodeError
	}
	if err := env.store.View(deps.Stdout); err != nil {
		reportError(deps.Stderr, err)
		return exitCodeError
	}
	return exitCodeSuccess
}
