package main

import (
	"fmt"
	"io"

	"wezbits/internal/version"
)

const binaryName = "wez-bits"

const banner = `
                                         /$$       /$$   /$$
                                        | $$      |__/  | $$
 /$$  /$$  /$$  /$$$$$$  /$$$$$$$$      | $$$$$$$  /$$ /$$$$$$   /$$$$$$$
| $$ | $$ | $$ /$$__  $$|____ /$$/      | $$__  $$| $$|_  $$_/  /$$_____/
| $$ | $$ | $$| $$$$$$$$   /$$$$/       | $$  \ $$| $$  | $$   |  $$$$$$
| $$ | $$ | $$| $$_____/  /$$__/        | $$  | $$| $$  | $$ /$$\____  $$
|  $$$$$/$$$$/|  $$$$$$$ /$$$$$$$$      | $$$$$$$/| $$  |  $$$$//$$$$$$$/
 \_____/\___/  \_______/|________/      |_______/ |__/   \___/ |_______/

Harnessing WezTerm's Power
`

const usageText = `
Project scoped tasks in terminal panes.

Usage:
  wez-bits task-runner <name> [--close always|on-success|never] [--direction right|down]
  wez-bits config create [--format toml|yaml] [--force]
  wez-bits config view
  wez-bits --help | --version

Tasks are read from .wez/config.toml (or config.yaml) in the current directory.

Environment:
  WEZBITS_MULTIPLEXER   auto, wezterm, tmux or inline (default auto)
  WEZBITS_LOG_LEVEL     debug, info, warning or error (default warning)
  WEZBITS_DOT_DIR       directory holding the task config (default .wez)
  WEZBITS_CONFIG_FILE   explicit task config file
`

func printUsage(out io.Writer) {
	fmt.Fprint(out, banner)
	fmt.Fprint(out, usageText)
}

func printVersion(out io.Writer) {
	fmt.Fprintln(out, version.GetVersionInfo().Line(binaryName))
}
