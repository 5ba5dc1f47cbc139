package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], defaultCommandDeps()))
}

func run(args []string, deps commandDeps) int {
	cmd, cmdArgs := resolveCommand(args, deps)
	return cmd.Run(cmdArgs)
}
