package main

import (
	"context"
	"fmt"
)

// runMain dispatches args (including the program name) and returns the
// process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case cmdCopy, cmdCopyMD, cmdExport, cmdRender:
		ctx, stop := notifyContext(context.Background())
		defer stop()
		return runNoteCommand(ctx, cmd, rest, env)
	case "config":
		return runConfigCmd(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "completion":
		if err := runCompletion(rest, env); err != nil {
			fmt.Fprintf(env.Stderr, "error: %v\n", err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "go-md2rich %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}
