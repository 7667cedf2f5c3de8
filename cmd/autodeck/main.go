package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdGenerate = "generate"
	cmdDoctor   = "doctor"
	cmdVersion  = "version"
	cmdHelp     = "help"
)

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	if wantsVerbose(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and returns the process exit code.
// args includes the program name.
func runMain(ctx context.Context, args []string, env *Environment) int {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	cmd, cmdArgs := splitCommand(rest)
	if !isCommand(cmd) {
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
		fmt.Fprintln(env.Stderr, "  hint: pass the topic with --topic, or run 'autodeck generate <topic>'")
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch cmd {
	case cmdGenerate:
		return runGenerateCmd(ctx, cmdArgs, env)
	case cmdDoctor:
		return runDoctorCmd(cmdArgs, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "autodeck %s\n", Version)
		return ExitSuccess
	default:
		return runHelp(cmdArgs, env)
	}
}

// splitCommand separates the command name from its arguments.
// No arguments, or a leading flag, selects generate.
func splitCommand(args []string) (string, []string) {
	switch {
	case len(args) == 0:
		return cmdGenerate, nil
	case args[0] == "-h" || args[0] == "--help":
		return cmdHelp, nil
	case strings.HasPrefix(args[0], "-"):
		return cmdGenerate, args
	}
	return args[0], args[1:]
}

// isCommand reports whether arg names a known command.
func isCommand(arg string) bool {
	switch arg {
	case cmdGenerate, cmdDoctor, cmdVersion, cmdHelp:
		return true
	}
	return false
}

// wantsVerbose scans raw args for -v/--verbose before flags are parsed.
func wantsVerbose(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
