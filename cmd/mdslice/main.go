package main

import (
	"errors"
	"fmt"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-mdslice/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdSlice      = "slice"
	cmdPlan       = "plan"
	cmdCompletion = "completion"
	cmdVersion    = "version"
	cmdHelp       = "help"
)

// Sentinel errors for command dispatch.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidArgs    = errors.New("invalid arguments")
)

func main() {
	verbose := slices.Contains(os.Args, "-v") || slices.Contains(os.Args, "--verbose")

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches args[1] and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	var err error
	switch {
	case cmd == cmdSlice:
		err = runSlice(cmdSlice, rest, env)
	case cmd == cmdPlan:
		err = runSlice(cmdPlan, rest, env)
	case cmd == cmdCompletion:
		err = runCompletion(rest, env)
	case cmd == cmdVersion:
		fmt.Fprintf(env.Stdout, "mdslice %s\n", Version)
	case cmd == cmdHelp || cmd == "-h" || cmd == "--help":
		err = runHelp(rest, env)
	case looksLikeSource(cmd):
		// "mdslice docs/vision.md" is shorthand for "mdslice slice docs/vision.md".
		err = runSlice(cmdSlice, args[1:], env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
	}
	return exitCodeFor(err)
}

// isCommand reports whether name is a known command.
func isCommand(name string) bool {
	switch name {
	case cmdSlice, cmdPlan, cmdCompletion, cmdVersion, cmdHelp:
		return true
	}
	return false
}

// looksLikeSource reports whether a non-command first argument is a
// markdown file or a glob pattern.
func looksLikeSource(arg string) bool {
	return !isCommand(arg) && (fileutil.IsMarkdown(arg) || fileutil.HasGlobMeta(arg))
}
