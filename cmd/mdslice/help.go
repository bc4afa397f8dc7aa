package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdslice <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  slice       Split markdown documents into numbered backlog items")
	fmt.Fprintln(w, "  plan        Show the items slice would create, write nothing")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdslice help <command>' for details on a specific command.")
}

// printSliceUsage prints usage for the slice and plan commands.
func printSliceUsage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: mdslice %s [source...] [flags]\n", name)
	fmt.Fprintln(w)
	if name == cmdPlan {
		fmt.Fprintln(w, "Show the backlog items slice would create. Nothing is written or deleted.")
	} else {
		fmt.Fprintln(w, "Split markdown documents at each \"## \" header into numbered backlog items.")
		fmt.Fprintln(w, "Numbering continues after the highest NNN_ prefix in the output directory.")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  source    Markdown file, directory (not recursive) or glob pattern")
	fmt.Fprintln(w, "            (optional if config has source.pattern)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Backlog directory (default: docs/backlog)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --prune               Delete sources once all their items are written")
	if name != cmdPlan {
		fmt.Fprintln(w, "      --dry-run             Show planned items, write nothing")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Splitting:")
	fmt.Fprintln(w, "      --fence-aware         Ignore \"## \" lines inside code and HTML blocks")
	fmt.Fprintln(w, "      --strip-front-matter  Drop a leading YAML front matter block")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --format <s>          Summary format: text, yaml")
	fmt.Fprintln(w, "      --strict              Exit 1 when any item or source fails")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show indices and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDSLICE_CONFIG, MDSLICE_SOURCE, MDSLICE_OUTPUT_DIR, MDSLICE_PRUNE")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case cmdSlice, cmdPlan:
		printSliceUsage(env.Stdout, args[0])
	case cmdCompletion:
		printCompletionUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: mdslice version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: mdslice help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
