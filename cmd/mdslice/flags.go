package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// ErrInvalidFormat is returned when --format is neither text nor yaml.
var ErrInvalidFormat = errors.New("invalid output format")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// splitFlags holds flags forwarded to the splitter.
type splitFlags struct {
	fenceAware       bool
	stripFrontMatter bool
}

// sliceFlags holds all flags for the slice and plan commands.
type sliceFlags struct {
	common commonFlags
	split  splitFlags
	output string
	prune  bool
	dryRun bool
	strict bool
	format string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show indices and timing")
}

// addSplitFlags adds splitter flags to a FlagSet.
func addSplitFlags(fs *flag.FlagSet, f *splitFlags) {
	fs.BoolVar(&f.fenceAware, "fence-aware", false, "ignore \"## \" lines inside code blocks")
	fs.BoolVar(&f.stripFrontMatter, "strip-front-matter", false, "drop a leading YAML front matter block")
}

// newSliceFlagSet registers every slice flag into f.
// Shared by parseSliceFlags and completion generation.
func newSliceFlagSet(name string, f *sliceFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "backlog directory (default \"docs/backlog\")")
	fs.BoolVar(&f.prune, "prune", false, "delete sources once fully sliced")
	fs.BoolVar(&f.dryRun, "dry-run", false, "show planned items, write nothing")
	fs.BoolVar(&f.strict, "strict", false, "exit 1 when any item fails")
	fs.StringVar(&f.format, "format", formatText, "summary format: text, yaml")

	// Flag groups
	addSplitFlags(fs, &f.split)
	addCommonFlags(fs, &f.common)

	return fs
}

// parseSliceFlags parses slice command flags and returns positional args.
// Usage and parse errors are written to w.
func parseSliceFlags(name string, args []string, w io.Writer) (*sliceFlags, []string, error) {
	f := &sliceFlags{}
	fs := newSliceFlagSet(name, f)
	fs.SetOutput(w)
	fs.Usage = func() { printSliceUsage(w, name) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	if f.format != formatText && f.format != formatYAML {
		return nil, nil, fmt.Errorf("%w: %q (supported: %s, %s)", ErrInvalidFormat, f.format, formatText, formatYAML)
	}

	return f, fs.Args(), nil
}
