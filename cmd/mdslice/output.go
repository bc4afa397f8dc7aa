package main

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/lipgloss"

	mdslice "github.com/alnah/go-mdslice"
	"github.com/alnah/go-mdslice/internal/yamlutil"
)

// Terminal colors (ANSI 16-color palette).
const (
	colorInfo    = lipgloss.Color("12") // bright blue
	colorCreated = lipgloss.Color("10") // bright green
	colorWarn    = lipgloss.Color("11") // bright yellow
	colorError   = lipgloss.Color("9")  // bright red
)

// printer renders run progress and summaries.
// Colors are only emitted when the writer is a terminal.
type printer struct {
	out, errOut io.Writer
	quiet       bool
	verbose     bool

	info, created, warn, failed, done lipgloss.Style
}

func newPrinter(env *Environment, quiet, verbose bool) *printer {
	outR := lipgloss.NewRenderer(env.Stdout)
	errR := lipgloss.NewRenderer(env.Stderr)

	return &printer{
		out:     env.Stdout,
		errOut:  env.Stderr,
		quiet:   quiet,
		verbose: verbose,
		info:    outR.NewStyle().Foreground(colorInfo),
		created: outR.NewStyle().Foreground(colorCreated),
		warn:    outR.NewStyle().Foreground(colorWarn),
		failed:  errR.NewStyle().Foreground(colorError),
		done:    outR.NewStyle().Foreground(colorCreated).Bold(true),
	}
}

// printText writes the human-readable run report, grouped by source in
// the order sources were given. Failures always go to the error writer.
func (p *printer) printText(sources []string, s *mdslice.Summary, dryRun bool, elapsed time.Duration) {
	if p.verbose {
		fmt.Fprintln(p.out, p.info.Render(fmt.Sprintf("[*] First free index: %03d", s.StartIndex)))
	}

	for _, src := range sources {
		if !p.quiet {
			fmt.Fprintln(p.out, p.info.Render(fmt.Sprintf("[*] Processing %s...", src)))
		}
		for _, item := range s.Items {
			if item.Source != src || p.quiet {
				continue
			}
			verb := "Created"
			if dryRun {
				verb = "Would create"
			}
			fmt.Fprintln(p.out, p.created.Render(fmt.Sprintf("  + %s %s", verb, item.Filename)))
		}
		for _, f := range s.Failures {
			if f.Source == src {
				fmt.Fprintln(p.errOut, p.failed.Render(fmt.Sprintf("  x FAILED %s", f)))
			}
		}
		if p.quiet {
			continue
		}
		if slices.Contains(s.Skipped, src) {
			fmt.Fprintln(p.out, p.warn.Render("  - No content, nothing to slice"))
		}
		if slices.Contains(s.Pruned, src) {
			fmt.Fprintln(p.out, p.warn.Render(fmt.Sprintf("  - Deleted %s", src)))
		}
	}

	if p.quiet {
		return
	}

	fmt.Fprintln(p.out)
	switch {
	case dryRun:
		fmt.Fprintln(p.out, p.done.Render(fmt.Sprintf("Plan: %d backlog item(s) would be generated.", len(s.Items))))
	case len(s.Failures) > 0:
		fmt.Fprintln(p.out, p.warn.Render(fmt.Sprintf("Done with %d failure(s): %d backlog item(s) generated.", len(s.Failures), len(s.Items))))
	default:
		fmt.Fprintln(p.out, p.done.Render(fmt.Sprintf("Done! %d backlog item(s) generated.", len(s.Items))))
	}

	if p.verbose {
		fmt.Fprintf(p.out, "%d document(s), next index %d (%v)\n", s.Documents, s.NextIndex, elapsed.Round(time.Millisecond))
	}
}

// runReport is the machine-readable form of a run.
type runReport struct {
	OutputDir  string                `yaml:"outputDir"`
	DryRun     bool                  `yaml:"dryRun"`
	StartIndex int                   `yaml:"startIndex"`
	NextIndex  int                   `yaml:"nextIndex"`
	Documents  int                   `yaml:"documents"`
	Items      []mdslice.BacklogItem `yaml:"items"`
	Skipped    []string              `yaml:"skipped,omitempty"`
	Pruned     []string              `yaml:"pruned,omitempty"`
	Failures   []failureReport       `yaml:"failures,omitempty"`
}

type failureReport struct {
	Kind   string `yaml:"kind"`
	Source string `yaml:"source"`
	Path   string `yaml:"path"`
	Error  string `yaml:"error"`
}

// printYAML writes the summary as YAML. Failures are also part of the
// document, so nothing is written to the error writer.
func (p *printer) printYAML(outputDir string, s *mdslice.Summary, dryRun bool) error {
	report := runReport{
		OutputDir:  outputDir,
		DryRun:     dryRun,
		StartIndex: s.StartIndex,
		NextIndex:  s.NextIndex,
		Documents:  s.Documents,
		Items:      s.Items,
		Skipped:    s.Skipped,
		Pruned:     s.Pruned,
	}
	if report.Items == nil {
		report.Items = []mdslice.BacklogItem{}
	}
	for _, f := range s.Failures {
		report.Failures = append(report.Failures, failureReport{
			Kind:   string(f.Kind),
			Source: f.Source,
			Path:   f.Path,
			Error:  f.Err.Error(),
		})
	}

	data, err := yamlutil.Marshal(report)
	if err != nil {
		return err
	}
	_, err = p.out.Write(data)
	return err
}
