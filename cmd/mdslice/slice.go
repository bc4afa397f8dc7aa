package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	mdslice "github.com/alnah/go-mdslice"
	"github.com/alnah/go-mdslice/internal/config"
	"github.com/alnah/go-mdslice/internal/fileutil"
	"github.com/alnah/go-mdslice/internal/hints"
)

// ErrItemsFailed is returned in --strict mode when any failure was recorded.
var ErrItemsFailed = errors.New("slicing finished with failures")

// runSlice orchestrates the slice and plan commands.
func runSlice(name string, args []string, env *Environment) error {
	flags, positional, err := parseSliceFlags(name, args, env.Stderr)
	if err != nil {
		return err
	}
	dryRun := flags.dryRun || name == cmdPlan

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	inputs := positional
	if len(inputs) == 0 && cfg.Source.Pattern != "" {
		inputs = []string{cfg.Source.Pattern}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("%w%s", ErrNoInput, hints.ForNoSources(""))
	}

	outputDir := resolveOutputDir(cfg)

	sources, err := discoverSources(inputs, outputDir)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("%w in %s%s", ErrNoSources, inputs[0], hints.ForNoSources(inputs[0]))
	}

	slicer, err := mdslice.NewSlicer(outputDir,
		mdslice.WithPruneSource(cfg.Slice.Prune),
		mdslice.WithFenceAware(cfg.Slice.FenceAware),
		mdslice.WithFrontMatterStripped(cfg.Slice.StripFrontMatter),
		mdslice.WithDryRun(dryRun),
	)
	if err != nil {
		return err
	}

	start := env.Now()
	summary, err := slicer.SliceFiles(sources)
	if err != nil {
		if errors.Is(err, mdslice.ErrListOutputDir) || errors.Is(err, mdslice.ErrCreateOutputDir) {
			return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
		}
		return err
	}
	elapsed := env.Now().Sub(start)

	p := newPrinter(env, flags.common.quiet, flags.common.verbose)
	if flags.format == formatYAML {
		if err := p.printYAML(slicer.OutputDir(), summary, dryRun); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	} else {
		p.printText(sources, summary, dryRun, elapsed)
	}

	if !summary.Failed() {
		return nil
	}
	if flags.strict {
		return fmt.Errorf("%w: %d failure(s)%s", ErrItemsFailed, len(summary.Failures), failureHint(summary, true))
	}
	if !flags.common.quiet && flags.format == formatText {
		fmt.Fprintln(env.Stderr, failureHint(summary, false)[1:])
	}
	return nil
}

// resolveConfig builds the effective configuration:
// CLI flags > env vars > config file > defaults.
func resolveConfig(flags *sliceFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	base := config.DefaultConfig()
	if env.Config != nil {
		c := *env.Config
		base = &c
	}

	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	cfg := base
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(userConfigCandidates(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// Boolean flags can only switch features on.
func mergeFlags(flags *sliceFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.prune {
		cfg.Slice.Prune = true
	}
	if flags.split.fenceAware {
		cfg.Slice.FenceAware = true
	}
	if flags.split.stripFrontMatter {
		cfg.Slice.StripFrontMatter = true
	}
}

// resolveOutputDir returns the configured output directory or the default.
func resolveOutputDir(cfg *config.Config) string {
	if cfg.Output.Dir != "" {
		return cfg.Output.Dir
	}
	return config.DefaultOutputDir
}

// userConfigCandidates returns where a named config would be looked up in
// the user config directory.
func userConfigCandidates(name string) []string {
	if fileutil.IsFilePath(name) {
		return nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "mdslice", name+".yaml")}
}

// failureHint picks the hint shown after a run with failures.
func failureHint(s *mdslice.Summary, strict bool) string {
	for _, f := range s.Failures {
		if errors.Is(f, mdslice.ErrFrontMatter) {
			return hints.ForFrontMatter()
		}
	}
	return hints.ForPartialRun(strict)
}
