package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-mdslice/internal/config"
)

// envPrefix starts every environment variable read by mdslice.
const envPrefix = "MDSLICE_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDSLICE_CONFIG: config file name or path
	Source     string // MDSLICE_SOURCE: default source file, directory or glob
	OutputDir  string // MDSLICE_OUTPUT_DIR: backlog directory
	Prune      *bool  // MDSLICE_PRUNE: delete fully sliced sources (nil = unset)
}

// knownEnvVars lists valid MDSLICE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDSLICE_CONFIG":     true,
	"MDSLICE_SOURCE":     true,
	"MDSLICE_OUTPUT_DIR": true,
	"MDSLICE_PRUNE":      true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized MDSLICE_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MDSLICE_CONFIG"),
		Source:     os.Getenv("MDSLICE_SOURCE"),
		OutputDir:  os.Getenv("MDSLICE_OUTPUT_DIR"),
	}

	// Unparsable booleans are ignored, like unset ones.
	if prune := os.Getenv("MDSLICE_PRUNE"); prune != "" {
		if b, err := strconv.ParseBool(prune); err == nil {
			cfg.Prune = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDSLICE_* variables.
// Helps catch typos like MDSLICE_OUTPUT instead of MDSLICE_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are applied later
// via mergeFlags, so: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Source != "" {
		cfg.Source.Pattern = env.Source
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Prune != nil {
		cfg.Slice.Prune = *env.Prune
	}
}
