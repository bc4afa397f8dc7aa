package main

// Notes:
// - These tests use t.Setenv and cannot run in parallel.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-mdslice/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("MDSLICE_CONFIG", "team")
	t.Setenv("MDSLICE_SOURCE", "docs/reference/*.md")
	t.Setenv("MDSLICE_OUTPUT_DIR", "out")
	t.Setenv("MDSLICE_PRUNE", "1")

	env := loadEnvConfig()

	if env.ConfigPath != "team" || env.Source != "docs/reference/*.md" || env.OutputDir != "out" {
		t.Errorf("loadEnvConfig() = %+v", env)
	}
	if env.Prune == nil || !*env.Prune {
		t.Errorf("Prune = %v, want true", env.Prune)
	}
}

func TestLoadEnvConfig_Prune(t *testing.T) {
	tests := []struct {
		value string
		want  *bool
	}{
		{"", nil},
		{"true", boolPtr(true)},
		{"false", boolPtr(false)},
		{"0", boolPtr(false)},
		{"maybe", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("MDSLICE_PRUNE", tt.value)

			got := loadEnvConfig().Prune
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("Prune = %v, want unset", *got)
			case tt.want != nil && (got == nil || *got != *tt.want):
				t.Errorf("Prune = %v, want %v", got, *tt.want)
			}
		})
	}
}

func TestApplyEnvConfig(t *testing.T) {
	cfg := &config.Config{
		Source: config.SourceConfig{Pattern: "from-file"},
		Output: config.OutputConfig{Dir: "from-file"},
		Slice:  config.SliceConfig{Prune: true},
	}

	applyEnvConfig(&envConfig{OutputDir: "from-env", Prune: boolPtr(false)}, cfg)

	if cfg.Output.Dir != "from-env" {
		t.Errorf("Output.Dir = %q, want from-env", cfg.Output.Dir)
	}
	if cfg.Source.Pattern != "from-file" {
		t.Errorf("Source.Pattern = %q, unset env should keep file value", cfg.Source.Pattern)
	}
	if cfg.Slice.Prune {
		t.Error("MDSLICE_PRUNE=false should disable pruning")
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("MDSLICE_OUTPUT", "typo")
	t.Setenv("MDSLICE_OUTPUT_DIR", "fine")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	if !strings.Contains(buf.String(), "MDSLICE_OUTPUT ") {
		t.Errorf("expected warning for MDSLICE_OUTPUT, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "MDSLICE_OUTPUT_DIR") {
		t.Errorf("known variable reported as unknown: %q", buf.String())
	}
}

func boolPtr(b bool) *bool { return &b }
