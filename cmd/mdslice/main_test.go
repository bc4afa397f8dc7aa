package main

// Notes:
// - main() itself is not tested: it only configures GOMAXPROCS and exits
//   with runMain's code.
// - runMain is tested with injected writers; slicing behavior is covered in
//   slice_test.go.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-mdslice/internal/config"
)

// newTestEnv returns an Environment writing to buffers.
func newTestEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	env := &Environment{
		Now: func() time.Time {
			clock = clock.Add(5 * time.Millisecond)
			return clock
		},
		Stdout: &stdout,
		Stderr: &stderr,
		Config: config.DefaultConfig(),
	}
	return env, &stdout, &stderr
}

// ---------------------------------------------------------------------------
// TestIsCommand / TestLooksLikeSource - Command name detection
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"slice", true},
		{"plan", true},
		{"completion", true},
		{"version", true},
		{"help", true},
		{"foo", false},
		{"", false},
		{"doc.md", false},
		{"Slice", false}, // case sensitive
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := isCommand(tt.input); got != tt.want {
				t.Errorf("isCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLooksLikeSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"vision.md", true},
		{"docs/plan.markdown", true},
		{"docs/*.md", true},
		{"docs/reference", false},
		{"slice", false},
		{"notes.txt", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := looksLikeSource(tt.input); got != tt.want {
				t.Errorf("looksLikeSource(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain - Main entry point exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage and exits with ExitUsage",
			args:         []string{"mdslice"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: mdslice"},
		},
		{
			name:         "version command exits 0",
			args:         []string{"mdslice", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"mdslice " + Version},
		},
		{
			name:         "help command exits 0",
			args:         []string{"mdslice", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: mdslice", "Commands:"},
		},
		{
			name:         "help slice shows slice help",
			args:         []string{"mdslice", "help", "slice"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: mdslice slice", "--fence-aware"},
		},
		{
			name:         "help plan shows plan help",
			args:         []string{"mdslice", "help", "plan"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: mdslice plan", "Nothing is written"},
		},
		{
			name:         "help unknown command exits with ExitUsage",
			args:         []string{"mdslice", "help", "bogus"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: bogus"},
		},
		{
			name:         "slice --help exits 0",
			args:         []string{"mdslice", "slice", "--help"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Usage: mdslice slice"},
		},
		{
			name:         "unknown command exits with ExitUsage",
			args:         []string{"mdslice", "unknown"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: unknown"},
		},
		{
			name:         "unknown flag exits with ExitUsage",
			args:         []string{"mdslice", "slice", "--bogus"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid arguments"},
		},
		{
			name:         "markdown shorthand runs slice",
			args:         []string{"mdslice", "nonexistent.md", "-o", "unused"},
			wantCode:     ExitIO,
			wantInStderr: []string{"nonexistent.md"},
		},
		{
			name:     "unsupported shell exits with ExitUsage",
			args:     []string{"mdslice", "completion", "tcsh"},
			wantCode: ExitUsage,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}
