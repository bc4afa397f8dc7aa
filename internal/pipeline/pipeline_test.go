package pipeline_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/alnah/go-mdslice/internal/pipeline"
)

// ---------------------------------------------------------------------------
// TestNormalizeLineEndings
// ---------------------------------------------------------------------------

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "unix unchanged", in: "a\nb\n", want: "a\nb\n"},
		{name: "windows", in: "a\r\nb\r\n", want: "a\nb\n"},
		{name: "classic mac", in: "a\rb\r", want: "a\nb\n"},
		{name: "mixed", in: "a\r\nb\rc\n", want: "a\nb\nc\n"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pipeline.NormalizeLineEndings(tt.in); got != tt.want {
				t.Errorf("NormalizeLineEndings(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestStripFrontMatter
// ---------------------------------------------------------------------------

func TestStripFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		wantBody string
		wantMeta map[string]any
	}{
		{
			name:     "yaml block",
			in:       "---\ntitle: Vision\n---\n## A\nbody\n",
			wantBody: "## A\nbody\n",
			wantMeta: map[string]any{"title": "Vision"},
		},
		{
			name:     "no front matter",
			in:       "## A\nbody\n",
			wantBody: "## A\nbody\n",
		},
		{
			name:     "toml delimiters are content",
			in:       "+++\ntitle = \"x\"\n+++\n## A\n",
			wantBody: "+++\ntitle = \"x\"\n+++\n## A\n",
		},
		{
			name:     "empty block",
			in:       "---\n---\n## A\n",
			wantBody: "## A\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body, meta, err := pipeline.StripFrontMatter(tt.in)
			if err != nil {
				t.Fatalf("StripFrontMatter() error = %v", err)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
			if tt.wantMeta != nil && !reflect.DeepEqual(meta, tt.wantMeta) {
				t.Errorf("meta = %v, want %v", meta, tt.wantMeta)
			}
		})
	}
}

func TestStripFrontMatter_Invalid(t *testing.T) {
	t.Parallel()

	_, _, err := pipeline.StripFrontMatter("---\ntitle: [unclosed\n---\nbody\n")
	if !errors.Is(err, pipeline.ErrFrontMatter) {
		t.Errorf("StripFrontMatter() error = %v, want ErrFrontMatter", err)
	}
}

// ---------------------------------------------------------------------------
// TestCodeBlockLines
// ---------------------------------------------------------------------------

func TestCodeBlockLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    []int
		notWant []int
	}{
		{
			name:    "backtick fence",
			in:      "## A\n```\n## inside\n```\n## B\n",
			want:    []int{2},
			notWant: []int{0, 4},
		},
		{
			name:    "tilde fence",
			in:      "text\n~~~md\n## one\n## two\n~~~\n",
			want:    []int{2, 3},
			notWant: []int{0},
		},
		{
			name:    "html block",
			in:      "<div>\n## inside html\n</div>\n\n## Real\n",
			want:    []int{1},
			notWant: []int{4},
		},
		{
			name:    "plain document",
			in:      "## A\nbody\n## B\n",
			notWant: []int{0, 1, 2},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := pipeline.CodeBlockLines(tt.in)
			for _, line := range tt.want {
				if !got[line] {
					t.Errorf("line %d not reported as code: %v", line, got)
				}
			}
			for _, line := range tt.notWant {
				if got[line] {
					t.Errorf("line %d reported as code: %v", line, got)
				}
			}
		})
	}
}
