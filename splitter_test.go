package mdslice

import (
	"errors"
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestSplit - Level-2 header segmentation
// ---------------------------------------------------------------------------

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []Section
	}{
		{
			name:    "preamble then headers",
			content: "Pre\n## A\nbodyA\n## B\nbodyB",
			want: []Section{
				{Order: 0, Preamble: true, Body: "Pre"},
				{Order: 1, Title: "A", Body: "bodyA"},
				{Order: 2, Title: "B", Body: "bodyB"},
			},
		},
		{
			name:    "header first has no preamble",
			content: "## A\nx\n## B\ny\n",
			want: []Section{
				{Order: 0, Title: "A", Body: "x"},
				{Order: 1, Title: "B", Body: "y"},
			},
		},
		{
			name:    "level 1 and 3 headers are not split points",
			content: "# Title\n\nintro\n\n### Sub\n\nmore\n",
			want: []Section{
				{Order: 0, Preamble: true, Body: "# Title\n\nintro\n\n### Sub\n\nmore"},
			},
		},
		{
			name:    "nested headers stay in body",
			content: "## A\n\npara1\n\n### Sub\npara2\n#### Deep\n",
			want: []Section{
				{Order: 0, Title: "A", Body: "para1\n\n### Sub\npara2\n#### Deep"},
			},
		},
		{
			name:    "blank preamble dropped",
			content: "\n\n   \n## A\nx",
			want: []Section{
				{Order: 0, Title: "A", Body: "x"},
			},
		},
		{
			name:    "header without body",
			content: "## Only",
			want: []Section{
				{Order: 0, Title: "Only", Body: ""},
			},
		},
		{
			name:    "empty title still splits",
			content: "## \nbody",
			want: []Section{
				{Order: 0, Title: "", Body: "body"},
			},
		},
		{
			name:    "title trimmed",
			content: "##   Spaced Title  \nbody",
			want: []Section{
				{Order: 0, Title: "Spaced Title", Body: "body"},
			},
		},
		{
			name:    "marker must start the line",
			content: " ## Indented\n##NoSpace\n##\tTab\n",
			want: []Section{
				{Order: 0, Preamble: true, Body: "## Indented\n##NoSpace\n##\tTab"},
			},
		},
		{
			name:    "CRLF line endings",
			content: "Pre\r\n## A\r\nbody\r\n",
			want: []Section{
				{Order: 0, Preamble: true, Body: "Pre"},
				{Order: 1, Title: "A", Body: "body"},
			},
		},
		{
			name:    "headers inside code fences split by default",
			content: "## A\n```\n## B\n```\n",
			want: []Section{
				{Order: 0, Title: "A", Body: "```"},
				{Order: 1, Title: "B", Body: "```"},
			},
		},
		{name: "empty document", content: "", want: nil},
		{name: "whitespace only document", content: "  \n\t\n\n", want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Split(Document{Path: "doc.md", Content: tt.content})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() =\n%#v\nwant\n%#v", got, tt.want)
			}
		})
	}
}

func TestSection_Heading(t *testing.T) {
	t.Parallel()

	if got := (Section{Title: "Roadmap"}).Heading(); got != "## Roadmap" {
		t.Errorf("Heading() = %q, want %q", got, "## Roadmap")
	}
	if got := (Section{Preamble: true, Body: "x"}).Heading(); got != "" {
		t.Errorf("preamble Heading() = %q, want empty", got)
	}
}

// ---------------------------------------------------------------------------
// TestSplitWith - Optional splitting behavior
// ---------------------------------------------------------------------------

func TestSplitWith(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		opts    SplitOptions
		want    []Section
	}{
		{
			name:    "zero options match Split",
			content: "Pre\n## A\nbodyA",
			want: []Section{
				{Order: 0, Preamble: true, Body: "Pre"},
				{Order: 1, Title: "A", Body: "bodyA"},
			},
		},
		{
			name:    "fence aware skips fenced headers",
			content: "## A\n```\n## not a header\n```\n## B\nb\n",
			opts:    SplitOptions{FenceAware: true},
			want: []Section{
				{Order: 0, Title: "A", Body: "```\n## not a header\n```"},
				{Order: 1, Title: "B", Body: "b"},
			},
		},
		{
			name:    "fence aware skips tilde fences",
			content: "Intro\n~~~md\n## sample\n~~~\n",
			opts:    SplitOptions{FenceAware: true},
			want: []Section{
				{Order: 0, Preamble: true, Body: "Intro\n~~~md\n## sample\n~~~"},
			},
		},
		{
			name:    "fence aware skips html blocks",
			content: "<div>\n## inside html\n</div>\n\n## Real\nx\n",
			opts:    SplitOptions{FenceAware: true},
			want: []Section{
				{Order: 0, Preamble: true, Body: "<div>\n## inside html\n</div>"},
				{Order: 1, Title: "Real", Body: "x"},
			},
		},
		{
			name:    "front matter stripped",
			content: "---\ntitle: Vision\ntags: [a, b]\n---\nIntro\n## A\nbody\n",
			opts:    SplitOptions{StripFrontMatter: true},
			want: []Section{
				{Order: 0, Preamble: true, Body: "Intro"},
				{Order: 1, Title: "A", Body: "body"},
			},
		},
		{
			name:    "front matter kept by default",
			content: "---\ntitle: Vision\n---\n## A\nbody\n",
			want: []Section{
				{Order: 0, Preamble: true, Body: "---\ntitle: Vision\n---"},
				{Order: 1, Title: "A", Body: "body"},
			},
		},
		{
			name:    "empty front matter block",
			content: "---\n---\n## A\nbody\n",
			opts:    SplitOptions{StripFrontMatter: true},
			want: []Section{
				{Order: 0, Title: "A", Body: "body"},
			},
		},
		{
			name:    "no front matter is a no-op",
			content: "Intro\n## A\nbody\n",
			opts:    SplitOptions{StripFrontMatter: true},
			want: []Section{
				{Order: 0, Preamble: true, Body: "Intro"},
				{Order: 1, Title: "A", Body: "body"},
			},
		},
		{
			name:    "front matter only",
			content: "---\ntitle: Empty\n---\n",
			opts:    SplitOptions{StripFrontMatter: true, FenceAware: true},
			want:    nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := SplitWith(Document{Path: "doc.md", Content: tt.content}, tt.opts)
			if err != nil {
				t.Fatalf("SplitWith() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitWith() =\n%#v\nwant\n%#v", got, tt.want)
			}
		})
	}
}

func TestSplitWith_InvalidFrontMatter(t *testing.T) {
	t.Parallel()

	doc := Document{Path: "doc.md", Content: "---\ntitle: [unclosed\n---\n## A\nbody\n"}

	_, err := SplitWith(doc, SplitOptions{StripFrontMatter: true})
	if !errors.Is(err, ErrFrontMatter) {
		t.Errorf("SplitWith() error = %v, want ErrFrontMatter", err)
	}
}
