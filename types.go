package mdslice

import "fmt"

// Document is a markdown source handed to the pipeline.
// It is never mutated once read.
type Document struct {
	Path    string // Source path, used for the preamble slug and pruning
	Content string // Raw UTF-8 markdown
}

// Section is one slice of a document.
// The preamble is the text before the first level-2 header; it has no title.
type Section struct {
	Order    int    // Position within the document, starting at 0
	Title    string // Trimmed header text, without the "## " marker
	Preamble bool   // True for the text preceding the first header
	Body     string // Trimmed text up to the next header
}

// Heading returns the markdown header line for the section,
// or "" for the preamble.
func (s Section) Heading() string {
	if s.Preamble {
		return ""
	}
	return headerMarker + s.Title
}

// BacklogItem is one materialized section.
type BacklogItem struct {
	Index    int    `yaml:"index"`
	Slug     string `yaml:"slug"`
	Filename string `yaml:"filename"`
	Path     string `yaml:"path"`   // Output path (directory + filename)
	Source   string `yaml:"source"` // Path of the originating document
	Content  string `yaml:"-"`
}

// FailureKind classifies a non-fatal pipeline failure.
type FailureKind string

// Failure kinds reported in Summary.Failures.
const (
	FailureRead  FailureKind = "read"
	FailureWrite FailureKind = "write"
	FailurePrune FailureKind = "prune"
)

// Failure records a document, item or prune step that did not succeed.
// The run continues past every failure kind.
type Failure struct {
	Kind   FailureKind
	Source string // Document the failure belongs to
	Path   string // Document path (read, prune) or item path (write)
	Err    error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s %s: %v", f.Kind, f.Path, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Summary describes the outcome of one pipeline run.
type Summary struct {
	StartIndex int           // First index allocated for this run
	NextIndex  int           // Index the next run would start from (absent new files)
	Documents  int           // Documents split (including those yielding no section)
	Items      []BacklogItem // Written items, in index order
	Skipped    []string      // Documents that produced no section
	Pruned     []string      // Sources deleted after a full slice
	Failures   []*Failure
}

// Created returns the filenames written during the run, in index order.
func (s *Summary) Created() []string {
	names := make([]string, len(s.Items))
	for i, item := range s.Items {
		names[i] = item.Filename
	}
	return names
}

// Failed reports whether any failure was recorded.
func (s *Summary) Failed() bool {
	return len(s.Failures) > 0
}

// Option configures a Slicer.
type Option func(*Slicer)

// WithPruneSource deletes each source document once all of its items
// have been written. Documents producing no section are never deleted.
func WithPruneSource(prune bool) Option {
	return func(s *Slicer) {
		s.prune = prune
	}
}

// WithFenceAware ignores "## " lines inside fenced code and HTML blocks.
func WithFenceAware(enabled bool) Option {
	return func(s *Slicer) {
		s.split.FenceAware = enabled
	}
}

// WithFrontMatterStripped drops a leading YAML front matter block
// before splitting.
func WithFrontMatterStripped(enabled bool) Option {
	return func(s *Slicer) {
		s.split.StripFrontMatter = enabled
	}
}

// WithDryRun allocates indices and builds items without touching the disk.
// Pruning is skipped in dry-run mode.
func WithDryRun(enabled bool) Option {
	return func(s *Slicer) {
		s.dryRun = enabled
	}
}
