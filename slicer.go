package mdslice

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// dirPermissions is used when the output directory has to be created.
const dirPermissions = 0o750 // rwxr-x---

// Slicer drives the pipeline: it allocates the first free index once, then
// splits and materializes each document in order, passing the index counter
// from one document to the next.
//
// A Slicer is not safe for concurrent use, and two Slicers must not target
// the same output directory at the same time: indices are allocated from a
// single directory listing taken at the start of each run.
type Slicer struct {
	outputDir string
	prune     bool
	dryRun    bool
	split     SplitOptions

	write  writeFunc
	remove func(string) error
}

// NewSlicer creates a Slicer writing into outputDir.
// The directory is created on first write if it does not exist.
func NewSlicer(outputDir string, opts ...Option) (*Slicer, error) {
	if outputDir == "" {
		return nil, ErrEmptyOutputDir
	}

	s := &Slicer{
		outputDir: filepath.Clean(outputDir),
		write:     writeItem,
		remove:    os.Remove,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dryRun {
		s.write = func(BacklogItem) error { return nil }
	}
	return s, nil
}

// OutputDir returns the directory items are written to.
func (s *Slicer) OutputDir() string {
	return s.outputDir
}

// ReadDocument loads a markdown file. Content must be valid UTF-8.
func ReadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path resolved by the caller
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrReadDocument, err)
	}
	if !utf8.Valid(data) {
		return Document{}, fmt.Errorf("%w: %w", ErrReadDocument, ErrInvalidUTF8)
	}
	return Document{Path: path, Content: string(data)}, nil
}

// SliceFiles reads and slices the files at paths, in order.
// Unreadable files are reported in Summary.Failures and skipped.
// It returns ErrNoDocuments, without touching the disk, when paths is empty.
func (s *Slicer) SliceFiles(paths []string) (*Summary, error) {
	if len(paths) == 0 {
		return nil, ErrNoDocuments
	}

	sources := make([]source, len(paths))
	for i, p := range paths {
		p := p
		sources[i] = source{path: p, load: func() (Document, error) { return ReadDocument(p) }}
	}
	return s.run(sources)
}

// Run slices already loaded documents, in order.
// It returns ErrNoDocuments, without touching the disk, when docs is empty.
func (s *Slicer) Run(docs []Document) (*Summary, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	sources := make([]source, len(docs))
	for i, doc := range docs {
		doc := doc
		sources[i] = source{path: doc.Path, load: func() (Document, error) { return doc, nil }}
	}
	return s.run(sources)
}

// source defers reading a document until its turn comes.
type source struct {
	path string
	load func() (Document, error)
}

func (s *Slicer) run(sources []source) (*Summary, error) {
	start, err := NextIndex(s.outputDir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{StartIndex: start}
	index := start
	dirReady := s.dryRun

	for _, src := range sources {
		doc, err := src.load()
		if err != nil {
			summary.Failures = append(summary.Failures, &Failure{Kind: FailureRead, Source: src.path, Path: src.path, Err: err})
			continue
		}

		sections, err := SplitWith(doc, s.split)
		if err != nil {
			summary.Failures = append(summary.Failures, &Failure{Kind: FailureRead, Source: src.path, Path: src.path, Err: err})
			continue
		}

		summary.Documents++
		if len(sections) == 0 {
			summary.Skipped = append(summary.Skipped, doc.Path)
			continue
		}

		if !dirReady {
			if err := os.MkdirAll(s.outputDir, dirPermissions); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
			}
			dirReady = true
		}

		items, next, failures := materialize(sections, index, filepath.Base(doc.Path), s.outputDir, s.write)
		index = next
		for i := range items {
			items[i].Source = doc.Path
		}
		for _, f := range failures {
			f.Source = doc.Path
		}
		summary.Items = append(summary.Items, items...)
		summary.Failures = append(summary.Failures, failures...)

		if len(failures) == 0 {
			s.pruneSource(doc.Path, summary)
		}
	}

	summary.NextIndex = index
	return summary, nil
}

// pruneSource deletes a fully sliced document when pruning is enabled.
// Written items are kept whatever the outcome.
func (s *Slicer) pruneSource(path string, summary *Summary) {
	if !s.prune || s.dryRun || path == "" {
		return
	}
	if err := s.remove(path); err != nil {
		summary.Failures = append(summary.Failures, &Failure{
			Kind:   FailurePrune,
			Source: path,
			Path:   path,
			Err:    fmt.Errorf("%w: %v", ErrPruneSource, err),
		})
		return
	}
	summary.Pruned = append(summary.Pruned, path)
}
