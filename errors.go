package mdslice

import "errors"

// Sentinel errors for library operations.
var (
	// ErrNoDocuments is returned when a run is started without any document.
	// No side effect has happened when it is returned.
	ErrNoDocuments = errors.New("no documents to slice")

	// ErrEmptyOutputDir is returned when the output directory is not set.
	ErrEmptyOutputDir = errors.New("output directory cannot be empty")

	// Output directory errors.
	ErrListOutputDir   = errors.New("failed to list output directory")
	ErrCreateOutputDir = errors.New("failed to create output directory")

	// Per-document and per-item errors, collected in Summary.Failures.
	ErrReadDocument = errors.New("failed to read document")
	ErrInvalidUTF8  = errors.New("document is not valid UTF-8")
	ErrFrontMatter  = errors.New("failed to parse front matter")
	ErrWriteItem    = errors.New("failed to write backlog item")
	ErrPruneSource  = errors.New("failed to delete source document")
)
