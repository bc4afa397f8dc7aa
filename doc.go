// Package mdslice slices long-form Markdown documents into indexed backlog items.
//
// # Quick Start
//
// Create a slicer for the backlog directory and hand it source files:
//
//	s, err := mdslice.NewSlicer("docs/backlog")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := s.SliceFiles([]string{"docs/reference/vision.md"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, name := range summary.Created() {
//	    fmt.Println(name)
//	}
//
// # Slicing Pipeline
//
// Each run follows these stages:
//
//  1. Index allocation: the output directory is listed once and the run
//     starts after the highest NNN_ prefix found there
//  2. Splitting: every "## " line opens a section; text before the first one
//     is the preamble
//  3. Materialization: one NNN_Slug.md file per section, written atomically
//  4. Pruning (optional): a source is deleted once all its items are written
//
// Numbering is continuous across every document of a run. Existing items are
// never renumbered or read; only their names are listed.
//
// # Naming
//
// Header sections are named after their title, reduced to letters, digits,
// hyphens and underscores (see Sanitize). The preamble is named after the
// source file:
//
//	vision.md                      docs/backlog/
//	---------                      -------------
//	Intro text            ->       006_vision_Preamble.md
//	## Fix: Bug #123!!    ->       007_Fix_Bug_123.md
//	## Roadmap            ->       008_Roadmap.md
//
// # Configuration
//
// Use functional options to customize the slicer:
//
//	s, err := mdslice.NewSlicer("docs/backlog",
//	    mdslice.WithPruneSource(true),           // delete fully sliced sources
//	    mdslice.WithFenceAware(true),            // skip "## " inside code fences
//	    mdslice.WithFrontMatterStripped(true),   // drop leading YAML front matter
//	    mdslice.WithDryRun(true),                // plan only, write nothing
//	)
//
// # Failures
//
// A run does as much as it can: unreadable documents, failed writes and failed
// deletions are collected in Summary.Failures and the run goes on. Only an
// empty input (ErrNoDocuments) or an unusable output directory aborts a run,
// before anything is written.
package mdslice
