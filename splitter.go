package mdslice

import (
	"fmt"
	"strings"

	"github.com/alnah/go-mdslice/internal/pipeline"
)

// headerMarker opens a level-2 header, the only recognized split point.
// "#" and "###" headers stay inside the enclosing section body.
const headerMarker = "## "

// SplitOptions enables optional splitting behavior.
// The zero value is a plain line scan.
type SplitOptions struct {
	// FenceAware ignores header-looking lines inside fenced code blocks
	// and raw HTML blocks.
	FenceAware bool

	// StripFrontMatter removes a leading "---" YAML block before splitting.
	StripFrontMatter bool
}

// Split decomposes a document into ordered sections.
//
// Text before the first "## " line becomes the preamble when it is not blank.
// Each "## " line opens a section whose body runs up to the next one or the
// end of the document. Titles and bodies are trimmed. A blank document
// yields no section.
func Split(doc Document) []Section {
	return splitLines(pipeline.NormalizeLineEndings(doc.Content), nil)
}

// SplitWith is Split with optional behavior. It only fails when front matter
// stripping is enabled and the front matter cannot be decoded.
func SplitWith(doc Document, opts SplitOptions) ([]Section, error) {
	content := pipeline.NormalizeLineEndings(doc.Content)

	if opts.StripFrontMatter {
		body, _, err := pipeline.StripFrontMatter(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
		}
		content = body
	}

	var ignored map[int]bool
	if opts.FenceAware {
		ignored = pipeline.CodeBlockLines(content)
	}

	return splitLines(content, ignored), nil
}

// splitLines scans content line by line. Lines listed in ignored are never
// treated as headers.
func splitLines(content string, ignored map[int]bool) []Section {
	lines := strings.Split(content, "\n")

	var (
		sections []Section
		title    string
		inHeader bool
		start    int
	)

	flush := func(end int) {
		body := strings.TrimSpace(strings.Join(lines[start:end], "\n"))
		if !inHeader {
			if body != "" {
				sections = append(sections, Section{Order: len(sections), Preamble: true, Body: body})
			}
			return
		}
		sections = append(sections, Section{Order: len(sections), Title: title, Body: body})
	}

	for i, line := range lines {
		if !strings.HasPrefix(line, headerMarker) || ignored[i] {
			continue
		}
		flush(i)
		inHeader = true
		title = strings.TrimSpace(line[len(headerMarker):])
		start = i + 1
	}
	flush(len(lines))

	return sections
}
