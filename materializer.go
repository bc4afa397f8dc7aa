package mdslice

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-mdslice/internal/fileutil"
)

// itemPermissions is applied to every written backlog item.
const itemPermissions = 0o644 // rw-r--r--

// Materialize writes one backlog item per section into outputDir, starting
// at index start.
//
// The preamble is named after sourceBasename (see PreambleSlug); header
// sections are named after their sanitized title. Files are created or
// replaced atomically. A failed write is returned in failures and does not
// stop the remaining sections; it does not consume an index, so the indices
// of written items stay contiguous and next is start+len(items).
//
// outputDir must exist.
func Materialize(sections []Section, start int, sourceBasename, outputDir string) (items []BacklogItem, next int, failures []error) {
	items, next, failed := materialize(sections, start, sourceBasename, outputDir, writeItem)
	for _, f := range failed {
		failures = append(failures, f)
	}
	return items, next, failures
}

// writeFunc persists one item. Dry runs substitute a no-op.
type writeFunc func(item BacklogItem) error

func writeItem(item BacklogItem) error {
	return fileutil.WriteFileAtomic(item.Path, item.Content, itemPermissions)
}

func materialize(sections []Section, start int, sourceBasename, outputDir string, write writeFunc) ([]BacklogItem, int, []*Failure) {
	items := make([]BacklogItem, 0, len(sections))
	var failures []*Failure

	index := start
	for _, section := range sections {
		item := buildItem(section, index, sourceBasename, outputDir)
		if err := write(item); err != nil {
			failures = append(failures, &Failure{
				Kind: FailureWrite,
				Path: item.Path,
				Err:  fmt.Errorf("%w: %v", ErrWriteItem, err),
			})
			continue
		}
		items = append(items, item)
		index++
	}

	return items, index, failures
}

// buildItem derives the filename and content of a section at index.
func buildItem(section Section, index int, sourceBasename, outputDir string) BacklogItem {
	slug := Sanitize(section.Title)
	content := section.Heading() + "\n\n" + section.Body + "\n"
	if section.Preamble {
		slug = PreambleSlug(sourceBasename)
		content = section.Body + "\n"
	}

	filename := ItemFilename(index, slug)
	return BacklogItem{
		Index:    index,
		Slug:     slug,
		Filename: filename,
		Path:     filepath.Join(outputDir, filename),
		Content:  content,
	}
}
