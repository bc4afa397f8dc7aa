package mdslice

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/alnah/go-mdslice/internal/fileutil"
)

// preambleSuffix is appended to the source basename to name the preamble item.
const preambleSuffix = "_Preamble"

// itemExtension is the extension of every backlog item.
const itemExtension = ".md"

// Sanitize turns a raw header title into a filesystem-safe slug.
//
// Only letters, digits, spaces, hyphens and underscores survive; every other
// character is dropped. Remaining spaces become underscores, so a run of
// spaces yields a run of underscores. The result may be empty.
//
//	Sanitize("Fix: Bug #123!!") // "Fix_Bug_123"
func Sanitize(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range strings.TrimSpace(title) {
		if isSlugRune(r) {
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
}

func isSlugRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' ' || r == '-' || r == '_'
}

// PreambleSlug derives the preamble slug from a source basename:
// the markdown extension is dropped, the rest is sanitized and
// suffixed with "_Preamble".
//
//	PreambleSlug("vision init.md") // "vision_init_Preamble"
func PreambleSlug(sourceBasename string) string {
	return Sanitize(fileutil.TrimMarkdownExt(sourceBasename)) + preambleSuffix
}

// ItemFilename formats the filename of a backlog item.
// Indices are zero-padded to at least three digits.
func ItemFilename(index int, slug string) string {
	return fmt.Sprintf("%03d_%s%s", index, slug, itemExtension)
}
