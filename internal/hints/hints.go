// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-mdslice/internal/fileutil"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/mdslice/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/mdslice) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/mdslice") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForNoSources returns hints when no markdown document matched the input.
func ForNoSources(input string) string {
	if input == "" {
		return format("pass a file, directory or glob, or set source.pattern in the config")
	}
	var hints []string
	if !fileutil.HasGlobMeta(input) {
		hints = append(hints, "directories are not searched recursively")
	}
	hints = append(hints, "only .md and .markdown files are sliced")
	return formatHints(hints)
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check the path is a directory and its parent is writable, or use --output")
}

// ForFrontMatter returns hints for front matter decoding errors.
func ForFrontMatter() string {
	return format("fix the YAML between the leading --- lines, or drop --strip-front-matter")
}

// ForPartialRun returns a hint when some items or sources failed.
func ForPartialRun(strict bool) string {
	if strict {
		return format("fix the failures above and rerun; written items are kept and numbering resumes after them")
	}
	return format("rerun with --strict to fail the run on any item error")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
