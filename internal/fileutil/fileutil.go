// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyPath is returned when a write target is empty.
var ErrEmptyPath = errors.New("path cannot be empty")

// tempPattern names in-flight writes. The leading dot and the absence of an
// underscore keep them out of backlog index scans.
const tempPattern = ".mdslice-*.tmp"

// markdownExtensions lists the extensions treated as markdown sources.
var markdownExtensions = []string{".md", ".markdown"}

// WriteFileAtomic writes content to path through a temporary file in the
// same directory, then renames it into place. On any failure the temporary
// file is removed and path is left untouched, so readers never observe a
// truncated file. An existing file at path is replaced.
func WriteFileAtomic(path, content string, perm os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmpFile.WriteString(content); err != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmpFile.Chmod(perm); err != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsMarkdown reports whether path has a markdown extension (case-insensitive).
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, m := range markdownExtensions {
		if ext == m {
			return true
		}
	}
	return false
}

// TrimMarkdownExt returns the base name of path without its markdown extension.
// Other extensions are kept.
//
// Examples:
//   - "docs/vision.md" -> "vision"
//   - "notes.MARKDOWN" -> "notes"
//   - "data.txt" -> "data.txt"
func TrimMarkdownExt(path string) string {
	base := filepath.Base(path)
	if IsMarkdown(base) {
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "backlog" -> false (name)
//   - "./mdslice.yaml" -> true (relative path)
//   - "/etc/mdslice.yaml" -> true (absolute)
//   - "C:\config\mdslice.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// HasGlobMeta reports whether s contains glob metacharacters understood by
// filepath.Match.
func HasGlobMeta(s string) bool {
	return strings.ContainsAny(s, "*?[")
}
