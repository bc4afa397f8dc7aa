package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-mdslice/internal/fileutil"
)

// Sentinel errors for source discovery.
var (
	ErrNoInput          = errors.New("no source specified")
	ErrNoSources        = errors.New("no markdown documents found")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrInvalidPattern   = errors.New("invalid glob pattern")
)

// discoverSources expands each input into markdown files, in order:
//   - a file is taken as is (it must have a markdown extension)
//   - a directory contributes its markdown files, not recursively, sorted
//   - a glob contributes its markdown matches, sorted
//
// Duplicates and files already in outputDir are dropped.
func discoverSources(inputs []string, outputDir string) ([]string, error) {
	excluded := filepath.Clean(outputDir)
	seen := make(map[string]bool)
	var sources []string

	add := func(path string) {
		clean := filepath.Clean(path)
		if seen[clean] || filepath.Dir(clean) == excluded {
			return
		}
		seen[clean] = true
		sources = append(sources, path)
	}

	for _, input := range inputs {
		paths, err := expandInput(input)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			add(p)
		}
	}

	return sources, nil
}

// expandInput resolves a single file, directory or glob argument.
func expandInput(input string) ([]string, error) {
	if fileutil.HasGlobMeta(input) && !fileutil.FileExists(input) {
		return expandGlob(input)
	}

	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	if !info.IsDir() {
		if !fileutil.IsMarkdown(input) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, input)
		}
		return []string{input}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", input, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !fileutil.IsMarkdown(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(input, e.Name()))
	}
	return paths, nil
}

// expandGlob returns the markdown files matching pattern.
// filepath.Glob sorts its matches.
func expandGlob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPattern, pattern)
	}

	var paths []string
	for _, m := range matches {
		if fileutil.IsMarkdown(m) && fileutil.FileExists(m) {
			paths = append(paths, m)
		}
	}
	return paths, nil
}
