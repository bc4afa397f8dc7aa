package mdslice

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// NextIndex returns the first free backlog index in dir.
//
// Only entry names are inspected: for each regular entry, the prefix before
// the first underscore is parsed when it consists solely of ASCII digits.
// The result is the highest such prefix plus one, or 1 when none is found.
// A missing directory counts as empty.
func NextIndex(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 1, nil
		}
		return 0, fmt.Errorf("%w: %v", ErrListOutputDir, err)
	}

	highest := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if idx, ok := indexPrefix(entry.Name()); ok && idx > highest {
			highest = idx
		}
	}
	return highest + 1, nil
}

// indexPrefix parses the numeric prefix of an item filename.
func indexPrefix(name string) (int, bool) {
	prefix, _, found := strings.Cut(name, "_")
	if !found || !isDigits(prefix) {
		return 0, false
	}
	idx, err := strconv.Atoi(prefix)
	if err != nil {
		// Out of int range.
		return 0, false
	}
	return idx, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
