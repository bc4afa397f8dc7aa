package main

import (
	"errors"
	"os"

	mdslice "github.com/alnah/go-mdslice"
	"github.com/alnah/go-mdslice/internal/config"
)

// Exit codes for mdslice CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Run completed (item failures are reported but tolerated)
	ExitGeneral = 1 // General/unexpected error, or --strict with failures
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // No sources, unusable output directory, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, mdslice.ErrEmptyOutputDir) ||
		errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidPattern) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoSources) ||
		errors.Is(err, mdslice.ErrNoDocuments) ||
		errors.Is(err, mdslice.ErrListOutputDir) ||
		errors.Is(err, mdslice.ErrCreateOutputDir) {
		return ExitIO
	}

	return ExitGeneral
}
