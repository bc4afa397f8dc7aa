package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-mdslice/internal/fileutil"
	"github.com/alnah/go-mdslice/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// DefaultOutputDir is where backlog items go when nothing else is set.
const DefaultOutputDir = "docs/backlog"

// MaxPathLength bounds every path-like field.
const MaxPathLength = 4096 // PATH_MAX on Linux

// appDirName is the directory searched under os.UserConfigDir.
const appDirName = "mdslice"

func init() {
	// Report field names as they are spelled in the YAML file.
	validation.ErrorTag = "yaml"
}

// Config holds all configuration for a slicing run.
type Config struct {
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`
	Slice  SliceConfig  `yaml:"slice"`
}

// SourceConfig defines where documents are read from.
type SourceConfig struct {
	Pattern string `yaml:"pattern"` // File, directory or glob (empty = must specify)
}

// OutputConfig defines where backlog items are written.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Empty = DefaultOutputDir
}

// SliceConfig toggles optional pipeline behavior.
type SliceConfig struct {
	Prune            bool `yaml:"prune"`            // Delete fully sliced sources
	FenceAware       bool `yaml:"fenceAware"`       // Skip "## " lines in code blocks
	StripFrontMatter bool `yaml:"stripFrontMatter"` // Drop leading YAML front matter
}

// Validate checks field lengths and patterns.
// Called automatically by LoadConfig, but available for library users
// who construct Config manually.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Source),
		validation.Field(&c.Output),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return nil
}

// Validate checks the source pattern is a well-formed glob.
func (s SourceConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Pattern,
			validation.Length(0, MaxPathLength),
			validation.By(validGlob),
		),
	)
}

// Validate rejects output directories that would need expansion.
func (o OutputConfig) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Dir,
			validation.Length(0, MaxPathLength),
			validation.When(fileutil.HasGlobMeta(o.Dir), validation.By(noGlob)),
		),
	)
}

func validGlob(value any) error {
	pattern, _ := value.(string)
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("malformed pattern %q", pattern)
	}
	return nil
}

func noGlob(value any) error {
	return fmt.Errorf("must be a plain directory, not a pattern (%v)", value)
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Dir: DefaultOutputDir},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/mdslice/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
