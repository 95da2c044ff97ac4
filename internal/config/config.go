// Package config holds the run options for zindex-tree.
//
// There is no configuration file and no environment lookup: options start from
// DefaultConfig and are overridden only by command-line flags the user set.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/harrison/zindex-tree/internal/fileutil"
	"github.com/harrison/zindex-tree/internal/logger"
	"github.com/harrison/zindex-tree/internal/report"
)

// Config represents the options for one scan
type Config struct {
	// Root is the directory to scan
	Root string

	// Format selects the report renderer (tree, yaml, json)
	Format string

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string

	// Color enables ANSI colors on output streams that are terminals
	Color bool

	// Extensions are the file extensions scanned (case-insensitive)
	Extensions []string

	// ExcludeDirs are directory names pruned from the walk
	ExcludeDirs []string
}

// DefaultConfig returns a Config with the tool's default behavior
func DefaultConfig() *Config {
	return &Config{
		Format:      report.FormatTree,
		LogLevel:    "warn",
		Color:       false,
		Extensions:  slices.Clone(fileutil.DefaultExtensions),
		ExcludeDirs: slices.Clone(fileutil.DefaultExcludeDirs),
	}
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(format *string, logLevel *string, colorOutput *bool) {
	if format != nil {
		c.Format = *format
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if colorOutput != nil {
		c.Color = *colorOutput
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("root directory cannot be empty")
	}

	if !slices.Contains(report.Formats, strings.ToLower(c.Format)) {
		return fmt.Errorf("invalid format %q, must be one of: %s", c.Format, strings.Join(report.Formats, ", "))
	}

	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("at least one file extension is required")
	}

	return nil
}

// WalkOptions converts the configuration into walker options.
func (c *Config) WalkOptions(log logger.Logger) fileutil.WalkOptions {
	return fileutil.WalkOptions{
		Extensions:  slices.Clone(c.Extensions),
		ExcludeDirs: slices.Clone(c.ExcludeDirs),
		Logger:      log,
	}
}
