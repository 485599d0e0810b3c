// Package config defines the topview configuration surface: output
// format, color mode, and log level, loadable from YAML files.
package config

import (
	"fmt"
)

// OutputFormat selects how command results are rendered.
type OutputFormat string

// Supported output formats.
const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ParseFormat validates an output format string.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatText, FormatJSON:
		return OutputFormat(s), nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text or json)", s)
}

// Config is the effective CLI configuration.
type Config struct {
	// Format is the output format: text or json.
	Format OutputFormat `yaml:"format"`

	// Color controls ANSI color: auto, always, never.
	Color string `yaml:"color"`

	// LogLevel sets the logger verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		Format:   FormatText,
		Color:    "auto",
		LogLevel: "info",
	}
}

// Validate checks enum fields.
func (c *Config) Validate() error {
	if _, err := ParseFormat(string(c.Format)); err != nil {
		return err
	}
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always, or never)", c.Color)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Merge overlays non-empty fields of other onto c and returns c.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}
	if other.Format != "" {
		c.Format = other.Format
	}
	if other.Color != "" {
		c.Color = other.Color
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	return c
}
