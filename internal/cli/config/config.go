// Package config provides configuration management for the phylopaint
// CLI. Values merge from defaults, a phylopaint.yaml file, PHYLOPAINT_
// environment variables and command-line flags, in increasing priority.
package config

import (
	"fmt"
)

// Config holds all CLI configuration options.
type Config struct {
	// Cutoff is the reciprocal clade match quality cutoff.
	Cutoff float64 `koanf:"cutoff"`
	// Width is the rendered image width in pixels.
	Width int `koanf:"width"`
	// RowHeight is the vertical pixel spacing per leaf.
	RowHeight int `koanf:"row_height"`
	// FontSize is the leaf label size in points.
	FontSize float64 `koanf:"font_size"`
	// ImageFormat selects svg or png output.
	ImageFormat string `koanf:"image_format"`
	// BracketedSupport enables the bracketed support preprocessing.
	BracketedSupport bool `koanf:"bracketed_support"`
	// QuotedNames allows single-quoted leaf names.
	QuotedNames bool `koanf:"quoted_names"`
	// NoMidpoint disables midpoint rooting before analysis.
	NoMidpoint bool `koanf:"no_midpoint"`
	// ShowSupport draws support values on internal nodes.
	ShowSupport bool `koanf:"show_support"`
	// Palette overrides the highlight colors.
	Palette []string `koanf:"palette"`
	// Verbose enables progress output on stderr.
	Verbose bool `koanf:"verbose"`
	// OutputFormat selects the terminal output mode (auto|text|markdown|json).
	OutputFormat string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultCutoff      = 0.4
	DefaultWidth       = 1024
	DefaultRowHeight   = 18
	DefaultFontSize    = 12.0
	DefaultImageFormat = "svg"
	DefaultOutput      = "auto"
)

// Validate checks the configuration for values no command could use.
func (c *Config) Validate() error {
	if c.Cutoff <= 0 || c.Cutoff > 1 {
		return fmt.Errorf("cutoff must be in (0, 1], got %v", c.Cutoff)
	}
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.RowHeight <= 0 {
		return fmt.Errorf("row_height must be positive, got %d", c.RowHeight)
	}
	switch c.ImageFormat {
	case "svg", "png":
	default:
		return fmt.Errorf("image_format must be svg or png, got %q", c.ImageFormat)
	}
	switch c.OutputFormat {
	case "auto", "text", "markdown", "json":
	default:
		return fmt.Errorf("output must be auto, text, markdown or json, got %q", c.OutputFormat)
	}
	return nil
}
