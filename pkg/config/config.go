// Package config defines the configuration model for gomdparse.
// These types are plain data loaded from YAML; internal/configloader resolves them.
package config

import "github.com/yaklabco/gomdparse/pkg/render/markdown"

// OutputFormat selects how the parse command prints a document tree.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// BackupsConfig controls backup behavior when fmt rewrites files.
type BackupsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config is the root configuration structure for gomdparse.
type Config struct {
	// Width is the line width used when printing Markdown.
	Width int `yaml:"width"`

	// AnchorPrefix is prepended to footnote and heading anchors in HTML output.
	AnchorPrefix string `yaml:"anchor_prefix"`

	// HeadingIDs adds id attributes to rendered headings.
	HeadingIDs bool `yaml:"heading_ids"`

	// AllowNoSpaceInHeadings accepts "#Heading" as an ATX heading.
	AllowNoSpaceInHeadings bool `yaml:"allow_no_space_in_headings"`

	// DetectLanguage fills empty fenced code info strings with a guessed language.
	DetectLanguage bool `yaml:"detect_language"`

	// Blocks maps block rule names to a mode ("parse", "ignore" or "skip").
	Blocks map[string]string `yaml:"blocks"`

	// Inlines maps inline rule names to a mode ("parse", "ignore" or "skip").
	Inlines map[string]string `yaml:"inlines"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore"`

	// Backups configures backup behavior when writing.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// Format specifies the parse command output format.
	Format OutputFormat `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:   markdown.DefaultWidth,
		Blocks:  make(map[string]string),
		Inlines: make(map[string]string),
		Format:  FormatJSON,
		Jobs:    0, // 0 means use GOMAXPROCS
	}
}
