package configloader

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"github.com/samber/lo"

	"github.com/yaklabco/gomdparse/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "blocks.table").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// settableModes lists the modes a configuration file may name.
//
//nolint:gochecknoglobals // Read-only lookup table.
var settableModes = []string{"parse", "ignore", "skip"}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Width < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "width",
			Value:   cfg.Width,
			Message: "width must be >= 0 (0 means default)",
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: json, yaml", cfg.Format),
		})
	}

	validateModes(result, "blocks", cfg.Blocks, blockRuleNames())
	validateModes(result, "inlines", cfg.Inlines, inlineRuleNames())

	if cfg.DetectLanguage && cfg.Blocks["code-block"] != "" && cfg.Blocks["code-block"] != "parse" {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "detect_language",
			Value:   true,
			Message: "language detection has no effect unless code-block is parsed",
		})
	}

	validateIgnorePatterns(cfg, result)
	sortErrors(result.Errors)

	return result
}

// validateModes checks rule names and modes in one rule map.
func validateModes(result *ValidationResult, section string, modes map[string]string, known []string) {
	for _, name := range lo.Keys(modes) {
		mode := modes[name]
		field := section + "." + name

		if !lo.Contains(known, name) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Value:   name,
				Message: fmt.Sprintf("unknown rule %q; must be one of: %s", name, strings.Join(known, ", ")),
			})
			continue
		}

		if _, err := config.RuleMode(mode); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Value:   mode,
				Message: fmt.Sprintf("invalid mode %q; must be one of: %s", mode, strings.Join(settableModes, ", ")),
			})
		}
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// sortErrors orders errors by field so reports are stable.
func sortErrors(errs []ValidationError) {
	slices.SortStableFunc(errs, func(a, b ValidationError) int {
		return strings.Compare(a.Field, b.Field)
	})
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
