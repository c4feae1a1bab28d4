// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support, rule alias normalization and validation.
package configloader

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/samber/lo"

	"github.com/yaklabco/gomdparse/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GOMDPARSE_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.gomdparse.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/gomdparse/config.yaml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{name: "user", path: paths.User, skip: opts.IgnoreUserConfig},
		{name: "project", path: paths.Project, skip: opts.IgnoreProjectConfig},
		{name: "explicit", path: paths.Explicit},
	}

	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		fileCfg, err := loadConfigFile(layer.path, result)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cliCfg := *opts.CLIConfig
		var warnings []string
		cliCfg.Blocks = normalizeRuleKeys(cliCfg.Blocks, NormalizeBlockRule, BlockGroup, &warnings)
		cliCfg.Inlines = normalizeRuleKeys(cliCfg.Inlines, NormalizeInlineRule, InlineGroup, &warnings)
		for _, w := range warnings {
			result.Warnings = append(result.Warnings, "flags: "+w)
		}
		cfg = merge(cfg, &cliCfg)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads, normalizes and validates one YAML configuration file.
func loadConfigFile(path string, result *LoadResult) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var warnings []string
	cfg.Blocks = normalizeRuleKeys(cfg.Blocks, NormalizeBlockRule, BlockGroup, &warnings)
	cfg.Inlines = normalizeRuleKeys(cfg.Inlines, NormalizeInlineRule, InlineGroup, &warnings)
	for _, w := range warnings {
		result.Warnings = append(result.Warnings, path+": "+w)
	}

	validation := ValidateWithFile(cfg, path)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	return cfg, nil
}

// normalizeRuleKeys converts rule aliases to canonical names and expands groups.
// Group entries are applied first so an explicit rule always wins over its group.
// Unknown keys are kept so validation can report them.
func normalizeRuleKeys(
	modes map[string]string,
	normalize func(string) string,
	group func(string) []string,
	warnings *[]string,
) map[string]string {
	if len(modes) == 0 {
		return modes
	}

	keys := lo.Keys(modes)
	slices.Sort(keys)

	normalized := make(map[string]string, len(modes))

	for _, key := range keys {
		for _, name := range group(key) {
			normalized[name] = modes[key]
		}
	}

	seen := make(map[string]string)
	for _, key := range keys {
		if group(key) != nil {
			continue
		}

		name := normalize(key)
		if name == "" {
			normalized[key] = modes[key]
			continue
		}

		if original, exists := seen[name]; exists {
			*warnings = append(*warnings,
				fmt.Sprintf("duplicate rule configuration: %q and %q both refer to %s; using %q",
					original, key, name, key))
		}
		seen[name] = key
		normalized[name] = modes[key]
	}

	return normalized
}
