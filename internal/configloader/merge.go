package configloader

import (
	"maps"

	"github.com/yaklabco/gomdparse/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Booleans: only true overrides, so a lower layer cannot be switched off
//   - Rule maps: merged per key, with override's modes taking precedence
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AnchorPrefix != "" {
		result.AnchorPrefix = override.AnchorPrefix
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Format != "" {
		result.Format = override.Format
	}

	if override.HeadingIDs {
		result.HeadingIDs = true
	}
	if override.AllowNoSpaceInHeadings {
		result.AllowNoSpaceInHeadings = true
	}
	if override.DetectLanguage {
		result.DetectLanguage = true
	}
	if override.Backups.Enabled {
		result.Backups.Enabled = true
	}

	result.Blocks = mergeModes(base.Blocks, override.Blocks)
	result.Inlines = mergeModes(base.Inlines, override.Inlines)

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// mergeModes merges two rule-mode maps into a fresh map.
func mergeModes(base, override map[string]string) map[string]string {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]string, len(base)+len(override))
	maps.Copy(result, base)
	maps.Copy(result, override)
	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
