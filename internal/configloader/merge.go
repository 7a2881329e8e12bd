package configloader

import (
	"maps"

	"github.com/yaklabco/blockcont/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Maps: merged per key, with override's entries replacing base's
//   - Booleans: only true values in override take effect
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.LineBreak != "" {
		result.LineBreak = override.LineBreak
	}
	if override.Indent != "" {
		result.Indent = override.Indent
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// false is the zero value, so a later source cannot switch these off.
	if override.Write {
		result.Write = true
	}
	if override.NoBackups {
		result.NoBackups = true
	}
	if override.Backups.Enabled {
		result.Backups.Enabled = true
	}
	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}

	result.Languages = mergeLanguages(base.Languages, override.Languages)

	return &result
}

// mergeLanguages merges language tables. A language defined in override
// replaces the base definition as a whole.
func mergeLanguages(base, override map[string]config.LanguageConfig) map[string]config.LanguageConfig {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.LanguageConfig, len(base)+len(override))
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
