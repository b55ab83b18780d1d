package configloader

import (
	"maps"

	"github.com/yaklabco/gomdhtml/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.HeadingIDs != "" {
		result.HeadingIDs = override.HeadingIDs
	}
	if override.OutputDir != "" {
		result.OutputDir = override.OutputDir
	}
	if override.MaxFileSize != 0 {
		result.MaxFileSize = override.MaxFileSize
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// Booleans can only be switched on by a higher layer.
	if override.DetectLanguage {
		result.DetectLanguage = true
	}
	if override.DelimiterRows {
		result.DelimiterRows = true
	}
	if override.Strict {
		result.Strict = true
	}
	if override.DryRun {
		result.DryRun = true
	}

	result.Severity = mergeSeverity(base.Severity, override.Severity)

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.IgnoreWarnings != nil {
		result.IgnoreWarnings = override.IgnoreWarnings
	}
	if override.Extensions != nil {
		result.Extensions = override.Extensions
	}

	return &result
}

// mergeSeverity merges per-kind severity overrides.
func mergeSeverity(base, override map[string]config.Severity) map[string]config.Severity {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.Severity, len(base)+len(override))
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
