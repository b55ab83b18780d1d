package configloader

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/yaklabco/gomdhtml/pkg/config"
)

// envVarPrefix is the prefix for all gomdhtml environment variables.
const envVarPrefix = "GOMDHTML_"

// envOverrides mirrors the overridable config fields.
// Pointer fields stay nil when the variable is unset.
type envOverrides struct {
	HeadingIDs     *string  `env:"HEADING_IDS"`
	DetectLanguage *bool    `env:"DETECT_LANGUAGE"`
	DelimiterRows  *bool    `env:"DELIMITER_ROWS"`
	IgnoreWarnings []string `env:"IGNORE_WARNINGS" envSeparator:","`
	Ignore         []string `env:"IGNORE"          envSeparator:","`
	OutputDir      *string  `env:"OUTPUT_DIR"`
	MaxFileSize    *int64   `env:"MAX_FILE_SIZE"`
	Format         *string  `env:"FORMAT"`
	Jobs           *int     `env:"JOBS"`
	Strict         *bool    `env:"STRICT"`
	DryRun         *bool    `env:"DRY_RUN"`
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOMDHTML_ (e.g., GOMDHTML_HEADING_IDS).
func LoadFromEnv(cfg *config.Config) error {
	return loadFromEnv(cfg, nil)
}

// LoadFromEnvironment is LoadFromEnv over an explicit environment instead of the process one.
func LoadFromEnvironment(cfg *config.Config, environ map[string]string) error {
	if environ == nil {
		environ = map[string]string{}
	}
	return loadFromEnv(cfg, environ)
}

func loadFromEnv(cfg *config.Config, environ map[string]string) error {
	if cfg == nil {
		return nil
	}

	var overrides envOverrides
	opts := env.Options{Prefix: envVarPrefix, Environment: environ}
	if err := env.ParseWithOptions(&overrides, opts); err != nil {
		return fmt.Errorf("parse %s* variables: %w", envVarPrefix, err)
	}

	overrides.apply(cfg)
	return nil
}

// apply copies every set override onto cfg.
func (o envOverrides) apply(cfg *config.Config) {
	if o.HeadingIDs != nil {
		cfg.HeadingIDs = *o.HeadingIDs
	}
	if o.DetectLanguage != nil {
		cfg.DetectLanguage = *o.DetectLanguage
	}
	if o.DelimiterRows != nil {
		cfg.DelimiterRows = *o.DelimiterRows
	}
	if o.IgnoreWarnings != nil {
		cfg.IgnoreWarnings = trimAll(o.IgnoreWarnings)
	}
	if o.Ignore != nil {
		cfg.Ignore = trimAll(o.Ignore)
	}
	if o.OutputDir != nil {
		cfg.OutputDir = *o.OutputDir
	}
	if o.MaxFileSize != nil {
		cfg.MaxFileSize = *o.MaxFileSize
	}
	if o.Format != nil {
		cfg.Format = config.OutputFormat(*o.Format)
	}
	if o.Jobs != nil {
		cfg.Jobs = *o.Jobs
	}
	if o.Strict != nil {
		cfg.Strict = *o.Strict
	}
	if o.DryRun != nil {
		cfg.DryRun = *o.DryRun
	}
}

// trimAll trims each element and drops empty ones.
func trimAll(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOMDHTML_HEADING_IDS":     "Heading id style: counter or slug",
		"GOMDHTML_DETECT_LANGUAGE": "Detect the language of untagged code fences: true or false",
		"GOMDHTML_IGNORE_WARNINGS": "Comma-separated list of warning kinds to suppress",
		"GOMDHTML_IGNORE":          "Comma-separated list of ignore patterns",
		"GOMDHTML_OUTPUT_DIR":      "Directory for rendered HTML",
		"GOMDHTML_MAX_FILE_SIZE":   "Largest input rendered, in bytes",
		"GOMDHTML_FORMAT":          "Output format: text, table, json, sarif, or summary",
		"GOMDHTML_JOBS":            "Number of parallel workers (0 = auto)",
		"GOMDHTML_STRICT":          "Fail when any warning is reported: true or false",
		"GOMDHTML_DRY_RUN":         "Render without writing files: true or false",
		"GOMDHTML_LOG_LEVEL":       "Log level: debug, info, warn, or error",
	}
}
