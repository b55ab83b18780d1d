// Package config defines core configuration types for gomdhtml.
// These types are pure data structures with no dependency on a particular config loader.
package config

import "slices"

// Severity represents the severity level of a rendering warning.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if the severity is one of the known levels.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// Rank orders severities from least (info) to most (error) important.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// OutputFormat specifies the output format for warnings.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatSummary OutputFormat = "summary"
)

// OutputFormats returns all supported output formats.
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatText, FormatTable, FormatJSON, FormatSARIF, FormatSummary}
}

// IsValid returns true if the output format is supported.
func (f OutputFormat) IsValid() bool {
	return slices.Contains(OutputFormats(), f)
}

// Heading id styles accepted by HeadingIDs.
const (
	HeadingIDsCounter = "counter"
	HeadingIDsSlug    = "slug"
)

// DefaultMaxFileSize is the largest Markdown file rendered by default (8 MiB).
const DefaultMaxFileSize int64 = 8 << 20

// Config is the root configuration structure for gomdhtml.
type Config struct {
	// HeadingIDs selects how heading ids are generated ("counter" or "slug").
	HeadingIDs string `yaml:"heading_ids"`

	// DetectLanguage enables language detection for untagged code fences.
	DetectLanguage bool `yaml:"detect_language"`

	// DelimiterRows skips GFM delimiter rows under table headers.
	DelimiterRows bool `yaml:"delimiter_rows"`

	// IgnoreWarnings lists warning kinds that are never reported.
	IgnoreWarnings []string `yaml:"ignore_warnings"`

	// Severity overrides the default severity per warning kind.
	Severity map[string]Severity `yaml:"severity"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// Extensions lists the file extensions treated as Markdown.
	Extensions []string `yaml:"extensions"`

	// OutputDir is where rendered HTML is written. Empty means next to the source.
	OutputDir string `yaml:"output_dir"`

	// MaxFileSize is the largest input accepted, in bytes.
	MaxFileSize int64 `yaml:"max_file_size"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// Strict makes any reported warning fail the run.
	Strict bool `yaml:"-"`

	// DryRun renders without writing any files.
	DryRun bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		HeadingIDs:  HeadingIDsCounter,
		Severity:    make(map[string]Severity),
		Extensions:  []string{".md", ".markdown"},
		MaxFileSize: DefaultMaxFileSize,
		Format:      FormatText,
		Jobs:        0, // 0 means use GOMAXPROCS
	}
}

// SeverityFor returns the configured severity override for a warning kind.
// ok is false when no override is set.
func (c *Config) SeverityFor(kind string) (Severity, bool) {
	if c == nil || c.Severity == nil {
		return "", false
	}
	sev, ok := c.Severity[kind]
	return sev, ok
}

// IsWarningIgnored reports whether a warning kind is listed in IgnoreWarnings.
func (c *Config) IsWarningIgnored(kind string) bool {
	if c == nil {
		return false
	}
	return slices.Contains(c.IgnoreWarnings, kind)
}
