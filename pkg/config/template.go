package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full documents every warning kind with its default severity.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// KindInfo contains warning kind metadata for template generation.
type KindInfo struct {
	Kind        string
	Description string
	Severity    Severity
}

// KindInfoProvider is a function that returns warning kind information.
// This allows decoupling from the warning package to avoid circular imports.
type KindInfoProvider func() []KindInfo

// DefaultKindInfoProvider is set by the CLI before generating a full template.
//
//nolint:gochecknoglobals // Intentional extension point for kind info.
var DefaultKindInfoProvider KindInfoProvider

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON()
	}
	if opts.Full {
		return generateFullTemplate(), nil
	}
	return generateMinimalTemplate(), nil
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# Heading id style: counter (header-0, header-1, ...) or slug
heading_ids: counter

# Guess the language of code fences without a tag
# detect_language: false

# Drop GFM delimiter rows (|---|) under table headers
# delimiter_rows: false

# Warning kinds that are never reported
# ignore_warnings:
#   - weird-href

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"

# Directory for rendered HTML (default: next to each source file)
# output_dir: ""
`)

	return buf.Bytes()
}

// generateFullTemplate creates a full template with every warning kind documented.
func generateFullTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# gomdhtml configuration - Full Template
# See: https://github.com/yaklabco/gomdhtml
#
# This template lists every setting with its default value.
# Uncomment and modify settings as needed.

# Heading id style: counter (header-0, header-1, ...) or slug
heading_ids: counter

# Guess the language of code fences without a tag
detect_language: false

# Drop GFM delimiter rows (|---|) under table headers
delimiter_rows: false

# Markdown file extensions
extensions:
  - .md
  - .markdown

# Largest input rendered, in bytes
max_file_size: ` + fmt.Sprint(DefaultMaxFileSize) + `

# Directory for rendered HTML (default: next to each source file)
output_dir: ""

# File patterns to ignore (glob patterns)
ignore:
  - "vendor/**"
  - "node_modules/**"
  - ".git/**"

# Warning kinds that are never reported
ignore_warnings: []

# Severity per warning kind: error, warning, or info
severity:
`)

	kinds := getKindInfos()
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i].Kind < kinds[j].Kind
	})

	for _, kind := range kinds {
		buf.WriteString(fmt.Sprintf("\n  # %s\n", wrapComment(kind.Description, commentWrapWidth)))
		buf.WriteString(fmt.Sprintf("  %s: %s\n", kind.Kind, kind.Severity))
	}

	return buf.Bytes()
}

// getKindInfos returns information about all warning kinds.
func getKindInfos() []KindInfo {
	if DefaultKindInfoProvider != nil {
		return DefaultKindInfoProvider()
	}
	return nil
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// templateToJSON renders the default settings as JSON.
func templateToJSON() ([]byte, error) {
	severity := make(map[string]string)
	for _, k := range getKindInfos() {
		severity[k.Kind] = string(k.Severity)
	}

	cfg := map[string]any{
		"heading_ids":     HeadingIDsCounter,
		"detect_language": false,
		"delimiter_rows":  false,
		"extensions":      []string{".md", ".markdown"},
		"max_file_size":   DefaultMaxFileSize,
		"output_dir":      "",
		"ignore":          []string{"vendor/**", "node_modules/**", ".git/**"},
		"ignore_warnings": []string{},
		"severity":        severity,
	}

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gomdhtml configuration
# See: https://github.com/yaklabco/gomdhtml`
}
