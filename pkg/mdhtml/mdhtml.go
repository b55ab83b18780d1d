// Package mdhtml converts a restricted Markdown dialect to HTML in a single
// left-to-right scan, reporting malformed input as warnings.
//
// Conversion never fails: every malformed construct is rendered as literal
// text and described by a warning. Each call owns its scan state, so a
// Converter is safe for concurrent use.
package mdhtml

import "github.com/yaklabco/gomdhtml/pkg/warning"

// HeadingIDStyle selects how heading id attributes are generated.
type HeadingIDStyle string

const (
	// HeadingIDCounter numbers headings header-0, header-1, ... per document.
	HeadingIDCounter HeadingIDStyle = "counter"

	// HeadingIDSlug derives ids from the heading text, falling back to the
	// counter form for headings without letters or digits.
	HeadingIDSlug HeadingIDStyle = "slug"
)

// IsValid returns true if the style is a known value.
func (h HeadingIDStyle) IsValid() bool {
	switch h {
	case HeadingIDCounter, HeadingIDSlug:
		return true
	default:
		return false
	}
}

// Options configures a Converter. The zero value matches Parse.
type Options struct {
	// HeadingIDs selects the heading id scheme. Empty means HeadingIDCounter.
	HeadingIDs HeadingIDStyle

	// DetectLanguage guesses a language class for untagged code blocks.
	DetectLanguage bool

	// DelimiterRows drops a GFM "|---|:-:|" row that directly follows a
	// table's header. Off, it renders as an ordinary body row.
	DelimiterRows bool
}

// Result holds the output of a conversion.
type Result struct {
	// HTML is the rendered document.
	HTML string `json:"html"`

	// Warnings lists malformed constructs in source order.
	Warnings []warning.Warning `json:"warnings"`
}

// Converter renders Markdown documents with fixed options.
type Converter struct {
	opts Options
}

// New creates a Converter.
func New(opts Options) *Converter {
	if !opts.HeadingIDs.IsValid() {
		opts.HeadingIDs = HeadingIDCounter
	}

	return &Converter{opts: opts}
}

// Options returns the converter's effective options.
func (c *Converter) Options() Options {
	return c.opts
}

// Convert renders md to HTML and collects warnings.
func (c *Converter) Convert(md string) Result {
	s := newScanner(c.opts, []byte(md))
	s.run()

	return Result{
		HTML:     s.html(),
		Warnings: s.warns.Warnings(),
	}
}

var defaultConverter = New(Options{})

// ParseWithWarnings renders md with default options and returns the HTML
// together with the warnings.
func ParseWithWarnings(md string) Result {
	return defaultConverter.Convert(md)
}

// Parse renders md with default options, discarding warnings.
func Parse(md string) string {
	return defaultConverter.Convert(md).HTML
}
