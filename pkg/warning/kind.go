package warning

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gomdhtml/pkg/config"
)

// Kind identifies a category of warning.
type Kind string

// Warning kinds raised by the converter.
const (
	UnknownLanguage      Kind = "unknown-language"
	ImageIncomplete      Kind = "image-incomplete"
	LinkIncomplete       Kind = "link-incomplete"
	ItalicNotClosed      Kind = "italic-not-closed"
	BoldNotClosed        Kind = "bold-not-closed"
	SuperscriptNotClosed Kind = "superscript-not-closed"
	BlockquoteBroken     Kind = "blockquote-broken"
	CodeBlockNotClosed   Kind = "code-block-not-closed"
	UnorderedListBroken  Kind = "unordered-list-broken"
	CodeSnippetNotClosed Kind = "code-snippet-not-closed"
	TooMuchHeader        Kind = "too-much-header"
	HeadingBroken        Kind = "heading-broken"
	HorizontalRuleBroken Kind = "horizontal-rule-broken"
	MissingImageAlt      Kind = "missing-image-alt"
	EmptyLink            Kind = "empty-link"
	WeirdHref            Kind = "weird-href"
)

// KindInfo describes a warning kind for listings and reporters.
type KindInfo struct {
	Kind        Kind
	Description string
	Severity    config.Severity
	Tags        []string
}

var kindTable = []KindInfo{
	{UnknownLanguage, "Code block language tag is not recognized", config.SeverityInfo, []string{"code"}},
	{ImageIncomplete, "Image syntax is missing its closing parts", config.SeverityWarning, []string{"image"}},
	{LinkIncomplete, "Link syntax is missing its closing parts", config.SeverityWarning, []string{"link"}},
	{ItalicNotClosed, "Italic span is not closed on its line", config.SeverityWarning, []string{"emphasis"}},
	{BoldNotClosed, "Bold span is not closed on its line", config.SeverityWarning, []string{"emphasis"}},
	{SuperscriptNotClosed, "Superscript span is not closed on its line", config.SeverityWarning, []string{"emphasis"}},
	{BlockquoteBroken, "Blockquote marker is malformed or nested", config.SeverityWarning, []string{"blockquote"}},
	{CodeBlockNotClosed, "Fenced code block has no closing fence", config.SeverityError, []string{"code"}},
	{UnorderedListBroken, "List marker is not followed by a space", config.SeverityWarning, []string{"list"}},
	{CodeSnippetNotClosed, "Inline code has no closing backtick on its line", config.SeverityWarning, []string{"code"}},
	{TooMuchHeader, "Heading uses more than six hash marks", config.SeverityWarning, []string{"heading"}},
	{HeadingBroken, "Heading marker is not followed by a space", config.SeverityWarning, []string{"heading"}},
	{HorizontalRuleBroken, "Dash run is not a valid horizontal rule", config.SeverityWarning, []string{"hr"}},
	{MissingImageAlt, "Image has no alternative text", config.SeverityWarning, []string{"image", "accessibility"}},
	{EmptyLink, "Link has empty text or an empty target", config.SeverityWarning, []string{"link", "accessibility"}},
	{WeirdHref, "Link target looks like neither a URL nor a path", config.SeverityInfo, []string{"link"}},
}

var kindMessages = map[Kind]string{
	UnknownLanguage:      "unknown code block language",
	ImageIncomplete:      "image was not completed",
	LinkIncomplete:       "link was not completed",
	ItalicNotClosed:      "italic text was not closed",
	BoldNotClosed:        "bold text was not closed",
	SuperscriptNotClosed: "superscript was not closed",
	BlockquoteBroken:     "blockquote marker must be followed by a space",
	CodeBlockNotClosed:   "code block was not closed",
	UnorderedListBroken:  "list item marker must be followed by a space",
	CodeSnippetNotClosed: "inline code was not closed",
	TooMuchHeader:        "headings support at most six levels",
	HeadingBroken:        "heading marker must be followed by a space",
	HorizontalRuleBroken: "horizontal rule needs at least three dashes",
	MissingImageAlt:      "image is missing alt text",
	EmptyLink:            "link text or target is empty",
	WeirdHref:            "link target does not look like a URL or path",
}

// Message returns the default message for the kind.
func (k Kind) Message() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}

	return string(k)
}

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	_, ok := kindMessages[k]
	return ok
}

// Info returns the descriptive entry for the kind.
func (k Kind) Info() (KindInfo, bool) {
	for _, info := range kindTable {
		if info.Kind == k {
			return info, true
		}
	}

	return KindInfo{}, false
}

// Severity returns the default severity for the kind.
func (k Kind) Severity() config.Severity {
	if info, ok := k.Info(); ok {
		return info.Severity
	}

	return config.SeverityWarning
}

// Kinds returns every known kind in declaration order.
func Kinds() []KindInfo {
	out := make([]KindInfo, len(kindTable))
	copy(out, kindTable)

	return out
}

// ParseKind converts a string to a Kind. Matching ignores case and
// surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("unknown warning kind %q", s)
	}

	return k, nil
}

// ParseKinds converts a list of strings to kinds, stopping at the first
// unknown name.
func ParseKinds(names []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}

	return kinds, nil
}
