// Package langdetect knows which fenced code block language tags the
// converter accepts, and can guess a tag for untagged blocks using go-enry.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// marker is a cheap textual hint that pins a block to one fence tag
// before the classifier runs.
type marker struct {
	tag   string
	match func(src string) bool
}

// markers are tried in order; the first match wins.
//
//nolint:gochecknoglobals // Read-only lookup table.
var markers = []marker{
	{"go", func(src string) bool {
		return strings.HasPrefix(strings.TrimSpace(src), "package ")
	}},
	{"python", func(src string) bool {
		return (strings.Contains(src, "def ") && strings.Contains(src, "):")) ||
			strings.Contains(src, "__name__") ||
			(strings.Contains(src, "from ") && strings.Contains(src, " import "))
	}},
	{"html", func(src string) bool {
		lower := strings.ToLower(src)
		return strings.Contains(lower, "<!doctype html") ||
			strings.Contains(lower, "<html") ||
			strings.Contains(lower, "<body>")
	}},
	{"sql", func(src string) bool {
		head := strings.ToUpper(strings.TrimSpace(src))
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(head, kw) {
				return true
			}
		}
		return false
	}},
	{"rust", func(src string) bool {
		return strings.Contains(src, "fn main()") ||
			strings.Contains(src, "println!") ||
			strings.Contains(src, "let mut ")
	}},
	{"javascript", func(src string) bool {
		return strings.Contains(src, "console.log") ||
			strings.Contains(src, "=>") ||
			strings.Contains(src, "const ")
	}},
}

// classifierCandidates are the go-enry names whose fence tag the
// converter styles.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "C#", "SQL",
	"HTML", "CSS", "Markdown", "PHP", "Perl", "Swift", "R",
}

// DetectTag guesses the fence tag for an untagged code block. It returns ""
// when nothing recognised is found, so the block keeps the plain class.
func DetectTag(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return known(fenceTag(lang))
	}

	src := string(content)
	for _, m := range markers {
		if m.match(src) {
			return m.tag
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe {
		return known(fenceTag(lang))
	}

	return ""
}

// fenceTag converts a go-enry language name to a fence tag.
func fenceTag(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	case "C#":
		return "csharp"
	}
	return strings.ToLower(lang)
}

func known(tag string) string {
	if !IsKnown(tag) {
		return ""
	}
	return tag
}
