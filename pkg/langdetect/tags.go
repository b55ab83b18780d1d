package langdetect

import "strings"

// knownTags lists the fence tags that get a code-<tag> class.
var knownTags = map[string]struct{}{
	"python": {}, "py": {},
	"rust": {}, "rs": {},
	"javascript": {}, "js": {},
	"typescript": {}, "ts": {},
	"java": {}, "c": {}, "cpp": {}, "csharp": {},
	"html": {}, "css": {},
	"markdown": {}, "md": {},
	"brainfuck": {}, "php": {}, "bash": {}, "perl": {},
	"sql": {}, "ruby": {}, "basic": {},
	"assembly": {}, "asm": {}, "wasm": {},
	"r": {}, "go": {}, "swift": {},
}

// IsKnown reports whether tag is a recognized fence language tag.
// Matching is case-insensitive.
func IsKnown(tag string) bool {
	_, ok := knownTags[strings.ToLower(tag)]
	return ok
}

// Tags returns the recognized fence tags in no particular order.
func Tags() []string {
	out := make([]string, 0, len(knownTags))
	for tag := range knownTags {
		out = append(out, tag)
	}
	return out
}
