package mdhtml

import (
	"strings"

	"github.com/yaklabco/gomdhtml/pkg/fix"
)

// lineBuffer holds the HTML rendered for the current line. Opening tags that
// may turn out to be unmatched are repaired through an edit list when the
// line is flushed.
type lineBuffer struct {
	body  strings.Builder
	edits fix.EditBuilder
}

func (b *lineBuffer) write(s string) {
	b.body.WriteString(s)
}

// mark returns the offset at which the next write will land.
func (b *lineBuffer) mark() int {
	return b.body.Len()
}

// replace schedules the tag written at offset to be swapped for literal.
func (b *lineBuffer) replace(offset int, tag, literal string) {
	b.edits.ReplaceRange(offset, offset+len(tag), literal)
}

// flush returns the repaired line and resets the buffer.
func (b *lineBuffer) flush() string {
	// Repairs target distinct opening tags, so they never overlap. On error
	// the unrepaired text is kept.
	text, _ := b.edits.Apply(b.body.String())
	b.body.Reset()
	b.edits.Reset()

	return text
}

// writeEscaped appends c to w, escaping angle brackets.
func writeEscaped(w *strings.Builder, c byte) {
	switch c {
	case '<':
		w.WriteString("&lt;")
	case '>':
		w.WriteString("&gt;")
	default:
		w.WriteByte(c)
	}
}

// escapeText escapes angle brackets in text.
func escapeText(text []byte) string {
	var w strings.Builder
	w.Grow(len(text))
	for _, c := range text {
		writeEscaped(&w, c)
	}
	return w.String()
}

// unescapeText resolves backslash escapes in text and escapes angle brackets.
// A trailing lone backslash is kept.
func unescapeText(text []byte) string {
	var w strings.Builder
	w.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && i+1 < len(text) {
			i++
		}
		writeEscaped(&w, text[i])
	}
	return w.String()
}
