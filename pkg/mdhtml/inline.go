package mdhtml

import (
	"strings"

	"github.com/yaklabco/gomdhtml/pkg/warning"
)

// cursor walks the content of one line.
type cursor struct {
	text []byte
	idx  *lineIndex
	pos  int
}

func (c *cursor) cur() byte {
	return at(c.text, c.pos)
}

func (c *cursor) peek(n int) byte {
	return at(c.text, c.pos+n)
}

// inlineHandlers are tried in order for every character. Each reports
// whether it consumed input; the plain-text fallback runs otherwise.
var inlineHandlers = []func(*scanner, *cursor) bool{
	(*scanner).escape,
	(*scanner).codeSpan,
	(*scanner).reference,
	(*scanner).emphasis,
	(*scanner).superscript,
	(*scanner).strikethrough,
}

// inline renders text into the line buffer and closes any span still open
// at the end of the line.
func (s *scanner) inline(text []byte) {
	c := &cursor{text: text, idx: newLineIndex(text)}

	for c.pos < len(text) {
		consumed := false
		for _, handle := range inlineHandlers {
			if handle(s, c) {
				consumed = true
				break
			}
		}
		if !consumed {
			writeEscaped(s.target(), c.cur())
			c.pos++
		}
	}

	s.endLine()
}

// target is where literal text currently goes: the reference under
// construction, or the line buffer.
func (s *scanner) target() *strings.Builder {
	if s.spans.ref.active() {
		return s.spans.ref.buf()
	}
	return &s.line.body
}

// escape emits the character after a backslash literally. A backslash that
// ends the line is itself literal.
func (s *scanner) escape(c *cursor) bool {
	if c.cur() != '\\' || c.pos+1 >= len(c.text) {
		return false
	}

	writeEscaped(s.target(), c.peek(1))
	c.pos += 2
	return true
}

// codeSpan handles inline code. A backtick opens a span only when an
// unescaped backtick follows on the same line.
func (s *scanner) codeSpan(c *cursor) bool {
	if s.spans.code {
		if c.cur() == '`' {
			s.line.write("</code>")
			s.spans.code = false
		} else {
			writeEscaped(&s.line.body, c.cur())
		}
		c.pos++
		return true
	}

	if c.cur() != '`' || s.spans.ref.active() {
		return false
	}

	if c.idx.closingTick(c.pos) < 0 {
		s.warn(warning.CodeSnippetNotClosed)
		s.line.write("`")
	} else {
		s.line.write("<code>")
		s.spans.code = true
	}
	c.pos++
	return true
}

// endLine closes spans that cannot continue past the line: unfinished
// references become literal text and unmatched toggles are repaired.
func (s *scanner) endLine() {
	if s.spans.code {
		s.line.write("</code>")
		s.spans.code = false
	}

	if s.spans.ref.active() {
		s.abortReference()
	}

	t := s.spans.toggle
	if t.kind == toggleNone {
		return
	}

	s.line.replace(t.offset, t.kind.openTag(), t.kind.delimiter())
	if kind, ok := t.kind.warning(); ok {
		s.warn(kind)
	}
	s.spans.toggle = toggleState{}
}
