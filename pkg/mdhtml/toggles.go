package mdhtml

import "github.com/yaklabco/gomdhtml/pkg/warning"

// spanState is the inline state of the current line.
type spanState struct {
	code   bool
	ref    refState
	toggle toggleState
}

type toggleKind int

const (
	toggleNone toggleKind = iota
	toggleItalic
	toggleBold
	toggleSuperscript
	toggleStrike
)

func (k toggleKind) openTag() string {
	switch k {
	case toggleItalic:
		return "<i>"
	case toggleBold:
		return "<b>"
	case toggleSuperscript:
		return "<sup>"
	case toggleStrike:
		return "<s>"
	case toggleNone:
	}
	return ""
}

func (k toggleKind) closeTag() string {
	switch k {
	case toggleItalic:
		return "</i>"
	case toggleBold:
		return "</b>"
	case toggleSuperscript:
		return "</sup>"
	case toggleStrike:
		return "</s>"
	case toggleNone:
	}
	return ""
}

// delimiter is the Markdown text that opened the span.
func (k toggleKind) delimiter() string {
	switch k {
	case toggleItalic:
		return "*"
	case toggleBold:
		return "**"
	case toggleSuperscript:
		return "^"
	case toggleStrike:
		return "~~"
	case toggleNone:
	}
	return ""
}

// warning returns the kind reported when the span is left open.
// Strikethrough has none and is repaired silently.
func (k toggleKind) warning() (warning.Kind, bool) {
	switch k {
	case toggleItalic:
		return warning.ItalicNotClosed, true
	case toggleBold:
		return warning.BoldNotClosed, true
	case toggleSuperscript:
		return warning.SuperscriptNotClosed, true
	case toggleStrike, toggleNone:
	}
	return "", false
}

// toggleState is the one toggle span that may be open. While it is open the
// delimiters of the other toggles are plain text.
type toggleState struct {
	kind toggleKind

	// offset is where the opening tag sits in the line buffer.
	offset int
}

func (s *scanner) openToggle(kind toggleKind) {
	s.spans.toggle = toggleState{kind: kind, offset: s.line.mark()}
	s.line.write(kind.openTag())
}

func (s *scanner) closeToggle() {
	s.line.write(s.spans.toggle.kind.closeTag())
	s.spans.toggle = toggleState{}
}

// emphasis handles "*" italic and "**" bold. Inside bold a single "*" is
// plain text.
func (s *scanner) emphasis(c *cursor) bool {
	if c.cur() != '*' {
		return false
	}

	double := c.peek(1) == '*'

	switch s.spans.toggle.kind {
	case toggleBold:
		if !double {
			return false
		}
		s.closeToggle()
		c.pos += 2
	case toggleItalic:
		s.closeToggle()
		c.pos++
	case toggleNone:
		if double {
			s.openToggle(toggleBold)
			c.pos += 2
		} else {
			s.openToggle(toggleItalic)
			c.pos++
		}
	case toggleSuperscript, toggleStrike:
		return false
	}

	return true
}

// superscript toggles <sup> on "^".
func (s *scanner) superscript(c *cursor) bool {
	if c.cur() != '^' {
		return false
	}

	switch s.spans.toggle.kind {
	case toggleSuperscript:
		s.closeToggle()
	case toggleNone:
		s.openToggle(toggleSuperscript)
	case toggleItalic, toggleBold, toggleStrike:
		return false
	}

	c.pos++
	return true
}

// strikethrough toggles <s> on "~~".
func (s *scanner) strikethrough(c *cursor) bool {
	if c.cur() != '~' || c.peek(1) != '~' {
		return false
	}

	switch s.spans.toggle.kind {
	case toggleStrike:
		s.closeToggle()
	case toggleNone:
		s.openToggle(toggleStrike)
	case toggleItalic, toggleBold, toggleSuperscript:
		return false
	}

	c.pos += 2
	return true
}
