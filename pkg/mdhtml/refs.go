package mdhtml

import (
	"strings"

	"github.com/yaklabco/gomdhtml/pkg/warning"
)

type refKind int

const (
	refNone refKind = iota
	refImage
	refLink
)

// refState collects an image or link while its syntax is being read.
type refState struct {
	kind refKind

	// inTarget is set after "](" has been read.
	inTarget bool

	label  strings.Builder
	target strings.Builder
}

func (r *refState) active() bool {
	return r.kind != refNone
}

func (r *refState) buf() *strings.Builder {
	if r.inTarget {
		return &r.target
	}
	return &r.label
}

// literal rebuilds the syntax read so far.
func (r *refState) literal() string {
	var b strings.Builder
	if r.kind == refImage {
		b.WriteString("!")
	}
	b.WriteString("[")
	b.WriteString(r.label.String())
	if r.inTarget {
		b.WriteString("](")
		b.WriteString(r.target.String())
	}
	return b.String()
}

func (r *refState) reset() {
	r.kind = refNone
	r.inTarget = false
	r.label.Reset()
	r.target.Reset()
}

// reference handles ![alt](src) and [text](href).
func (s *scanner) reference(c *cursor) bool {
	ref := &s.spans.ref

	if !ref.active() {
		switch {
		case c.cur() == '!' && c.peek(1) == '[':
			ref.kind = refImage
			c.pos += 2
		case c.cur() == '[':
			ref.kind = refLink
			c.pos++
		default:
			return false
		}
		return true
	}

	switch {
	case !ref.inTarget && c.cur() == ']':
		if c.peek(1) != '(' {
			// The bracket is re-read as plain text.
			s.abortReference()
			return false
		}
		ref.inTarget = true
		c.pos += 2
	case ref.inTarget && c.cur() == ')':
		s.completeReference()
		c.pos++
	default:
		writeEscaped(ref.buf(), c.cur())
		c.pos++
	}

	return true
}

// abortReference emits the unfinished syntax as literal text.
func (s *scanner) abortReference() {
	ref := &s.spans.ref

	if ref.kind == refImage {
		s.warn(warning.ImageIncomplete)
	} else {
		s.warn(warning.LinkIncomplete)
	}

	s.line.write(ref.literal())
	ref.reset()
}

func (s *scanner) completeReference() {
	ref := &s.spans.ref
	label := ref.label.String()
	target := ref.target.String()

	if ref.kind == refImage {
		if label == "" {
			s.warn(warning.MissingImageAlt)
		}
		s.line.write(`<img src="` + target + `" alt="` + label + `">`)
		ref.reset()
		return
	}

	switch {
	case label == "" || target == "":
		s.warn(warning.EmptyLink)
	case isWeirdHref(target):
		s.warn(warning.WeirdHref)
	}

	s.line.write(`<a href="` + target + `">` + label + `</a>`)
	ref.reset()
}

// isWeirdHref reports a target that has no scheme and is not a path.
func isWeirdHref(href string) bool {
	return !strings.Contains(href, ":") &&
		!strings.HasPrefix(href, "/") &&
		!strings.HasPrefix(href, "./")
}
