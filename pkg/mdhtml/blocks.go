package mdhtml

import (
	"strconv"

	"github.com/yaklabco/gomdhtml/pkg/warning"
)

const maxHeadingLevel = 6

type listKind int

const (
	listNone listKind = iota
	listUnordered
	listOrdered
)

type listState struct {
	kind listKind

	// next is the ordinal the next ordered item must carry.
	next int
}

// quotePrefix strips a blockquote marker from raw, opening the quote when
// needed, and returns the remaining content. Lines without a marker stay in
// an open quote.
func (s *scanner) quotePrefix(raw []byte) []byte {
	if at(raw, 0) != '>' {
		return raw
	}

	content, ok := stripQuote(raw)
	if !ok {
		s.warn(warning.BlockquoteBroken)
		return raw
	}

	if !s.quote {
		s.closeList()
		s.closeTable()
		s.out.WriteString("<blockquote>")
		s.quote = true
	}

	if _, nested := stripQuote(content); nested {
		s.warns.Addf(warning.BlockquoteBroken, s.lineNo, "nested blockquotes are not supported")
	}

	return content
}

func (s *scanner) closeQuote() {
	if !s.quote {
		return
	}

	s.closeList()
	s.closeTable()
	s.out.WriteString("</blockquote>\n")
	s.quote = false
}

func (s *scanner) closeList() {
	switch s.list.kind {
	case listUnordered:
		s.out.WriteString("</ul>\n")
	case listOrdered:
		s.out.WriteString("</ol>\n")
	case listNone:
		return
	}
	s.list = listState{}
}

func (s *scanner) openList(kind listKind) {
	if s.list.kind == kind {
		return
	}

	s.closeList()
	s.closeTable()

	switch kind {
	case listUnordered:
		s.out.WriteString("<ul>")
	case listOrdered:
		s.out.WriteString("<ol>")
		s.list.next = 1
	case listNone:
		return
	}
	s.list.kind = kind
}

func (s *scanner) listItem(text []byte) {
	s.inline(text)
	s.out.WriteString("<li>")
	s.out.WriteString(s.line.flush())
	s.out.WriteString("</li>")
}

// unorderedItem renders "- " items. While a bullet list is open, a dash that
// is not followed by a space breaks the list.
func (s *scanner) unorderedItem(content []byte) bool {
	if at(content, 0) != '-' {
		return false
	}

	if at(content, 1) == ' ' {
		s.openList(listUnordered)
		s.listItem(content[2:])
		return true
	}

	if s.list.kind != listUnordered || s.isRule(content) {
		return false
	}

	s.warn(warning.UnorderedListBroken)
	s.paragraph(content)
	return true
}

// orderedItem renders "N. " items whose number is the next expected
// ordinal. Any other number is left for the paragraph handler.
func (s *scanner) orderedItem(content []byte) bool {
	digits := 0
	for c := at(content, digits); c >= '0' && c <= '9'; c = at(content, digits) {
		digits++
	}
	if digits == 0 || at(content, digits) != '.' || at(content, digits+1) != ' ' {
		return false
	}

	want := 1
	if s.list.kind == listOrdered {
		want = s.list.next
	}
	if string(content[:digits]) != strconv.Itoa(want) {
		s.closeList()
		return false
	}

	s.openList(listOrdered)
	s.list.next++
	s.listItem(content[digits+2:])
	return true
}

// heading renders "#" runs of one to six marks followed by a space. Broken
// or overlong runs degrade to a literal paragraph.
func (s *scanner) heading(content []byte) bool {
	if at(content, 0) != '#' {
		return false
	}

	level := runLength(content, 0, '#')
	switch {
	case level > maxHeadingLevel:
		s.warn(warning.TooMuchHeader)
		s.paragraph(content)
		return true
	case at(content, level) != ' ':
		s.warn(warning.HeadingBroken)
		s.paragraph(content)
		return true
	}

	s.closeList()
	s.closeTable()

	text := content[level+1:]
	tag := strconv.Itoa(level)
	id := s.headings.next(text)

	s.inline(text)
	s.out.WriteString(`<h` + tag + ` id="` + id + `">`)
	s.out.WriteString(s.line.flush())
	s.out.WriteString("</h" + tag + ">\n")
	return true
}

// isRule reports whether content is a horizontal rule: three or more dashes,
// or exactly two dashes that end the document.
func (s *scanner) isRule(content []byte) bool {
	dashes := runLength(content, 0, '-')
	if !isBlank(content[dashes:]) {
		return false
	}
	if dashes >= 3 {
		return true
	}

	last := s.src.Lines[len(s.src.Lines)-1]
	return dashes == 2 && len(content) == 2 &&
		s.lineNo == s.src.LineCount() && !last.HasNewline()
}

func (s *scanner) horizontalRule(content []byte) bool {
	if !hasPrefixAt(content, 0, "--") {
		return false
	}

	if !s.isRule(content) {
		s.warn(warning.HorizontalRuleBroken)
		s.paragraph(content)
		return true
	}

	s.closeList()
	s.closeTable()
	s.out.WriteString("<hr>\n")
	return true
}
