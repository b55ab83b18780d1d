package mdhtml

import (
	"strings"

	"github.com/yaklabco/gomdhtml/pkg/source"
	"github.com/yaklabco/gomdhtml/pkg/warning"
)

// scanner holds the state of one conversion.
type scanner struct {
	opts  Options
	src   *source.Snapshot
	doc   *docIndex
	out   strings.Builder
	line  lineBuffer
	warns warning.Collector

	// lineNo is the 1-based line being scanned.
	lineNo int

	headings headingIDs
	quote    bool
	list     listState
	table    tableState
	code     fenceState

	spans spanState
}

func newScanner(opts Options, md []byte) *scanner {
	src := source.New("", md)

	return &scanner{
		opts:     opts,
		src:      src,
		doc:      newDocIndex(src),
		headings: headingIDs{style: opts.HeadingIDs},
	}
}

func (s *scanner) run() {
	s.out.Grow(len(s.src.Content) + len(s.src.Content)/4)

	for n := 1; n <= s.src.LineCount(); n++ {
		s.lineNo = n
		s.scanLine(s.src.LineContent(n))
	}

	s.closeList()
	s.closeTable()
	s.closeQuote()
}

// html returns the output with the final newline trimmed.
func (s *scanner) html() string {
	return strings.TrimSuffix(s.out.String(), "\n")
}

func (s *scanner) warn(kind warning.Kind) {
	s.warns.Add(kind, s.lineNo)
}

// scanLine classifies one source line and renders it. Block handlers run in
// a fixed priority order; the first one that accepts the line wins.
func (s *scanner) scanLine(raw []byte) {
	if s.code.open {
		s.codeLine(raw)
		return
	}

	if isBlank(raw) {
		s.closeList()
		s.closeTable()
		s.closeQuote()
		return
	}

	content := s.quotePrefix(raw)
	if isBlank(content) {
		s.closeList()
		s.closeTable()
		return
	}

	for _, handle := range blockHandlers {
		if handle(s, content) {
			return
		}
	}

	s.paragraph(content)
}

// blockHandlers are tried in order for every non-blank line outside a code
// block. Each reports whether it rendered the line.
var blockHandlers = []func(*scanner, []byte) bool{
	(*scanner).openFence,
	(*scanner).unorderedItem,
	(*scanner).orderedItem,
	(*scanner).tableRow,
	(*scanner).heading,
	(*scanner).horizontalRule,
}

// paragraph renders content as a <p> block.
func (s *scanner) paragraph(content []byte) {
	s.closeList()
	s.closeTable()

	s.inline(content)
	s.out.WriteString("<p>")
	s.out.WriteString(s.line.flush())
	s.out.WriteString("</p>\n")
}
