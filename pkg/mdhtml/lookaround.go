package mdhtml

import (
	"bytes"

	"github.com/yaklabco/gomdhtml/pkg/source"
)

const fence = "```"

// at returns text[i], or 0 when i is out of range.
func at(text []byte, i int) byte {
	if i < 0 || i >= len(text) {
		return 0
	}
	return text[i]
}

// hasPrefixAt reports whether text[i:] starts with prefix. Out-of-range
// positions never match.
func hasPrefixAt(text []byte, i int, prefix string) bool {
	if i < 0 || i > len(text) {
		return false
	}
	return bytes.HasPrefix(text[i:], []byte(prefix))
}

// runLength counts consecutive c bytes starting at text[i].
func runLength(text []byte, i int, c byte) int {
	n := 0
	for at(text, i+n) == c {
		n++
	}
	return n
}

func isBlank(text []byte) bool {
	return len(bytes.Trim(text, " \t")) == 0
}

// stripQuote removes a "> " or lone ">" prefix. ok is false when text does
// not start with a well-formed marker.
func stripQuote(text []byte) ([]byte, bool) {
	if at(text, 0) != '>' {
		return text, false
	}
	switch at(text, 1) {
	case 0:
		return text[1:], true
	case ' ':
		return text[2:], true
	default:
		return text, false
	}
}

func isFenceLine(text []byte) bool {
	return string(bytes.TrimRight(text, " \t")) == fence
}

// lineIndex precomputes escape pairing and backtick positions for one line
// so that lookahead is constant time.
type lineIndex struct {
	// escaped[i] is true when text[i] follows an unescaped backslash.
	escaped []bool

	// nextTick[i] is the index of the first unescaped backtick after i, or -1.
	nextTick []int
}

func newLineIndex(text []byte) *lineIndex {
	idx := &lineIndex{
		escaped:  make([]bool, len(text)),
		nextTick: make([]int, len(text)),
	}

	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && !idx.escaped[i] && i+1 < len(text) {
			idx.escaped[i+1] = true
			i++
		}
	}

	next := -1
	for i := len(text) - 1; i >= 0; i-- {
		idx.nextTick[i] = next
		if text[i] == '`' && !idx.escaped[i] {
			next = i
		}
	}

	return idx
}

// closingTick returns the position of the backtick that closes a code span
// opened at i, or -1.
func (l *lineIndex) closingTick(i int) int {
	if i < 0 || i >= len(l.nextTick) {
		return -1
	}
	return l.nextTick[i]
}

func (l *lineIndex) isEscaped(i int) bool {
	return i >= 0 && i < len(l.escaped) && l.escaped[i]
}

// docIndex records, for every line, where the next closing fence and the
// next blank line are. Entries are 1-based line numbers; 0 means none.
type docIndex struct {
	nextFence       []int
	nextQuotedFence []int
	nextBlank       []int
}

func newDocIndex(src *source.Snapshot) *docIndex {
	n := src.LineCount()
	idx := &docIndex{
		nextFence:       make([]int, n+2),
		nextQuotedFence: make([]int, n+2),
		nextBlank:       make([]int, n+2),
	}

	for line := n; line >= 1; line-- {
		idx.nextFence[line] = idx.nextFence[line+1]
		idx.nextQuotedFence[line] = idx.nextQuotedFence[line+1]
		idx.nextBlank[line] = idx.nextBlank[line+1]

		raw := src.LineContent(line)
		if isFenceLine(raw) {
			idx.nextFence[line] = line
		}
		if inner, _ := stripQuote(raw); isFenceLine(inner) {
			idx.nextQuotedFence[line] = line
		}
		if isBlank(raw) {
			idx.nextBlank[line] = line
		}
	}

	return idx
}

// closingFence returns the line that closes a fence opened on line open, or
// 0 when the fence is never closed. A fence inside a blockquote must close
// before the blank line that ends the quote.
func (d *docIndex) closingFence(open int, quoted bool) int {
	from := open + 1
	if from >= len(d.nextFence) {
		return 0
	}

	if !quoted {
		return d.nextFence[from]
	}

	closing := d.nextQuotedFence[from]
	if blank := d.nextBlank[from]; blank != 0 && blank < closing {
		return 0
	}
	return closing
}
