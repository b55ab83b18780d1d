package mdhtml

import (
	"bytes"
	"strings"

	"github.com/yaklabco/gomdhtml/pkg/langdetect"
	"github.com/yaklabco/gomdhtml/pkg/warning"
)

// fenceState tracks an open fenced code block.
type fenceState struct {
	open bool

	// closeLine is the line holding the closing fence.
	closeLine int

	// quoted is set when the block lives inside a blockquote.
	quoted bool

	// lines counts content lines emitted so far.
	lines int
}

// openFence starts a fenced code block when content is an opening fence and
// a closing fence follows. An unclosed fence is reported and the line is
// left to the other handlers.
func (s *scanner) openFence(content []byte) bool {
	if !hasPrefixAt(content, 0, fence) {
		return false
	}

	tag := bytes.TrimSpace(content[len(fence):])
	if bytes.IndexByte(tag, '`') >= 0 {
		return false
	}

	closeLine := s.doc.closingFence(s.lineNo, s.quote)
	if closeLine == 0 {
		s.warn(warning.CodeBlockNotClosed)
		return false
	}

	s.closeList()
	s.closeTable()

	s.code = fenceState{
		open:      true,
		closeLine: closeLine,
		quoted:    s.quote,
	}

	class := "code-block"
	if lang := s.fenceLanguage(string(tag)); lang != "" {
		class += " code-" + lang
	}
	s.out.WriteString(`<div class="` + class + `">`)

	return true
}

// fenceLanguage resolves the class suffix for a fence tag.
func (s *scanner) fenceLanguage(tag string) string {
	if tag == "" {
		if s.opts.DetectLanguage {
			return langdetect.DetectTag(s.fenceBody())
		}
		return ""
	}

	if !langdetect.IsKnown(tag) {
		s.warns.Addf(warning.UnknownLanguage, s.lineNo, "unknown code block language %q", tag)
		return ""
	}

	return strings.ToLower(tag)
}

// fenceBody returns the raw content of the block being opened.
func (s *scanner) fenceBody() []byte {
	var body bytes.Buffer
	for n := s.lineNo + 1; n < s.code.closeLine; n++ {
		body.Write(s.codeContent(s.src.LineContent(n)))
		body.WriteByte('\n')
	}
	return body.Bytes()
}

func (s *scanner) codeContent(raw []byte) []byte {
	if s.code.quoted {
		raw, _ = stripQuote(raw)
	}
	return raw
}

// codeLine emits one line inside an open code block. Content is verbatim
// apart from angle-bracket escaping and leading spaces.
func (s *scanner) codeLine(raw []byte) {
	if s.lineNo == s.code.closeLine {
		s.out.WriteString("</div>\n")
		s.code = fenceState{}
		return
	}

	if s.code.lines > 0 {
		s.out.WriteString("<br>")
	}
	s.code.lines++

	content := s.codeContent(raw)
	spaces := runLength(content, 0, ' ')
	s.out.WriteString(strings.Repeat("&nbsp;", spaces))
	s.out.WriteString(escapeText(content[spaces:]))
}
