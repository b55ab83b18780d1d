package source

import "sort"

// BuildLines constructs line metadata from content.
// It handles both LF (\n) and CRLF (\r\n) line endings. Content ending in a
// newline yields a final empty line.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char != '\n' {
			continue
		}

		newlineStart := idx
		if idx > lineStart && content[idx-1] == '\r' {
			newlineStart = idx - 1
		}

		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(content),
		EndOffset:    len(content),
	})

	return lines
}

// LineCount returns the number of lines in the document.
func (s *Snapshot) LineCount() int {
	return len(s.Lines)
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes.
// Returns (0, 0) if the offset is out of range.
func (s *Snapshot) LineAt(offset int) (int, int) {
	if offset < 0 || len(s.Lines) == 0 {
		return 0, 0
	}

	if offset >= len(s.Content) {
		last := s.Lines[len(s.Lines)-1]
		return len(s.Lines), offset - last.StartOffset + 1
	}

	idx := sort.Search(len(s.Lines), func(i int) bool {
		return s.Lines[i].EndOffset > offset
	})
	if idx >= len(s.Lines) {
		idx = len(s.Lines) - 1
	}

	return idx + 1, offset - s.Lines[idx].StartOffset + 1
}

// LineContent returns the content of a 1-based line number, excluding the newline.
// Returns nil if the line number is out of range.
func (s *Snapshot) LineContent(line int) []byte {
	if line < 1 || line > len(s.Lines) {
		return nil
	}

	info := s.Lines[line-1]
	return s.Content[info.StartOffset:info.NewlineStart]
}

// IsBlank reports whether a 1-based line is empty or holds only spaces and tabs.
// Out-of-range lines are blank.
func (s *Snapshot) IsBlank(line int) bool {
	for _, c := range s.LineContent(line) {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}
