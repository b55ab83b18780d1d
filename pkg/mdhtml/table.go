package mdhtml

import (
	"bytes"
	"strings"
)

type tableState struct {
	open bool

	// rows counts rendered rows; the first is the header.
	rows int

	// delimiter is set once the header's delimiter row has been consumed.
	delimiter bool
}

// tableRow renders a "|a|b|" row. Rows must end with an unescaped pipe;
// anything else closes the table and is left to later handlers.
func (s *scanner) tableRow(content []byte) bool {
	if at(content, 0) != '|' {
		s.closeTable()
		return false
	}

	cells, ok := splitRow(content)
	if !ok {
		s.closeTable()
		return false
	}

	if s.opts.DelimiterRows && s.atDelimiterRow(cells) {
		s.table.delimiter = true
		return true
	}

	if !s.table.open {
		s.closeList()
		s.out.WriteString("<table>")
		s.table = tableState{open: true}
	}

	cell := "td"
	if s.table.rows == 0 {
		cell = "th"
	}
	s.table.rows++

	s.out.WriteString("<tr>")
	for _, text := range cells {
		s.out.WriteString("<" + cell + ">" + unescapeText(text) + "</" + cell + ">")
	}
	s.out.WriteString("</tr>\n")

	return true
}

// atDelimiterRow reports whether cells form the first delimiter row under
// the header.
func (s *scanner) atDelimiterRow(cells [][]byte) bool {
	return s.table.open && s.table.rows == 1 && !s.table.delimiter && isDelimiterRow(cells)
}

func (s *scanner) closeTable() {
	if !s.table.open {
		return
	}

	s.out.WriteString("</table>\n")
	s.table = tableState{}
}

// splitRow returns the trimmed raw cells of a table row. Escaped pipes do
// not split cells.
func splitRow(content []byte) ([][]byte, bool) {
	row := bytes.TrimRight(content, " \t")
	if len(row) < 2 || row[0] != '|' {
		return nil, false
	}

	idx := newLineIndex(row)
	last := len(row) - 1
	if row[last] != '|' || idx.isEscaped(last) {
		return nil, false
	}

	var cells [][]byte
	start := 1
	for i := 1; i <= last; i++ {
		if row[i] != '|' || idx.isEscaped(i) {
			continue
		}
		cells = append(cells, bytes.Trim(row[start:i], " \t"))
		start = i + 1
	}

	return cells, true
}

// isDelimiterRow reports whether every cell looks like ---, :--, --: or :-:.
func isDelimiterRow(cells [][]byte) bool {
	if len(cells) == 0 {
		return false
	}

	for _, cell := range cells {
		inner := strings.TrimSuffix(strings.TrimPrefix(string(cell), ":"), ":")
		if inner == "" || strings.Trim(inner, "-") != "" {
			return false
		}
	}

	return true
}
