package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdhtml/internal/ui/pretty"
	"github.com/yaklabco/gomdhtml/pkg/analysis"
	"github.com/yaklabco/gomdhtml/pkg/config"
)

func tableReport() *analysis.Report {
	return &analysis.Report{
		Findings: []analysis.FindingEntry{
			{FilePath: "a.md", Kind: "italic-not-closed", Severity: "warning", Message: "italic text was not closed", Line: 1},
			{FilePath: "a.md", Kind: "weird-href", Severity: "info", Message: "link target does not look like a URL or path", Line: 2},
			{FilePath: "b.md", Kind: "code-block-not-closed", Severity: "error", Message: "code block was not closed"},
		},
		Totals: analysis.Totals{Files: 2, Warnings: 3, Errors: 1, Warns: 1, Infos: 1},
	}
}

func TestNewTableRow(t *testing.T) {
	t.Parallel()

	row := pretty.NewTableRow(analysis.FindingEntry{FilePath: "a.md", Kind: "k", Severity: "error", Message: "m", Line: 7})
	assert.Equal(t, pretty.TableRow{File: "a.md", Line: "7", Message: "m", Kind: "k", Severity: config.SeverityError}, row)

	row = pretty.NewTableRow(analysis.FindingEntry{FilePath: "a.md"})
	assert.Equal(t, "-", row.Line)
}

func TestGroupRows(t *testing.T) {
	t.Parallel()

	groups := pretty.GroupRows(tableReport())
	require.Len(t, groups, 2)
	assert.Len(t, groups[0], 2)
	assert.Equal(t, "b.md", groups[1][0].File)

	assert.Empty(t, pretty.GroupRows(nil))
}

func TestTableFormatter_FormatTable(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 120)
	out := formatter.FormatTable(tableReport())

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Contains(t, lines[0], "FILE")
	assert.Contains(t, lines[0], "KIND")
	assert.True(t, strings.HasPrefix(lines[1], "====="))
	assert.Contains(t, lines[2], " W  a.md")
	assert.Contains(t, lines[3], " I  a.md")
	assert.True(t, strings.HasPrefix(lines[4], "-----"), "files are separated")
	assert.Contains(t, lines[5], " E  b.md")
	assert.Contains(t, lines[5], "code-block-not-closed")
	assert.Contains(t, lines[len(lines)-1], "Legend: E = error | W = warning | I = info")

	assert.Empty(t, formatter.FormatTable(&analysis.Report{}))
}

func TestTableFormatter_FormatFileTable(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 0)
	out := formatter.FormatFileTable(pretty.GroupRows(tableReport())[0])

	assert.NotContains(t, out, "FILE")
	assert.Contains(t, out, "italic text was not closed")
	assert.Contains(t, out, "1 warnings | 1 info")
	assert.Empty(t, formatter.FormatFileTable(nil))
}

func TestTableFormatter_TruncatesToWidth(t *testing.T) {
	t.Parallel()

	report := &analysis.Report{Findings: []analysis.FindingEntry{{
		FilePath: "docs/" + strings.Repeat("deep/", 20) + "file.md",
		Kind:     "weird-href",
		Severity: "info",
		Message:  strings.Repeat("long message ", 20),
		Line:     1,
	}}}

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 80)
	out := formatter.FormatTable(report)

	assert.Contains(t, out, "...")
	assert.Contains(t, out, "file.md", "path truncation keeps the file name")
}

func TestTableFormatter_FormatTableSummary(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 0)

	assert.Equal(t, " 2 files checked | 1 errors | 1 warnings | 1 info | 12ms",
		formatter.FormatTableSummary(tableReport().Totals, "12ms"))
	assert.Equal(t, " 2 files checked", formatter.FormatTableSummary(analysis.Totals{Files: 2}, ""))
}
