package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/gomdhtml/pkg/analysis"
	"github.com/yaklabco/gomdhtml/pkg/config"
)

// Table formatting constants.
const (
	tablePadding       = 2
	tableColumnCount   = 5 // SEV, FILE, LINE, MESSAGE, KIND
	perFileColumnCount = 4 // SEV, LINE, MESSAGE, KIND
	severityWidth      = 1
	minFileWidth       = 20
	minLineWidth       = 4
	minMessageWidth    = 35
	minKindWidth       = 8
	heavySeparator     = "="
	lightSeparator     = "-"
	defaultTermWidth   = 100
)

// TableRow represents a single row in the findings table.
type TableRow struct {
	File     string
	Line     string
	Message  string
	Kind     string
	Severity config.Severity
}

// NewTableRow converts a report entry to a table row.
func NewTableRow(entry analysis.FindingEntry) TableRow {
	line := "-"
	if entry.Line > 0 {
		line = strconv.Itoa(entry.Line)
	}
	return TableRow{
		File:     entry.FilePath,
		Line:     line,
		Message:  entry.Message,
		Kind:     entry.Kind,
		Severity: config.Severity(entry.Severity),
	}
}

// TableFormatter formats findings as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

type columnWidths struct {
	file    int
	line    int
	message int
	kind    int
}

// FormatTable formats every finding of the report in one table, with
// a light separator between files.
func (t *TableFormatter) FormatTable(report *analysis.Report) string {
	groups := GroupRows(report)
	if len(groups) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(groups, true)

	var builder strings.Builder
	builder.WriteString(t.formatHeader(widths, true) + "\n")
	builder.WriteString(t.formatSeparator(widths, true, heavySeparator) + "\n")

	for i, group := range groups {
		if i > 0 {
			builder.WriteString(t.formatSeparator(widths, true, lightSeparator) + "\n")
		}
		for _, row := range group {
			builder.WriteString(t.formatRow(row, widths, true) + "\n")
		}
	}

	builder.WriteString(t.formatSeparator(widths, true, heavySeparator) + "\n")
	builder.WriteString(t.formatLegend() + "\n")

	return builder.String()
}

// FormatFileTable formats one file's rows as a standalone table without the FILE column.
func (t *TableFormatter) FormatFileTable(rows []TableRow) string {
	if len(rows) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths([][]TableRow{rows}, false)

	var builder strings.Builder
	builder.WriteString(t.formatHeader(widths, false) + "\n")
	builder.WriteString(t.formatSeparator(widths, false, heavySeparator) + "\n")
	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths, false) + "\n")
	}
	builder.WriteString(t.formatSeparator(widths, false, heavySeparator) + "\n")
	builder.WriteString(t.formatRowsSummary(rows) + "\n")

	return builder.String()
}

// GroupRows returns the report's findings as table rows, one group per file,
// in report order.
func GroupRows(report *analysis.Report) [][]TableRow {
	if report == nil {
		return nil
	}

	var groups [][]TableRow
	var current []TableRow
	for _, entry := range report.Findings {
		if len(current) > 0 && current[0].File != entry.FilePath {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, NewTableRow(entry))
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

func (t *TableFormatter) calculateColumnWidths(groups [][]TableRow, withFile bool) columnWidths {
	widths := columnWidths{
		line:    minLineWidth,
		message: minMessageWidth,
		kind:    minKindWidth,
	}
	if withFile {
		widths.file = minFileWidth
	}

	for _, group := range groups {
		for _, row := range group {
			if withFile {
				widths.file = max(widths.file, len(row.File))
			}
			widths.line = max(widths.line, len(row.Line))
			widths.message = max(widths.message, len(row.Message))
			widths.kind = max(widths.kind, len(row.Kind))
		}
	}

	// Shrink the message first, then the file path.
	if total := t.totalWidth(widths, withFile); total > t.termWidth {
		widths.message = max(minMessageWidth, widths.message-(total-t.termWidth))
	}
	if total := t.totalWidth(widths, withFile); withFile && total > t.termWidth {
		widths.file = max(minFileWidth, widths.file-(total-t.termWidth))
	}

	return widths
}

func (t *TableFormatter) totalWidth(widths columnWidths, withFile bool) int {
	if withFile {
		return severityWidth + widths.file + widths.line + widths.message + widths.kind +
			tablePadding*tableColumnCount
	}
	return severityWidth + widths.line + widths.message + widths.kind +
		tablePadding*perFileColumnCount
}

func (t *TableFormatter) formatHeader(widths columnWidths, withFile bool) string {
	var header string
	if withFile {
		header = fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s  %-*s ",
			severityWidth, " ",
			widths.file, "FILE",
			widths.line, "LINE",
			widths.message, "MESSAGE",
			widths.kind, "KIND",
		)
	} else {
		header = fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s ",
			severityWidth, " ",
			widths.line, "LINE",
			widths.message, "MESSAGE",
			widths.kind, "KIND",
		)
	}
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths, withFile bool, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, t.totalWidth(widths, withFile)))
}

// formatRow formats a single row with severity-based styling.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths, withFile bool) string {
	line := truncateString(row.Line, widths.line)
	message := truncateString(row.Message, widths.message)
	kind := truncateString(row.Kind, widths.kind)

	var content string
	if withFile {
		content = fmt.Sprintf(" %s  %-*s  %-*s  %-*s  %-*s ",
			severityLetter(row.Severity),
			widths.file, truncateFilePath(row.File, widths.file),
			widths.line, line,
			widths.message, message,
			widths.kind, kind,
		)
	} else {
		content = fmt.Sprintf(" %s  %-*s  %-*s  %-*s ",
			severityLetter(row.Severity),
			widths.line, line,
			widths.message, message,
			widths.kind, kind,
		)
	}

	return t.rowStyle(row.Severity).Render(content)
}

func (t *TableFormatter) rowStyle(severity config.Severity) lipgloss.Style {
	switch severity {
	case config.SeverityError:
		return t.styles.TableErrorRow
	case config.SeverityWarning:
		return t.styles.TableWarnRow
	case config.SeverityInfo:
		return t.styles.TableInfoRow
	default:
		return lipgloss.NewStyle()
	}
}

func severityLetter(severity config.Severity) string {
	switch severity {
	case config.SeverityError:
		return "E"
	case config.SeverityInfo:
		return "I"
	default:
		return "W"
	}
}

func (t *TableFormatter) formatLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(" Legend: E = error | W = warning | I = info")
	}

	return t.styles.TableLegend.Render(fmt.Sprintf(" Legend: %s = error  %s = warning  %s = info",
		t.styles.TableErrorRow.Render(" E "),
		t.styles.TableWarnRow.Render(" W "),
		t.styles.TableInfoRow.Render(" I "),
	))
}

// formatRowsSummary formats a per-severity count for a set of rows.
func (t *TableFormatter) formatRowsSummary(rows []TableRow) string {
	var totals analysis.Totals
	for _, row := range rows {
		switch row.Severity {
		case config.SeverityError:
			totals.Errors++
		case config.SeverityInfo:
			totals.Infos++
		default:
			totals.Warns++
		}
	}
	return t.formatCounts(totals, nil)
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(totals analysis.Totals, duration string) string {
	return t.formatCounts(totals, []string{fmt.Sprintf("%d files checked", totals.Files)}, duration)
}

func (t *TableFormatter) formatCounts(totals analysis.Totals, lead []string, extra ...string) string {
	parts := lead
	if totals.Errors > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d errors", totals.Errors)))
	}
	if totals.Warns > 0 {
		parts = append(parts, t.styles.Warning.Render(fmt.Sprintf("%d warnings", totals.Warns)))
	}
	if totals.Infos > 0 {
		parts = append(parts, t.styles.Info.Render(fmt.Sprintf("%d info", totals.Infos)))
	}
	for _, e := range extra {
		if e != "" {
			parts = append(parts, t.styles.Dim.Render(e))
		}
	}
	return " " + strings.Join(parts, " | ")
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
