package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdhtml/pkg/analysis"
	"github.com/yaklabco/gomdhtml/pkg/config"
)

// FormatFinding formats a single finding for terminal output:
//
//	path:line  severity  message  (kind)
//
// followed by the offending source line when showContext is set.
func (s *Styles) FormatFinding(entry analysis.FindingEntry, showContext bool) string {
	var builder strings.Builder

	location := s.FilePath.Render(entry.FilePath)
	if entry.Line > 0 {
		location += s.Location.Render(":" + strconv.Itoa(entry.Line))
	}

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(config.Severity(entry.Severity)),
		s.Message.Render(entry.Message),
		s.Kind.Render("("+entry.Kind+")"),
	))

	if showContext && entry.Line > 0 && entry.Source != "" {
		builder.WriteString(s.FormatSourceContext(entry.Line, entry.Source))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats a source line behind a numbered gutter.
func (s *Styles) FormatSourceContext(line int, text string) string {
	const indent = "    "
	gutter := s.Gutter.Render(fmt.Sprintf("%4d |", line))
	return indent + gutter + " " + s.SourceLine.Render(text) + "\n"
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, count int) string {
	header := s.FilePath.Render(path)
	switch {
	case count == 1:
		header += s.Dim.Render(" (1 warning)")
	case count > 1:
		header += s.Dim.Render(fmt.Sprintf(" (%d warnings)", count))
	}
	return header
}

// FormatFailure formats a file that could not be processed.
func (s *Styles) FormatFailure(path string, err string) string {
	return fmt.Sprintf("%s: %s\n", s.FilePath.Render(path), s.Error.Render("error: "+err))
}
