package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/yaklabco/gomdhtml/pkg/analysis"
	"github.com/yaklabco/gomdhtml/pkg/runner"
)

const summaryDividerWidth = 40

// FormatSummaryOneLine formats check totals as a single line.
// Example: "5 warnings (1 error, 3 warnings, 1 info) in 2 files".
func (s *Styles) FormatSummaryOneLine(totals analysis.Totals) string {
	var parts []string

	if totals.Warnings == 0 {
		parts = append(parts, s.Success.Render("No warnings found")+
			s.Dim.Render(fmt.Sprintf(" (%s checked)", english.Plural(totals.Files, "file", ""))))
	} else {
		main := english.Plural(totals.Warnings, "warning", "")
		if breakdown := s.severityBreakdown(totals); breakdown != "" {
			main += " (" + breakdown + ")"
		}
		parts = append(parts, main, "in "+english.Plural(totals.FilesWithWarnings, "file", ""))
	}

	if totals.Suppressed > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d suppressed", totals.Suppressed)))
	}
	if totals.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(english.Plural(totals.FilesErrored, "file", "")+" failed"))
	}

	return strings.Join(parts, ", ") + "\n"
}

func (s *Styles) severityBreakdown(totals analysis.Totals) string {
	var parts []string
	if totals.Errors > 0 {
		parts = append(parts, s.Error.Render(english.Plural(totals.Errors, "error", "")))
	}
	if totals.Warns > 0 {
		parts = append(parts, s.Warning.Render(english.Plural(totals.Warns, "warning", "")))
	}
	if totals.Infos > 0 {
		parts = append(parts, s.Info.Render(fmt.Sprintf("%d info", totals.Infos)))
	}
	return strings.Join(parts, ", ")
}

// FormatSummary formats check totals as a summary block.
func (s *Styles) FormatSummary(totals analysis.Totals, duration time.Duration) string {
	var builder strings.Builder

	row := func(label, value string) {
		builder.WriteString(fmt.Sprintf("  %-20s%s\n", label+":", value))
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row("Files checked", s.SummaryValue.Render(strconv.Itoa(totals.Files)))
	if totals.FilesWithWarnings > 0 {
		row("Files with warnings", s.Failure.Render(strconv.Itoa(totals.FilesWithWarnings)))
	}
	if totals.FilesErrored > 0 {
		row("Files failed", s.Failure.Render(strconv.Itoa(totals.FilesErrored)))
	}
	row("Markdown read", s.SummaryValue.Render(humanize.Bytes(uint64(max(totals.BytesIn, 0)))))
	row("HTML produced", s.SummaryValue.Render(humanize.Bytes(uint64(max(totals.BytesOut, 0)))))

	builder.WriteString("\n")

	row("Total warnings", s.SummaryValue.Render(humanize.Comma(int64(totals.Warnings))))
	if totals.Errors > 0 {
		row("  Errors", s.Error.Render(strconv.Itoa(totals.Errors)))
	}
	if totals.Warns > 0 {
		row("  Warnings", s.Warning.Render(strconv.Itoa(totals.Warns)))
	}
	if totals.Infos > 0 {
		row("  Info", s.Info.Render(strconv.Itoa(totals.Infos)))
	}
	if totals.Suppressed > 0 {
		row("  Suppressed", s.Dim.Render(strconv.Itoa(totals.Suppressed)))
	}
	if duration > 0 {
		row("Duration", s.Dim.Render(duration.Round(time.Millisecond).String()))
	}

	builder.WriteString("\n")

	switch {
	case totals.Errors > 0 || totals.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Check failed with errors"))
	case totals.Warnings > 0:
		builder.WriteString(s.Warning.Render("Check completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatRenderSummary formats the outcome of a render run.
// Example: "Rendered 3 files (4.1 kB → 6.0 kB), 2 written, 5 warnings".
func (s *Styles) FormatRenderSummary(stats runner.Stats, dryRun bool) string {
	verb := "Rendered"
	if dryRun {
		verb = "Would render"
	}

	parts := []string{fmt.Sprintf("%s %s (%s → %s)",
		verb,
		english.Plural(stats.FilesProcessed, "file", ""),
		humanize.Bytes(uint64(max(stats.BytesIn, 0))),
		humanize.Bytes(uint64(max(stats.BytesOut, 0))),
	)}

	if !dryRun {
		if stats.FilesWritten > 0 {
			parts = append(parts, s.Success.Render(fmt.Sprintf("%d written", stats.FilesWritten)))
		} else {
			parts = append(parts, s.Dim.Render("all up to date"))
		}
	}
	if stats.WarningsTotal > 0 {
		parts = append(parts, s.Warning.Render(english.Plural(stats.WarningsTotal, "warning", "")))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(english.Plural(stats.FilesErrored, "file", "")+" failed"))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatVerifySummary formats the outcome of a golden verification run.
// Example: "3 matched, 1 differs, 2 without golden file".
func (s *Styles) FormatVerifySummary(stats runner.Stats) string {
	parts := []string{s.Success.Render(fmt.Sprintf("%d matched", stats.GoldenMatched))}

	if stats.GoldenMismatched > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s",
			stats.GoldenMismatched, english.PluralWord(stats.GoldenMismatched, "differs", "differ"))))
	}
	if stats.GoldenMissing > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d without golden file", stats.GoldenMissing)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(english.Plural(stats.FilesErrored, "file", "")+" failed"))
	}

	return strings.Join(parts, ", ") + "\n"
}
