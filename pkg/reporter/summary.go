package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/yaklabco/gomdhtml/internal/ui/pretty"
	"github.com/yaklabco/gomdhtml/pkg/analysis"
)

// Table layout constants for summary output.
// Both tables use the same width for visual consistency.
const (
	tableWidth        = 90
	kindColWidth      = 30
	fileColWidth      = 60
	numColWidth       = 7
	warnColWidth      = 8
	severityColWidth  = 10
	maxKindNameLength = 28
	maxFilePathLength = 58
)

// padRight pads a string to the given width with spaces on the right.
// It must be applied before styling so ANSI codes do not count toward the width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryRenderer formats results as aggregated summary tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if !report.Totals.HasWarnings() {
		fmt.Fprintln(r.out, r.styles.Success.Render("No warnings found"))
		return nil
	}

	if r.opts.SummaryOrder == SummaryOrderFiles {
		r.renderFileTable(report.ByFile)
		fmt.Fprintln(r.out)
		r.renderKindTable(report.ByKind)
	} else {
		r.renderKindTable(report.ByKind)
		fmt.Fprintln(r.out)
		r.renderFileTable(report.ByFile)
	}

	fmt.Fprintln(r.out)
	r.renderTotals(report.Totals)

	return nil
}

func (r *SummaryRenderer) renderKindTable(kinds []analysis.KindAnalysis) {
	if len(kinds) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Warning Kinds"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	fmt.Fprintf(r.out, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("Kind", kindColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Files", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Severity", severityColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, kind := range kinds {
		name := kind.Kind
		if len(name) > maxKindNameLength {
			name = name[:maxKindNameLength] + "…"
		}

		padded := padRight(name, kindColWidth)
		var styled string
		switch kind.Severity {
		case "error":
			styled = r.styles.TableErrorRow.Render(padded)
		case "warning":
			styled = r.styles.TableWarnRow.Render(padded)
		default:
			styled = r.styles.TableInfoRow.Render(padded)
		}

		fmt.Fprintf(r.out, "%s %s %s %s\n",
			styled,
			padLeft(strconv.Itoa(kind.Warnings), numColWidth),
			padLeft(strconv.Itoa(len(kind.Files)), numColWidth),
			padLeft(kind.Severity, severityColWidth),
		)
	}
}

func (r *SummaryRenderer) renderFileTable(files []analysis.FileAnalysis) {
	if len(files) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Files"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	fmt.Fprintf(r.out, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Warnings", warnColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, file := range files {
		path := file.Path
		if len(path) > maxFilePathLength {
			path = "…" + path[len(path)-(maxFilePathLength-1):]
		}

		padded := padRight(path, fileColWidth)
		var styled string
		switch {
		case file.Errors > 0:
			styled = r.styles.TableErrorRow.Render(padded)
		case file.Warns > 0:
			styled = r.styles.TableWarnRow.Render(padded)
		default:
			styled = padded
		}

		fmt.Fprintf(r.out, "%s %s %s %s\n",
			styled,
			padLeft(strconv.Itoa(file.Warnings), numColWidth),
			padLeft(strconv.Itoa(file.Errors), numColWidth),
			padLeft(strconv.Itoa(file.Warns), warnColWidth),
		)
	}
}

func (r *SummaryRenderer) renderTotals(totals analysis.Totals) {
	line := strings.TrimSuffix(r.styles.FormatSummaryOneLine(totals), "\n")
	fmt.Fprintln(r.out, r.styles.Bold.Render("Total: ")+line)
	fmt.Fprintln(r.out, r.styles.Dim.Render(fmt.Sprintf("%s of Markdown read, %s of HTML produced",
		humanize.Bytes(uint64(max(totals.BytesIn, 0))),
		humanize.Bytes(uint64(max(totals.BytesOut, 0))))))
}
