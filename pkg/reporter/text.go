package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gomdhtml/internal/ui/pretty"
	"github.com/yaklabco/gomdhtml/pkg/analysis"
)

// TextRenderer formats findings as styled terminal output.
type TextRenderer struct {
	opts   Options
	styles *pretty.Styles
}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer(opts Options) *TextRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
	}
}

// Render implements Renderer.
func (r *TextRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	for _, failure := range report.Failures {
		fmt.Fprint(bw, r.styles.FormatFailure(failure.FilePath, failure.Error))
	}

	if r.opts.GroupByFile {
		r.renderGrouped(bw, report)
	} else {
		for _, entry := range report.Findings {
			fmt.Fprint(bw, r.styles.FormatFinding(entry, r.opts.ShowContext))
		}
	}

	if r.opts.ShowSummary {
		if report.Totals.Files == 0 && report.Totals.FilesErrored == 0 {
			fmt.Fprintln(bw, r.styles.Success.Render("No files to check."))
			return nil
		}
		fmt.Fprint(bw, r.styles.FormatSummaryOneLine(report.Totals))
	}

	return nil
}

// renderGrouped writes findings under one header per file.
func (r *TextRenderer) renderGrouped(bw *bufio.Writer, report *analysis.Report) {
	findings := report.Findings
	for start := 0; start < len(findings); {
		end := start
		for end < len(findings) && findings[end].FilePath == findings[start].FilePath {
			end++
		}

		fmt.Fprintln(bw, r.styles.FormatFileHeader(findings[start].FilePath, end-start))
		for _, entry := range findings[start:end] {
			fmt.Fprint(bw, r.styles.FormatFinding(entry, r.opts.ShowContext))
		}
		fmt.Fprintln(bw)

		start = end
	}
}
