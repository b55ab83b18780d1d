package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gomdhtml/internal/ui/pretty"
	"github.com/yaklabco/gomdhtml/pkg/analysis"
	"github.com/yaklabco/gomdhtml/pkg/runner"
)

var _ Reporter = (*DiffReporter)(nil)

// DiffReporter prints a git-style diff for every rendered file that no
// longer matches its golden HTML.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
	}
}

// Report implements Reporter. It returns the number of mismatched files.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	if result == nil {
		return 0, nil
	}

	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	var mismatched, additions, deletions int

	for _, file := range result.Files {
		displayPath := analysis.RelativePath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprint(bw, r.styles.FormatFailure(displayPath, file.Error.Error()))
			continue
		}

		if file.Golden == nil || file.Golden.Matched() {
			continue
		}

		mismatched++
		additions += file.Golden.Changes.Additions
		deletions += file.Golden.Changes.Deletions

		goldenPath := analysis.RelativePath(file.Golden.Path, r.opts.WorkingDir)
		fmt.Fprintln(bw, r.styles.DiffHeader.Render(fmt.Sprintf("diff %s %s", goldenPath, displayPath)))
		fmt.Fprint(bw, r.styles.FormatDiff(file.Golden.Diff))
		fmt.Fprintln(bw)
	}

	if r.opts.ShowSummary {
		if mismatched > 0 {
			fmt.Fprintln(bw, r.styles.FormatDiffStat(mismatched, additions, deletions))
		}
		fmt.Fprint(bw, r.styles.FormatVerifySummary(result.Stats))
	}

	return mismatched, nil
}
