package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gomdhtml/pkg/analysis"
	"github.com/yaklabco/gomdhtml/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path     string        `json:"path"`
	Warnings []JSONWarning `json:"warnings"`
	HTML     *string       `json:"html,omitempty"`
	Output   string        `json:"output,omitempty"`
	Written  bool          `json:"written,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// JSONWarning represents a single warning.
type JSONWarning struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	LineNumber int    `json:"line_number,omitempty"`
	Severity   string `json:"severity"`
	Source     string `json:"source,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked      int            `json:"filesChecked"`
	FilesWithWarnings int            `json:"filesWithWarnings"`
	FilesWritten      int            `json:"filesWritten"`
	FilesErrored      int            `json:"filesErrored"`
	TotalWarnings     int            `json:"totalWarnings"`
	Suppressed        int            `json:"suppressed"`
	BySeverity        map[string]int `json:"bySeverity"`
	ByKind            map[string]int `json:"byKind"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(bw)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalWarnings, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: analysis.ReportVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
			ByKind:     make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:     analysis.RelativePath(file.Path, r.opts.WorkingDir),
			Warnings: make([]JSONWarning, 0, len(file.Findings)),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
			output.Files = append(output.Files, fileResult)
			continue
		}

		if r.opts.IncludeHTML {
			html := file.HTML
			fileResult.HTML = &html
		}
		if file.OutputPath != "" {
			fileResult.Output = analysis.RelativePath(file.OutputPath, r.opts.WorkingDir)
			fileResult.Written = file.Written
		}

		for _, f := range file.Findings {
			fileResult.Warnings = append(fileResult.Warnings, JSONWarning{
				Type:       string(f.Kind),
				Message:    f.Message,
				LineNumber: f.Line,
				Severity:   string(f.Severity),
				Source:     analysis.SourceLine(file.Snapshot, f.Line),
			})
			output.Summary.BySeverity[string(f.Severity)]++
			output.Summary.ByKind[string(f.Kind)]++
		}

		output.Summary.TotalWarnings += len(file.Findings)
		output.Summary.Suppressed += file.Suppressed
		if len(file.Findings) > 0 {
			output.Summary.FilesWithWarnings++
		}
		if file.Written {
			output.Summary.FilesWritten++
		}
		output.Summary.FilesChecked++

		output.Files = append(output.Files, fileResult)
	}

	return output
}
