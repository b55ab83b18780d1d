package runner

import (
	"time"

	"github.com/yaklabco/gomdhtml/pkg/config"
	"github.com/yaklabco/gomdhtml/pkg/fsutil"
	"github.com/yaklabco/gomdhtml/pkg/golden"
	"github.com/yaklabco/gomdhtml/pkg/source"
	"github.com/yaklabco/gomdhtml/pkg/warning"
)

// Finding is a reported warning with its resolved severity.
type Finding struct {
	warning.Warning

	// Severity is the kind's default severity or its configured override.
	Severity config.Severity
}

// GoldenCheck is the verification outcome for one file.
type GoldenCheck struct {
	// Path is the expected-output file.
	Path string

	// Diff is the unified diff from expected to rendered, empty on a match.
	Diff string

	// Changes counts the added and removed lines in Diff.
	Changes golden.Stats
}

// Matched reports whether the rendered HTML equals the golden file.
func (g *GoldenCheck) Matched() bool {
	return g != nil && g.Diff == ""
}

// FileOutcome is the result of processing one Markdown file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Snapshot holds the source content and line index for reporters.
	// Nil when the file could not be read.
	Snapshot *source.Snapshot

	// Info captures the source state when it was read.
	Info *fsutil.FileInfo

	// HTML is the rendered document.
	HTML string

	// Findings are the reported warnings in source order.
	Findings []Finding

	// Suppressed counts warnings dropped by ignore_warnings.
	Suppressed int

	// OutputPath is where the HTML goes in render mode.
	OutputPath string

	// Written is true when the output file was created or changed.
	Written bool

	// Golden is set in verify mode when the file has a golden sibling.
	Golden *GoldenCheck

	// Duration is the time spent on this file.
	Duration time.Duration

	// Error is set if the file could not be processed.
	Error error
}

// Warnings returns the findings as plain warnings.
func (o FileOutcome) Warnings() []warning.Warning {
	if len(o.Findings) == 0 {
		return nil
	}
	out := make([]warning.Warning, len(o.Findings))
	for i, f := range o.Findings {
		out[i] = f.Warning
	}
	return out
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully converted.
	FilesProcessed int

	// FilesErrored is the number of files that could not be processed.
	FilesErrored int

	// FilesWritten is the number of output files created or changed.
	FilesWritten int

	// FilesWithWarnings is the number of files with at least one finding.
	FilesWithWarnings int

	// WarningsTotal is the number of findings across all files.
	WarningsTotal int

	// WarningsSuppressed is the number of warnings dropped by ignore_warnings.
	WarningsSuppressed int

	// WarningsBySeverity maps severity levels to counts.
	WarningsBySeverity map[config.Severity]int

	// GoldenMatched and GoldenMismatched count verify outcomes.
	GoldenMatched    int
	GoldenMismatched int

	// GoldenMissing counts files without a golden sibling in verify mode.
	GoldenMissing int

	// BytesIn and BytesOut total the Markdown read and HTML produced.
	BytesIn  int64
	BytesOut int64

	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// Result is the overall runner result.
type Result struct {
	// Mode is the mode the run used.
	Mode Mode

	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any finding has error severity.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.WarningsBySeverity[config.SeverityError] > 0
}

// HasIssues reports whether any finding was reported.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.WarningsTotal > 0
}

// HasErrors reports whether any file could not be processed.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// HasMismatches reports whether any golden comparison failed.
func (r *Result) HasMismatches() bool {
	return r != nil && r.Stats.GoldenMismatched > 0
}

// NewResult aggregates outcomes produced outside a Run, such as a single
// conversion of standard input.
func NewResult(mode Mode, outcomes ...FileOutcome) *Result {
	result := &Result{Mode: mode, Stats: newStats()}
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	result.Stats.FilesDiscovered = len(outcomes)
	return result
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		WarningsBySeverity: make(map[config.Severity]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.BytesOut += int64(len(outcome.HTML))
	if outcome.Info != nil {
		r.Stats.BytesIn += outcome.Info.Size
	}

	if outcome.Written {
		r.Stats.FilesWritten++
	}

	r.Stats.WarningsSuppressed += outcome.Suppressed
	r.Stats.WarningsTotal += len(outcome.Findings)
	if len(outcome.Findings) > 0 {
		r.Stats.FilesWithWarnings++
	}
	for _, f := range outcome.Findings {
		r.Stats.WarningsBySeverity[f.Severity]++
	}

	switch {
	case outcome.Golden == nil:
		if r.Mode == ModeVerify {
			r.Stats.GoldenMissing++
		}
	case outcome.Golden.Matched():
		r.Stats.GoldenMatched++
	default:
		r.Stats.GoldenMismatched++
	}
}
