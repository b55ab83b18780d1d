package analysis

import "time"

// Report contains pre-computed views of a conversion run.
// Computed once by Analyze, used by all renderers.
type Report struct {
	// Findings is the flat list for detailed output.
	Findings []FindingEntry `json:"findings,omitempty"`

	// ByFile groups findings by file path.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByKind groups findings by warning kind.
	ByKind []KindAnalysis `json:"byKind,omitempty"`

	// Failures lists files that could not be processed.
	Failures []FailureEntry `json:"failures,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// FindingEntry is a single warning in the report.
type FindingEntry struct {
	FilePath string `json:"filePath"`
	Kind     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line_number,omitempty"`

	// Source is the text of the offending line, when known.
	Source string `json:"source,omitempty"`
}

// FailureEntry records a file that could not be read or written.
type FailureEntry struct {
	FilePath string `json:"filePath"`
	Error    string `json:"error"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files             int   `json:"filesProcessed"`
	FilesWithWarnings int   `json:"filesWithWarnings"`
	FilesErrored      int   `json:"filesErrored"`
	Warnings          int   `json:"totalWarnings"`
	Errors            int   `json:"errors"`
	Warns             int   `json:"warnings"`
	Infos             int   `json:"infos"`
	Suppressed        int   `json:"suppressed"`
	BytesIn           int64 `json:"bytesIn"`
	BytesOut          int64 `json:"bytesOut"`
}

// HasWarnings returns true if there are any findings.
func (t Totals) HasWarnings() bool {
	return t.Warnings > 0
}

// HasErrors returns true if any finding has error severity.
func (t Totals) HasErrors() bool {
	return t.Errors > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path     string   `json:"path"`
	Warnings int      `json:"warnings"`
	Errors   int      `json:"errors"`
	Warns    int      `json:"warns"`
	Infos    int      `json:"infos"`
	Kinds    []string `json:"kinds,omitempty"`
}

// KindAnalysis contains aggregated data for a single warning kind.
type KindAnalysis struct {
	Kind        string   `json:"type"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Warnings    int      `json:"warnings"`
	Files       []string `json:"files,omitempty"`
}
