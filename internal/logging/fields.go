package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"
	FieldEvent      = "event"
	FieldDuration   = "duration"

	// Configuration fields.
	FieldHeadingIDs = "heading_ids"
	FieldDryRun     = "dry_run"
	FieldJobs       = "jobs"
	FieldFormat     = "format"

	// Statistics fields.
	FieldFilesDiscovered   = "files_discovered"
	FieldFilesProcessed    = "files_processed"
	FieldFilesWritten      = "files_written"
	FieldFilesWithWarnings = "files_with_warnings"
	FieldWarnings          = "warnings"
	FieldMismatches        = "mismatches"
	FieldBytes             = "bytes"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Warning kind fields.
	FieldKind        = "kind"
	FieldLine        = "line"
	FieldSeverity    = "severity"
	FieldTags        = "tags"
	FieldDescription = "description"
)
