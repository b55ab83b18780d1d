// Package source provides a line index over Markdown input. The converter
// uses it to walk the document line by line, and reporters use it to show
// the offending line for a warning.
package source

// Snapshot is an immutable view of a document and its line index.
type Snapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full document bytes.
	Content []byte

	// Lines contains metadata for each line in the document.
	Lines []LineInfo
}

// LineInfo holds metadata for a single line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// Len returns the length of the line content, excluding the newline.
func (l LineInfo) Len() int {
	return l.NewlineStart - l.StartOffset
}

// HasNewline reports whether the line is terminated by a newline.
func (l LineInfo) HasNewline() bool {
	return l.EndOffset > l.NewlineStart
}

// New creates a Snapshot and builds its line index.
func New(path string, content []byte) *Snapshot {
	return &Snapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}
