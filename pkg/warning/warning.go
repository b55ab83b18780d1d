// Package warning defines the warnings produced while converting Markdown to HTML.
package warning

import (
	"fmt"
	"slices"
)

// Warning describes a malformed construct found during conversion.
type Warning struct {
	// Kind identifies the category of the problem.
	Kind Kind `json:"type"`

	// Message is the human-readable description of the problem.
	Message string `json:"message"`

	// Line is the 1-based line number of the problem, or 0 when the
	// warning is not tied to a line.
	Line int `json:"line_number,omitempty"`
}

// HasLine reports whether the warning carries a line number.
func (w Warning) HasLine() bool {
	return w.Line > 0
}

// String formats the warning as "line N: message (kind)".
func (w Warning) String() string {
	if w.HasLine() {
		return fmt.Sprintf("line %d: %s (%s)", w.Line, w.Message, w.Kind)
	}

	return fmt.Sprintf("%s (%s)", w.Message, w.Kind)
}

// Collector accumulates warnings in the order they are raised.
// The zero value is ready to use. A Collector is not safe for concurrent use.
type Collector struct {
	items []Warning
}

// Add records a warning with the kind's default message.
func (c *Collector) Add(kind Kind, line int) {
	c.items = append(c.items, Warning{
		Kind:    kind,
		Message: kind.Message(),
		Line:    line,
	})
}

// Addf records a warning with a custom message.
func (c *Collector) Addf(kind Kind, line int, format string, args ...any) {
	c.items = append(c.items, Warning{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
	})
}

// Len returns the number of collected warnings.
func (c *Collector) Len() int {
	return len(c.items)
}

// Warnings returns a copy of the collected warnings.
func (c *Collector) Warnings() []Warning {
	if len(c.items) == 0 {
		return nil
	}

	return slices.Clone(c.items)
}

// Filter returns the warnings whose kind is not in ignore.
// The input slice is not modified.
func Filter(warnings []Warning, ignore []Kind) []Warning {
	if len(ignore) == 0 {
		return slices.Clone(warnings)
	}

	skip := make(map[Kind]struct{}, len(ignore))
	for _, k := range ignore {
		skip[k] = struct{}{}
	}

	var kept []Warning
	for _, w := range warnings {
		if _, ok := skip[w.Kind]; ok {
			continue
		}
		kept = append(kept, w)
	}

	return kept
}

// Suppressed returns how many warnings Filter would drop.
func Suppressed(warnings []Warning, ignore []Kind) int {
	return len(warnings) - len(Filter(warnings, ignore))
}

// CountByKind tallies warnings per kind.
func CountByKind(warnings []Warning) map[Kind]int {
	counts := make(map[Kind]int)
	for _, w := range warnings {
		counts[w.Kind]++
	}

	return counts
}
