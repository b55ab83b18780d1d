// Package golden compares rendered HTML against expected output files and
// formats mismatches as unified diffs.
package golden

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Ext is the extension of expected-output files.
const Ext = ".html"

// contextLines is the number of unchanged lines shown around each hunk.
const contextLines = 3

// Case pairs a Markdown source with its expected HTML.
type Case struct {
	// Name is the case name, the source path relative to the discovery root.
	Name string

	// InputPath is the Markdown source.
	InputPath string

	// GoldenPath is the expected HTML.
	GoldenPath string
}

// Path returns the golden file path for a Markdown source: the same path
// with its extension replaced by .html.
func Path(mdPath string) string {
	return strings.TrimSuffix(mdPath, filepath.Ext(mdPath)) + Ext
}

// Discover finds Markdown files under dir that have a golden sibling.
// Files without one are skipped. Results are in lexical order.
func Discover(dir string, extensions []string) ([]Case, error) {
	var cases []Case

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !hasExtension(path, extensions) {
			return nil
		}

		goldenPath := Path(path)
		if _, statErr := os.Stat(goldenPath); statErr != nil {
			return nil //nolint:nilerr // missing golden means not a case
		}

		name, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			name = path
		}

		cases = append(cases, Case{
			Name:       filepath.ToSlash(name),
			InputPath:  path,
			GoldenPath: goldenPath,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover golden files in %s: %w", dir, err)
	}

	return cases, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// Diff returns a unified diff from want to got, or "" when they are equal.
// A missing trailing newline does not count as a difference.
func Diff(name, want, got string) (string, error) {
	want = normalize(want)
	got = normalize(got)
	if want == got {
		return "", nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: name + " (expected)",
		ToFile:   name + " (rendered)",
		Context:  contextLines,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", name, err)
	}

	return text, nil
}

func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSuffix(s, "\n") + "\n"
}

// Stats summarizes a diff.
type Stats struct {
	Additions int
	Deletions int
}

// CountChanges tallies added and removed lines in a unified diff.
func CountChanges(diff string) Stats {
	var stats Stats
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			stats.Additions++
		case strings.HasPrefix(line, "-"):
			stats.Deletions++
		}
	}
	return stats
}
