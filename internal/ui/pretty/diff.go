package pretty

import (
	"strings"

	"github.com/dustin/go-humanize/english"
)

// FormatDiff colorizes a unified diff line by line.
func (s *Styles) FormatDiff(diff string) string {
	var builder strings.Builder

	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		builder.WriteString(s.formatDiffLine(line))
		builder.WriteString("\n")
	}

	return builder.String()
}

func (s *Styles) formatDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "@@"):
		return s.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return s.DiffHeader.Render(line)
	case strings.HasPrefix(line, "+"):
		return s.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		return s.DiffRemove.Render(line)
	default:
		return s.DiffContext.Render(line)
	}
}

// FormatDiffStat formats the git-style change line for a set of diffs,
// for example "2 files differ, 3 insertions(+), 1 deletion(-)".
func (s *Styles) FormatDiffStat(files, additions, deletions int) string {
	parts := []string{english.Plural(files, "file", "") + " " + english.PluralWord(files, "differs", "differ")}

	if additions > 0 {
		parts = append(parts, s.DiffAdd.Render(
			english.Plural(additions, "insertion", "") + "(+)"))
	}
	if deletions > 0 {
		parts = append(parts, s.DiffRemove.Render(
			english.Plural(deletions, "deletion", "") + "(-)"))
	}

	return strings.Join(parts, ", ")
}
