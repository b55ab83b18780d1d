package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdhtml/internal/ui/pretty"
	"github.com/yaklabco/gomdhtml/pkg/analysis"
	"github.com/yaklabco/gomdhtml/pkg/config"
)

func TestFormatFinding(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name        string
		entry       analysis.FindingEntry
		showContext bool
		want        string
	}{
		{
			name: "with line",
			entry: analysis.FindingEntry{
				FilePath: "doc.md", Kind: "italic-not-closed", Severity: "warning",
				Message: "italic text was not closed", Line: 3, Source: "*open",
			},
			want: "  doc.md:3  warning  italic text was not closed  (italic-not-closed)\n",
		},
		{
			name: "with context",
			entry: analysis.FindingEntry{
				FilePath: "doc.md", Kind: "italic-not-closed", Severity: "warning",
				Message: "italic text was not closed", Line: 3, Source: "*open",
			},
			showContext: true,
			want: "  doc.md:3  warning  italic text was not closed  (italic-not-closed)\n" +
				"       3 | *open\n",
		},
		{
			name: "without line",
			entry: analysis.FindingEntry{
				FilePath: "doc.md", Kind: "empty-link", Severity: "error",
				Message: "link text or target is empty",
			},
			showContext: true,
			want:        "  doc.md  error  link text or target is empty  (empty-link)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatFinding(tt.entry, tt.showContext))
		})
	}
}

func TestFormatSeverity_AllLevels(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "error", styles.FormatSeverity(config.SeverityError))
	assert.Equal(t, "warning", styles.FormatSeverity(config.SeverityWarning))
	assert.Equal(t, "info", styles.FormatSeverity(config.SeverityInfo))
	assert.Equal(t, "custom", styles.FormatSeverity(config.Severity("custom")))
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "doc.md", styles.FormatFileHeader("doc.md", 0))
	assert.Equal(t, "doc.md (1 warning)", styles.FormatFileHeader("doc.md", 1))
	assert.Equal(t, "doc.md (4 warnings)", styles.FormatFileHeader("doc.md", 4))
}

func TestFormatFailure(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "big.md: error: file too large\n", styles.FormatFailure("big.md", "file too large"))
}

func TestFormatDiff(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	diff := "--- a.html\n+++ a.html\n@@ -1 +1 @@\n-<p>old</p>\n+<p>new</p>\n"

	assert.Equal(t, diff, styles.FormatDiff(diff))
}

func TestFormatDiffStat(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "1 file differs, 1 insertion(+), 2 deletions(-)", styles.FormatDiffStat(1, 1, 2))
	assert.Equal(t, "2 files differ", styles.FormatDiffStat(2, 0, 0))
}
