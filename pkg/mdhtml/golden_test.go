package mdhtml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdhtml/pkg/golden"
	"github.com/yaklabco/gomdhtml/pkg/mdhtml"
	"github.com/yaklabco/gomdhtml/pkg/warning"
)

func TestGolden(t *testing.T) {
	t.Parallel()

	cases, err := golden.Discover("testdata", []string{".md"})
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			input, err := os.ReadFile(tc.InputPath)
			require.NoError(t, err)
			want, err := os.ReadFile(tc.GoldenPath)
			require.NoError(t, err)

			got := mdhtml.Parse(string(input))

			diff, err := golden.Diff(tc.Name, string(want), got)
			require.NoError(t, err)
			assert.Empty(t, diff, "rendered output differs from %s", filepath.Base(tc.GoldenPath))
		})
	}
}

func TestGolden_DegradedWarnings(t *testing.T) {
	t.Parallel()

	input, err := os.ReadFile(filepath.Join("testdata", "degraded.md"))
	require.NoError(t, err)

	result := mdhtml.ParseWithWarnings(string(input))
	assert.Equal(t, []at{
		{warning.HeadingBroken, 1},
		{warning.TooMuchHeader, 2},
		{warning.HorizontalRuleBroken, 3},
		{warning.UnorderedListBroken, 5},
		{warning.MissingImageAlt, 6},
		{warning.WeirdHref, 6},
		{warning.ItalicNotClosed, 7},
	}, kindsAndLines(result.Warnings))
}
