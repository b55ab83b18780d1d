package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		totals       Totals
		wantWarnings bool
		wantErrors   bool
	}{
		{name: "empty", totals: Totals{}},
		{name: "warnings only", totals: Totals{Warnings: 2, Warns: 2}, wantWarnings: true},
		{name: "with errors", totals: Totals{Warnings: 3, Errors: 1, Warns: 2}, wantWarnings: true, wantErrors: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantWarnings, tt.totals.HasWarnings())
			assert.Equal(t, tt.wantErrors, tt.totals.HasErrors())
		})
	}
}

func TestSortField_IsValid(t *testing.T) {
	t.Parallel()

	for _, f := range []SortField{SortByCount, SortByAlpha, SortBySeverity} {
		assert.True(t, f.IsValid(), f)
	}
	assert.False(t, SortField("random").IsValid())
}
