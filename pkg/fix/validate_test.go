package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdhtml/pkg/fix"
)

func TestValidateEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		edits   []fix.TextEdit
		length  int
		wantErr string
	}{
		{name: "valid", edits: []fix.TextEdit{{StartOffset: 0, EndOffset: 3}}, length: 3},
		{name: "negative start", edits: []fix.TextEdit{{StartOffset: -1, EndOffset: 1}}, length: 3, wantErr: "negative"},
		{name: "inverted", edits: []fix.TextEdit{{StartOffset: 2, EndOffset: 1}}, length: 3, wantErr: "before start"},
		{name: "past end", edits: []fix.TextEdit{{StartOffset: 0, EndOffset: 4}}, length: 3, wantErr: "exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fix.ValidateEdits(tt.edits, tt.length)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			var verr *fix.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSortEdits(t *testing.T) {
	t.Parallel()

	edits := []fix.TextEdit{
		{StartOffset: 5, EndOffset: 6, NewText: "c"},
		{StartOffset: 1, EndOffset: 3, NewText: "b"},
		{StartOffset: 1, EndOffset: 1, NewText: "a"},
	}
	fix.SortEdits(edits)

	assert.Equal(t, []string{"a", "b", "c"}, []string{edits[0].NewText, edits[1].NewText, edits[2].NewText})
}

func TestPrepareEdits(t *testing.T) {
	t.Parallel()

	t.Run("sorts without mutating input", func(t *testing.T) {
		t.Parallel()

		in := []fix.TextEdit{
			{StartOffset: 4, EndOffset: 5},
			{StartOffset: 0, EndOffset: 2},
		}
		out, err := fix.PrepareEdits(in, 5)
		require.NoError(t, err)
		assert.Equal(t, 0, out[0].StartOffset)
		assert.Equal(t, 4, in[0].StartOffset)
	})

	t.Run("reports overlap", func(t *testing.T) {
		t.Parallel()

		_, err := fix.PrepareEdits([]fix.TextEdit{
			{StartOffset: 0, EndOffset: 3},
			{StartOffset: 2, EndOffset: 4},
		}, 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "overlapping")
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		out, err := fix.PrepareEdits(nil, 0)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
