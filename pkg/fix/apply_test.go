package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdhtml/pkg/fix"
)

func TestApplyEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		edits   []fix.TextEdit
		want    string
	}{
		{
			name:    "no edits",
			content: "<p><b>x",
			want:    "<p><b>x",
		},
		{
			name:    "replace opening tag with delimiter",
			content: "<p><b>x",
			edits:   []fix.TextEdit{{StartOffset: 3, EndOffset: 6, NewText: "**"}},
			want:    "<p>**x",
		},
		{
			name:    "insertion",
			content: "ab",
			edits:   []fix.TextEdit{{StartOffset: 1, EndOffset: 1, NewText: "-"}},
			want:    "a-b",
		},
		{
			name:    "deletion at end",
			content: "abc<s>",
			edits:   []fix.TextEdit{{StartOffset: 3, EndOffset: 6}},
			want:    "abc",
		},
		{
			name:    "two repairs on one line",
			content: "<i>a<sup>b",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 3, NewText: "*"},
				{StartOffset: 4, EndOffset: 9, NewText: "^"},
			},
			want: "*a^b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fix.ApplyEdits(tt.content, tt.edits))
		})
	}
}

func TestEditBuilder(t *testing.T) {
	t.Parallel()

	var b fix.EditBuilder
	b.ReplaceRange(6, 6, "!")
	b.ReplaceRange(0, 3, "*")
	b.ReplaceRange(4, 5, "")
	require.Len(t, b.Edits, 3)

	got, err := b.Apply("<i>a b")
	require.NoError(t, err)
	assert.Equal(t, "*ab!", got)

	b.Reset()
	assert.Empty(t, b.Edits)
}

func TestEditBuilder_ApplyRejectsConflicts(t *testing.T) {
	t.Parallel()

	var b fix.EditBuilder
	b.ReplaceRange(0, 4, "x")
	b.ReplaceRange(2, 5, "y")

	got, err := b.Apply("abcdef")
	require.Error(t, err)

	var conflict *fix.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "abcdef", got)
}

func TestTextEdit_Delta(t *testing.T) {
	t.Parallel()

	e := fix.TextEdit{StartOffset: 2, EndOffset: 7, NewText: "**"}
	assert.Equal(t, 5, e.Len())
	assert.Equal(t, -3, e.Delta())
}
