package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdhtml/pkg/source"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []source.LineInfo
	}{
		{
			name:    "empty",
			content: "",
			want:    []source.LineInfo{},
		},
		{
			name:    "single line",
			content: "abc",
			want:    []source.LineInfo{{StartOffset: 0, NewlineStart: 3, EndOffset: 3}},
		},
		{
			name:    "trailing newline yields empty last line",
			content: "a\n",
			want: []source.LineInfo{
				{StartOffset: 0, NewlineStart: 1, EndOffset: 2},
				{StartOffset: 2, NewlineStart: 2, EndOffset: 2},
			},
		},
		{
			name:    "crlf",
			content: "a\r\nb",
			want: []source.LineInfo{
				{StartOffset: 0, NewlineStart: 1, EndOffset: 3},
				{StartOffset: 3, NewlineStart: 4, EndOffset: 4},
			},
		},
		{
			name:    "blank lines",
			content: "\n\n",
			want: []source.LineInfo{
				{StartOffset: 0, NewlineStart: 0, EndOffset: 1},
				{StartOffset: 1, NewlineStart: 1, EndOffset: 2},
				{StartOffset: 2, NewlineStart: 2, EndOffset: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, source.BuildLines([]byte(tt.content)))
		})
	}
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	snap := source.New("doc.md", []byte("# a\r\n\n  \nlast"))
	require.Equal(t, 4, snap.LineCount())

	assert.Equal(t, []byte("# a"), snap.LineContent(1))
	assert.Equal(t, []byte("last"), snap.LineContent(4))
	assert.Nil(t, snap.LineContent(0))
	assert.Nil(t, snap.LineContent(5))

	assert.False(t, snap.IsBlank(1))
	assert.True(t, snap.IsBlank(2))
	assert.True(t, snap.IsBlank(3))
	assert.True(t, snap.IsBlank(9))

	assert.True(t, snap.Lines[0].HasNewline())
	assert.False(t, snap.Lines[3].HasNewline())
	assert.Equal(t, 3, snap.Lines[0].Len())
}

func TestSnapshot_LineAt(t *testing.T) {
	t.Parallel()

	snap := source.New("", []byte("ab\ncd"))

	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{offset: 0, wantLine: 1, wantCol: 1},
		{offset: 2, wantLine: 1, wantCol: 3},
		{offset: 3, wantLine: 2, wantCol: 1},
		{offset: 5, wantLine: 2, wantCol: 3},
		{offset: -1, wantLine: 0, wantCol: 0},
	}

	for _, tt := range tests {
		line, col := snap.LineAt(tt.offset)
		assert.Equal(t, tt.wantLine, line, "offset %d", tt.offset)
		assert.Equal(t, tt.wantCol, col, "offset %d", tt.offset)
	}
}
