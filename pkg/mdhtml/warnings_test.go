package mdhtml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdhtml/pkg/mdhtml"
	"github.com/yaklabco/gomdhtml/pkg/warning"
)

// at is a warning kind with its line, the part of a warning tests care about.
type at struct {
	Kind warning.Kind
	Line int
}

func kindsAndLines(warnings []warning.Warning) []at {
	out := make([]at, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, at{Kind: w.Kind, Line: w.Line})
	}
	return out
}

func TestParseWithWarnings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantHTML string
		want     []at
	}{
		{
			name:     "clean input",
			input:    "# a\n\nplain *text*",
			wantHTML: "<h1 id=\"header-0\">a</h1>\n<p>plain <i>text</i></p>",
			want:     []at{},
		},
		{
			name:     "incomplete image",
			input:    "asdf![alt text(/images/ming-dynasty.png)",
			wantHTML: "<p>asdf![alt text(/images/ming-dynasty.png)</p>",
			want:     []at{{warning.ImageIncomplete, 1}},
		},
		{
			name:     "incomplete link",
			input:    "ok\n[fake link](oops",
			wantHTML: "<p>ok</p>\n<p>[fake link](oops</p>",
			want:     []at{{warning.LinkIncomplete, 2}},
		},
		{
			name:     "unclosed italic",
			input:    "*a",
			wantHTML: "<p>*a</p>",
			want:     []at{{warning.ItalicNotClosed, 1}},
		},
		{
			name:     "unclosed bold",
			input:    "ok\n**a* b",
			wantHTML: "<p>ok</p>\n<p>**a* b</p>",
			want:     []at{{warning.BoldNotClosed, 2}},
		},
		{
			name:     "unclosed superscript",
			input:    "^a",
			wantHTML: "<p>^a</p>",
			want:     []at{{warning.SuperscriptNotClosed, 1}},
		},
		{
			name:     "unclosed strikethrough is repaired silently",
			input:    "~~a",
			wantHTML: "<p>~~a</p>",
			want:     []at{},
		},
		{
			name:     "repair keeps later spans",
			input:    "*a `b` [c](/d)",
			wantHTML: "<p>*a <code>b</code> <a href=\"/d\">c</a></p>",
			want:     []at{{warning.ItalicNotClosed, 1}},
		},
		{
			name:     "spans are scoped to a line",
			input:    "*a\nb*",
			wantHTML: "<p>*a</p>\n<p>b*</p>",
			want:     []at{{warning.ItalicNotClosed, 1}, {warning.ItalicNotClosed, 2}},
		},
		{
			name:     "malformed blockquote marker",
			input:    ">x",
			wantHTML: "<p>&gt;x</p>",
			want:     []at{{warning.BlockquoteBroken, 1}},
		},
		{
			name:     "nested blockquote",
			input:    "> > a",
			wantHTML: "<blockquote><p>&gt; a</p>\n</blockquote>",
			want:     []at{{warning.BlockquoteBroken, 1}},
		},
		{
			name:     "unclosed code block",
			input:    "```go\nx",
			wantHTML: "<p><code></code>`go</p>\n<p>x</p>",
			want:     []at{{warning.CodeBlockNotClosed, 1}, {warning.CodeSnippetNotClosed, 1}},
		},
		{
			name:     "broken unordered list",
			input:    "- a\n-b",
			wantHTML: "<ul><li>a</li></ul>\n<p>-b</p>",
			want:     []at{{warning.UnorderedListBroken, 2}},
		},
		{
			name:     "dash without open list is plain",
			input:    "-b",
			wantHTML: "<p>-b</p>",
			want:     []at{},
		},
		{
			name:     "unclosed code span",
			input:    "a `b",
			wantHTML: "<p>a `b</p>",
			want:     []at{{warning.CodeSnippetNotClosed, 1}},
		},
		{
			name:     "too many hash marks",
			input:    "####### a",
			wantHTML: "<p>####### a</p>",
			want:     []at{{warning.TooMuchHeader, 1}},
		},
		{
			name:     "broken heading",
			input:    "#a",
			wantHTML: "<p>#a</p>",
			want:     []at{{warning.HeadingBroken, 1}},
		},
		{
			name:     "lone hash",
			input:    "#",
			wantHTML: "<p>#</p>",
			want:     []at{{warning.HeadingBroken, 1}},
		},
		{
			name:     "broken horizontal rule",
			input:    "--x",
			wantHTML: "<p>--x</p>",
			want:     []at{{warning.HorizontalRuleBroken, 1}},
		},
		{
			name:     "image without alt",
			input:    "![](a.png)",
			wantHTML: "<p><img src=\"a.png\" alt=\"\"></p>",
			want:     []at{{warning.MissingImageAlt, 1}},
		},
		{
			name:     "link without text",
			input:    "[](/a)",
			wantHTML: "<p><a href=\"/a\"></a></p>",
			want:     []at{{warning.EmptyLink, 1}},
		},
		{
			name:     "link without target",
			input:    "[a]()",
			wantHTML: "<p><a href=\"\">a</a></p>",
			want:     []at{{warning.EmptyLink, 1}},
		},
		{
			name:     "weird href",
			input:    "[a](b)",
			wantHTML: "<p><a href=\"b\">a</a></p>",
			want:     []at{{warning.WeirdHref, 1}},
		},
		{
			name:     "relative and absolute hrefs are fine",
			input:    "[a](./b) [c](mailto:x@y.z) [d](/e)",
			wantHTML: "<p><a href=\"./b\">a</a> <a href=\"mailto:x@y.z\">c</a> <a href=\"/e\">d</a></p>",
			want:     []at{},
		},
		{
			name:     "unknown language",
			input:    "```cobol\nx\n```",
			wantHTML: "<div class=\"code-block\">x</div>",
			want:     []at{{warning.UnknownLanguage, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := mdhtml.ParseWithWarnings(tt.input)
			assert.Equal(t, tt.wantHTML, result.HTML)
			assert.Equal(t, tt.want, kindsAndLines(result.Warnings))
		})
	}
}

func TestParseWithWarnings_QuotedFenceClosedByBlankLine(t *testing.T) {
	t.Parallel()

	result := mdhtml.ParseWithWarnings("> ```\n> a\n\n> ```")

	require.NotEmpty(t, result.Warnings)
	assert.Equal(t, at{warning.CodeBlockNotClosed, 1}, kindsAndLines(result.Warnings)[0])
	assert.NotContains(t, result.HTML, "code-block")
}

func TestParseWithWarnings_Messages(t *testing.T) {
	t.Parallel()

	result := mdhtml.ParseWithWarnings("```cobol\nx\n```\n> > nested")
	require.Len(t, result.Warnings, 2)

	assert.Equal(t, `unknown code block language "cobol"`, result.Warnings[0].Message)
	assert.Equal(t, "nested blockquotes are not supported", result.Warnings[1].Message)
	assert.Equal(t, 4, result.Warnings[1].Line)
}

func TestParseWithWarnings_FilterLeavesResultIntact(t *testing.T) {
	t.Parallel()

	result := mdhtml.ParseWithWarnings("[a](b)\n*c")
	require.Len(t, result.Warnings, 2)

	kept := warning.Filter(result.Warnings, []warning.Kind{warning.WeirdHref})
	require.Len(t, kept, 1)
	assert.Equal(t, warning.ItalicNotClosed, kept[0].Kind)
	assert.Len(t, result.Warnings, 2)
}
