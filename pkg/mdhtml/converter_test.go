package mdhtml_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdhtml/pkg/mdhtml"
)

func TestNew_DefaultsInvalidHeadingStyle(t *testing.T) {
	t.Parallel()

	c := mdhtml.New(mdhtml.Options{HeadingIDs: "bogus"})
	assert.Equal(t, mdhtml.HeadingIDCounter, c.Options().HeadingIDs)
	assert.Equal(t, `<h1 id="header-0">a</h1>`, c.Convert("# a").HTML)
}

func TestConvert_SlugHeadingIDs(t *testing.T) {
	t.Parallel()

	c := mdhtml.New(mdhtml.Options{HeadingIDs: mdhtml.HeadingIDSlug})
	got := c.Convert("# Hello World\n## Hello *World*\n# !!!").HTML

	want := "<h1 id=\"hello-world\">Hello World</h1>\n" +
		"<h2 id=\"hello-world-1\">Hello <i>World</i></h2>\n" +
		"<h1 id=\"header-2\">!!!</h1>"
	assert.Equal(t, want, got)
}

func TestConvert_DetectLanguage(t *testing.T) {
	t.Parallel()

	input := "```\npackage main\n```"

	plain := mdhtml.Parse(input)
	assert.Equal(t, `<div class="code-block">package main</div>`, plain)

	detected := mdhtml.New(mdhtml.Options{DetectLanguage: true}).Convert(input)
	assert.Equal(t, `<div class="code-block code-go">package main</div>`, detected.HTML)
	assert.Empty(t, detected.Warnings)
}

func TestConvert_DelimiterRows(t *testing.T) {
	t.Parallel()

	input := "| h | i |\n|---|:-:|\n| c | d |\n|---|---|"

	plain := mdhtml.Parse(input)
	assert.Equal(t, "<table><tr><th>h</th><th>i</th></tr>\n"+
		"<tr><td>---</td><td>:-:</td></tr>\n"+
		"<tr><td>c</td><td>d</td></tr>\n"+
		"<tr><td>---</td><td>---</td></tr>\n</table>", plain)

	// Only the row directly under the header is dropped.
	gfm := mdhtml.New(mdhtml.Options{DelimiterRows: true}).Convert(input)
	assert.Equal(t, "<table><tr><th>h</th><th>i</th></tr>\n"+
		"<tr><td>c</td><td>d</td></tr>\n"+
		"<tr><td>---</td><td>---</td></tr>\n</table>", gfm.HTML)
	assert.Empty(t, gfm.Warnings)
}

func TestConvert_HeadingIDsAreMonotonic(t *testing.T) {
	t.Parallel()

	got := mdhtml.Parse("# a\n## b\n# c")
	assert.Equal(t, "<h1 id=\"header-0\">a</h1>\n<h2 id=\"header-1\">b</h2>\n<h1 id=\"header-2\">c</h1>", got)
}

func TestConvert_HeadingCounterIsPerCall(t *testing.T) {
	t.Parallel()

	first := mdhtml.Parse("# a\n# b")
	second := mdhtml.Parse("# a\n# b")
	assert.Equal(t, first, second)
	assert.Contains(t, second, `id="header-0"`)
}

func TestConvert_CodeBlockLineCount(t *testing.T) {
	t.Parallel()

	lines := []string{" a", "   b", "c", "", "    d"}
	input := "```\n" + strings.Join(lines, "\n") + "\n```"

	got := mdhtml.Parse(input)
	require.True(t, strings.HasPrefix(got, `<div class="code-block">`))
	body := strings.TrimSuffix(strings.TrimPrefix(got, `<div class="code-block">`), "</div>")

	segments := strings.Split(body, "<br>")
	require.Len(t, segments, len(lines))
	for i, line := range lines {
		spaces := len(line) - len(strings.TrimLeft(line, " "))
		assert.Equal(t, strings.Repeat("&nbsp;", spaces)+strings.TrimLeft(line, " "), segments[i])
	}
}

func TestConvert_NoRawAngleBrackets(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<script>alert(1)</script>",
		"# <h1>",
		"`<code>`",
		"```\n<div>\n```",
		"|<a>|<b>|",
		"> <q>",
		"- <li>",
		"[<x>](<y>)",
		"![<x>](<y>)",
		"*<i>*",
		"\\<",
	}

	for _, input := range inputs {
		got := mdhtml.Parse(input)
		assert.NotContains(t, got, "<script", input)
		for _, tag := range []string{"<h1>", "<code>`", "<div>", "<a>", "<q>", "<x>", "<y>"} {
			assert.NotContains(t, got, tag, input)
		}
	}
}

func TestConvert_ParagraphPerLine(t *testing.T) {
	t.Parallel()

	input := "one\ntwo\n\n\nthree"
	assert.Equal(t, "<p>one</p>\n<p>two</p>\n<p>three</p>", mdhtml.Parse(input))
}

func TestConverter_ConcurrentUse(t *testing.T) {
	t.Parallel()

	c := mdhtml.New(mdhtml.Options{})

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := fmt.Sprintf("# h%d\n## g\n- *x*\n1. y", i)
			results[i] = c.Convert(input).HTML
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		want := fmt.Sprintf("<h1 id=\"header-0\">h%d</h1>\n<h2 id=\"header-1\">g</h2>\n<ul><li><i>x</i></li></ul>\n<ol><li>y</li></ol>", i)
		assert.Equal(t, want, got)
	}
}

func BenchmarkParse(b *testing.B) {
	doc := strings.Repeat("# Title\nSome *text* with `code` and [a link](https://x.y).\n- item\n\n", 200)

	b.ResetTimer()
	for range b.N {
		mdhtml.Parse(doc)
	}
}

func BenchmarkParse_UnclosedBackticks(b *testing.B) {
	doc := strings.Repeat("`", 100000)

	b.ResetTimer()
	for range b.N {
		mdhtml.Parse(doc)
	}
}
