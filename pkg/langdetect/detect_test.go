package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdhtml/pkg/langdetect"
)

func TestDetectTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "shebang bash", content: "#!/bin/bash\necho hello", want: "bash"},
		{name: "shebang sh", content: "#!/bin/sh\necho hello", want: "bash"},
		{name: "shebang python", content: "#!/usr/bin/env python3\nprint('hello')", want: "python"},
		{name: "go package clause", content: "package main\n\nfunc main() {}", want: "go"},
		{name: "python def", content: "def foo():\n    pass", want: "python"},
		{name: "python dunder", content: "if __name__ == '__main__':\n    run()", want: "python"},
		{name: "python from import", content: "from os import path\n", want: "python"},
		{name: "html doctype", content: "<!DOCTYPE html>\n<p>x</p>", want: "html"},
		{name: "html body", content: "<body>\n</body>", want: "html"},
		{name: "sql select", content: "select * from users where id = 1;", want: "sql"},
		{name: "sql create", content: "CREATE TABLE t (id int);", want: "sql"},
		{name: "rust main", content: "fn main() {}", want: "rust"},
		{name: "rust macro", content: "println!(\"hi\");", want: "rust"},
		{name: "rust let mut", content: "let mut x = 1;", want: "rust"},
		{name: "javascript arrow", content: "xs.map(x => x * 2);", want: "javascript"},
		{name: "javascript console", content: "console.log(1);", want: "javascript"},
		{name: "javascript const", content: "const x = 1;", want: "javascript"},
		{name: "blank", content: "  \n ", want: ""},
		{name: "plain words", content: "just some words here", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, langdetect.DetectTag([]byte(tt.content)))
		})
	}
}

func TestDetectTag_ShebangTakesPrecedence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bash", langdetect.DetectTag([]byte("#!/bin/bash\ndef foo():\n    pass")))
}

func TestDetectTag_OnlyReturnsKnownTags(t *testing.T) {
	t.Parallel()

	for _, content := range []string{
		`{"a": 1, "b": [true]}`,
		"FROM alpine\nRUN apk add git",
		"key: value\nother: thing",
		"#!/usr/bin/awk -f\n{ print $1 }",
	} {
		tag := langdetect.DetectTag([]byte(content))
		if tag != "" {
			assert.True(t, langdetect.IsKnown(tag), "%q detected as %q", content, tag)
		}
	}
}

func TestIsKnown(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{
		"python", "py", "rust", "rs", "javascript", "js", "typescript", "ts",
		"java", "c", "cpp", "csharp", "html", "css", "markdown", "md",
		"brainfuck", "php", "bash", "perl", "sql", "ruby", "basic",
		"assembly", "asm", "wasm", "r", "go", "swift",
	} {
		assert.True(t, langdetect.IsKnown(tag), tag)
	}

	assert.True(t, langdetect.IsKnown("Markdown"))
	assert.True(t, langdetect.IsKnown("GO"))
	assert.False(t, langdetect.IsKnown("cobol"))
	assert.False(t, langdetect.IsKnown(""))
	assert.Len(t, langdetect.Tags(), 29)
}
