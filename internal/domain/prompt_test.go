package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/shunnNet/co/internal/model"
)

func promptSources() []m.Source {
	return []m.Source{
		{
			Path:    "/proj/src/index.js",
			Content: "import { a } from './a.js'",
			Directives: []m.SourceDirective{
				{TargetPath: "/proj/src/a.js", Fragment: "use a here"},
				{TargetPath: "/proj/src/a.js"},
			},
		},
		{
			Path:    "/proj/src/other.js",
			Content: "unrelated",
			Directives: []m.SourceDirective{
				{TargetPath: "/proj/src/b.js"},
			},
		},
	}
}

func TestWritePrompt(t *testing.T) {
	got := WritePrompt(promptSources(), "/proj/src/a.js")

	assert.True(t, strings.HasPrefix(got, writePromptIntro+"\n\n"))
	assert.True(t, strings.HasSuffix(got, "---referenced file---\nfilename: /proj/src/a.js\ncontent:\n"))

	full := "---source file---\nname: /proj/src/index.js\ncontent: import { a } from './a.js'"
	fragment := "---source file---\nname: /proj/src/index.js\ncontent: use a here"

	assert.Contains(t, got, full+"\n"+fragment)
	assert.NotContains(t, got, "unrelated")
}

func TestRewritePrompt(t *testing.T) {
	directive := m.RewriteDirective{Index: 0, Content: "old body", Prompt: "keep it short"}

	got := RewritePrompt(promptSources(), "/proj/src/a.js", directive)

	assert.True(t, strings.HasPrefix(got, rewritePromptIntro))
	assert.Contains(t, got, "current part of contents: old body\n")
	assert.Contains(t, got, "---rewrited part of contents---\nhint: keep it short\ncontent:\n")
}

func TestRewritePrompt_NoHint(t *testing.T) {
	directive := m.RewriteDirective{Index: 0, Content: "old body"}

	got := RewritePrompt(promptSources(), "/proj/src/a.js", directive)

	assert.NotContains(t, got, "hint:")
	assert.True(t, strings.HasSuffix(got, "---rewrited part of contents---\n\ncontent:\n"))
}
