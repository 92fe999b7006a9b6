package domain

import (
	"strings"

	m "github.com/shunnNet/co/internal/model"
)

const writePromptIntro = `We have "source files" reference a file not been written, I need you write the "referenced file" contents which fulfill the usage requirements in other source files. You must only return file content without any word.`

const rewritePromptIntro = `We have "source files" reference a file, which has a part of content need adjust, I need you rewrite the content in "referenced file" to fulfill the usage requirements in other source files. You must only return rewrited content without any word.`

// sourcesPrompt renders the contribution of every source to target: the
// whole content when the source names target without a fragment, then each
// fragment for target in order of appearance.
func sourcesPrompt(sources []m.Source, target m.Path) string {
	parts := make([]string, 0, len(sources))

	for _, source := range sources {
		var blocks []string

		full := false

		for _, d := range source.Directives {
			if d.TargetPath == target && d.IsFullFile() {
				full = true
				break
			}
		}

		if full {
			blocks = append(blocks, sourceBlock(source.Path, source.Content))
		}

		for _, d := range source.Directives {
			if d.TargetPath == target && !d.IsFullFile() {
				blocks = append(blocks, sourceBlock(source.Path, d.Fragment))
			}
		}

		if len(blocks) > 0 {
			parts = append(parts, strings.Join(blocks, "\n"))
		}
	}

	return strings.Join(parts, "\n")
}

func sourceBlock(path m.Path, content string) string {
	return strings.Join([]string{
		"---source file---",
		"name: " + string(path),
		"content: " + content,
	}, "\n")
}

// WritePrompt composes the prompt for synthesising target from sources.
func WritePrompt(sources []m.Source, target m.Path) string {
	var b strings.Builder

	b.WriteString(writePromptIntro)
	b.WriteString("\n\n")
	b.WriteString(sourcesPrompt(sources, target))
	b.WriteString("\n\n---referenced file---\n")
	b.WriteString("filename: " + string(target) + "\n")
	b.WriteString("content:\n")

	return b.String()
}

// RewritePrompt composes the prompt for regenerating one region of target.
func RewritePrompt(sources []m.Source, target m.Path, directive m.RewriteDirective) string {
	var b strings.Builder

	b.WriteString(rewritePromptIntro)
	b.WriteString("\n\n")
	b.WriteString(sourcesPrompt(sources, target))
	b.WriteString("\n\n---referenced file---\n")
	b.WriteString("filename: " + string(target) + "\n")
	b.WriteString("current part of contents: " + directive.Content + "\n")
	b.WriteString("\n---rewrited part of contents---\n")

	if strings.TrimSpace(directive.Prompt) != "" {
		b.WriteString("hint: " + directive.Prompt)
	}

	b.WriteString("\ncontent:\n")

	return b.String()
}
