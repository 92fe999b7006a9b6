package directives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shunnNet/co/internal/adapter"
	m "github.com/shunnNet/co/internal/model"
)

func newTestPaths(aliases map[string]string) *PathResolver {
	return NewPathResolver(adapter.NewLocalSourceFSAdapter(), aliases)
}

func targetsOf(source m.Source) []m.Path {
	out := make([]m.Path, 0, len(source.Directives))
	for _, d := range source.Directives {
		out = append(out, d.TargetPath)
	}

	return out
}

func TestScriptResolver_BlockImports(t *testing.T) {
	r := NewScriptResolver(Options{Paths: newTestPaths(nil)})

	content := "// co\n" +
		"import { a } from './a'\n" +
		"import './b.js'\n" +
		"const c = require('./c.ts')\n" +
		"import again from './a'\n" +
		"// co-end\n" +
		"import outside from './outside.js'\n"

	source := r.Resolve(content, "/proj/src/index.js")

	assert.Equal(t, m.Path("/proj/src/index.js"), source.Path)
	assert.Equal(t, content, source.Content)
	assert.Equal(t, []m.Path{"/proj/src/a.txt", "/proj/src/c.ts", "/proj/src/b.js"}, targetsOf(source))

	for _, d := range source.Directives {
		assert.True(t, d.IsFullFile())
	}
}

func TestScriptResolver_QueryExtensions(t *testing.T) {
	r := NewScriptResolver(Options{Paths: newTestPaths(nil)})

	content := "// co\n" +
		"import a from './a?co-ext=ts'\n" +
		"import lib from './lib?co-ext=js&co-index'\n" +
		"// co-end\n"

	source := r.Resolve(content, "/proj/src/index.js")

	assert.Equal(t, []m.Path{"/proj/src/a.ts", "/proj/src/lib/index.js"}, targetsOf(source))
}

func TestScriptResolver_Alias(t *testing.T) {
	r := NewScriptResolver(Options{Paths: newTestPaths(map[string]string{
		"@/":      "/proj/src/",
		"@/deep/": "/proj/other/",
	})})

	content := "// co\nimport a from '@/utils/a.js'\nimport b from '@/deep/b.js'\n// co-end\n"

	source := r.Resolve(content, "/proj/src/pages/index.js")

	assert.Equal(t, []m.Path{"/proj/src/utils/a.js", "/proj/other/b.js"}, targetsOf(source))
}

func TestScriptResolver_ImplicitTargets(t *testing.T) {
	paths := newTestPaths(nil)
	r := NewScriptResolver(Options{
		Paths:   paths,
		Matcher: NewGlobMatcher(paths, "/proj", []string{"src/gen/**"}),
	})

	content := "import x from './gen/x.js'\nimport y from './other.js'\n"

	source := r.Resolve(content, "/proj/src/index.js")

	assert.Equal(t, []m.Path{"/proj/src/gen/x.js"}, targetsOf(source))
}

func TestScriptResolver_NoDirectives(t *testing.T) {
	r := NewScriptResolver(Options{Paths: newTestPaths(nil)})

	source := r.Resolve("import x from './x.js'\n", "/proj/src/index.js")

	assert.Empty(t, source.Directives)
}

func TestScriptResolver_Fragment(t *testing.T) {
	r := NewScriptResolver(Options{Paths: newTestPaths(nil)})

	content := "// co-source path:./a.js\nexport const x = 1\n// co-end\n"

	source := r.Resolve(content, "/proj/src/index.js")

	require.Len(t, source.Directives, 1)
	assert.Equal(t, m.Path("/proj/src/a.js"), source.Directives[0].TargetPath)
	assert.Equal(t, "\nexport const x = 1\n", source.Directives[0].Fragment)
	assert.False(t, source.Directives[0].IsFullFile())
}

func TestScriptResolver_FragmentImportsAreNotDirectives(t *testing.T) {
	r := NewScriptResolver(Options{Paths: newTestPaths(nil)})

	content := "// co\nimport b from './b.js'\n// co-end\n" +
		"// co-source path:./a.js\n" +
		"import { helper } from './helper.js'\n" +
		"helper()\n" +
		"// co-end\n"

	source := r.Resolve(content, "/proj/src/index.js")

	require.Len(t, source.Directives, 2)
	assert.Equal(t, m.SourceDirective{TargetPath: "/proj/src/b.js"}, source.Directives[0])
	assert.Equal(t, m.Path("/proj/src/a.js"), source.Directives[1].TargetPath)
	assert.Equal(t, "\nimport { helper } from './helper.js'\nhelper()\n", source.Directives[1].Fragment)
}

func TestScriptResolver_FragmentWithoutPath(t *testing.T) {
	r := NewScriptResolver(Options{Paths: newTestPaths(nil)})

	source := r.Resolve("// co-source note\nexport const x = 1\n// co-end\n", "/proj/src/index.js")

	assert.Empty(t, source.Directives)
}

func TestMarkdownResolver_BlockLinks(t *testing.T) {
	r := NewMarkdownResolver(Options{Paths: newTestPaths(nil)})

	content := "# Doc\n<!-- co -->\n[api](./api.ts)\n[plain](./plain)\n[typed](./typed?co-ext=go)\n<!-- co-end -->\n[outside](./outside.ts)\n"

	source := r.Resolve(content, "/proj/docs/guide.md")

	assert.Equal(t, []m.Path{"/proj/docs/api.ts", "/proj/docs/typed.go"}, targetsOf(source))
}

func TestMarkdownResolver_Fragment(t *testing.T) {
	r := NewMarkdownResolver(Options{Paths: newTestPaths(nil)})

	content := "<!-- co-source path:./api.ts -->\nsnippet\n<!-- co-end -->\n"

	source := r.Resolve(content, "/proj/docs/guide.md")

	require.Len(t, source.Directives, 1)
	assert.Equal(t, m.Path("/proj/docs/api.ts"), source.Directives[0].TargetPath)
	assert.Equal(t, "\nsnippet\n", source.Directives[0].Fragment)
}

func TestPathResolver_Canonicalize(t *testing.T) {
	paths := newTestPaths(map[string]string{"~/": "/proj/"})

	tests := []struct {
		name   string
		base   m.Path
		ref    string
		strict bool
		want   m.Path
		err    error
	}{
		{name: "relative with extension", base: "/proj/src/a.ts", ref: "../lib/b.ts", want: "/proj/lib/b.ts"},
		{name: "alias", base: "/proj/src/a.ts", ref: "~/lib/b.ts", want: "/proj/lib/b.ts"},
		{name: "co-ext", base: "/proj/src/a.ts", ref: "./b?co-ext=vue", want: "/proj/src/b.vue"},
		{name: "co-index", base: "/proj/src/a.ts", ref: "./b?co-ext=ts&co-index", want: "/proj/src/b/index.ts"},
		{name: "fallback", base: "/proj/src/a.ts", ref: "./b", want: "/proj/src/b.txt"},
		{name: "strict without extension", base: "/proj/doc.md", ref: "./b", strict: true, err: ErrUnsupportedReference},
		{name: "base without extension", base: "/proj/Makefile", ref: "./b.ts", err: ErrNoExtension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := paths.Canonicalize(tt.base, tt.ref, tt.strict)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDispatcher_For(t *testing.T) {
	opts := Options{Paths: newTestPaths(nil)}
	script := NewScriptResolver(opts)
	markdown := NewMarkdownResolver(opts)
	d := NewDispatcher(script, markdown)

	r, ok := d.For("/proj/a.tsx")
	require.True(t, ok)
	assert.Same(t, script, r)

	r, ok = d.For("/proj/README.md")
	require.True(t, ok)
	assert.Same(t, markdown, r)

	_, ok = d.For("/proj/main.go")
	assert.False(t, ok)
}

func TestGlobMatcher_Empty(t *testing.T) {
	matcher := NewGlobMatcher(newTestPaths(nil), "/proj", nil)

	assert.False(t, matcher("/proj/anything.ts"))
}
