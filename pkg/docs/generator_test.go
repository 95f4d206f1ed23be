package docs

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-surface/pkg/registry"
	"github.com/goliatone/go-surface/pkg/testsupport"
)

func TestGenerateMarkdownPages(t *testing.T) {
	t.Parallel()

	g, err := New()
	require.NoError(t, err)

	pages, err := g.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, registry.Default().Len()+1)

	require.Contains(t, pages, "index.md")
	for _, name := range registry.Default().Names() {
		require.Contains(t, pages, pageFile(name, FormatMarkdown))
	}
}

func TestGenerateTextPageGolden(t *testing.T) {
	t.Parallel()

	g, err := New()
	require.NoError(t, err)

	pages, err := g.Generate(context.Background())
	require.NoError(t, err)

	got := pages["text.md"]
	golden := filepath.Join("testdata", "text.md")
	if testsupport.WriteMaybeGolden(t, golden, got) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	if diff := testsupport.CompareGolden(want, string(got)); diff != "" {
		t.Fatalf("text page mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateIndexOrdering(t *testing.T) {
	t.Parallel()

	g, err := New(WithTitle("Component Reference"))
	require.NoError(t, err)

	pages, err := g.Generate(context.Background())
	require.NoError(t, err)

	index := string(pages["index.md"])
	require.Contains(t, index, "# Component Reference")
	require.Contains(t, index, "10 components registered.")
	require.Contains(t, index, "| [Button](button.md) | interactive | none |")
	require.Contains(t, index, "| [Column](column.md) | layout | allowed |")
	require.Less(t, strings.Index(index, "[Button]"), strings.Index(index, "[Column]"))
	require.Less(t, strings.Index(index, "[Column]"), strings.Index(index, "[Toast]"))
}

func TestGenerateHTMLWithTheme(t *testing.T) {
	t.Parallel()

	cfg := &theme.RendererConfig{
		Theme:   "dusk",
		Variant: "dark",
		CSSVars: map[string]string{
			"--surface-accent": "#3366ff",
			"--surface-bg":     "#101014",
		},
	}
	g, err := New(WithFormat(FormatHTML), WithTheme(cfg))
	require.NoError(t, err)

	pages, err := g.Generate(context.Background())
	require.NoError(t, err)
	require.Contains(t, pages, "index.html")
	require.Contains(t, pages, "button.html")

	index := string(pages["index.html"])
	require.Contains(t, index, "<title>Surface Components</title>")
	require.Contains(t, index, ":root {")
	require.Contains(t, index, "--surface-accent: #3366ff;")
	require.Contains(t, index, `data-theme="dusk"`)
	require.Contains(t, index, `data-variant="dark"`)

	button := string(pages["button.html"])
	require.Contains(t, button, `<h1 id="button">Button</h1>`)
	require.Contains(t, button, "<h2>Wire example</h2>")
	require.Contains(t, button, "__action")
	require.NotContains(t, button, `"__action"`)
}

func TestGenerateHTMLWithoutTheme(t *testing.T) {
	t.Parallel()

	g, err := New(WithFormat(FormatHTML))
	require.NoError(t, err)

	pages, err := g.Generate(context.Background())
	require.NoError(t, err)

	index := string(pages["index.html"])
	require.NotContains(t, index, "<style>")
	require.NotContains(t, index, "data-theme")
}

func TestGenerateCustomRegistry(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	reg.MustRegister(&registry.Definition{
		Name:     "Badge",
		Category: registry.CategoryContent,
		Children: registry.ChildrenNone,
		Props: []registry.PropSpec{
			{Name: "label", Kind: registry.KindString, Required: true},
		},
	})

	g, err := New(WithRegistry(reg))
	require.NoError(t, err)

	pages, err := g.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, 2)

	badge := string(pages["badge.md"])
	require.Contains(t, badge, "# Badge")
	require.Contains(t, badge, "- Default role: `none`")
	require.Contains(t, badge, "| `label` | string | yes |  |  |")
	require.NotContains(t, badge, "Wire example")
}

func TestGenerateTemplateOverride(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"templates/component.md.tpl": &fstest.MapFile{Data: []byte("{{ component.name }}\n")},
		"templates/index.md.tpl":     &fstest.MapFile{Data: []byte("{{ count }} pages\n")},
	}
	g, err := New(WithTemplatesFS(files))
	require.NoError(t, err)

	pages, err := g.Generate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Toast\n", string(pages["toast.md"]))
	require.Equal(t, "10 pages\n", string(pages["index.md"]))
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	g, err := New()
	require.NoError(t, err)

	first, err := g.Generate(context.Background())
	require.NoError(t, err)
	second, err := g.Generate(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := New(WithFormat(Format("pdf")))
	require.EqualError(t, err, `docs: unsupported format "pdf"`)
}

func TestGenerateContextCanceled(t *testing.T) {
	t.Parallel()

	g, err := New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = g.Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"ProgressBar", "progressbar"},
		{"Text Input", "text-input"},
		{"v2 Widgets!", "v2-widgets"},
		{"--Fancy--", "fancy"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, slugify(tc.in), "slugify(%q)", tc.in)
	}
}
