// Package docs renders reference documentation for registered surface
// components. Every page is generated from the live registry and the real
// wire codec, so the documentation describes exactly what the module builds.
package docs

import (
	"context"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-surface/pkg/accessibility"
	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/registry"
)

// Format selects the output flavor for generated pages.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

const defaultTitle = "Surface Components"

// Option configures a Generator.
type Option func(*Generator)

// WithRegistry documents reg instead of the default component registry.
func WithRegistry(reg *registry.Registry) Option {
	return func(g *Generator) {
		if reg != nil {
			g.reg = reg
		}
	}
}

// WithFormat selects markdown or HTML output.
func WithFormat(f Format) Option {
	return func(g *Generator) {
		if f != "" {
			g.format = f
		}
	}
}

// WithTheme threads renderer theme context (tokens, CSS variables) into the
// HTML templates. Markdown output ignores it.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(g *Generator) {
		g.themeCfg = cfg
	}
}

// WithTemplatesFS overrides the embedded templates. The filesystem must
// mirror the embedded layout, templates/*.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(g *Generator) {
		if files != nil {
			g.files = files
		}
	}
}

// WithTitle sets the document set title shown on the index page.
func WithTitle(title string) Option {
	return func(g *Generator) {
		if title != "" {
			g.title = title
		}
	}
}

// Generator produces one reference page per registered component plus an
// index, keyed by file name.
type Generator struct {
	reg      *registry.Registry
	format   Format
	themeCfg *theme.RendererConfig
	files    fs.FS
	title    string
	engine   *engine
}

// New builds a Generator. Defaults are markdown output against the default
// registry using the embedded templates.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		format: FormatMarkdown,
		title:  defaultTitle,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	if g.reg == nil {
		g.reg = registry.Default()
	}
	if g.files == nil {
		g.files = TemplatesFS()
	}
	switch g.format {
	case FormatMarkdown, FormatHTML:
	default:
		return nil, fmt.Errorf("docs: unsupported format %q", g.format)
	}
	g.engine = newEngine(g.files)
	return g, nil
}

// Generate renders every component page and the index. Components render in
// sorted name order, so output is deterministic.
func (g *Generator) Generate(ctx context.Context) (map[string][]byte, error) {
	themeData := buildThemeContext(g.themeCfg).context()

	names := g.reg.Names()
	pages := make(map[string][]byte, len(names)+1)
	entries := make([]map[string]any, 0, len(names))

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		def, err := g.reg.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("docs: %w", err)
		}

		file := pageFile(def.Name, g.format)
		out, err := g.engine.render(componentTemplate(g.format), pongo2.Context{
			"title":     g.title,
			"theme":     themeData,
			"component": componentData(def),
		})
		if err != nil {
			return nil, err
		}
		pages[file] = out

		entries = append(entries, map[string]any{
			"name":     def.Name,
			"file":     file,
			"category": string(def.Category),
			"children": def.Children.String(),
		})
	}

	out, err := g.engine.render(indexTemplate(g.format), pongo2.Context{
		"title":      g.title,
		"theme":      themeData,
		"count":      len(names),
		"components": entries,
	})
	if err != nil {
		return nil, err
	}
	pages[indexFile(g.format)] = out

	return pages, nil
}

func componentTemplate(f Format) string {
	if f == FormatHTML {
		return "templates/component.html.tpl"
	}
	return "templates/component.md.tpl"
}

func indexTemplate(f Format) string {
	if f == FormatHTML {
		return "templates/index.html.tpl"
	}
	return "templates/index.md.tpl"
}

func pageFile(name string, f Format) string {
	return slugify(name) + pageExt(f)
}

func indexFile(f Format) string {
	return "index" + pageExt(f)
}

func pageExt(f Format) string {
	if f == FormatHTML {
		return ".html"
	}
	return ".md"
}

// componentData flattens a registry definition into the template context.
// Prop rows keep declaration order.
func componentData(def *registry.Definition) map[string]any {
	rows := make([]map[string]any, 0, len(def.Props))
	for _, spec := range def.Props {
		rows = append(rows, map[string]any{
			"name":     spec.Name,
			"kind":     spec.Kind.String(),
			"required": spec.Required,
			"values":   strings.Join(propValues(spec), ", "),
			"default":  defaultString(spec.Default),
		})
	}

	example, _ := wireExample(def.Name)

	return map[string]any{
		"name":     def.Name,
		"category": string(def.Category),
		"children": def.Children.String(),
		"role":     string(accessibility.DefaultRole(def.Name)),
		"props":    rows,
		"example":  example,
	}
}

func propValues(spec registry.PropSpec) []string {
	switch spec.Kind {
	case registry.KindEnum:
		return spec.Enum
	case registry.KindAlignment:
		aligns := props.Alignments()
		names := make([]string, len(aligns))
		for i, a := range aligns {
			names[i] = string(a)
		}
		return names
	}
	return nil
}

func defaultString(v props.Value) string {
	switch val := v.(type) {
	case props.String:
		return string(val)
	case props.Number:
		return strconv.FormatFloat(float64(val), 'g', -1, 64)
	case props.Bool:
		return strconv.FormatBool(bool(val))
	}
	return ""
}
