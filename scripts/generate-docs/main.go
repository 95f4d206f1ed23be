// Regenerates the committed reference material: component pages under
// docs/reference and the OpenAPI export at docs/surface.openapi.json.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-surface/pkg/docs"
	"github.com/goliatone/go-surface/pkg/openapi"
	"github.com/goliatone/go-surface/pkg/registry"
)

func main() {
	var (
		pagesDir   = flag.String("pages", "docs/reference", "directory for component reference pages")
		schemaPath = flag.String("schema", "docs/surface.openapi.json", "output path for the OpenAPI export")
		format     = flag.String("format", "markdown", "page format (markdown, html)")
	)
	flag.Parse()

	ctx := context.Background()

	gen, err := docs.New(docs.WithFormat(docs.Format(*format)))
	if err != nil {
		fail(err)
	}
	pages, err := gen.Generate(ctx)
	if err != nil {
		fail(err)
	}

	if err := os.MkdirAll(*pagesDir, 0o755); err != nil {
		fail(err)
	}
	for name, content := range pages {
		if err := os.WriteFile(filepath.Join(*pagesDir, name), content, 0o644); err != nil {
			fail(err)
		}
	}
	fmt.Printf("✓ Wrote %d reference pages to %s\n", len(pages), *pagesDir)

	schema, err := openapi.ExportJSON(registry.Default())
	if err != nil {
		fail(err)
	}
	if err := os.MkdirAll(filepath.Dir(*schemaPath), 0o755); err != nil {
		fail(err)
	}
	if err := os.WriteFile(*schemaPath, schema, 0o644); err != nil {
		fail(err)
	}
	fmt.Printf("✓ Wrote OpenAPI export to %s\n", *schemaPath)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "generate-docs: %v\n", err)
	os.Exit(1)
}
