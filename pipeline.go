package surface

import (
	"context"

	"github.com/goliatone/go-surface/pkg/document"
	"github.com/goliatone/go-surface/pkg/orchestrator"
	"github.com/goliatone/go-surface/pkg/tree"
)

// Request describes one pass through the generation pipeline; alias exported
// via the root package for convenience.
type Request = orchestrator.Request

// Source identifies where a surface document originates.
type Source = document.Source

// NewPipeline exposes the orchestrator constructor from the top-level
// module. The pipeline loads a document, compiles it, runs decorators, and
// encodes the result.
func NewPipeline(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the document, compiles it against the default registry,
// and encodes it in the named format. It is the simplest entry point for
// callers that just want output bytes.
func Generate(ctx context.Context, src Source, format string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, Request{
		Source: src,
		Format: format,
	})
}

// Validate compiles the document and returns its diagnostics without
// encoding anything.
func Validate(ctx context.Context, src Source, options ...orchestrator.Option) ([]*ValidationError, error) {
	gen := orchestrator.New(options...)
	return gen.Validate(ctx, src)
}

// SourceFromFile points the pipeline at an on-disk document.
func SourceFromFile(path string) Source {
	return document.SourceFromFile(path)
}

// SourceFromBytes wraps an in-memory document; the label stands in for a
// path in error messages.
func SourceFromBytes(label string, data []byte) Source {
	return document.SourceFromBytes(label, data)
}

// SourceFromURL points the pipeline at a remote document. The pipeline must
// be configured with an HTTP-enabled loader to fetch it.
func SourceFromURL(raw string) Source {
	return document.SourceFromURL(raw)
}

// WithBudget bounds surface size and depth for the pipeline's builder.
func WithBudget(budget Budget) orchestrator.Option {
	return orchestrator.WithBudget(budget)
}

// WithDecorators appends decorators that run over compiled trees before
// encoding.
func WithDecorators(decorators ...tree.Decorator) orchestrator.Option {
	return orchestrator.WithDecorators(decorators...)
}
