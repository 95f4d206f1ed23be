package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-surface/internal/logger"
	"github.com/goliatone/go-surface/pkg/builder"
	"github.com/goliatone/go-surface/pkg/document"
	"github.com/goliatone/go-surface/pkg/encode"
	"github.com/goliatone/go-surface/pkg/encoders/term"
	"github.com/goliatone/go-surface/pkg/encoders/wire"
	"github.com/goliatone/go-surface/pkg/registry"
	"github.com/goliatone/go-surface/pkg/tree"
	"github.com/goliatone/go-surface/pkg/validation"
)

const defaultFormat = "wire"

// Orchestrator holds the configured pipeline stages. Construct with New;
// the zero value is not usable.
type Orchestrator struct {
	reg           *registry.Registry
	builder       *builder.Builder
	budget        *builder.Budget
	loader        *document.Loader
	encoders      *encode.Registry
	decorators    []tree.Decorator
	log           *logger.Logger
	defaultFormat string
}

// Request describes one generation pass through the pipeline.
type Request struct {
	// Source identifies the document to load. Required.
	Source document.Source

	// Format names the encoder producing the output. Empty selects the
	// orchestrator's default format.
	Format string

	// Indent pretty-prints structured output using the given unit, for
	// encoders that support it.
	Indent string

	// Width caps the line width of text-oriented output. Zero means the
	// encoder's default.
	Width int

	// NoColor strips ANSI styling from terminal output.
	NoColor bool
}

func (r *Request) applyDefaults(format string) {
	if r.Format == "" {
		r.Format = format
	}
}

// New creates an orchestrator. Without options it compiles against the
// default registry and budget, loads documents from the OS filesystem,
// and encodes with the wire and term encoders.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{defaultFormat: defaultFormat}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.builder == nil {
		var opts []builder.Option
		if o.reg != nil {
			opts = append(opts, builder.WithRegistry(o.reg))
		}
		if o.budget != nil {
			opts = append(opts, builder.WithBudget(*o.budget))
		}
		o.builder = builder.New(opts...)
	}
	o.reg = o.builder.Registry()

	if o.loader == nil {
		o.loader = document.NewLoader()
	}
	if o.encoders == nil {
		o.encoders = encode.NewRegistry()
		o.encoders.MustRegister(wire.New())
		o.encoders.MustRegister(term.New())
	}
	if o.log == nil {
		o.log = logger.Nop()
	}
}

// Builder returns the builder the pipeline compiles with.
func (o *Orchestrator) Builder() *builder.Builder {
	return o.builder
}

// Encoders returns the encoder registry serving Generate requests.
func (o *Orchestrator) Encoders() *encode.Registry {
	return o.encoders
}

// Generate loads the requested document, compiles it into a surface, runs
// the configured decorators, and encodes the result. Compilation
// diagnostics come back as a validation.List; infrastructure failures are
// wrapped with the stage that produced them.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req.applyDefaults(o.defaultFormat)

	surface, err := o.compile(ctx, req.Source)
	if err != nil {
		return nil, err
	}

	if err := o.decorate(surface); err != nil {
		return nil, err
	}

	encoder, err := o.encoders.Get(req.Format)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: resolve encoder: %w", err)
	}

	out, err := encoder.Encode(ctx, surface, encode.Options{
		Indent:  req.Indent,
		Width:   req.Width,
		NoColor: req.NoColor,
	})
	if err != nil {
		return nil, fmt.Errorf("orchestrator: encode surface: %w", err)
	}

	o.log.WithFields(map[string]any{
		"source": req.Source.Location(),
		"format": req.Format,
		"bytes":  len(out),
	}).Debug("surface generated")

	return out, nil
}

// Validate loads and compiles a document, returning its diagnostics
// instead of an encoded surface. An empty list with a nil error means the
// document is valid. The error return covers everything that is not a
// diagnostic: unreadable sources, malformed documents, canceled contexts.
func (o *Orchestrator) Validate(ctx context.Context, src document.Source) ([]*validation.Error, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, err := o.compile(ctx, src)
	if err == nil {
		return nil, nil
	}
	if list, ok := validation.AsList(err); ok {
		return list, nil
	}
	return nil, err
}

// compile runs the load and compile stages. Compilation diagnostics pass
// through unwrapped so callers can recover the validation.List.
func (o *Orchestrator) compile(ctx context.Context, src document.Source) (*tree.Surface, error) {
	if src == nil {
		return nil, errors.New("orchestrator: source is required")
	}

	doc, err := o.loader.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load document: %w", err)
	}
	o.log.WithFields(map[string]any{
		"source":  src.Location(),
		"surface": doc.Header.Name,
	}).Debug("document loaded")

	surface, err := doc.Compile(o.builder)
	if err != nil {
		return nil, err
	}

	nodes, depth := surface.Stats()
	o.log.WithFields(map[string]any{
		"surface": doc.Header.Name,
		"nodes":   nodes,
		"depth":   depth,
	}).Debug("surface compiled")

	return surface, nil
}

func (o *Orchestrator) decorate(surface *tree.Surface) error {
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(&surface.Root); err != nil {
			return fmt.Errorf("orchestrator: decorate surface: %w", err)
		}
	}
	return nil
}
