package orchestrator

import (
	"github.com/goliatone/go-surface/internal/logger"
	"github.com/goliatone/go-surface/pkg/builder"
	"github.com/goliatone/go-surface/pkg/document"
	"github.com/goliatone/go-surface/pkg/encode"
	"github.com/goliatone/go-surface/pkg/registry"
	"github.com/goliatone/go-surface/pkg/tree"
)

// Option customizes an Orchestrator at construction time.
type Option func(*Orchestrator)

// WithRegistry sets the component registry the default builder validates
// against. Ignored when WithBuilder supplies a builder of its own.
func WithRegistry(reg *registry.Registry) Option {
	return func(o *Orchestrator) {
		if reg != nil {
			o.reg = reg
		}
	}
}

// WithBuilder injects a preconfigured builder, carrying its registry and
// budget. Takes precedence over WithRegistry and WithBudget.
func WithBuilder(b *builder.Builder) Option {
	return func(o *Orchestrator) {
		if b != nil {
			o.builder = b
		}
	}
}

// WithBudget sets the render budget on the default builder. Ignored when
// WithBuilder supplies a builder of its own.
func WithBudget(budget builder.Budget) Option {
	return func(o *Orchestrator) {
		o.budget = &budget
	}
}

// WithLoader injects the document loader, controlling filesystem and HTTP
// access for sources.
func WithLoader(l *document.Loader) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.loader = l
		}
	}
}

// WithEncoders replaces the encoder registry. The default registry holds
// the wire and term encoders.
func WithEncoders(reg *encode.Registry) Option {
	return func(o *Orchestrator) {
		if reg != nil {
			o.encoders = reg
		}
	}
}

// WithDecorators appends decorators that run over the compiled tree before
// encoding, in the order given.
func WithDecorators(decorators ...tree.Decorator) Option {
	return func(o *Orchestrator) {
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithLogger attaches a logger for stage-level debug output.
func WithLogger(log *logger.Logger) Option {
	return func(o *Orchestrator) {
		if log != nil {
			o.log = log
		}
	}
}

// WithDefaultFormat sets the encoder used when a request leaves Format
// empty.
func WithDefaultFormat(name string) Option {
	return func(o *Orchestrator) {
		if name != "" {
			o.defaultFormat = name
		}
	}
}
