// Package builder turns component names, raw prop maps, and already-built
// children into validated surface nodes. Validation runs in a fixed phase
// order (required props, kinds and enums, unknown props, child policy) and
// accumulates every violation; a node is only produced when its input is
// fully valid. Building is pure and synchronous: no I/O, no shared mutable
// state between builds.
package builder

import (
	"errors"

	"github.com/goliatone/go-surface/pkg/accessibility"
	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/registry"
	"github.com/goliatone/go-surface/pkg/tree"
	"github.com/goliatone/go-surface/pkg/validation"
)

// Builder validates raw component input against a registry and produces
// accessibility-decorated nodes within a render budget.
type Builder struct {
	registry *registry.Registry
	budget   Budget
}

// Option configures a Builder.
type Option func(*Builder)

// WithRegistry overrides the component registry.
func WithRegistry(reg *registry.Registry) Option {
	return func(b *Builder) {
		if reg != nil {
			b.registry = reg
		}
	}
}

// WithBudget overrides the render budget.
func WithBudget(budget Budget) Option {
	return func(b *Builder) {
		b.budget = budget
	}
}

// New creates a builder backed by the default registry and budget.
func New(opts ...Option) *Builder {
	b := &Builder{
		registry: registry.Default(),
		budget:   DefaultBudget(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Registry exposes the registry the builder validates against.
func (b *Builder) Registry() *registry.Registry {
	return b.registry
}

// Budget exposes the render budget.
func (b *Builder) Budget() Budget {
	return b.budget
}

// Build validates raw props for a component and returns the canonical node:
// props in declaration order, defaults materialized, clamp ranges applied,
// children appended in caller order, accessibility attached last. On any
// validation failure no node is produced and the returned error is the full
// diagnostic list.
func (b *Builder) Build(name string, raw map[string]props.Value, children ...tree.Node) (tree.Node, error) {
	def, err := b.registry.Lookup(name)
	if err != nil {
		return tree.Node{}, asDiagnostics(err)
	}

	if errs := validate(def, raw, len(children)); len(errs) > 0 {
		return tree.Node{}, errs
	}

	node := construct(def, raw, children)
	accessibility.Ensure(&node)
	return node, nil
}

// BuildSurface builds the root component and wraps it, enforcing the budget
// over the finished tree.
func (b *Builder) BuildSurface(name string, raw map[string]props.Value, children ...tree.Node) (*tree.Surface, error) {
	root, err := b.Build(name, raw, children...)
	if err != nil {
		return nil, err
	}
	return b.Surface(root)
}

// Surface wraps an already-built root node, enforcing the budget.
func (b *Builder) Surface(root tree.Node) (*tree.Surface, error) {
	if verr := b.budget.Check(&root); verr != nil {
		return nil, validation.List{verr}
	}
	return tree.NewSurface(root), nil
}

func construct(def *registry.Definition, raw map[string]props.Value, children []tree.Node) tree.Node {
	node := tree.NewNode(def.Name)
	for _, spec := range def.Props {
		value, ok := raw[spec.Name]
		if !ok {
			if spec.Default != nil {
				node.Set(spec.Name, spec.Default)
			}
			continue
		}
		if spec.Clamp != nil {
			if n, isNumber := value.(props.Number); isNumber {
				value = props.Number(clampRange(float64(n), *spec.Clamp))
			}
		}
		node.Set(spec.Name, value)
	}
	node.Children = append(node.Children, children...)
	return node
}

func clampRange(v float64, r registry.Range) float64 {
	if v != v {
		return r.Min
	}
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// asDiagnostics lifts a lookup failure into a diagnostic list so every Build
// error carries the same shape.
func asDiagnostics(err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return validation.List{verr}
	}
	return err
}
