// Package surface builds, validates, and serializes declarative UI trees.
// The root package re-exports the common types and typed component builders
// so most callers need a single import; the subpackages stay available for
// hosts that want direct control over registries, budgets, documents, or
// encoders.
package surface

import (
	"errors"

	"github.com/goliatone/go-surface/pkg/builder"
	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/registry"
	"github.com/goliatone/go-surface/pkg/tree"
	"github.com/goliatone/go-surface/pkg/validation"
)

// Core tree types.
type (
	// Surface is a complete, validated component tree ready to serialize.
	Surface = tree.Surface
	// Node is one component instance in the tree.
	Node = tree.Node
	// Props is a node's ordered key/value prop list.
	Props = tree.Props
	// Decorator mutates a built tree before encoding.
	Decorator = tree.Decorator
)

// Prop value types.
type (
	Value     = props.Value
	String    = props.String
	Number    = props.Number
	Bool      = props.Bool
	Color     = props.Color
	Action    = props.Action
	Lambda    = props.Lambda
	Callback  = props.Callback
	List      = props.List
	Record    = props.Record
	Edges     = props.Edges
	Alignment = props.Alignment
)

// ValidationError is a single structured diagnostic; Budget bounds surface
// size and depth.
type (
	ValidationError = validation.Error
	Budget          = builder.Budget
)

// Alignment constants for layout props.
const (
	AlignStart        = props.AlignStart
	AlignCenter       = props.AlignCenter
	AlignEnd          = props.AlignEnd
	AlignStretch      = props.AlignStretch
	AlignSpaceBetween = props.AlignSpaceBetween
	AlignSpaceAround  = props.AlignSpaceAround
)

// RGB returns an opaque color; channels clamp into [0, 1].
func RGB(r, g, b float64) Color {
	return props.RGB(r, g, b)
}

// RGBA returns a color with explicit opacity; channels clamp into [0, 1].
func RGBA(r, g, b, a float64) Color {
	return props.RGBA(r, g, b, a)
}

// ActionRef names a host-registered handler, optionally with bound
// arguments.
func ActionRef(name string, args ...Value) Action {
	return props.NewAction(name, args...)
}

// UniformEdges gives all four sides the same size.
func UniformEdges(size float64) Edges {
	return props.UniformEdges(size)
}

// Typed builders for the built-in components.

// Column lays out children vertically.
func Column() *builder.ColumnBuilder {
	return builder.Column()
}

// Row lays out children horizontally.
func Row() *builder.RowBuilder {
	return builder.Row()
}

// Scroll wraps content in a scrollable region.
func Scroll() *builder.ScrollBuilder {
	return builder.Scroll()
}

// Text displays a string.
func Text(value string) *builder.TextBuilder {
	return builder.NewText(value)
}

// ProgressBar shows determinate progress in [0, 1].
func ProgressBar(value float64) *builder.ProgressBarBuilder {
	return builder.NewProgressBar(value)
}

// Button is a tappable control that fires an action.
func Button(label string, onTap Action) *builder.ButtonBuilder {
	return builder.NewButton(label, onTap)
}

// TextInput is an editable text field; onChange receives the new value.
func TextInput(value string, onChange Callback) *builder.TextInputBuilder {
	return builder.NewTextInput(value, onChange)
}

// ScrollList renders items through a lambda, keyed for reconciliation.
func ScrollList(items List, render, key Lambda) *builder.ScrollListBuilder {
	return builder.NewScrollList(items, render, key)
}

// Modal overlays its children when visible.
func Modal(visible bool, onDismiss Callback) *builder.ModalBuilder {
	return builder.NewModal(visible, onDismiss)
}

// Toast is a transient notification.
func Toast(message string) *builder.ToastBuilder {
	return builder.NewToast(message)
}

// defaultBuilder serves the package-level helpers. The default registry is
// immutable after init, so sharing one instance is safe.
var defaultBuilder = builder.New()

// Build assembles and validates a node against the default registry.
func Build(name string, raw map[string]Value, children ...Node) (Node, error) {
	return defaultBuilder.Build(name, raw, children...)
}

// BuildSurface assembles a root node and wraps it as a budget-checked
// surface.
func BuildSurface(name string, raw map[string]Value, children ...Node) (*Surface, error) {
	return defaultBuilder.BuildSurface(name, raw, children...)
}

// NewSurface wraps an already-built root node, enforcing the default
// budget.
func NewSurface(root Node) (*Surface, error) {
	return defaultBuilder.Surface(root)
}

// Serialize renders the canonical wire JSON.
func Serialize(s *Surface) ([]byte, error) {
	if s == nil {
		return nil, errors.New("surface: surface is nil")
	}
	return s.Encode()
}

// SerializeIndent renders pretty-printed wire JSON.
func SerializeIndent(s *Surface, prefix, indent string) ([]byte, error) {
	if s == nil {
		return nil, errors.New("surface: surface is nil")
	}
	return s.EncodeIndent(prefix, indent)
}

// DefaultRegistry exposes the built-in component vocabulary.
func DefaultRegistry() *registry.Registry {
	return registry.Default()
}
