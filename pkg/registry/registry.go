// Package registry holds the static component vocabulary: one Definition per
// component naming its props in declaration order, the value kind each prop
// accepts, and the child policy. The builtin set covers the ten core
// components; adding a component is a single registration, no engine changes.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/validation"
)

// Kind declares the value type a prop accepts.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindColor
	KindAction
	KindLambda
	// KindCallback accepts an action reference or a lambda.
	KindCallback
	KindList
	KindRecord
	// KindEnum accepts a string constrained to the PropSpec Enum set.
	KindEnum
	// KindAlignment accepts one of the closed alignment strings.
	KindAlignment
	// KindEdges accepts a bare number or a record of the four sides.
	KindEdges
)

// String names the kind for docs and schema export.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindColor:
		return "color"
	case KindAction:
		return "action"
	case KindLambda:
		return "lambda"
	case KindCallback:
		return "action or lambda"
	case KindList:
		return "list"
	case KindRecord:
		return "record"
	case KindEnum:
		return "enum"
	case KindAlignment:
		return "alignment"
	case KindEdges:
		return "edges"
	}
	return "unknown"
}

// ChildPolicy constrains what a component may contain.
type ChildPolicy uint8

const (
	ChildrenNone ChildPolicy = iota
	ChildrenAllowed
	ChildrenRequired
)

// String names the policy for docs and schema export.
func (c ChildPolicy) String() string {
	switch c {
	case ChildrenNone:
		return "none"
	case ChildrenAllowed:
		return "allowed"
	case ChildrenRequired:
		return "required"
	}
	return "unknown"
}

// Category groups components for docs and discovery.
type Category string

const (
	CategoryLayout      Category = "layout"
	CategoryContent     Category = "content"
	CategoryInteractive Category = "interactive"
	CategoryCollection  Category = "collection"
	CategoryOverlay     Category = "overlay"
)

// Range bounds a numeric prop. Out-of-range values clamp to the bound
// instead of failing validation; the literal value is otherwise preserved.
type Range struct {
	Min float64
	Max float64
}

// PropSpec declares a single prop: its name, the kind it accepts, whether it
// must be present, the closed string set for enum kinds, an optional default
// materialized when the prop is absent, and an optional clamp range.
type PropSpec struct {
	Name     string
	Kind     Kind
	Required bool
	Enum     []string
	Default  props.Value
	Clamp    *Range
}

// Definition is the static declaration of a component. Prop order is
// significant: built nodes serialize their props in exactly this order.
type Definition struct {
	Name     string
	Category Category
	Children ChildPolicy
	Props    []PropSpec
}

// Prop returns the PropSpec for a prop name.
func (d *Definition) Prop(name string) (PropSpec, bool) {
	for _, spec := range d.Props {
		if spec.Name == name {
			return spec, true
		}
	}
	return PropSpec{}, false
}

// PropNames returns the prop names in declaration order.
func (d *Definition) PropNames() []string {
	names := make([]string, len(d.Props))
	for i, spec := range d.Props {
		names[i] = spec.Name
	}
	return names
}

// RequiredProps returns the required prop names in declaration order.
func (d *Definition) RequiredProps() []string {
	var names []string
	for _, spec := range d.Props {
		if spec.Required {
			names = append(names, spec.Name)
		}
	}
	return names
}

// AcceptsChildren reports whether the component may contain children.
func (d *Definition) AcceptsChildren() bool {
	return d.Children != ChildrenNone
}

// Registry stores component definitions by name, providing lookup and
// duplication safeguards. Lookup is case-sensitive.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]*Definition
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register adds a definition. Duplicate component names and malformed
// definitions are rejected.
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return fmt.Errorf("registry: definition is required")
	}
	if def.Name == "" {
		return fmt.Errorf("registry: component name is required")
	}
	seen := make(map[string]struct{}, len(def.Props))
	for _, spec := range def.Props {
		if spec.Name == "" {
			return fmt.Errorf("registry: component %q declares an unnamed prop", def.Name)
		}
		if _, dup := seen[spec.Name]; dup {
			return fmt.Errorf("registry: component %q declares prop %q twice", def.Name, spec.Name)
		}
		seen[spec.Name] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[def.Name]; exists {
		return fmt.Errorf("registry: component %q already registered", def.Name)
	}
	r.defs[def.Name] = def
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(def *Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Lookup retrieves a definition by exact name. Unknown names fail with the
// UnknownComponent diagnostic.
func (r *Registry) Lookup(name string) (*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[name]
	if !ok {
		return nil, validation.NewUnknownComponent(name)
	}
	return def, nil
}

// Names returns the registered component names sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a component is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.defs[name]
	return ok
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}
