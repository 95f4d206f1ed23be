package registry

import (
	"sync"

	"github.com/goliatone/go-surface/pkg/props"
)

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared registry holding the builtin component set. The
// instance is built once; additional components may be registered on top of
// it.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
		for _, def := range Builtin() {
			defaultReg.MustRegister(def)
		}
	})
	return defaultReg
}

// Builtin returns fresh definitions for the ten core components. Every
// component declares the optional accessible record as its final prop, which
// keeps accessibility metadata last in serialized output.
func Builtin() []*Definition {
	return []*Definition{
		{
			Name:     "Column",
			Category: CategoryLayout,
			Children: ChildrenAllowed,
			Props: []PropSpec{
				{Name: "spacing", Kind: KindNumber},
				{Name: "align", Kind: KindAlignment},
				{Name: "padding", Kind: KindEdges},
				accessibleSpec(),
			},
		},
		{
			Name:     "Row",
			Category: CategoryLayout,
			Children: ChildrenAllowed,
			Props: []PropSpec{
				{Name: "spacing", Kind: KindNumber},
				{Name: "align", Kind: KindAlignment},
				{Name: "padding", Kind: KindEdges},
				accessibleSpec(),
			},
		},
		{
			Name:     "Scroll",
			Category: CategoryLayout,
			Children: ChildrenAllowed,
			Props: []PropSpec{
				{
					Name: "direction", Kind: KindEnum,
					Enum:    []string{"vertical", "horizontal", "both"},
					Default: props.String("vertical"),
				},
				accessibleSpec(),
			},
		},
		{
			Name:     "Text",
			Category: CategoryContent,
			Children: ChildrenNone,
			Props: []PropSpec{
				{Name: "value", Kind: KindString, Required: true},
				{Name: "size", Kind: KindEnum, Enum: []string{"small", "body", "title", "heading", "display"}},
				{Name: "weight", Kind: KindEnum, Enum: []string{"normal", "medium", "bold"}},
				{Name: "color", Kind: KindColor},
				{Name: "align", Kind: KindEnum, Enum: []string{"start", "center", "end"}},
				{Name: "max_lines", Kind: KindNumber},
				{Name: "overflow", Kind: KindEnum, Enum: []string{"clip", "ellipsis", "wrap"}},
				accessibleSpec(),
			},
		},
		{
			Name:     "ProgressBar",
			Category: CategoryContent,
			Children: ChildrenNone,
			Props: []PropSpec{
				// The sole silent repair in the system: out-of-range
				// progress clamps instead of failing.
				{Name: "value", Kind: KindNumber, Required: true, Clamp: &Range{Min: 0, Max: 1}},
				{Name: "color", Kind: KindColor},
				{Name: "background", Kind: KindColor},
				{Name: "height", Kind: KindNumber},
				accessibleSpec(),
			},
		},
		{
			Name:     "Button",
			Category: CategoryInteractive,
			Children: ChildrenNone,
			Props: []PropSpec{
				{Name: "label", Kind: KindString, Required: true},
				{Name: "on_tap", Kind: KindAction, Required: true},
				{Name: "variant", Kind: KindEnum, Enum: []string{"filled", "outlined", "text"}},
				{Name: "icon", Kind: KindString},
				{Name: "disabled", Kind: KindBool},
				{Name: "loading", Kind: KindBool},
				accessibleSpec(),
			},
		},
		{
			Name:     "TextInput",
			Category: CategoryInteractive,
			Children: ChildrenNone,
			Props: []PropSpec{
				{Name: "value", Kind: KindString, Required: true},
				{Name: "on_change", Kind: KindCallback, Required: true},
				{Name: "placeholder", Kind: KindString},
				{Name: "label", Kind: KindString},
				{Name: "keyboard", Kind: KindEnum, Enum: []string{"text", "number", "email", "phone", "url"}},
				{Name: "max_length", Kind: KindNumber},
				{Name: "multiline", Kind: KindBool},
				accessibleSpec(),
			},
		},
		{
			Name:     "ScrollList",
			Category: CategoryCollection,
			Children: ChildrenNone,
			Props: []PropSpec{
				{Name: "items", Kind: KindList, Required: true},
				{Name: "render", Kind: KindLambda, Required: true},
				{Name: "key", Kind: KindLambda, Required: true},
				{Name: "on_reorder", Kind: KindLambda},
				{Name: "dividers", Kind: KindBool},
				accessibleSpec(),
			},
		},
		{
			Name:     "Modal",
			Category: CategoryOverlay,
			Children: ChildrenAllowed,
			Props: []PropSpec{
				{Name: "visible", Kind: KindBool, Required: true},
				{Name: "on_dismiss", Kind: KindCallback, Required: true},
				{Name: "title", Kind: KindString},
				accessibleSpec(),
			},
		},
		{
			Name:     "Toast",
			Category: CategoryOverlay,
			Children: ChildrenNone,
			Props: []PropSpec{
				{Name: "message", Kind: KindString, Required: true},
				{Name: "duration", Kind: KindNumber},
				{Name: "type", Kind: KindEnum, Enum: []string{"info", "success", "warning", "error"}},
				accessibleSpec(),
			},
		},
	}
}

func accessibleSpec() PropSpec {
	return PropSpec{Name: "accessible", Kind: KindRecord}
}
