package builder

import (
	"github.com/goliatone/go-surface/pkg/accessibility"
	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/tree"
)

// ButtonVariant names the visual button treatments.
type ButtonVariant string

const (
	VariantFilled   ButtonVariant = "filled"
	VariantOutlined ButtonVariant = "outlined"
	VariantText     ButtonVariant = "text"
)

// ButtonBuilder assembles a tappable button.
type ButtonBuilder struct {
	label      string
	onTap      props.Action
	variant    *ButtonVariant
	icon       *string
	disabled   *bool
	loading    *bool
	accessible props.Record
}

// NewButton starts a button with its label and tap action.
func NewButton(label string, onTap props.Action) *ButtonBuilder {
	return &ButtonBuilder{label: label, onTap: onTap}
}

// Variant sets the visual treatment.
func (b *ButtonBuilder) Variant(v ButtonVariant) *ButtonBuilder {
	b.variant = &v
	return b
}

// Icon sets the leading icon.
func (b *ButtonBuilder) Icon(icon string) *ButtonBuilder {
	b.icon = &icon
	return b
}

// Disabled toggles interactivity.
func (b *ButtonBuilder) Disabled(v bool) *ButtonBuilder {
	b.disabled = &v
	return b
}

// Loading toggles the busy indicator.
func (b *ButtonBuilder) Loading(v bool) *ButtonBuilder {
	b.loading = &v
	return b
}

// Accessible overrides accessibility fields; they merge with the derived
// defaults at build time.
func (b *ButtonBuilder) Accessible(rec props.Record) *ButtonBuilder {
	b.accessible = rec
	return b
}

// Build finalizes the button.
func (b *ButtonBuilder) Build() tree.Node {
	node := tree.NewNode("Button")
	node.Set("label", props.String(b.label))
	node.Set("on_tap", b.onTap)
	if b.variant != nil {
		node.Set("variant", props.String(string(*b.variant)))
	}
	if b.icon != nil {
		node.Set("icon", props.String(*b.icon))
	}
	if b.disabled != nil {
		node.Set("disabled", props.Bool(*b.disabled))
	}
	if b.loading != nil {
		node.Set("loading", props.Bool(*b.loading))
	}
	if b.accessible != nil {
		node.Set("accessible", b.accessible)
	}
	accessibility.Ensure(&node)
	return node
}

// KeyboardType hints the host at the input method to show.
type KeyboardType string

const (
	KeyboardText   KeyboardType = "text"
	KeyboardNumber KeyboardType = "number"
	KeyboardEmail  KeyboardType = "email"
	KeyboardPhone  KeyboardType = "phone"
	KeyboardURL    KeyboardType = "url"
)

// TextInputBuilder assembles a single or multi line text field.
type TextInputBuilder struct {
	value       string
	onChange    props.Callback
	placeholder *string
	label       *string
	keyboard    *KeyboardType
	maxLength   *float64
	multiline   *bool
	accessible  props.Record
}

// NewTextInput starts a text field with its current value and change
// callback. The callback may be a named action or a lambda.
func NewTextInput(value string, onChange props.Callback) *TextInputBuilder {
	return &TextInputBuilder{value: value, onChange: onChange}
}

// Placeholder sets the empty-state hint text.
func (b *TextInputBuilder) Placeholder(s string) *TextInputBuilder {
	b.placeholder = &s
	return b
}

// Label sets the visible field label.
func (b *TextInputBuilder) Label(s string) *TextInputBuilder {
	b.label = &s
	return b
}

// Keyboard hints the input method.
func (b *TextInputBuilder) Keyboard(k KeyboardType) *TextInputBuilder {
	b.keyboard = &k
	return b
}

// MaxLength caps the accepted input length.
func (b *TextInputBuilder) MaxLength(n float64) *TextInputBuilder {
	b.maxLength = &n
	return b
}

// Multiline toggles multi-line entry.
func (b *TextInputBuilder) Multiline(v bool) *TextInputBuilder {
	b.multiline = &v
	return b
}

// Accessible overrides accessibility fields; they merge with the derived
// defaults at build time.
func (b *TextInputBuilder) Accessible(rec props.Record) *TextInputBuilder {
	b.accessible = rec
	return b
}

// Build finalizes the text field.
func (b *TextInputBuilder) Build() tree.Node {
	node := tree.NewNode("TextInput")
	node.Set("value", props.String(b.value))
	node.Set("on_change", b.onChange)
	if b.placeholder != nil {
		node.Set("placeholder", props.String(*b.placeholder))
	}
	if b.label != nil {
		node.Set("label", props.String(*b.label))
	}
	if b.keyboard != nil {
		node.Set("keyboard", props.String(string(*b.keyboard)))
	}
	if b.maxLength != nil {
		node.Set("max_length", props.Number(*b.maxLength))
	}
	if b.multiline != nil {
		node.Set("multiline", props.Bool(*b.multiline))
	}
	if b.accessible != nil {
		node.Set("accessible", b.accessible)
	}
	accessibility.Ensure(&node)
	return node
}
