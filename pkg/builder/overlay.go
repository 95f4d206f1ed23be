package builder

import (
	"github.com/goliatone/go-surface/pkg/accessibility"
	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/tree"
)

// ModalBuilder assembles a dialog overlay.
type ModalBuilder struct {
	visible    bool
	onDismiss  props.Callback
	title      *string
	accessible props.Record
	children   []tree.Node
}

// NewModal starts a modal with its visibility flag and dismiss callback.
func NewModal(visible bool, onDismiss props.Callback) *ModalBuilder {
	return &ModalBuilder{visible: visible, onDismiss: onDismiss}
}

// Title sets the dialog title.
func (b *ModalBuilder) Title(s string) *ModalBuilder {
	b.title = &s
	return b
}

// Accessible overrides accessibility fields; they merge with the derived
// defaults at build time.
func (b *ModalBuilder) Accessible(rec props.Record) *ModalBuilder {
	b.accessible = rec
	return b
}

// Child appends one body child.
func (b *ModalBuilder) Child(child tree.Node) *ModalBuilder {
	b.children = append(b.children, child)
	return b
}

// Children appends body children in order.
func (b *ModalBuilder) Children(children ...tree.Node) *ModalBuilder {
	b.children = append(b.children, children...)
	return b
}

// Build finalizes the modal.
func (b *ModalBuilder) Build() tree.Node {
	node := tree.NewNode("Modal")
	node.Set("visible", props.Bool(b.visible))
	node.Set("on_dismiss", b.onDismiss)
	if b.title != nil {
		node.Set("title", props.String(*b.title))
	}
	if b.accessible != nil {
		node.Set("accessible", b.accessible)
	}
	node.Children = append(node.Children, b.children...)
	accessibility.Ensure(&node)
	return node
}

// ToastType names the toast severities.
type ToastType string

const (
	ToastInfo    ToastType = "info"
	ToastSuccess ToastType = "success"
	ToastWarning ToastType = "warning"
	ToastError   ToastType = "error"
)

// ToastBuilder assembles a transient notification.
type ToastBuilder struct {
	message    string
	duration   *float64
	toastType  *ToastType
	accessible props.Record
}

// NewToast starts a toast with its message.
func NewToast(message string) *ToastBuilder {
	return &ToastBuilder{message: message}
}

// Duration sets how long the toast stays visible, in milliseconds.
func (b *ToastBuilder) Duration(ms float64) *ToastBuilder {
	b.duration = &ms
	return b
}

// Type sets the severity.
func (b *ToastBuilder) Type(t ToastType) *ToastBuilder {
	b.toastType = &t
	return b
}

// Accessible overrides accessibility fields; they merge with the derived
// defaults at build time.
func (b *ToastBuilder) Accessible(rec props.Record) *ToastBuilder {
	b.accessible = rec
	return b
}

// Build finalizes the toast.
func (b *ToastBuilder) Build() tree.Node {
	node := tree.NewNode("Toast")
	node.Set("message", props.String(b.message))
	if b.duration != nil {
		node.Set("duration", props.Number(*b.duration))
	}
	if b.toastType != nil {
		node.Set("type", props.String(string(*b.toastType)))
	}
	if b.accessible != nil {
		node.Set("accessible", b.accessible)
	}
	accessibility.Ensure(&node)
	return node
}
