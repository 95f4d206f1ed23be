package builder

import (
	"github.com/goliatone/go-surface/pkg/accessibility"
	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/tree"
)

// ScrollListBuilder assembles a virtualized list.
type ScrollListBuilder struct {
	items      props.List
	render     props.Lambda
	key        props.Lambda
	onReorder  *props.Lambda
	dividers   *bool
	accessible props.Record
}

// NewScrollList starts a virtualized list from its data and the lambdas that
// render an item and derive its stable key.
func NewScrollList(items props.List, render, key props.Lambda) *ScrollListBuilder {
	return &ScrollListBuilder{items: items, render: render, key: key}
}

// OnReorder enables drag reordering, reporting moves through the lambda.
func (b *ScrollListBuilder) OnReorder(fn props.Lambda) *ScrollListBuilder {
	b.onReorder = &fn
	return b
}

// Dividers toggles separators between items.
func (b *ScrollListBuilder) Dividers(v bool) *ScrollListBuilder {
	b.dividers = &v
	return b
}

// Accessible overrides accessibility fields; they merge with the derived
// defaults at build time.
func (b *ScrollListBuilder) Accessible(rec props.Record) *ScrollListBuilder {
	b.accessible = rec
	return b
}

// Build finalizes the list.
func (b *ScrollListBuilder) Build() tree.Node {
	node := tree.NewNode("ScrollList")
	node.Set("items", b.items)
	node.Set("render", b.render)
	node.Set("key", b.key)
	if b.onReorder != nil {
		node.Set("on_reorder", *b.onReorder)
	}
	if b.dividers != nil {
		node.Set("dividers", props.Bool(*b.dividers))
	}
	if b.accessible != nil {
		node.Set("accessible", b.accessible)
	}
	accessibility.Ensure(&node)
	return node
}
