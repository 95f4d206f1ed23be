package builder

import (
	"github.com/goliatone/go-surface/pkg/accessibility"
	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/tree"
)

// Typed builders construct nodes that are valid by construction: required
// props are constructor arguments and enum setters take typed constants.
// Setters may run in any order; Build emits props in declaration order so
// output bytes never depend on call order. Build finalizes a fresh node with
// accessibility attached.

// ColumnBuilder assembles a vertical stack.
type ColumnBuilder struct {
	spacing    *float64
	align      *props.Alignment
	padding    *props.Edges
	accessible props.Record
	children   []tree.Node
}

// Column starts a column.
func Column() *ColumnBuilder {
	return &ColumnBuilder{}
}

// Spacing sets the gap between children.
func (b *ColumnBuilder) Spacing(n float64) *ColumnBuilder {
	b.spacing = &n
	return b
}

// Align sets the cross-axis alignment.
func (b *ColumnBuilder) Align(a props.Alignment) *ColumnBuilder {
	b.align = &a
	return b
}

// Padding applies edge spacing.
func (b *ColumnBuilder) Padding(e props.Edges) *ColumnBuilder {
	b.padding = &e
	return b
}

// Accessible overrides accessibility fields; they merge with the derived
// defaults at build time.
func (b *ColumnBuilder) Accessible(rec props.Record) *ColumnBuilder {
	b.accessible = rec
	return b
}

// Child appends one child.
func (b *ColumnBuilder) Child(child tree.Node) *ColumnBuilder {
	b.children = append(b.children, child)
	return b
}

// Children appends children in order.
func (b *ColumnBuilder) Children(children ...tree.Node) *ColumnBuilder {
	b.children = append(b.children, children...)
	return b
}

// Build finalizes the column.
func (b *ColumnBuilder) Build() tree.Node {
	node := tree.NewNode("Column")
	stackProps(&node, b.spacing, b.align, b.padding, b.accessible)
	node.Children = append(node.Children, b.children...)
	accessibility.Ensure(&node)
	return node
}

// RowBuilder assembles a horizontal stack.
type RowBuilder struct {
	spacing    *float64
	align      *props.Alignment
	padding    *props.Edges
	accessible props.Record
	children   []tree.Node
}

// Row starts a row.
func Row() *RowBuilder {
	return &RowBuilder{}
}

// Spacing sets the gap between children.
func (b *RowBuilder) Spacing(n float64) *RowBuilder {
	b.spacing = &n
	return b
}

// Align sets the cross-axis alignment.
func (b *RowBuilder) Align(a props.Alignment) *RowBuilder {
	b.align = &a
	return b
}

// Padding applies edge spacing.
func (b *RowBuilder) Padding(e props.Edges) *RowBuilder {
	b.padding = &e
	return b
}

// Accessible overrides accessibility fields; they merge with the derived
// defaults at build time.
func (b *RowBuilder) Accessible(rec props.Record) *RowBuilder {
	b.accessible = rec
	return b
}

// Child appends one child.
func (b *RowBuilder) Child(child tree.Node) *RowBuilder {
	b.children = append(b.children, child)
	return b
}

// Children appends children in order.
func (b *RowBuilder) Children(children ...tree.Node) *RowBuilder {
	b.children = append(b.children, children...)
	return b
}

// Build finalizes the row.
func (b *RowBuilder) Build() tree.Node {
	node := tree.NewNode("Row")
	stackProps(&node, b.spacing, b.align, b.padding, b.accessible)
	node.Children = append(node.Children, b.children...)
	accessibility.Ensure(&node)
	return node
}

// stackProps emits the shared Column/Row prop sequence.
func stackProps(node *tree.Node, spacing *float64, align *props.Alignment, padding *props.Edges, accessible props.Record) {
	if spacing != nil {
		node.Set("spacing", props.Number(*spacing))
	}
	if align != nil {
		node.Set("align", align.Value())
	}
	if padding != nil {
		node.Set("padding", padding.Value())
	}
	if accessible != nil {
		node.Set("accessible", accessible)
	}
}

// ScrollDirection selects the scroll axis.
type ScrollDirection string

const (
	ScrollVertical   ScrollDirection = "vertical"
	ScrollHorizontal ScrollDirection = "horizontal"
	ScrollBoth       ScrollDirection = "both"
)

// ScrollBuilder assembles a scrollable container.
type ScrollBuilder struct {
	direction  ScrollDirection
	accessible props.Record
	children   []tree.Node
}

// Scroll starts a scroll container with the vertical default.
func Scroll() *ScrollBuilder {
	return &ScrollBuilder{direction: ScrollVertical}
}

// Direction overrides the scroll axis.
func (b *ScrollBuilder) Direction(d ScrollDirection) *ScrollBuilder {
	b.direction = d
	return b
}

// Accessible overrides accessibility fields; they merge with the derived
// defaults at build time.
func (b *ScrollBuilder) Accessible(rec props.Record) *ScrollBuilder {
	b.accessible = rec
	return b
}

// Child appends one child.
func (b *ScrollBuilder) Child(child tree.Node) *ScrollBuilder {
	b.children = append(b.children, child)
	return b
}

// Children appends children in order.
func (b *ScrollBuilder) Children(children ...tree.Node) *ScrollBuilder {
	b.children = append(b.children, children...)
	return b
}

// Build finalizes the scroll container. The direction always materializes so
// it always serializes.
func (b *ScrollBuilder) Build() tree.Node {
	node := tree.NewNode("Scroll")
	node.Set("direction", props.String(string(b.direction)))
	if b.accessible != nil {
		node.Set("accessible", b.accessible)
	}
	node.Children = append(node.Children, b.children...)
	accessibility.Ensure(&node)
	return node
}
