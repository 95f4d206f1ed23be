package tree

import "github.com/goliatone/go-surface/pkg/props"

// Prop is a single key/value pair on a node.
type Prop struct {
	Key   string
	Value props.Value
}

// Props is an ordered collection of node props. Order is significant: it is
// the serialization order, and the component builders populate it in
// definition declaration order.
type Props []Prop

// Get returns the value for a key.
func (p Props) Get(key string) (props.Value, bool) {
	for _, prop := range p {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return nil, false
}

// Has reports whether a key is present.
func (p Props) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Keys returns the prop keys in order.
func (p Props) Keys() []string {
	keys := make([]string, len(p))
	for i, prop := range p {
		keys[i] = prop.Key
	}
	return keys
}

// Set replaces the value for an existing key in place, preserving its
// position, or appends the pair when the key is new.
func (p *Props) Set(key string, value props.Value) {
	for i, prop := range *p {
		if prop.Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Prop{Key: key, Value: value})
}

// Node is a single element of a surface tree. Children are embedded by value,
// so a node belongs to exactly one parent and cycles cannot be formed.
type Node struct {
	Type     string
	Props    Props
	Children []Node
}

// NewNode creates a node of the given component type with no props.
func NewNode(nodeType string) Node {
	return Node{Type: nodeType}
}

// Set sets a prop and returns the node for chaining.
func (n *Node) Set(key string, value props.Value) *Node {
	n.Props.Set(key, value)
	return n
}

// Get returns a prop value by key.
func (n *Node) Get(key string) (props.Value, bool) {
	return n.Props.Get(key)
}

// Has reports whether a prop is present.
func (n *Node) Has(key string) bool {
	return n.Props.Has(key)
}

// Add appends children in order and returns the node for chaining.
func (n *Node) Add(children ...Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Walk visits the node and every descendant in document order, stopping at
// the first error.
func (n *Node) Walk(fn func(*Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for i := range n.Children {
		if err := n.Children[i].Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Stats reports the node count and maximum depth of the subtree rooted at n.
// A leaf counts as depth 1.
func (n *Node) Stats() (nodes, depth int) {
	nodes, depth = 1, 1
	for i := range n.Children {
		childNodes, childDepth := n.Children[i].Stats()
		nodes += childNodes
		if childDepth+1 > depth {
			depth = childDepth + 1
		}
	}
	return nodes, depth
}

// Surface is the root wrapper handed to rendering hosts.
type Surface struct {
	Root Node
}

// NewSurface wraps a root node.
func NewSurface(root Node) *Surface {
	return &Surface{Root: root}
}

// Walk visits every node starting at the root.
func (s *Surface) Walk(fn func(*Node) error) error {
	return s.Root.Walk(fn)
}

// Stats reports the node count and maximum depth of the whole surface.
func (s *Surface) Stats() (nodes, depth int) {
	return s.Root.Stats()
}
