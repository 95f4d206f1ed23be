package tree

// Decorator enriches a node after the canonical component structure has been
// built. The builder applies the accessibility decorator automatically;
// orchestration layers can chain additional ones.
type Decorator interface {
	Decorate(*Node) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*Node) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(node *Node) error {
	return fn(node)
}
