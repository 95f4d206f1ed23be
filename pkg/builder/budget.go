package builder

import (
	"fmt"

	"github.com/goliatone/go-surface/pkg/tree"
	"github.com/goliatone/go-surface/pkg/validation"
)

// Budget bounds the structural size of a surface. Checks run synchronously
// during construction; there is no timeout or cancellation concept. A zero
// limit disables that bound.
type Budget struct {
	MaxNodes int
	MaxDepth int
}

// DefaultBudget returns the standard limits.
func DefaultBudget() Budget {
	return Budget{MaxNodes: 10000, MaxDepth: 256}
}

// Check walks a finished tree and verifies it fits the budget.
func (b Budget) Check(root *tree.Node) *validation.Error {
	nodes, depth := root.Stats()
	return b.CheckSize(nodes, depth)
}

// CheckSize verifies pre-computed counts against the budget. Loaders use it
// to bail out while traversing documents, before building unbounded trees.
func (b Budget) CheckSize(nodes, depth int) *validation.Error {
	if b.MaxNodes > 0 && nodes > b.MaxNodes {
		return validation.NewBudgetExceeded(fmt.Sprintf("%d nodes (max %d)", nodes, b.MaxNodes))
	}
	if b.MaxDepth > 0 && depth > b.MaxDepth {
		return validation.NewBudgetExceeded(fmt.Sprintf("%d levels deep (max %d)", depth, b.MaxDepth))
	}
	return nil
}
