package tree_test

import (
	"testing"

	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/tree"
)

func TestPropsSetPreservesPosition(t *testing.T) {
	var p tree.Props
	p.Set("first", props.Number(1))
	p.Set("second", props.Number(2))
	p.Set("third", props.Number(3))
	p.Set("first", props.Number(10))

	keys := p.Keys()
	want := []string{"first", "second", "third"}
	for i, key := range want {
		if keys[i] != key {
			t.Fatalf("expected key %q at %d, got %q", key, i, keys[i])
		}
	}
	if val, _ := p.Get("first"); val != props.Number(10) {
		t.Fatalf("expected replaced value 10, got %#v", val)
	}
}

func TestNodeChaining(t *testing.T) {
	node := tree.NewNode("Column")
	node.Set("spacing", props.Number(8)).Add(
		tree.NewNode("Text"),
		tree.NewNode("Text"),
	)

	if !node.Has("spacing") {
		t.Fatalf("expected spacing prop")
	}
	if len(node.Children) != 2 {
		t.Fatalf("expected two children, got %d", len(node.Children))
	}
}

func TestNodeStats(t *testing.T) {
	root := tree.NewNode("Column")
	row := tree.NewNode("Row")
	row.Add(tree.NewNode("Text"), tree.NewNode("Text"))
	root.Add(row, tree.NewNode("Text"))

	nodes, depth := root.Stats()
	if nodes != 5 {
		t.Fatalf("expected 5 nodes, got %d", nodes)
	}
	if depth != 3 {
		t.Fatalf("expected depth 3, got %d", depth)
	}
}

func TestWalkVisitsDocumentOrder(t *testing.T) {
	root := tree.NewNode("Column")
	row := tree.NewNode("Row")
	row.Add(tree.NewNode("Text"))
	root.Add(row, tree.NewNode("Toast"))

	var visited []string
	err := root.Walk(func(n *tree.Node) error {
		visited = append(visited, n.Type)
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}

	want := []string{"Column", "Row", "Text", "Toast"}
	if len(visited) != len(want) {
		t.Fatalf("expected %d visits, got %d", len(want), len(visited))
	}
	for i, typ := range want {
		if visited[i] != typ {
			t.Fatalf("expected visit %d to be %s, got %s", i, typ, visited[i])
		}
	}
}

func TestDecoratorFunc(t *testing.T) {
	node := tree.NewNode("Text")
	dec := tree.DecoratorFunc(func(n *tree.Node) error {
		n.Set("value", props.String("decorated"))
		return nil
	})
	if err := dec.Decorate(&node); err != nil {
		t.Fatalf("decorate: %v", err)
	}
	if val, _ := node.Get("value"); val != props.String("decorated") {
		t.Fatalf("expected decorated value, got %#v", val)
	}
}
