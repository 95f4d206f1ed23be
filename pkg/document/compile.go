package document

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-surface/pkg/builder"
	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/tree"
	"github.com/goliatone/go-surface/pkg/validation"
)

// Compile validates the document's node tree against the builder's registry
// and produces a surface. Diagnostics accumulate across the whole tree, each
// tagged with the path of the node that produced it. The render budget is
// checked against the raw tree before any node is built, so oversized
// documents fail before allocating.
func (d *Document) Compile(b *builder.Builder) (*tree.Surface, error) {
	if b == nil {
		b = builder.New()
	}

	nodes, depth := d.root.stats()
	if verr := b.Budget().CheckSize(nodes, depth); verr != nil {
		return nil, validation.List{verr}
	}

	var errs validation.List
	root, _ := compileNode(b, &d.root, "root", &errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return b.Surface(root)
}

// compileNode builds bottom-up. A failed child poisons its ancestors so no
// partial tree escapes, but the node's own diagnostics are still collected;
// only successfully built children count toward the child policy, which may
// defer a policy error until the child errors are fixed.
func compileNode(b *builder.Builder, raw *rawNode, path string, errs *validation.List) (tree.Node, bool) {
	ok := true
	children := make([]tree.Node, 0, len(raw.Children))
	for i := range raw.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		child, childOK := compileNode(b, &raw.Children[i], childPath, errs)
		if !childOK {
			ok = false
			continue
		}
		children = append(children, child)
	}

	converted, convOK := convertProps(raw, path, errs)
	if !convOK {
		return tree.Node{}, false
	}

	node, err := b.Build(raw.Type, converted, children...)
	if err != nil {
		appendDiagnostics(errs, err, path)
		return tree.Node{}, false
	}
	if !ok {
		return tree.Node{}, false
	}
	return node, true
}

// convertProps classifies raw decoded values into prop values, in sorted key
// order so conversion diagnostics come out deterministic.
func convertProps(raw *rawNode, path string, errs *validation.List) (map[string]props.Value, bool) {
	if len(raw.Props) == 0 {
		return nil, true
	}

	keys := make([]string, 0, len(raw.Props))
	for key := range raw.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	converted := make(map[string]props.Value, len(raw.Props))
	ok := true
	for _, key := range keys {
		value, err := props.FromAny(raw.Props[key])
		if err != nil {
			verr := validation.NewTypeDetail(raw.Type, key, "", "", strings.TrimPrefix(err.Error(), "props: "))
			verr.Path = path
			*errs = append(*errs, verr)
			ok = false
			continue
		}
		if key == "icon" {
			value = sanitizeIconValue(value)
		}
		converted[key] = value
	}
	return converted, ok
}

func appendDiagnostics(errs *validation.List, err error, path string) {
	list, ok := validation.AsList(err)
	if !ok {
		list = validation.List{{
			Code:    validation.CodeUnknownComponent,
			Message: err.Error(),
		}}
	}
	for _, e := range list {
		e.Path = path
		*errs = append(*errs, e)
	}
}
