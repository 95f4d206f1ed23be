package docs

import (
	"github.com/goliatone/go-surface/pkg/builder"
	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/tree"
)

// wireExample renders the canonical example for a component in indented wire
// form. Examples run through the real builders and the real codec, so the
// documented output cannot drift from what the module produces. Components
// without a registered example get none.
func wireExample(name string) (string, bool) {
	node, ok := exampleNode(name)
	if !ok {
		return "", false
	}
	data, err := tree.NewSurface(node).EncodeIndent("", "  ")
	if err != nil {
		return "", false
	}
	return string(data), true
}

func exampleNode(name string) (tree.Node, bool) {
	switch name {
	case "Column":
		return builder.Column().Spacing(12).Children(
			builder.NewText("Stacked").Build(),
		).Build(), true
	case "Row":
		return builder.Row().Spacing(8).Align(props.AlignCenter).Children(
			builder.NewText("Side by side").Build(),
		).Build(), true
	case "Scroll":
		return builder.Scroll().Child(
			builder.NewText("Long content").Build(),
		).Build(), true
	case "Text":
		return builder.NewText("Hello").Size(builder.TextTitle).Build(), true
	case "ProgressBar":
		return builder.NewProgressBar(0.4).Build(), true
	case "Button":
		return builder.NewButton("Save", props.NewAction("save")).Build(), true
	case "TextInput":
		return builder.NewTextInput("", props.NewAction("change")).
			Placeholder("Search").
			Build(), true
	case "ScrollList":
		return builder.NewScrollList(
			props.List{props.String("a"), props.String("b")},
			props.Lambda(0),
			props.Lambda(1),
		).Build(), true
	case "Modal":
		return builder.NewModal(true, props.NewAction("dismiss")).Title("Confirm").Children(
			builder.NewText("Are you sure?").Build(),
		).Build(), true
	case "Toast":
		return builder.NewToast("Saved").Type(builder.ToastSuccess).Build(), true
	}
	return tree.Node{}, false
}
