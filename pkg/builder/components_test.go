package builder

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/tree"
)

func TestColumnBuilder(t *testing.T) {
	t.Parallel()

	node := Column().
		Spacing(16).
		Align(props.AlignCenter).
		Padding(props.UniformEdges(8)).
		Children(
			NewText("first").Build(),
			NewText("second").Build(),
			NewText("third").Build(),
		).
		Build()

	require.Equal(t, "Column", node.Type)
	require.Equal(t, []string{"spacing", "align", "padding", "accessible"}, node.Props.Keys())

	require.Len(t, node.Children, 3)
	var order []string
	for _, child := range node.Children {
		value, ok := child.Get("value")
		require.True(t, ok)
		order = append(order, string(value.(props.String)))
	}
	require.Equal(t, []string{"first", "second", "third"}, order)

	padding, _ := node.Get("padding")
	require.Equal(t, props.Number(8), padding)
}

func TestRowBuilder(t *testing.T) {
	t.Parallel()

	node := Row().
		Spacing(4).
		Padding(props.SideEdges(1, 2, 3, 4)).
		Child(NewText("cell").Build()).
		Build()

	require.Equal(t, "Row", node.Type)
	padding, _ := node.Get("padding")
	want := props.Record{
		"top":    props.Number(1),
		"bottom": props.Number(2),
		"start":  props.Number(3),
		"end":    props.Number(4),
	}
	require.Empty(t, cmp.Diff(want, padding))

	accessible, _ := node.Get("accessible")
	require.Empty(t, cmp.Diff(props.Record{
		"label": props.String("Row"),
		"role":  props.String("group"),
	}, accessible))
}

func TestScrollBuilderDefaultsDirection(t *testing.T) {
	t.Parallel()

	node := Scroll().Child(NewText("body").Build()).Build()
	direction, ok := node.Get("direction")
	require.True(t, ok)
	require.Equal(t, props.String("vertical"), direction)

	node = Scroll().Direction(ScrollHorizontal).Build()
	direction, _ = node.Get("direction")
	require.Equal(t, props.String("horizontal"), direction)
}

func TestTextBuilder(t *testing.T) {
	t.Parallel()

	node := NewText("Welcome back").
		Size(TextHeading).
		Weight(WeightBold).
		Color(props.RGB(0.1, 0.1, 0.1)).
		Align(TextAlignCenter).
		MaxLines(2).
		Overflow(OverflowEllipsis).
		Build()

	require.Equal(t, "Text", node.Type)
	require.Equal(t,
		[]string{"value", "size", "weight", "color", "align", "max_lines", "overflow", "accessible"},
		node.Props.Keys())

	accessible, _ := node.Get("accessible")
	require.Empty(t, cmp.Diff(props.Record{
		"label": props.String("Welcome back"),
		"role":  props.String("text"),
	}, accessible))
}

func TestProgressBarBuilderClampsAtConstruction(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"above range", 2.5, 1},
		{"below range", -1, 0},
		{"in range", 0.75, 0.75},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			node := NewProgressBar(tc.in).Build()
			value, ok := node.Get("value")
			require.True(t, ok)
			require.Equal(t, props.Number(tc.want), value)
		})
	}
}

func TestProgressBarBuilderAccessibility(t *testing.T) {
	t.Parallel()

	node := NewProgressBar(0.75).
		Color(props.RGB(0.2, 0.6, 0.2)).
		Height(6).
		Build()

	accessible, _ := node.Get("accessible")
	require.Empty(t, cmp.Diff(props.Record{
		"label": props.String("75% complete"),
		"role":  props.String("progressbar"),
		"value": props.String("75%"),
	}, accessible))
}

func TestButtonBuilder(t *testing.T) {
	t.Parallel()

	node := NewButton("Save", props.NewAction("save", props.String("draft"))).
		Variant(VariantFilled).
		Icon("disk").
		Disabled(false).
		Build()

	require.Equal(t, "Button", node.Type)
	require.Equal(t, []string{"label", "on_tap", "variant", "icon", "disabled", "accessible"}, node.Props.Keys())

	onTap, _ := node.Get("on_tap")
	action, ok := onTap.(props.Action)
	require.True(t, ok)
	require.Equal(t, "save", action.Name)
	require.Len(t, action.Args, 1)

	accessible, _ := node.Get("accessible")
	require.Empty(t, cmp.Diff(props.Record{
		"label": props.String("Save"),
		"role":  props.String("button"),
	}, accessible))
}

func TestTextInputBuilderAcceptsEitherCallback(t *testing.T) {
	t.Parallel()

	withAction := NewTextInput("", props.NewAction("update_name")).
		Placeholder("Full name").
		Keyboard(KeyboardEmail).
		Build()
	onChange, _ := withAction.Get("on_change")
	_, isAction := onChange.(props.Action)
	require.True(t, isAction)

	accessible, _ := withAction.Get("accessible")
	require.Empty(t, cmp.Diff(props.Record{
		"label": props.String("Full name"),
		"role":  props.String("textfield"),
	}, accessible))

	withLambda := NewTextInput("seed", props.Lambda(7)).Multiline(true).Build()
	onChange, _ = withLambda.Get("on_change")
	require.Equal(t, props.Lambda(7), onChange)
}

func TestScrollListBuilder(t *testing.T) {
	t.Parallel()

	items := props.List{props.String("a"), props.String("b")}
	node := NewScrollList(items, props.Lambda(0), props.Lambda(1)).
		OnReorder(props.Lambda(2)).
		Dividers(true).
		Build()

	require.Equal(t, "ScrollList", node.Type)
	require.Equal(t, []string{"items", "render", "key", "on_reorder", "dividers", "accessible"}, node.Props.Keys())

	accessible, _ := node.Get("accessible")
	require.Empty(t, cmp.Diff(props.Record{
		"label": props.String("List"),
		"role":  props.String("list"),
	}, accessible))
}

func TestModalBuilder(t *testing.T) {
	t.Parallel()

	node := NewModal(true, props.NewAction("close")).
		Title("Confirm delete").
		Child(NewText("Are you sure?").Build()).
		Build()

	require.Equal(t, "Modal", node.Type)
	require.Len(t, node.Children, 1)

	accessible, _ := node.Get("accessible")
	require.Empty(t, cmp.Diff(props.Record{
		"label": props.String("Confirm delete"),
		"role":  props.String("dialog"),
	}, accessible))
}

func TestToastBuilder(t *testing.T) {
	t.Parallel()

	node := NewToast("Saved").Duration(3000).Type(ToastSuccess).Build()

	require.Equal(t, "Toast", node.Type)
	require.Equal(t, []string{"message", "duration", "type", "accessible"}, node.Props.Keys())

	accessible, _ := node.Get("accessible")
	require.Empty(t, cmp.Diff(props.Record{
		"label":       props.String("Saved"),
		"live_region": props.String("assertive"),
		"role":        props.String("alert"),
	}, accessible))
}

func TestTypedBuildersPassValidation(t *testing.T) {
	t.Parallel()

	b := New()
	nodes := []tree.Node{
		Column().Spacing(8).Child(NewText("x").Build()).Build(),
		Row().Build(),
		Scroll().Build(),
		NewText("x").Build(),
		NewProgressBar(0.5).Build(),
		NewButton("Go", props.NewAction("go")).Build(),
		NewTextInput("", props.Lambda(1)).Build(),
		NewScrollList(props.List{}, props.Lambda(0), props.Lambda(1)).Build(),
		NewModal(false, props.NewAction("dismiss")).Build(),
		NewToast("hi").Build(),
	}
	for _, node := range nodes {
		_, err := b.Surface(node)
		require.NoError(t, err, node.Type)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	t.Parallel()

	builder := NewButton("Once", props.NewAction("once"))
	first := builder.Build()
	second := builder.Build()
	require.Empty(t, cmp.Diff(first, second))
}

func TestSetterOrderDoesNotAffectPropOrder(t *testing.T) {
	t.Parallel()

	forward := NewText("same").Size(TextSmall).Overflow(OverflowClip).MaxLines(1).Build()
	reversed := NewText("same").MaxLines(1).Overflow(OverflowClip).Size(TextSmall).Build()

	require.Equal(t, []string{"value", "size", "max_lines", "overflow", "accessible"}, forward.Props.Keys())
	require.Empty(t, cmp.Diff(forward, reversed))

	swapped := Column().Padding(props.UniformEdges(4)).Spacing(2).Build()
	require.Equal(t, []string{"spacing", "padding", "accessible"}, swapped.Props.Keys())
}
