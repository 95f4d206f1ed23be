package builder

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/validation"
)

func TestBuildText(t *testing.T) {
	t.Parallel()

	b := New()
	node, err := b.Build("Text", map[string]props.Value{
		"value": props.String("Hello"),
	})
	require.NoError(t, err)
	require.Equal(t, "Text", node.Type)
	require.Equal(t, []string{"value", "accessible"}, node.Props.Keys())

	accessible, ok := node.Get("accessible")
	require.True(t, ok)
	want := props.Record{
		"label": props.String("Hello"),
		"role":  props.String("text"),
	}
	require.Empty(t, cmp.Diff(want, accessible))
}

func TestBuildPropsInDeclarationOrder(t *testing.T) {
	t.Parallel()

	b := New()
	node, err := b.Build("Text", map[string]props.Value{
		"overflow": props.String("ellipsis"),
		"value":    props.String("ordered"),
		"size":     props.String("title"),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"value", "size", "overflow", "accessible"}, node.Props.Keys())
}

func TestBuildMissingRequiredProp(t *testing.T) {
	t.Parallel()

	b := New()
	node, err := b.Build("Text", nil)
	require.Error(t, err)
	require.Empty(t, node.Type)

	list, ok := validation.AsList(err)
	require.True(t, ok)
	require.Len(t, list, 1)
	require.Equal(t, validation.CodeMissingRequiredProp, list[0].Code)
	require.Equal(t, "value", list[0].Prop)
}

func TestBuildUnknownComponent(t *testing.T) {
	t.Parallel()

	b := New()
	_, err := b.Build("Carousel", nil)
	require.Error(t, err)

	list, ok := validation.AsList(err)
	require.True(t, ok)
	require.Len(t, list, 1)
	require.Equal(t, validation.CodeUnknownComponent, list[0].Code)
	require.Equal(t, "E402: unknown component 'Carousel'", list[0].Error())
}

func TestBuildChildrenPolicy(t *testing.T) {
	t.Parallel()

	b := New()
	child := NewText("leaf").Build()

	_, err := b.Build("Text", map[string]props.Value{
		"value": props.String("no kids"),
	}, child, child)
	require.Error(t, err)
	list, ok := validation.AsList(err)
	require.True(t, ok)
	require.Len(t, list, 1)
	require.Equal(t, validation.CodeInvalidChildrenPolicy, list[0].Code)
	require.Equal(t, "E406: Text: does not accept children, but got 2", list[0].Error())

	node, err := b.Build("Column", nil, child)
	require.NoError(t, err)
	require.Len(t, node.Children, 1)
}

func TestBuildAccumulatesAllErrors(t *testing.T) {
	t.Parallel()

	b := New()
	_, err := b.Build("ProgressBar", map[string]props.Value{
		"foo": props.Bool(true),
	})
	require.Error(t, err)

	list, ok := validation.AsList(err)
	require.True(t, ok)
	require.Equal(t, []validation.Code{
		validation.CodeMissingRequiredProp,
		validation.CodeUnknownProp,
	}, list.Codes())
	require.Equal(t, "E405: ProgressBar: unknown prop 'foo'", list[1].Error())
}

func TestBuildTypeMismatch(t *testing.T) {
	t.Parallel()

	b := New()
	_, err := b.Build("Text", map[string]props.Value{
		"value": props.Number(42),
	})
	require.Error(t, err)

	list, ok := validation.AsList(err)
	require.True(t, ok)
	require.Len(t, list, 1)
	require.Equal(t, "E404: Text.value: expected string, got number", list[0].Error())
}

func TestBuildEnum(t *testing.T) {
	t.Parallel()

	b := New()
	base := func(extra map[string]props.Value) map[string]props.Value {
		raw := map[string]props.Value{
			"label":  props.String("Save"),
			"on_tap": props.NewAction("save"),
		}
		for key, value := range extra {
			raw[key] = value
		}
		return raw
	}

	_, err := b.Build("Button", base(map[string]props.Value{"variant": props.String("ghost")}))
	list, ok := validation.AsList(err)
	require.True(t, ok)
	require.Len(t, list, 1)
	require.Equal(t, validation.CodeEnumValueInvalid, list[0].Code)
	require.Equal(t, "E407: Button.variant: expected one of [filled, outlined, text], got 'ghost'", list[0].Error())

	// A non-string enum value is a kind error, not a membership error.
	_, err = b.Build("Button", base(map[string]props.Value{"variant": props.Number(1)}))
	list, ok = validation.AsList(err)
	require.True(t, ok)
	require.Len(t, list, 1)
	require.Equal(t, "E404: Button.variant: expected string, got number", list[0].Error())

	_, err = b.Build("Button", base(map[string]props.Value{"variant": props.String("outlined")}))
	require.NoError(t, err)
}

func TestBuildAlignment(t *testing.T) {
	t.Parallel()

	b := New()
	_, err := b.Build("Column", map[string]props.Value{
		"align": props.String("diagonal"),
	})
	list, ok := validation.AsList(err)
	require.True(t, ok)
	require.Len(t, list, 1)
	require.Equal(t, "E407: Column.align: expected one of [start, center, end, stretch, space_between, space_around], got 'diagonal'", list[0].Error())

	node, err := b.Build("Column", map[string]props.Value{
		"align": props.String("space_between"),
	})
	require.NoError(t, err)
	got, _ := node.Get("align")
	require.Equal(t, props.String("space_between"), got)
}

func TestBuildEdges(t *testing.T) {
	t.Parallel()

	b := New()

	node, err := b.Build("Column", map[string]props.Value{
		"padding": props.Number(8),
	})
	require.NoError(t, err)
	got, _ := node.Get("padding")
	require.Equal(t, props.Number(8), got)

	_, err = b.Build("Column", map[string]props.Value{
		"padding": props.Record{"top": props.Number(8)},
	})
	list, ok := validation.AsList(err)
	require.True(t, ok)
	require.Len(t, list, 1)
	require.Equal(t, validation.CodeTypeMismatch, list[0].Code)
	require.Equal(t, "E404: Column.padding: edges record missing side 'bottom'", list[0].Error())

	_, err = b.Build("Column", map[string]props.Value{
		"padding": props.String("8px"),
	})
	list, ok = validation.AsList(err)
	require.True(t, ok)
	require.Equal(t, "E404: Column.padding: expected number or record, got string", list[0].Error())
}

func TestBuildCallbackKinds(t *testing.T) {
	t.Parallel()

	b := New()
	raw := func(cb props.Value) map[string]props.Value {
		return map[string]props.Value{
			"value":     props.String(""),
			"on_change": cb,
		}
	}

	_, err := b.Build("TextInput", raw(props.NewAction("update")))
	require.NoError(t, err)

	_, err = b.Build("TextInput", raw(props.Lambda(3)))
	require.NoError(t, err)

	_, err = b.Build("TextInput", raw(props.String("update")))
	list, ok := validation.AsList(err)
	require.True(t, ok)
	require.Len(t, list, 1)
	require.Equal(t, "E404: TextInput.on_change: expected action or lambda, got string", list[0].Error())
}

func TestBuildClampsProgress(t *testing.T) {
	t.Parallel()

	b := New()
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"above range", 1.5, 1},
		{"below range", -0.2, 0},
		{"in range", 0.4, 0.4},
		{"not a number", math.NaN(), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			node, err := b.Build("ProgressBar", map[string]props.Value{
				"value": props.Number(tc.in),
			})
			require.NoError(t, err)
			got, ok := node.Get("value")
			require.True(t, ok)
			require.Equal(t, props.Number(tc.want), got)
		})
	}
}

func TestBuildMaterializesDefaults(t *testing.T) {
	t.Parallel()

	b := New()
	node, err := b.Build("Scroll", nil)
	require.NoError(t, err)
	got, ok := node.Get("direction")
	require.True(t, ok)
	require.Equal(t, props.String("vertical"), got)

	node, err = b.Build("Scroll", map[string]props.Value{
		"direction": props.String("horizontal"),
	})
	require.NoError(t, err)
	got, _ = node.Get("direction")
	require.Equal(t, props.String("horizontal"), got)
}

func TestBuildAccessibleOverride(t *testing.T) {
	t.Parallel()

	b := New()
	node, err := b.Build("Text", map[string]props.Value{
		"value": props.String("body copy"),
		"accessible": props.Record{
			"hint": props.String("introductory paragraph"),
		},
	})
	require.NoError(t, err)

	accessible, ok := node.Get("accessible")
	require.True(t, ok)
	want := props.Record{
		"label": props.String("body copy"),
		"hint":  props.String("introductory paragraph"),
		"role":  props.String("text"),
	}
	require.Empty(t, cmp.Diff(want, accessible))
}

func TestBuildSurface(t *testing.T) {
	t.Parallel()

	b := New()
	surface, err := b.BuildSurface("Column", map[string]props.Value{
		"spacing": props.Number(12),
	}, NewText("one").Build(), NewText("two").Build())
	require.NoError(t, err)
	require.Equal(t, "Column", surface.Root.Type)
	require.Len(t, surface.Root.Children, 2)

	nodes, depth := surface.Stats()
	require.Equal(t, 3, nodes)
	require.Equal(t, 2, depth)
}

func TestBuildIsDeterministic(t *testing.T) {
	t.Parallel()

	b := New()
	raw := map[string]props.Value{"foo": props.Bool(true), "bar": props.Nil{}}
	first, _ := b.Build("ProgressBar", raw)
	require.Empty(t, first.Type)

	firstList, ok := validation.AsList(mustErr(t, b, raw))
	require.True(t, ok)
	for i := 0; i < 20; i++ {
		list, ok := validation.AsList(mustErr(t, b, raw))
		require.True(t, ok)
		require.Equal(t, firstList, list)
	}
}

func mustErr(t *testing.T, b *Builder, raw map[string]props.Value) error {
	t.Helper()
	_, err := b.Build("ProgressBar", raw)
	require.Error(t, err)
	return err
}
