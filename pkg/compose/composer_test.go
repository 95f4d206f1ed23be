package compose

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-surface/pkg/builder"
	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/registry"
	"github.com/goliatone/go-surface/pkg/validation"
)

// selectionFor resolves a component name to its index in the sorted name
// list, which is what the component select prompt presents.
func selectionFor(t *testing.T, name string) int {
	t.Helper()
	for i, n := range registry.Default().Names() {
		if n == name {
			return i
		}
	}
	t.Fatalf("component %s not registered", name)
	return -1
}

func TestComposeText(t *testing.T) {
	t.Parallel()

	driver := &ScriptDriver{
		// Component, then size "title"; weight, align, and overflow skipped.
		Selections: []int{selectionFor(t, "Text"), 3, 0, 0, 0},
		// Value, then empty color and max_lines.
		Inputs: []string{"Hello", "", ""},
	}
	c := New(WithDriver(driver))

	surface, err := c.Run(context.Background())
	require.NoError(t, err)

	want := builder.NewText("Hello").Size(builder.TextTitle).Build()
	if diff := cmp.Diff(want, surface.Root); diff != "" {
		t.Fatalf("composed tree mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeColumnWithChild(t *testing.T) {
	t.Parallel()

	driver := &ScriptDriver{
		Selections: []int{
			selectionFor(t, "Column"),
			0, // align skipped
			selectionFor(t, "Text"),
			0, 0, 0, 0, // size, weight, align, overflow skipped
		},
		Inputs:   []string{"12", "", "Hi", "", ""},
		Confirms: []bool{true, false},
	}
	c := New(WithDriver(driver))

	surface, err := c.Run(context.Background())
	require.NoError(t, err)

	want := builder.Column().Spacing(12).Children(
		builder.NewText("Hi").Build(),
	).Build()
	if diff := cmp.Diff(want, surface.Root); diff != "" {
		t.Fatalf("composed tree mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeButton(t *testing.T) {
	t.Parallel()

	driver := &ScriptDriver{
		// Component, then variant "outlined".
		Selections: []int{selectionFor(t, "Button"), 2},
		// Label, action name, empty icon.
		Inputs: []string{"Save", "save", ""},
		// Disabled and loading confirms.
		Confirms: []bool{false, false},
	}
	c := New(WithDriver(driver))

	surface, err := c.Run(context.Background())
	require.NoError(t, err)

	want := builder.NewButton("Save", props.NewAction("save")).
		Variant(builder.VariantOutlined).
		Disabled(false).
		Loading(false).
		Build()
	if diff := cmp.Diff(want, surface.Root); diff != "" {
		t.Fatalf("composed tree mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeTextInputLambdaCallback(t *testing.T) {
	t.Parallel()

	driver := &ScriptDriver{
		// Component, then "lambda" for the change handler, keyboard skipped.
		Selections: []int{selectionFor(t, "TextInput"), 1, 0},
		// Empty value, lambda id, placeholder, empty label and max_length.
		Inputs:   []string{"", "2", "Name", "", ""},
		Confirms: []bool{false},
	}
	c := New(WithDriver(driver))

	surface, err := c.Run(context.Background())
	require.NoError(t, err)

	want := builder.NewTextInput("", props.Lambda(2)).
		Placeholder("Name").
		Multiline(false).
		Build()
	if diff := cmp.Diff(want, surface.Root); diff != "" {
		t.Fatalf("composed tree mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeScrollList(t *testing.T) {
	t.Parallel()

	driver := &ScriptDriver{
		Selections: []int{selectionFor(t, "ScrollList")},
		// Items, render id, key id, empty on_reorder.
		Inputs:   []string{"a, b", "0", "1", ""},
		Confirms: []bool{true},
	}
	c := New(WithDriver(driver))

	surface, err := c.Run(context.Background())
	require.NoError(t, err)

	want := builder.NewScrollList(
		props.List{props.String("a"), props.String("b")},
		props.Lambda(0),
		props.Lambda(1),
	).Dividers(true).Build()
	if diff := cmp.Diff(want, surface.Root); diff != "" {
		t.Fatalf("composed tree mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeValidatorRetries(t *testing.T) {
	t.Parallel()

	driver := &ScriptDriver{
		Selections: []int{selectionFor(t, "ProgressBar")},
		// First value is rejected by the numeric validator; the script then
		// answers with a valid one. Colors and height are skipped.
		Inputs: []string{"abc", "0.5", "", "", ""},
	}
	c := New(WithDriver(driver))

	surface, err := c.Run(context.Background())
	require.NoError(t, err)

	want := builder.NewProgressBar(0.5).Build()
	if diff := cmp.Diff(want, surface.Root); diff != "" {
		t.Fatalf("composed tree mismatch (-want +got):\n%s", diff)
	}
	require.Contains(t, driver.Infos, "ProgressBar.value: enter a number")
}

func TestComposeBudgetEnforced(t *testing.T) {
	t.Parallel()

	driver := &ScriptDriver{
		Selections: []int{
			selectionFor(t, "Column"),
			0,
			selectionFor(t, "Text"),
			0, 0, 0, 0,
		},
		Inputs:   []string{"", "", "Hi", "", ""},
		Confirms: []bool{true, false},
	}
	b := builder.New(builder.WithBudget(builder.Budget{MaxNodes: 1, MaxDepth: 8}))
	c := New(WithDriver(driver), WithBuilder(b))

	_, err := c.Run(context.Background())
	require.Error(t, err)

	list, ok := validation.AsList(err)
	require.True(t, ok)
	require.Len(t, list, 1)
	require.Equal(t, validation.CodeBudgetExceeded, list[0].Code)
}

type abortDriver struct{}

func (abortDriver) Input(context.Context, InputConfig) (string, error) {
	return "", ErrAborted
}

func (abortDriver) Confirm(context.Context, ConfirmConfig) (bool, error) {
	return false, ErrAborted
}

func (abortDriver) Select(context.Context, SelectConfig) (int, error) {
	return 0, ErrAborted
}

func (abortDriver) Info(context.Context, string) error {
	return nil
}

func TestComposeAborted(t *testing.T) {
	t.Parallel()

	c := New(WithDriver(abortDriver{}))
	_, err := c.Run(context.Background())
	require.ErrorIs(t, err, ErrAborted)
}

func TestComposeContextCanceled(t *testing.T) {
	t.Parallel()

	driver := &ScriptDriver{Selections: []int{selectionFor(t, "Toast")}}
	c := New(WithDriver(driver))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
