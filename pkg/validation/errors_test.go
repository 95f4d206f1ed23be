package validation

import (
	"encoding/json"
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessagesMatchContract(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  *Error
		code Code
		msg  string
	}{
		{NewUnknownComponent("Carousel"), CodeUnknownComponent, "unknown component 'Carousel'"},
		{NewMissingProp("Text", "value"), CodeMissingRequiredProp, "Text.value: required prop missing"},
		{NewTypeMismatch("Text", "value", "string", "number"), CodeTypeMismatch, "Text.value: expected string, got number"},
		{NewUnknownProp("Text", "frobnicate"), CodeUnknownProp, "Text: unknown prop 'frobnicate'"},
		{
			NewEnumInvalid("Button", "variant", []string{"filled", "outlined", "text"}, "ghost"),
			CodeEnumValueInvalid,
			"Button.variant: expected one of [filled, outlined, text], got 'ghost'",
		},
		{NewChildrenNotAllowed("Text", 2), CodeInvalidChildrenPolicy, "Text: does not accept children, but got 2"},
		{NewChildrenRequired("Column"), CodeInvalidChildrenPolicy, "Column: requires children, but got none"},
		{NewBudgetExceeded("10001 nodes (max 10000)"), CodeBudgetExceeded, "surface exceeds render budget: 10001 nodes (max 10000)"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.code, tc.err.Code)
		require.Equal(t, tc.msg, tc.err.Message)
		require.Equal(t, string(tc.code)+": "+tc.msg, tc.err.Error())
	}
}

func TestListAccumulatesInOrder(t *testing.T) {
	t.Parallel()

	list := List{
		NewMissingProp("ProgressBar", "value"),
		NewUnknownProp("ProgressBar", "foo"),
	}

	require.Equal(t, []Code{CodeMissingRequiredProp, CodeUnknownProp}, list.Codes())
	require.True(t, list.Has(CodeMissingRequiredProp))
	require.False(t, list.Has(CodeBudgetExceeded))
	require.Contains(t, list.Error(), "E403")
	require.Contains(t, list.Error(), "E405")
}

func TestListErrNilWhenEmpty(t *testing.T) {
	t.Parallel()

	var list List
	require.NoError(t, list.Err())

	list = append(list, NewUnknownComponent("Nope"))
	require.Error(t, list.Err())
}

func TestListUnwrapSupportsErrorsAs(t *testing.T) {
	t.Parallel()

	var err error = List{NewTypeMismatch("Toast", "duration", "number", "string")}

	var single *Error
	require.True(t, stdErrors.As(err, &single))
	require.Equal(t, CodeTypeMismatch, single.Code)

	list, ok := AsList(err)
	require.True(t, ok)
	require.Len(t, list, 1)
}

func TestAsListWrapsSingleError(t *testing.T) {
	t.Parallel()

	var err error = NewUnknownComponent("Carousel")
	list, ok := AsList(err)
	require.True(t, ok)
	require.Equal(t, []Code{CodeUnknownComponent}, list.Codes())

	_, ok = AsList(stdErrors.New("plain"))
	require.False(t, ok)
}

func TestErrorSerializesStructurally(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(NewTypeMismatch("Text", "value", "string", "number"))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"code": "E404",
		"component": "Text",
		"prop": "value",
		"expected": "string",
		"got": "number",
		"message": "Text.value: expected string, got number"
	}`, string(raw))
}
