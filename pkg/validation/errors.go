// Package validation defines the structured diagnostics the component
// builders emit. Every diagnostic carries a stable short code, the offending
// component and prop, and a human-readable message; lists preserve the order
// the validation phases produce. Diagnostics are values, never panics, and
// re-validating the same input yields the same list.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Code is the stable identifier of a diagnostic category. Codes are part of
// the external contract and never renumber.
type Code string

const (
	CodeUnknownComponent      Code = "E402"
	CodeMissingRequiredProp   Code = "E403"
	CodeTypeMismatch          Code = "E404"
	CodeUnknownProp           Code = "E405"
	CodeInvalidChildrenPolicy Code = "E406"
	CodeEnumValueInvalid      Code = "E407"
	CodeBudgetExceeded        Code = "E408"
)

// Error is a single validation diagnostic. Fields marshal to JSON so callers
// can surface diagnostics structurally. Path locates the offending node when
// the diagnostic comes out of a document compile; builders leave it empty.
type Error struct {
	Code      Code   `json:"code"`
	Path      string `json:"path,omitempty"`
	Component string `json:"component,omitempty"`
	Prop      string `json:"prop,omitempty"`
	Expected  string `json:"expected,omitempty"`
	Got       string `json:"got,omitempty"`
	Message   string `json:"message"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (at %s)", e.Code, e.Message, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewUnknownComponent reports a lookup for a name the registry does not hold.
func NewUnknownComponent(name string) *Error {
	return &Error{
		Code:      CodeUnknownComponent,
		Component: name,
		Message:   fmt.Sprintf("unknown component '%s'", name),
	}
}

// NewMissingProp reports a required prop that was not supplied.
func NewMissingProp(component, prop string) *Error {
	return &Error{
		Code:      CodeMissingRequiredProp,
		Component: component,
		Prop:      prop,
		Message:   fmt.Sprintf("%s.%s: required prop missing", component, prop),
	}
}

// NewTypeMismatch reports a prop whose value kind does not match the
// declaration.
func NewTypeMismatch(component, prop, expected, got string) *Error {
	return &Error{
		Code:      CodeTypeMismatch,
		Component: component,
		Prop:      prop,
		Expected:  expected,
		Got:       got,
		Message:   fmt.Sprintf("%s.%s: expected %s, got %s", component, prop, expected, got),
	}
}

// NewTypeDetail reports a type mismatch with a custom detail, used for
// composite kinds such as edges where the failure sits inside the value.
func NewTypeDetail(component, prop, expected, got, detail string) *Error {
	return &Error{
		Code:      CodeTypeMismatch,
		Component: component,
		Prop:      prop,
		Expected:  expected,
		Got:       got,
		Message:   fmt.Sprintf("%s.%s: %s", component, prop, detail),
	}
}

// NewUnknownProp reports a prop key the declaration does not permit.
func NewUnknownProp(component, prop string) *Error {
	return &Error{
		Code:      CodeUnknownProp,
		Component: component,
		Prop:      prop,
		Message:   fmt.Sprintf("%s: unknown prop '%s'", component, prop),
	}
}

// NewEnumInvalid reports a string outside a closed enum set.
func NewEnumInvalid(component, prop string, allowed []string, got string) *Error {
	set := strings.Join(allowed, ", ")
	return &Error{
		Code:      CodeEnumValueInvalid,
		Component: component,
		Prop:      prop,
		Expected:  fmt.Sprintf("one of [%s]", set),
		Got:       got,
		Message:   fmt.Sprintf("%s.%s: expected one of [%s], got '%s'", component, prop, set, got),
	}
}

// NewChildrenNotAllowed reports children supplied to a childless component.
func NewChildrenNotAllowed(component string, got int) *Error {
	return &Error{
		Code:      CodeInvalidChildrenPolicy,
		Component: component,
		Message:   fmt.Sprintf("%s: does not accept children, but got %d", component, got),
	}
}

// NewChildrenRequired reports a component that must contain children but got
// none.
func NewChildrenRequired(component string) *Error {
	return &Error{
		Code:      CodeInvalidChildrenPolicy,
		Component: component,
		Message:   fmt.Sprintf("%s: requires children, but got none", component),
	}
}

// NewBudgetExceeded reports a surface that breaches the render budget.
func NewBudgetExceeded(detail string) *Error {
	return &Error{
		Code:    CodeBudgetExceeded,
		Message: fmt.Sprintf("surface exceeds render budget: %s", detail),
	}
}

// List accumulates diagnostics in phase order. Validation never stops at the
// first problem; callers receive everything wrong with a node at once.
type List []*Error

func (l List) Error() string {
	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// Unwrap exposes the individual diagnostics to errors.Is and errors.As.
func (l List) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errs
}

// Err returns the list as an error, or nil when it is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Has reports whether any diagnostic carries the code.
func (l List) Has(code Code) bool {
	for _, e := range l {
		if e.Code == code {
			return true
		}
	}
	return false
}

// Codes returns the diagnostic codes in order.
func (l List) Codes() []Code {
	codes := make([]Code, len(l))
	for i, e := range l {
		codes[i] = e.Code
	}
	return codes
}

// AsList extracts a diagnostic list from an error chain.
func AsList(err error) (List, bool) {
	var list List
	if errors.As(err, &list) {
		return list, true
	}
	var single *Error
	if errors.As(err, &single) {
		return List{single}, true
	}
	return nil, false
}
