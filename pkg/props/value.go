package props

// Kind identifies a prop value variant.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNil
	KindColor
	KindAction
	KindLambda
	KindList
	KindRecord
)

// String returns the kind name used in wire payloads and error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNil:
		return "nil"
	case KindColor:
		return "color"
	case KindAction:
		return "action"
	case KindLambda:
		return "lambda"
	case KindList:
		return "list"
	case KindRecord:
		return "record"
	}
	return "unknown"
}

// Value is a single prop value carried by a surface node. The variant set is
// closed: builders never emit anything outside it and the codec round-trips
// every member. Implementations outside this package are not possible.
type Value interface {
	Kind() Kind
	MarshalJSON() ([]byte, error)
	sealed()
}

// TypeName reports the type name of a value for error messages. A nil
// interface reads as "nil".
func TypeName(v Value) string {
	if v == nil {
		return KindNil.String()
	}
	return v.Kind().String()
}

// String is a UTF-8 text value.
type String string

func (String) Kind() Kind { return KindString }
func (String) sealed()    {}

// Number is a 64-bit float, the single numeric type in the model.
type Number float64

func (Number) Kind() Kind { return KindNumber }
func (Number) sealed()    {}

// Bool is a boolean value.
type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (Bool) sealed()    {}

// Nil is the explicit null value.
type Nil struct{}

func (Nil) Kind() Kind { return KindNil }
func (Nil) sealed()    {}

// Color is an RGBA color with components in the 0.0 to 1.0 range.
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

func (Color) Kind() Kind { return KindColor }
func (Color) sealed()    {}

// RGBA builds a color, clamping every component into [0, 1].
func RGBA(r, g, b, a float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a)}
}

// RGB builds an opaque color.
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// Action references a named handler registered with the host, optionally with
// bound arguments.
type Action struct {
	Name string
	Args List
}

func (Action) Kind() Kind { return KindAction }
func (Action) sealed()    {}

// NewAction builds an action reference.
func NewAction(name string, args ...Value) Action {
	act := Action{Name: name}
	if len(args) > 0 {
		act.Args = List(args)
	}
	return act
}

// Lambda is an opaque host-side callback identifier.
type Lambda uint32

func (Lambda) Kind() Kind { return KindLambda }
func (Lambda) sealed()    {}

// Callback is the subset of values usable as event handlers: Action and
// Lambda.
type Callback interface {
	Value
	callback()
}

func (Action) callback() {}
func (Lambda) callback() {}

// List is an ordered collection of prop values.
type List []Value

func (List) Kind() Kind { return KindList }
func (List) sealed()    {}

// Equal reports structural equality of two values. A nil interface compares
// as the explicit Nil value. Lists compare elementwise in order; records
// compare by key set and per-key value.
func Equal(a, b Value) bool {
	if a == nil {
		a = Nil{}
	}
	if b == nil {
		b = Nil{}
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case String:
		return av == b.(String)
	case Number:
		return av == b.(Number)
	case Bool:
		return av == b.(Bool)
	case Nil:
		return true
	case Color:
		return av == b.(Color)
	case Action:
		bv := b.(Action)
		return av.Name == bv.Name && Equal(av.Args, bv.Args)
	case Lambda:
		return av == b.(Lambda)
	case List:
		bv := b.(List)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Record:
		bv := b.(Record)
		if len(av) != len(bv) {
			return false
		}
		for key, val := range av {
			other, ok := bv[key]
			if !ok || !Equal(val, other) {
				return false
			}
		}
		return true
	}
	return false
}

// Record is a string-keyed collection of prop values. Records serialize with
// sorted keys; insertion order carries no meaning.
type Record map[string]Value

func (Record) Kind() Kind { return KindRecord }
func (Record) sealed()    {}

func clamp01(v float64) float64 {
	if v != v {
		// NaN collapses to zero so serialization stays valid JSON.
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
