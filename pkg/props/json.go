package props

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// MarshalJSON writes the plain JSON string.
func (s String) MarshalJSON() ([]byte, error) { return json.Marshal(string(s)) }

// MarshalJSON writes the plain JSON number.
func (n Number) MarshalJSON() ([]byte, error) { return json.Marshal(float64(n)) }

// MarshalJSON writes the plain JSON bool.
func (b Bool) MarshalJSON() ([]byte, error) { return json.Marshal(bool(b)) }

// MarshalJSON writes JSON null.
func (Nil) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// MarshalJSON writes the color object with r, g, b, a keys in fixed order so
// color bytes never depend on map iteration.
func (c Color) MarshalJSON() ([]byte, error) {
	components := [...]struct {
		key string
		val float64
	}{{"r", c.R}, {"g", c.G}, {"b", c.B}, {"a", c.A}}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, comp := range components {
		if i > 0 {
			buf.WriteByte(',')
		}
		raw, err := json.Marshal(comp.val)
		if err != nil {
			return nil, fmt.Errorf("props: color component %s: %w", comp.key, err)
		}
		buf.WriteByte('"')
		buf.WriteString(comp.key)
		buf.WriteString(`":`)
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON writes the action discriminator object. The __args key appears
// only when arguments are bound.
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name string `json:"__action"`
		Args List   `json:"__args,omitempty"`
	}{a.Name, a.Args})
}

// MarshalJSON writes the lambda discriminator object.
func (l Lambda) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID uint32 `json:"__lambda"`
	}{uint32(l)})
}

// MarshalJSON writes a JSON array; a nil list serializes as [].
func (l List) MarshalJSON() ([]byte, error) {
	if l == nil {
		l = List{}
	}
	return json.Marshal([]Value(l))
}

// MarshalJSON writes a JSON object with sorted keys; a nil record serializes
// as {}.
func (r Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]Value(r))
}

// DecodeValue parses a JSON-encoded prop value, classifying objects through
// the wire discriminators: __action, __lambda, and the exact r/g/b/a color
// shape. Any other object decodes as a record.
func DecodeValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("props: decode value: %w", err)
	}
	return FromAny(raw)
}

// FromAny converts a decoded JSON or YAML value into a prop value. Containers
// convert recursively and integers widen to Number. Values pass through
// untouched.
func FromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Nil{}, nil
	case Value:
		return v, nil
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("props: number %q: %w", v.String(), err)
		}
		return Number(f), nil
	case int:
		return Number(float64(v)), nil
	case int64:
		return Number(float64(v)), nil
	case uint64:
		return Number(float64(v)), nil
	case float64:
		return Number(v), nil
	case []any:
		list := make(List, 0, len(v))
		for i, item := range v {
			val, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("props: list index %d: %w", i, err)
			}
			list = append(list, val)
		}
		return list, nil
	case map[string]any:
		return fromMap(v)
	}
	return nil, fmt.Errorf("props: unsupported value of type %T", raw)
}

func fromMap(m map[string]any) (Value, error) {
	if name, ok := m["__action"]; ok {
		return actionFromMap(name, m)
	}
	if id, ok := m["__lambda"]; ok && len(m) == 1 {
		f, ok := toFloat(id)
		if !ok || f < 0 || f > math.MaxUint32 || f != math.Trunc(f) {
			return nil, fmt.Errorf("props: __lambda id must be an unsigned 32-bit integer")
		}
		return Lambda(uint32(f)), nil
	}
	if c, ok := colorFromMap(m); ok {
		return c, nil
	}

	rec := make(Record, len(m))
	for key, item := range m {
		val, err := FromAny(item)
		if err != nil {
			return nil, fmt.Errorf("props: record key %q: %w", key, err)
		}
		rec[key] = val
	}
	return rec, nil
}

func actionFromMap(name any, m map[string]any) (Value, error) {
	s, ok := name.(string)
	if !ok {
		return nil, fmt.Errorf("props: __action name must be a string")
	}
	for key := range m {
		if key != "__action" && key != "__args" {
			return nil, fmt.Errorf("props: action reference has unknown key %q", key)
		}
	}

	act := Action{Name: s}
	if rawArgs, ok := m["__args"]; ok {
		items, ok := rawArgs.([]any)
		if !ok {
			return nil, fmt.Errorf("props: __args must be a list")
		}
		args := make(List, 0, len(items))
		for i, item := range items {
			val, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("props: action argument %d: %w", i, err)
			}
			args = append(args, val)
		}
		act.Args = args
	}
	return act, nil
}

// colorFromMap recognizes an object with exactly the four numeric color
// components. Components clamp into range like every other color
// construction path.
func colorFromMap(m map[string]any) (Color, bool) {
	if len(m) != 4 {
		return Color{}, false
	}
	var r, g, b, a float64
	for key, dst := range map[string]*float64{"r": &r, "g": &g, "b": &b, "a": &a} {
		raw, ok := m[key]
		if !ok {
			return Color{}, false
		}
		f, ok := toFloat(raw)
		if !ok {
			return Color{}, false
		}
		*dst = f
	}
	return RGBA(r, g, b, a), true
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
