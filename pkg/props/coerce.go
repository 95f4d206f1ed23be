package props

import (
	"fmt"
	"sort"
)

// Coercion errors deliberately omit a package prefix: the component validator
// embeds them into prop-level diagnostics.

// CoerceDimension converts a literal prop value into a dimension. A bare
// number becomes Px; nothing else converts implicitly.
func CoerceDimension(v Value) (Dimension, error) {
	if n, ok := v.(Number); ok {
		return Px(float64(n)), nil
	}
	return Dimension{}, fmt.Errorf("cannot coerce %s to dimension", TypeName(v))
}

// CoerceEdges converts a literal prop value into edges. A bare number becomes
// uniform spacing; a record must carry exactly the four numeric sides.
func CoerceEdges(v Value) (Edges, error) {
	switch t := v.(type) {
	case Number:
		return UniformEdges(float64(t)), nil
	case Record:
		return edgesFromRecord(t)
	}
	return Edges{}, fmt.Errorf("expected number or record, got %s", TypeName(v))
}

func edgesFromRecord(rec Record) (Edges, error) {
	keys := make([]string, 0, len(rec))
	for key := range rec {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		switch key {
		case "top", "bottom", "start", "end":
		default:
			return Edges{}, fmt.Errorf("edges record has unknown key '%s'", key)
		}
	}

	var sides [4]float64
	for i, side := range [...]string{"top", "bottom", "start", "end"} {
		raw, ok := rec[side]
		if !ok {
			return Edges{}, fmt.Errorf("edges record missing side '%s'", side)
		}
		n, isNumber := raw.(Number)
		if !isNumber {
			return Edges{}, fmt.Errorf("edges side '%s': expected number, got %s", side, TypeName(raw))
		}
		sides[i] = float64(n)
	}
	return SideEdges(sides[0], sides[1], sides[2], sides[3]), nil
}

// CoerceAlignment converts a literal prop value into an alignment.
func CoerceAlignment(v Value) (Alignment, error) {
	s, ok := v.(String)
	if !ok {
		return "", fmt.Errorf("expected string, got %s", TypeName(v))
	}
	return ParseAlignment(string(s))
}
