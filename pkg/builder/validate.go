package builder

import (
	"sort"

	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/registry"
	"github.com/goliatone/go-surface/pkg/validation"
)

// validate runs the four phases in their fixed order and accumulates every
// violation. Per-prop phases iterate in declaration order; unknown keys sort
// so diagnostics come out deterministic regardless of map iteration.
func validate(def *registry.Definition, raw map[string]props.Value, childCount int) validation.List {
	var errs validation.List

	for _, spec := range def.Props {
		if !spec.Required {
			continue
		}
		if _, ok := raw[spec.Name]; !ok {
			errs = append(errs, validation.NewMissingProp(def.Name, spec.Name))
		}
	}

	for _, spec := range def.Props {
		value, ok := raw[spec.Name]
		if !ok {
			continue
		}
		// The reserved accessible key never fails validation; attachment
		// degrades malformed input to derived defaults instead.
		if spec.Name == "accessible" {
			continue
		}
		if verr := checkKind(def.Name, spec, value); verr != nil {
			errs = append(errs, verr)
		}
	}

	known := make(map[string]struct{}, len(def.Props))
	for _, spec := range def.Props {
		known[spec.Name] = struct{}{}
	}
	var unknown []string
	for key := range raw {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		errs = append(errs, validation.NewUnknownProp(def.Name, key))
	}

	switch def.Children {
	case registry.ChildrenNone:
		if childCount > 0 {
			errs = append(errs, validation.NewChildrenNotAllowed(def.Name, childCount))
		}
	case registry.ChildrenRequired:
		if childCount == 0 {
			errs = append(errs, validation.NewChildrenRequired(def.Name))
		}
	}
	return errs
}

func checkKind(component string, spec registry.PropSpec, value props.Value) *validation.Error {
	switch spec.Kind {
	case registry.KindString:
		if _, ok := value.(props.String); !ok {
			return validation.NewTypeMismatch(component, spec.Name, "string", props.TypeName(value))
		}
	case registry.KindNumber:
		if _, ok := value.(props.Number); !ok {
			return validation.NewTypeMismatch(component, spec.Name, "number", props.TypeName(value))
		}
	case registry.KindBool:
		if _, ok := value.(props.Bool); !ok {
			return validation.NewTypeMismatch(component, spec.Name, "bool", props.TypeName(value))
		}
	case registry.KindColor:
		if _, ok := value.(props.Color); !ok {
			return validation.NewTypeMismatch(component, spec.Name, "color", props.TypeName(value))
		}
	case registry.KindAction:
		if _, ok := value.(props.Action); !ok {
			return validation.NewTypeMismatch(component, spec.Name, "action", props.TypeName(value))
		}
	case registry.KindLambda:
		if _, ok := value.(props.Lambda); !ok {
			return validation.NewTypeMismatch(component, spec.Name, "lambda", props.TypeName(value))
		}
	case registry.KindCallback:
		switch value.(type) {
		case props.Action, props.Lambda:
		default:
			return validation.NewTypeMismatch(component, spec.Name, "action or lambda", props.TypeName(value))
		}
	case registry.KindList:
		if _, ok := value.(props.List); !ok {
			return validation.NewTypeMismatch(component, spec.Name, "list", props.TypeName(value))
		}
	case registry.KindRecord:
		if _, ok := value.(props.Record); !ok {
			return validation.NewTypeMismatch(component, spec.Name, "record", props.TypeName(value))
		}
	case registry.KindEnum:
		s, ok := value.(props.String)
		if !ok {
			return validation.NewTypeMismatch(component, spec.Name, "string", props.TypeName(value))
		}
		for _, allowed := range spec.Enum {
			if string(s) == allowed {
				return nil
			}
		}
		return validation.NewEnumInvalid(component, spec.Name, spec.Enum, string(s))
	case registry.KindAlignment:
		s, ok := value.(props.String)
		if !ok {
			return validation.NewTypeMismatch(component, spec.Name, "string", props.TypeName(value))
		}
		if _, err := props.ParseAlignment(string(s)); err != nil {
			return validation.NewEnumInvalid(component, spec.Name, alignmentNames(), string(s))
		}
	case registry.KindEdges:
		if _, err := props.CoerceEdges(value); err != nil {
			return validation.NewTypeDetail(component, spec.Name, "number or record", props.TypeName(value), err.Error())
		}
	}
	return nil
}

func alignmentNames() []string {
	aligns := props.Alignments()
	names := make([]string, len(aligns))
	for i, a := range aligns {
		names[i] = string(a)
	}
	return names
}
