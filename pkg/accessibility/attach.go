package accessibility

import (
	"fmt"
	"math"

	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/tree"
)

// labelLimit caps auto-generated text labels, counted in runes.
const labelLimit = 100

// Attributes is the normalized accessibility metadata attached under the
// accessible prop. Label is always present; the remaining fields are omitted
// from the record when empty.
type Attributes struct {
	Label string
	Hint  string
	Role  Role
	Value string
	Live  LiveRegion
}

// Record projects the attributes into the accessible record. Keys serialize
// sorted like every record: hint, label, live_region, role, value.
func (a Attributes) Record() props.Record {
	rec := props.Record{"label": props.String(a.Label)}
	if a.Hint != "" {
		rec["hint"] = props.String(a.Hint)
	}
	if a.Role != "" {
		rec["role"] = props.String(string(a.Role))
	}
	if a.Value != "" {
		rec["value"] = props.String(a.Value)
	}
	if a.Live != "" {
		rec["live_region"] = props.String(string(a.Live))
	}
	return rec
}

// Auto derives default accessibility metadata from a node's own props.
func Auto(node *tree.Node) Attributes {
	attrs := Attributes{Role: DefaultRole(node.Type)}
	switch node.Type {
	case "Button":
		attrs.Label = stringProp(node, "label", "Button")
	case "TextInput":
		if label, ok := stringPropValue(node, "label"); ok {
			attrs.Label = label
		} else if placeholder, ok := stringPropValue(node, "placeholder"); ok {
			attrs.Label = placeholder
		} else {
			attrs.Label = "Text input"
		}
	case "Text":
		if value, ok := stringPropValue(node, "value"); ok {
			attrs.Label = truncate(value)
		} else {
			attrs.Label = "Text"
		}
	case "ProgressBar":
		if value, ok := numberPropValue(node, "value"); ok {
			pct := int(math.Round(value * 100))
			attrs.Label = fmt.Sprintf("%d%% complete", pct)
			attrs.Value = fmt.Sprintf("%d%%", pct)
		} else {
			attrs.Label = "Progress bar"
		}
	case "Modal":
		attrs.Label = stringProp(node, "title", "Dialog")
	case "Toast":
		attrs.Label = stringProp(node, "message", "Notification")
		attrs.Live = LiveAssertive
	case "ScrollList":
		attrs.Label = "List"
	default:
		// Containers and unregistered types fall back to the type name.
		attrs.Label = node.Type
	}
	return attrs
}

// Ensure normalizes the node's accessible prop in place. Caller-supplied
// metadata is read leniently: a non-record value is discarded, usable record
// fields override the derived defaults, malformed or unknown fields degrade
// to them. Ensure never fails.
func Ensure(node *tree.Node) {
	attrs := Auto(node)
	if raw, ok := node.Get("accessible"); ok {
		if rec, isRecord := raw.(props.Record); isRecord {
			merge(&attrs, rec)
		}
	}
	node.Set("accessible", attrs.Record())
}

// Decorator adapts Ensure into a tree decorator covering a whole subtree.
func Decorator() tree.Decorator {
	return tree.DecoratorFunc(func(root *tree.Node) error {
		return root.Walk(func(n *tree.Node) error {
			Ensure(n)
			return nil
		})
	})
}

func merge(attrs *Attributes, rec props.Record) {
	if s, ok := stringField(rec, "label"); ok && s != "" {
		attrs.Label = s
	}
	if s, ok := stringField(rec, "hint"); ok && s != "" {
		attrs.Hint = s
	}
	if s, ok := stringField(rec, "value"); ok && s != "" {
		attrs.Value = s
	}
	if s, ok := stringField(rec, "role"); ok {
		if role, err := ParseRole(s); err == nil {
			attrs.Role = role
		}
	}
	if s, ok := stringField(rec, "live_region"); ok {
		if live, err := ParseLiveRegion(s); err == nil {
			attrs.Live = live
		}
	}
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= labelLimit {
		return s
	}
	return string(runes[:labelLimit]) + "…"
}

func stringProp(node *tree.Node, key, fallback string) string {
	if s, ok := stringPropValue(node, key); ok {
		return s
	}
	return fallback
}

func stringPropValue(node *tree.Node, key string) (string, bool) {
	raw, ok := node.Get(key)
	if !ok {
		return "", false
	}
	s, ok := raw.(props.String)
	if !ok {
		return "", false
	}
	return string(s), true
}

func numberPropValue(node *tree.Node, key string) (float64, bool) {
	raw, ok := node.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := raw.(props.Number)
	if !ok {
		return 0, false
	}
	return float64(n), true
}

func stringField(rec props.Record, key string) (string, bool) {
	raw, ok := rec[key]
	if !ok {
		return "", false
	}
	s, ok := raw.(props.String)
	if !ok {
		return "", false
	}
	return string(s), true
}
