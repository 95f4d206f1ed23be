package props

import (
	"encoding/json"
	"fmt"
)

// DimensionType tags the dimension variants.
type DimensionType string

const (
	DimensionPx      DimensionType = "Px"
	DimensionAuto    DimensionType = "Auto"
	DimensionFill    DimensionType = "Fill"
	DimensionPercent DimensionType = "Percent"
)

// Dimension is a sizing value: fixed pixels, intrinsic size, available space,
// or a percentage of the parent.
type Dimension struct {
	Type  DimensionType
	Value float64
}

// Px builds a fixed pixel dimension.
func Px(n float64) Dimension { return Dimension{Type: DimensionPx, Value: n} }

// Percent builds a percentage dimension.
func Percent(n float64) Dimension { return Dimension{Type: DimensionPercent, Value: n} }

// Auto sizes to intrinsic content.
func Auto() Dimension { return Dimension{Type: DimensionAuto} }

// Fill expands into the available space.
func Fill() Dimension { return Dimension{Type: DimensionFill} }

// AsValue projects the dimension into record prop value form. The unit
// variants carry only the tag.
func (d Dimension) AsValue() Value {
	rec := Record{"type": String(d.Type)}
	if d.Type == DimensionPx || d.Type == DimensionPercent {
		rec["value"] = Number(d.Value)
	}
	return rec
}

// MarshalJSON writes the tagged form, omitting value for the unit variants.
func (d Dimension) MarshalJSON() ([]byte, error) {
	switch d.Type {
	case DimensionAuto, DimensionFill:
		return json.Marshal(struct {
			Type DimensionType `json:"type"`
		}{d.Type})
	case DimensionPx, DimensionPercent:
		return json.Marshal(struct {
			Type  DimensionType `json:"type"`
			Value float64       `json:"value"`
		}{d.Type, d.Value})
	}
	return nil, fmt.Errorf("props: unknown dimension type %q", d.Type)
}

// UnmarshalJSON reads the tagged form.
func (d *Dimension) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type  DimensionType `json:"type"`
		Value float64       `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("props: dimension: %w", err)
	}
	switch raw.Type {
	case DimensionPx, DimensionPercent:
		d.Type, d.Value = raw.Type, raw.Value
	case DimensionAuto, DimensionFill:
		d.Type, d.Value = raw.Type, 0
	default:
		return fmt.Errorf("props: unknown dimension type %q", raw.Type)
	}
	return nil
}

// EdgesKind distinguishes uniform spacing from per-side spacing.
type EdgesKind uint8

const (
	EdgesUniform EdgesKind = iota
	EdgesSides
)

// Edges describes spacing around a box. A uniform value behaves exactly like
// four identical sides; the kind only selects the compact wire form.
type Edges struct {
	Kind   EdgesKind
	Top    float64
	Bottom float64
	Start  float64
	End    float64
}

// UniformEdges applies the same spacing on every side.
func UniformEdges(n float64) Edges {
	return Edges{Kind: EdgesUniform, Top: n, Bottom: n, Start: n, End: n}
}

// SideEdges sets each side independently.
func SideEdges(top, bottom, start, end float64) Edges {
	return Edges{Kind: EdgesSides, Top: top, Bottom: bottom, Start: start, End: end}
}

// Value projects the edges into prop value form: a bare number when uniform,
// a record of sides otherwise.
func (e Edges) Value() Value {
	if e.Kind == EdgesUniform {
		return Number(e.Top)
	}
	return Record{
		"top":    Number(e.Top),
		"bottom": Number(e.Bottom),
		"start":  Number(e.Start),
		"end":    Number(e.End),
	}
}

// MarshalJSON writes the same compact form the prop projection uses.
func (e Edges) MarshalJSON() ([]byte, error) {
	return e.Value().MarshalJSON()
}

// UnmarshalJSON accepts a bare number or a record of the four sides.
func (e *Edges) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*e = UniformEdges(n)
		return nil
	}
	var raw struct {
		Top    *float64 `json:"top"`
		Bottom *float64 `json:"bottom"`
		Start  *float64 `json:"start"`
		End    *float64 `json:"end"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("props: edges: %w", err)
	}
	if raw.Top == nil || raw.Bottom == nil || raw.Start == nil || raw.End == nil {
		return fmt.Errorf("props: edges record requires top, bottom, start, end")
	}
	*e = SideEdges(*raw.Top, *raw.Bottom, *raw.Start, *raw.End)
	return nil
}

// Alignment positions children along an axis.
type Alignment string

const (
	AlignStart        Alignment = "start"
	AlignCenter       Alignment = "center"
	AlignEnd          Alignment = "end"
	AlignStretch      Alignment = "stretch"
	AlignSpaceBetween Alignment = "space_between"
	AlignSpaceAround  Alignment = "space_around"
)

// Alignments lists the closed alignment set in canonical order.
func Alignments() []Alignment {
	return []Alignment{AlignStart, AlignCenter, AlignEnd, AlignStretch, AlignSpaceBetween, AlignSpaceAround}
}

// ParseAlignment validates an alignment string.
func ParseAlignment(s string) (Alignment, error) {
	a := Alignment(s)
	switch a {
	case AlignStart, AlignCenter, AlignEnd, AlignStretch, AlignSpaceBetween, AlignSpaceAround:
		return a, nil
	}
	return "", fmt.Errorf("unknown alignment %q", s)
}

// Value projects the alignment into its snake_case string form.
func (a Alignment) Value() Value { return String(a) }

// BorderStyle describes a border stroke.
type BorderStyle struct {
	Width float64
	Color Color
	Style string
}

// Record projects the border into a record prop value. Style is omitted when
// empty; hosts treat solid as the default.
func (b BorderStyle) Record() Record {
	rec := Record{
		"width": Number(b.Width),
		"color": b.Color,
	}
	if b.Style != "" {
		rec["style"] = String(b.Style)
	}
	return rec
}

// ShadowStyle describes a drop shadow.
type ShadowStyle struct {
	OffsetX float64
	OffsetY float64
	Blur    float64
	Color   Color
}

// Record projects the shadow into a record prop value.
func (s ShadowStyle) Record() Record {
	return Record{
		"offset_x": Number(s.OffsetX),
		"offset_y": Number(s.OffsetY),
		"blur":     Number(s.Blur),
		"color":    s.Color,
	}
}
