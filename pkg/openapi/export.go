// Package openapi exports the component registry as an OpenAPI 3.0.3
// document. Hosts use the generated schemas to validate surface JSON without
// linking this module: every registered component becomes a named schema, and
// the shared wire forms (prop values, colors, action references, nodes) are
// described once under components/schemas.
package openapi

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/registry"
)

const (
	defaultTitle   = "Surface Wire Schema"
	defaultVersion = "1.0.0"
)

// Option tunes the exported document.
type Option func(*config)

type config struct {
	title   string
	version string
}

// WithTitle overrides the document title.
func WithTitle(title string) Option {
	return func(c *config) {
		if title != "" {
			c.title = title
		}
	}
}

// WithVersion overrides the document version.
func WithVersion(version string) Option {
	return func(c *config) {
		if version != "" {
			c.version = version
		}
	}
}

// Export builds an OpenAPI document describing the registry's component
// vocabulary. The document carries no paths; it exists for its schemas.
func Export(reg *registry.Registry, opts ...Option) (*openapi3.T, error) {
	if reg == nil {
		reg = registry.Default()
	}

	cfg := config{title: defaultTitle, version: defaultVersion}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	schemas := openapi3.Schemas{
		"PropValue":               openapi3.NewSchemaRef("", propValueSchema()),
		"Color":                   openapi3.NewSchemaRef("", colorSchema()),
		"ActionRef":               openapi3.NewSchemaRef("", actionRefSchema()),
		"Lambda":                  openapi3.NewSchemaRef("", lambdaSchema()),
		"AccessibilityAttributes": openapi3.NewSchemaRef("", accessibilitySchema()),
		"SurfaceNode":             openapi3.NewSchemaRef("", surfaceNodeSchema(reg.Names())),
		"Surface":                 openapi3.NewSchemaRef("", surfaceSchema()),
	}

	for _, name := range reg.Names() {
		def, err := reg.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("openapi: export %s: %w", name, err)
		}
		if _, taken := schemas[name]; taken {
			return nil, fmt.Errorf("openapi: component %q collides with a shared schema name", name)
		}
		schemas[name] = openapi3.NewSchemaRef("", componentSchema(def))
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       cfg.title,
			Version:     cfg.version,
			Description: fmt.Sprintf("Declarative surface components (%d registered).", reg.Len()),
		},
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: schemas},
	}
	return doc, nil
}

// ExportJSON renders the document as indented JSON. Schema names marshal
// sorted, so output is stable across runs.
func ExportJSON(reg *registry.Registry, opts ...Option) ([]byte, error) {
	doc, err := Export(reg, opts...)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi: marshal document: %w", err)
	}
	return data, nil
}

func schemaRef(name string) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, nil)
}

// propValueSchema covers every wire form a prop value can take. Null is legal
// for the nil variant, so the union itself is nullable.
func propValueSchema() *openapi3.Schema {
	record := openapi3.NewObjectSchema()
	record.AdditionalProperties = openapi3.AdditionalProperties{Schema: schemaRef("PropValue")}

	list := openapi3.NewArraySchema()
	list.Items = schemaRef("PropValue")

	schema := &openapi3.Schema{
		Description: "A surface prop value in wire form.",
		Nullable:    true,
		OneOf: openapi3.SchemaRefs{
			openapi3.NewSchemaRef("", openapi3.NewStringSchema()),
			openapi3.NewSchemaRef("", openapi3.NewFloat64Schema()),
			openapi3.NewSchemaRef("", openapi3.NewBoolSchema()),
			schemaRef("Color"),
			schemaRef("ActionRef"),
			schemaRef("Lambda"),
			openapi3.NewSchemaRef("", list),
			openapi3.NewSchemaRef("", record),
		},
	}
	return schema
}

func colorSchema() *openapi3.Schema {
	channel := func() *openapi3.Schema {
		return openapi3.NewFloat64Schema().WithMin(0).WithMax(1)
	}
	schema := openapi3.NewObjectSchema().
		WithProperty("r", channel()).
		WithProperty("g", channel()).
		WithProperty("b", channel()).
		WithProperty("a", channel())
	schema.Required = []string{"r", "g", "b", "a"}
	schema.Description = "RGBA color, each channel in [0, 1]."
	return withoutExtraProps(schema)
}

func actionRefSchema() *openapi3.Schema {
	args := openapi3.NewArraySchema()
	args.Items = schemaRef("PropValue")

	schema := openapi3.NewObjectSchema().
		WithProperty("__action", openapi3.NewStringSchema())
	schema.Properties["__args"] = openapi3.NewSchemaRef("", args)
	schema.Required = []string{"__action"}
	schema.Description = "Reference to a named host-side action handler."
	return withoutExtraProps(schema)
}

func lambdaSchema() *openapi3.Schema {
	id := openapi3.NewIntegerSchema().WithMin(0).WithMax(float64(math.MaxUint32))
	schema := openapi3.NewObjectSchema().WithProperty("__lambda", id)
	schema.Required = []string{"__lambda"}
	schema.Description = "Opaque host-side callback slot."
	return withoutExtraProps(schema)
}

func accessibilitySchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty("label", openapi3.NewStringSchema()).
		WithProperty("role", openapi3.NewStringSchema()).
		WithProperty("value", openapi3.NewStringSchema()).
		WithProperty("hint", openapi3.NewStringSchema()).
		WithProperty("live_region", openapi3.NewStringSchema().
			WithEnum("polite", "assertive"))
	schema.Description = "Assistive-technology attributes attached to a node."
	return withoutExtraProps(schema)
}

func surfaceNodeSchema(names []string) *openapi3.Schema {
	nodeType := openapi3.NewStringSchema()
	nodeType.Enum = stringEnum(names)

	propsSchema := openapi3.NewObjectSchema()
	propsSchema.AdditionalProperties = openapi3.AdditionalProperties{Schema: schemaRef("PropValue")}

	children := openapi3.NewArraySchema()
	children.Items = schemaRef("SurfaceNode")

	schema := openapi3.NewObjectSchema().WithProperty("type", nodeType)
	schema.Properties["props"] = openapi3.NewSchemaRef("", propsSchema)
	schema.Properties["children"] = openapi3.NewSchemaRef("", children)
	schema.Required = []string{"type", "props", "children"}
	schema.Description = "One element of a surface tree."
	return withoutExtraProps(schema)
}

func surfaceSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Properties = openapi3.Schemas{"root": schemaRef("SurfaceNode")}
	schema.Required = []string{"root"}
	schema.Description = "A complete serialized surface."
	return withoutExtraProps(schema)
}

// componentSchema narrows SurfaceNode for one component: fixed type, the
// declared prop set, and the child policy expressed as array bounds.
func componentSchema(def *registry.Definition) *openapi3.Schema {
	nodeType := openapi3.NewStringSchema().WithEnum(def.Name)

	propsSchema := openapi3.NewObjectSchema()
	for _, spec := range def.Props {
		propsSchema.Properties[spec.Name] = propSchema(spec)
	}
	propsSchema.Required = def.RequiredProps()
	withoutExtraProps(propsSchema)

	children := openapi3.NewArraySchema()
	children.Items = schemaRef("SurfaceNode")
	switch def.Children {
	case registry.ChildrenNone:
		children.WithMaxItems(0)
	case registry.ChildrenRequired:
		children.WithMinItems(1)
	}

	schema := openapi3.NewObjectSchema().WithProperty("type", nodeType)
	schema.Properties["props"] = openapi3.NewSchemaRef("", propsSchema)
	schema.Properties["children"] = openapi3.NewSchemaRef("", children)
	schema.Required = []string{"type", "props", "children"}
	schema.Description = fmt.Sprintf("%s component (%s).", def.Name, def.Category)
	return withoutExtraProps(schema)
}

func propSchema(spec registry.PropSpec) *openapi3.SchemaRef {
	switch spec.Kind {
	case registry.KindString:
		return openapi3.NewSchemaRef("", openapi3.NewStringSchema())
	case registry.KindNumber:
		number := openapi3.NewFloat64Schema()
		if spec.Clamp != nil {
			number.WithMin(spec.Clamp.Min).WithMax(spec.Clamp.Max)
		}
		if def, ok := defaultValue(spec.Default); ok {
			number.WithDefault(def)
		}
		return openapi3.NewSchemaRef("", number)
	case registry.KindBool:
		return openapi3.NewSchemaRef("", openapi3.NewBoolSchema())
	case registry.KindColor:
		return schemaRef("Color")
	case registry.KindAction:
		return schemaRef("ActionRef")
	case registry.KindLambda:
		return schemaRef("Lambda")
	case registry.KindCallback:
		return openapi3.NewSchemaRef("", &openapi3.Schema{
			OneOf: openapi3.SchemaRefs{schemaRef("ActionRef"), schemaRef("Lambda")},
		})
	case registry.KindList:
		list := openapi3.NewArraySchema()
		list.Items = schemaRef("PropValue")
		return openapi3.NewSchemaRef("", list)
	case registry.KindRecord:
		if spec.Name == "accessible" {
			return schemaRef("AccessibilityAttributes")
		}
		record := openapi3.NewObjectSchema()
		record.AdditionalProperties = openapi3.AdditionalProperties{Schema: schemaRef("PropValue")}
		return openapi3.NewSchemaRef("", record)
	case registry.KindEnum:
		enum := openapi3.NewStringSchema()
		enum.Enum = stringEnum(spec.Enum)
		if def, ok := defaultValue(spec.Default); ok {
			enum.WithDefault(def)
		}
		return openapi3.NewSchemaRef("", enum)
	case registry.KindAlignment:
		enum := openapi3.NewStringSchema()
		enum.Enum = stringEnum([]string{
			string(props.AlignStart),
			string(props.AlignCenter),
			string(props.AlignEnd),
			string(props.AlignStretch),
			string(props.AlignSpaceBetween),
			string(props.AlignSpaceAround),
		})
		return openapi3.NewSchemaRef("", enum)
	case registry.KindEdges:
		side := func() *openapi3.Schema { return openapi3.NewFloat64Schema() }
		sides := openapi3.NewObjectSchema().
			WithProperty("top", side()).
			WithProperty("bottom", side()).
			WithProperty("start", side()).
			WithProperty("end", side())
		sides.Required = []string{"top", "bottom", "start", "end"}
		withoutExtraProps(sides)
		return openapi3.NewSchemaRef("", &openapi3.Schema{
			OneOf: openapi3.SchemaRefs{
				openapi3.NewSchemaRef("", openapi3.NewFloat64Schema()),
				openapi3.NewSchemaRef("", sides),
			},
		})
	}
	return schemaRef("PropValue")
}

func withoutExtraProps(schema *openapi3.Schema) *openapi3.Schema {
	allow := false
	schema.AdditionalProperties = openapi3.AdditionalProperties{Has: &allow}
	return schema
}

func stringEnum(values []string) []any {
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = v
	}
	return enum
}

func defaultValue(value props.Value) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case props.String:
		return string(v), true
	case props.Number:
		return float64(v), true
	case props.Bool:
		return bool(v), true
	}
	return nil, false
}
