// Package compose assembles surfaces through an interactive prompt session.
// Every answer flows through the normal build path, so a completed session
// always yields a validated, accessibility-decorated tree inside the render
// budget.
package compose

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-surface/pkg/builder"
	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/registry"
	"github.com/goliatone/go-surface/pkg/tree"
)

// skipChoice is prepended to optional select prompts so the prop can be
// left unset.
const skipChoice = "(skip)"

// Option configures a Composer.
type Option func(*Composer)

// WithDriver overrides the prompt driver.
func WithDriver(driver PromptDriver) Option {
	return func(c *Composer) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// WithRegistry composes against reg instead of the default registry.
// Ignored when WithBuilder is also given; the builder's registry wins.
func WithRegistry(reg *registry.Registry) Option {
	return func(c *Composer) {
		if reg != nil {
			c.reg = reg
		}
	}
}

// WithBuilder assembles nodes through b, adopting its registry and budget.
func WithBuilder(b *builder.Builder) Option {
	return func(c *Composer) {
		if b != nil {
			c.builder = b
		}
	}
}

// Composer drives an interactive session that assembles a surface one
// component at a time.
type Composer struct {
	driver  PromptDriver
	reg     *registry.Registry
	builder *builder.Builder
}

// New constructs a Composer. Defaults: survey-backed prompts against the
// default registry and budget.
func New(opts ...Option) *Composer {
	c := &Composer{}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.builder == nil {
		if c.reg != nil {
			c.builder = builder.New(builder.WithRegistry(c.reg))
		} else {
			c.builder = builder.New()
		}
	}
	c.reg = c.builder.Registry()
	if c.driver == nil {
		c.driver = newSurveyDriver()
	}
	return c
}

// Run prompts for a complete surface and returns it budget-checked.
func (c *Composer) Run(ctx context.Context) (*tree.Surface, error) {
	root, err := c.composeNode(ctx)
	if err != nil {
		return nil, err
	}
	return c.builder.Surface(root)
}

// composeNode selects a component and collects it, recursing for children.
func (c *Composer) composeNode(ctx context.Context) (tree.Node, error) {
	names := c.reg.Names()
	idx, err := c.driver.Select(ctx, SelectConfig{
		Message: "Component",
		Options: names,
	})
	if err != nil {
		return tree.Node{}, err
	}
	if idx < 0 || idx >= len(names) {
		return tree.Node{}, fmt.Errorf("compose: invalid component selection %d", idx)
	}
	return c.composeComponent(ctx, names[idx])
}

func (c *Composer) composeComponent(ctx context.Context, name string) (tree.Node, error) {
	def, err := c.reg.Lookup(name)
	if err != nil {
		return tree.Node{}, err
	}

	raw := make(map[string]props.Value, len(def.Props))
	for _, spec := range def.Props {
		// Attached automatically by the build path.
		if spec.Name == "accessible" {
			continue
		}
		value, set, err := c.promptProp(ctx, def.Name, spec)
		if err != nil {
			return tree.Node{}, err
		}
		if set {
			raw[spec.Name] = value
		}
	}

	var children []tree.Node
	if def.AcceptsChildren() {
		children, err = c.composeChildren(ctx, def)
		if err != nil {
			return tree.Node{}, err
		}
	}

	return c.builder.Build(def.Name, raw, children...)
}

func (c *Composer) composeChildren(ctx context.Context, def *registry.Definition) ([]tree.Node, error) {
	var children []tree.Node
	for {
		if len(children) == 0 && def.Children == registry.ChildrenRequired {
			if err := c.driver.Info(ctx, fmt.Sprintf("%s needs at least one child", def.Name)); err != nil {
				return nil, err
			}
		} else {
			msg := fmt.Sprintf("Add a child to %s?", def.Name)
			if len(children) > 0 {
				msg = "Add another child?"
			}
			more, err := c.driver.Confirm(ctx, ConfirmConfig{Message: msg})
			if err != nil {
				return nil, err
			}
			if !more {
				break
			}
		}
		child, err := c.composeNode(ctx)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

// promptProp collects one prop value. The second return reports whether the
// prop was set; optional props may be skipped.
func (c *Composer) promptProp(ctx context.Context, component string, spec registry.PropSpec) (props.Value, bool, error) {
	label := component + "." + spec.Name
	switch spec.Kind {
	case registry.KindString:
		return c.promptString(ctx, label, spec)
	case registry.KindNumber:
		return c.promptNumber(ctx, label, spec)
	case registry.KindBool:
		return c.promptBool(ctx, label, spec)
	case registry.KindEnum:
		return c.promptChoice(ctx, label, spec, spec.Enum)
	case registry.KindAlignment:
		return c.promptChoice(ctx, label, spec, alignmentChoices())
	case registry.KindColor:
		return c.promptColor(ctx, label, spec)
	case registry.KindAction:
		return c.promptAction(ctx, label, spec)
	case registry.KindLambda:
		return c.promptLambda(ctx, label, spec)
	case registry.KindCallback:
		return c.promptCallback(ctx, label, spec)
	case registry.KindList:
		return c.promptList(ctx, label, spec)
	case registry.KindEdges:
		return c.promptEdges(ctx, label, spec)
	}
	// Free-form records have no interactive representation.
	return nil, false, nil
}

func (c *Composer) promptString(ctx context.Context, label string, spec registry.PropSpec) (props.Value, bool, error) {
	out, err := c.driver.Input(ctx, InputConfig{
		Message: label,
		Default: defaultText(spec),
	})
	if err != nil {
		return nil, false, err
	}
	if !spec.Required && out == "" {
		return nil, false, nil
	}
	return props.String(out), true, nil
}

func (c *Composer) promptNumber(ctx context.Context, label string, spec registry.PropSpec) (props.Value, bool, error) {
	out, err := c.driver.Input(ctx, InputConfig{
		Message:   label,
		Default:   defaultText(spec),
		Validator: numberValidator(spec.Required),
	})
	if err != nil {
		return nil, false, err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, false, nil
	}
	f, err := strconv.ParseFloat(out, 64)
	if err != nil {
		return nil, false, fmt.Errorf("compose: %s: %w", label, err)
	}
	return props.Number(f), true, nil
}

func (c *Composer) promptBool(ctx context.Context, label string, spec registry.PropSpec) (props.Value, bool, error) {
	def := false
	if b, ok := spec.Default.(props.Bool); ok {
		def = bool(b)
	}
	out, err := c.driver.Confirm(ctx, ConfirmConfig{
		Message: label,
		Default: def,
	})
	if err != nil {
		return nil, false, err
	}
	return props.Bool(out), true, nil
}

func (c *Composer) promptChoice(ctx context.Context, label string, spec registry.PropSpec, choices []string) (props.Value, bool, error) {
	defaultIdx := -1
	if s, ok := spec.Default.(props.String); ok {
		defaultIdx = indexOf(choices, string(s))
	}

	options := choices
	if !spec.Required {
		options = append([]string{skipChoice}, choices...)
		if defaultIdx >= 0 {
			defaultIdx++
		} else {
			defaultIdx = 0
		}
	}

	idx, err := c.driver.Select(ctx, SelectConfig{
		Message:      label,
		Options:      options,
		DefaultIndex: defaultIdx,
	})
	if err != nil {
		return nil, false, err
	}
	if idx < 0 || idx >= len(options) {
		return nil, false, fmt.Errorf("compose: invalid selection for %s", label)
	}
	choice := options[idx]
	if !spec.Required && choice == skipChoice {
		return nil, false, nil
	}
	return props.String(choice), true, nil
}

func (c *Composer) promptColor(ctx context.Context, label string, spec registry.PropSpec) (props.Value, bool, error) {
	out, err := c.driver.Input(ctx, InputConfig{
		Message:   label,
		Help:      "Components in [0,1] as r,g,b or r,g,b,a",
		Validator: colorValidator(spec.Required),
	})
	if err != nil {
		return nil, false, err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, false, nil
	}
	color, err := parseColor(out)
	if err != nil {
		return nil, false, fmt.Errorf("compose: %s: %w", label, err)
	}
	return color, true, nil
}

func (c *Composer) promptAction(ctx context.Context, label string, spec registry.PropSpec) (props.Value, bool, error) {
	cfg := InputConfig{
		Message: label,
		Help:    "Name of a handler registered with the host",
	}
	if spec.Required {
		cfg.Validator = requireAnswer
	}
	out, err := c.driver.Input(ctx, cfg)
	if err != nil {
		return nil, false, err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, false, nil
	}
	return props.NewAction(out), true, nil
}

func (c *Composer) promptLambda(ctx context.Context, label string, spec registry.PropSpec) (props.Value, bool, error) {
	out, err := c.driver.Input(ctx, InputConfig{
		Message:   label,
		Help:      "Lambda table id",
		Validator: lambdaValidator(spec.Required),
	})
	if err != nil {
		return nil, false, err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, false, nil
	}
	id, err := strconv.ParseUint(out, 10, 32)
	if err != nil {
		return nil, false, fmt.Errorf("compose: %s: %w", label, err)
	}
	return props.Lambda(uint32(id)), true, nil
}

func (c *Composer) promptCallback(ctx context.Context, label string, spec registry.PropSpec) (props.Value, bool, error) {
	options := []string{"action", "lambda"}
	if !spec.Required {
		options = append([]string{skipChoice}, options...)
	}
	idx, err := c.driver.Select(ctx, SelectConfig{
		Message: label + " handler",
		Options: options,
	})
	if err != nil {
		return nil, false, err
	}
	if idx < 0 || idx >= len(options) {
		return nil, false, fmt.Errorf("compose: invalid selection for %s", label)
	}

	// Once a handler kind is chosen the value must materialize.
	forced := spec
	forced.Required = true

	switch options[idx] {
	case skipChoice:
		return nil, false, nil
	case "lambda":
		return c.promptLambda(ctx, label, forced)
	default:
		return c.promptAction(ctx, label, forced)
	}
}

func (c *Composer) promptList(ctx context.Context, label string, spec registry.PropSpec) (props.Value, bool, error) {
	cfg := InputConfig{
		Message: label,
		Help:    "Comma separated values",
	}
	if spec.Required {
		cfg.Validator = requireAnswer
	}
	out, err := c.driver.Input(ctx, cfg)
	if err != nil {
		return nil, false, err
	}
	if strings.TrimSpace(out) == "" {
		return nil, false, nil
	}
	parts := strings.Split(out, ",")
	list := make(props.List, 0, len(parts))
	for _, part := range parts {
		list = append(list, props.String(strings.TrimSpace(part)))
	}
	return list, true, nil
}

func (c *Composer) promptEdges(ctx context.Context, label string, spec registry.PropSpec) (props.Value, bool, error) {
	out, err := c.driver.Input(ctx, InputConfig{
		Message:   label,
		Help:      "Uniform edge size",
		Validator: numberValidator(spec.Required),
	})
	if err != nil {
		return nil, false, err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, false, nil
	}
	f, err := strconv.ParseFloat(out, 64)
	if err != nil {
		return nil, false, fmt.Errorf("compose: %s: %w", label, err)
	}
	return props.UniformEdges(f).Value(), true, nil
}

func defaultText(spec registry.PropSpec) string {
	switch v := spec.Default.(type) {
	case props.String:
		return string(v)
	case props.Number:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	}
	return ""
}

func alignmentChoices() []string {
	aligns := props.Alignments()
	names := make([]string, len(aligns))
	for i, a := range aligns {
		names[i] = string(a)
	}
	return names
}

func requireAnswer(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("a value is required")
	}
	return nil
}

func numberValidator(required bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			if required {
				return errors.New("a number is required")
			}
			return nil
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return errors.New("enter a number")
		}
		return nil
	}
}

func lambdaValidator(required bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			if required {
				return errors.New("a lambda id is required")
			}
			return nil
		}
		if _, err := strconv.ParseUint(s, 10, 32); err != nil {
			return errors.New("enter a non-negative integer")
		}
		return nil
	}
}

func colorValidator(required bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			if required {
				return errors.New("a color is required")
			}
			return nil
		}
		_, err := parseColor(s)
		return err
	}
}

func parseColor(s string) (props.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return props.Color{}, errors.New("expected r,g,b or r,g,b,a")
	}
	vals := make([]float64, len(parts))
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return props.Color{}, errors.New("expected r,g,b or r,g,b,a")
		}
		vals[i] = f
	}
	if len(vals) == 3 {
		return props.RGB(vals[0], vals[1], vals[2]), nil
	}
	return props.RGBA(vals[0], vals[1], vals[2], vals[3]), nil
}
