// Package term renders surfaces as an annotated tree for terminal
// inspection. The output is a preview aid for CLI workflows, not a wire
// format; hosts never consume it.
package term

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/goliatone/go-surface/pkg/encode"
	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/tree"
)

var (
	typeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Encoder renders a surface as a branch-drawn tree, one node per line with
// its props inline.
type Encoder struct{}

// New constructs the terminal encoder.
func New() *Encoder {
	return &Encoder{}
}

func (e *Encoder) Name() string {
	return "term"
}

func (e *Encoder) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Encode renders the tree. NoColor strips styling; Width truncates lines,
// ANSI-aware, when positive.
func (e *Encoder) Encode(_ context.Context, surface *tree.Surface, options encode.Options) ([]byte, error) {
	if surface == nil {
		return nil, fmt.Errorf("term encoder: surface is nil")
	}

	p := palette{colored: !options.NoColor}
	var sb strings.Builder
	writeNode(&sb, &surface.Root, "", "", p, options.Width)
	return []byte(sb.String()), nil
}

type palette struct {
	colored bool
}

func (p palette) typ(s string) string {
	if !p.colored {
		return s
	}
	return typeStyle.Render(s)
}

func (p palette) key(s string) string {
	if !p.colored {
		return s
	}
	return keyStyle.Render(s)
}

func (p palette) value(s string) string {
	if !p.colored {
		return s
	}
	return valueStyle.Render(s)
}

func (p palette) branch(s string) string {
	if !p.colored {
		return s
	}
	return branchStyle.Render(s)
}

func writeNode(sb *strings.Builder, node *tree.Node, branch, childPrefix string, p palette, width int) {
	line := branch + p.typ(node.Type)
	for _, prop := range node.Props {
		line += " " + p.key(prop.Key) + "=" + p.value(formatValue(prop.Value))
	}
	if width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	sb.WriteString(line)
	sb.WriteString("\n")

	for i := range node.Children {
		if i == len(node.Children)-1 {
			writeNode(sb, &node.Children[i], childPrefix+p.branch("└── "), childPrefix+"    ", p, width)
		} else {
			writeNode(sb, &node.Children[i], childPrefix+p.branch("├── "), childPrefix+p.branch("│")+"   ", p, width)
		}
	}
}

// formatValue renders a prop value on a single line. The notation favors
// reading over parseability: actions show as @name(args), lambdas as slot
// references, colors as hex.
func formatValue(v props.Value) string {
	switch t := v.(type) {
	case nil, props.Nil:
		return "nil"
	case props.String:
		return strconv.Quote(string(t))
	case props.Number:
		return strconv.FormatFloat(float64(t), 'g', -1, 64)
	case props.Bool:
		return strconv.FormatBool(bool(t))
	case props.Color:
		return formatColor(t)
	case props.Action:
		if len(t.Args) == 0 {
			return "@" + t.Name
		}
		args := make([]string, len(t.Args))
		for i, arg := range t.Args {
			args[i] = formatValue(arg)
		}
		return "@" + t.Name + "(" + strings.Join(args, ", ") + ")"
	case props.Lambda:
		return "fn#" + strconv.FormatUint(uint64(t), 10)
	case props.List:
		items := make([]string, len(t))
		for i, item := range t {
			items[i] = formatValue(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case props.Record:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		fields := make([]string, len(keys))
		for i, key := range keys {
			fields[i] = key + ": " + formatValue(t[key])
		}
		return "{" + strings.Join(fields, ", ") + "}"
	}
	return fmt.Sprintf("%v", v)
}

func formatColor(c props.Color) string {
	hex := fmt.Sprintf("#%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B))
	if c.A < 1 {
		hex += fmt.Sprintf("%02X", channel(c.A))
	}
	return hex
}

func channel(f float64) uint8 {
	return uint8(math.Round(f * 255))
}
