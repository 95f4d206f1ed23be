package builder

import (
	"math"

	"github.com/goliatone/go-surface/pkg/accessibility"
	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/tree"
)

// TextSize names the typographic scale steps.
type TextSize string

const (
	TextSmall   TextSize = "small"
	TextBody    TextSize = "body"
	TextTitle   TextSize = "title"
	TextHeading TextSize = "heading"
	TextDisplay TextSize = "display"
)

// TextWeight names the font weights.
type TextWeight string

const (
	WeightNormal TextWeight = "normal"
	WeightMedium TextWeight = "medium"
	WeightBold   TextWeight = "bold"
)

// TextAlign names the horizontal text alignments.
type TextAlign string

const (
	TextAlignStart  TextAlign = "start"
	TextAlignCenter TextAlign = "center"
	TextAlignEnd    TextAlign = "end"
)

// TextOverflow names the overflow strategies.
type TextOverflow string

const (
	OverflowClip     TextOverflow = "clip"
	OverflowEllipsis TextOverflow = "ellipsis"
	OverflowWrap     TextOverflow = "wrap"
)

// TextBuilder assembles a text element.
type TextBuilder struct {
	value      string
	size       *TextSize
	weight     *TextWeight
	color      *props.Color
	align      *TextAlign
	maxLines   *float64
	overflow   *TextOverflow
	accessible props.Record
}

// NewText starts a text element with its content.
func NewText(value string) *TextBuilder {
	return &TextBuilder{value: value}
}

// Size sets the typographic scale step.
func (b *TextBuilder) Size(s TextSize) *TextBuilder {
	b.size = &s
	return b
}

// Weight sets the font weight.
func (b *TextBuilder) Weight(w TextWeight) *TextBuilder {
	b.weight = &w
	return b
}

// Color sets the text color.
func (b *TextBuilder) Color(c props.Color) *TextBuilder {
	b.color = &c
	return b
}

// Align sets the horizontal alignment.
func (b *TextBuilder) Align(a TextAlign) *TextBuilder {
	b.align = &a
	return b
}

// MaxLines caps the number of rendered lines.
func (b *TextBuilder) MaxLines(n float64) *TextBuilder {
	b.maxLines = &n
	return b
}

// Overflow sets the overflow strategy.
func (b *TextBuilder) Overflow(o TextOverflow) *TextBuilder {
	b.overflow = &o
	return b
}

// Accessible overrides accessibility fields; they merge with the derived
// defaults at build time.
func (b *TextBuilder) Accessible(rec props.Record) *TextBuilder {
	b.accessible = rec
	return b
}

// Build finalizes the text element.
func (b *TextBuilder) Build() tree.Node {
	node := tree.NewNode("Text")
	node.Set("value", props.String(b.value))
	if b.size != nil {
		node.Set("size", props.String(string(*b.size)))
	}
	if b.weight != nil {
		node.Set("weight", props.String(string(*b.weight)))
	}
	if b.color != nil {
		node.Set("color", *b.color)
	}
	if b.align != nil {
		node.Set("align", props.String(string(*b.align)))
	}
	if b.maxLines != nil {
		node.Set("max_lines", props.Number(*b.maxLines))
	}
	if b.overflow != nil {
		node.Set("overflow", props.String(string(*b.overflow)))
	}
	if b.accessible != nil {
		node.Set("accessible", b.accessible)
	}
	accessibility.Ensure(&node)
	return node
}

// ProgressBarBuilder assembles a determinate progress indicator.
type ProgressBarBuilder struct {
	value      float64
	color      *props.Color
	background *props.Color
	height     *float64
	accessible props.Record
}

// NewProgressBar starts a progress bar. Out-of-range values clamp to [0, 1]
// at construction so the node never carries an invalid fraction.
func NewProgressBar(value float64) *ProgressBarBuilder {
	return &ProgressBarBuilder{value: clampFraction(value)}
}

// Color sets the filled-portion color.
func (b *ProgressBarBuilder) Color(c props.Color) *ProgressBarBuilder {
	b.color = &c
	return b
}

// Background sets the track color.
func (b *ProgressBarBuilder) Background(c props.Color) *ProgressBarBuilder {
	b.background = &c
	return b
}

// Height sets the bar height in logical pixels.
func (b *ProgressBarBuilder) Height(px float64) *ProgressBarBuilder {
	b.height = &px
	return b
}

// Accessible overrides accessibility fields; they merge with the derived
// defaults at build time.
func (b *ProgressBarBuilder) Accessible(rec props.Record) *ProgressBarBuilder {
	b.accessible = rec
	return b
}

// Build finalizes the progress bar.
func (b *ProgressBarBuilder) Build() tree.Node {
	node := tree.NewNode("ProgressBar")
	node.Set("value", props.Number(b.value))
	if b.color != nil {
		node.Set("color", *b.color)
	}
	if b.background != nil {
		node.Set("background", *b.background)
	}
	if b.height != nil {
		node.Set("height", props.Number(*b.height))
	}
	if b.accessible != nil {
		node.Set("accessible", b.accessible)
	}
	accessibility.Ensure(&node)
	return node
}

func clampFraction(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
