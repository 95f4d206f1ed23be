// Package encode defines the encoder contract surfaces pass through on the
// way out of the pipeline. An encoder turns a finished surface into bytes for
// one output medium; the registry stores encoders by name for discovery and
// injection.
package encode

import (
	"context"

	"github.com/goliatone/go-surface/pkg/tree"
)

// Encoder converts a surface into a byte representation (canonical JSON, a
// terminal tree, etc.).
type Encoder interface {
	Name() string
	ContentType() string
	Encode(ctx context.Context, surface *tree.Surface, options Options) ([]byte, error)
}

// Options describe per-request output knobs encoders can honor without
// changing the surface itself.
type Options struct {
	// Indent pretty-prints structured output using the given unit. Empty
	// means compact output.
	Indent string
	// Width caps line width for text-oriented encoders. Zero means the
	// encoder's default.
	Width int
	// NoColor strips ANSI styling from terminal output.
	NoColor bool
}
