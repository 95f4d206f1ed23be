// Package wire emits the canonical JSON wire form hosts consume. It is the
// default output of the pipeline and the format every golden reference is
// recorded in.
package wire

import (
	"context"
	"fmt"

	"github.com/goliatone/go-surface/pkg/encode"
	"github.com/goliatone/go-surface/pkg/tree"
)

// Encoder serializes surfaces into canonical JSON. Output for a fixed
// surface is byte-identical across calls and process runs.
type Encoder struct{}

// New constructs the wire encoder.
func New() *Encoder {
	return &Encoder{}
}

func (e *Encoder) Name() string {
	return "wire"
}

func (e *Encoder) ContentType() string {
	return "application/json"
}

// Encode serializes the surface. Indent pretty-prints the payload; Width and
// NoColor do not apply to JSON output.
func (e *Encoder) Encode(_ context.Context, surface *tree.Surface, options encode.Options) ([]byte, error) {
	if surface == nil {
		return nil, fmt.Errorf("wire encoder: surface is nil")
	}
	if options.Indent != "" {
		return surface.EncodeIndent("", options.Indent)
	}
	return surface.Encode()
}
