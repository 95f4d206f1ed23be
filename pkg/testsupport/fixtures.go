package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-surface/pkg/builder"
	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/tree"
)

// LoadSurface reads a serialized surface fixture. Testing helpers fail the
// test on error to keep contract tests concise.
func LoadSurface(t *testing.T, path string) *tree.Surface {
	t.Helper()

	surface, err := LoadSurfaceFromPath(path)
	if err != nil {
		t.Fatalf("load surface: %v", err)
	}
	return surface
}

// LoadSurfaceFromPath returns a Surface without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadSurfaceFromPath(path string) (*tree.Surface, error) {
	if path == "" {
		return nil, errors.New("testsupport: surface path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read surface: %w", err)
	}
	surface, err := tree.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: decode surface: %w", err)
	}
	return surface, nil
}

// SampleSurface builds a small three-node surface: a column holding a title
// and a confirm button.
func SampleSurface(t *testing.T) *tree.Surface {
	t.Helper()

	root := builder.Column().
		Spacing(12).
		Padding(props.UniformEdges(16)).
		Children(
			builder.NewText("Welcome").Size(builder.TextTitle).Build(),
			builder.NewButton("Continue", props.NewAction("continue")).Build(),
		).
		Build()

	surface, err := builder.New().Surface(root)
	if err != nil {
		t.Fatalf("sample surface: %v", err)
	}
	return surface
}

// DashboardSurface builds a surface touching every builtin component and
// every prop value variant, for serialization and documentation tests.
func DashboardSurface(t *testing.T) *tree.Surface {
	t.Helper()

	list := builder.NewScrollList(
		props.List{props.String("alpha"), props.String("beta"), props.String("gamma")},
		props.Lambda(0),
		props.Lambda(1),
	).OnReorder(props.Lambda(2)).Dividers(true).Build()

	root := builder.Column().
		Spacing(16).
		Align(props.AlignStretch).
		Padding(props.SideEdges(24, 24, 16, 16)).
		Children(
			builder.NewText("Deploy status").
				Size(builder.TextHeading).
				Weight(builder.WeightBold).
				Color(props.RGB(0.13, 0.13, 0.13)).
				Build(),
			builder.NewProgressBar(0.62).
				Color(props.RGB(0.22, 0.66, 0.3)).
				Background(props.RGBA(0, 0, 0, 0.08)).
				Height(6).
				Build(),
			builder.NewTextInput("", props.Lambda(3)).
				Placeholder("Filter services").
				Keyboard(builder.KeyboardText).
				Build(),
			builder.Scroll().Direction(builder.ScrollVertical).Child(list).Build(),
			builder.Row().
				Spacing(8).
				Align(props.AlignEnd).
				Children(
					builder.NewButton("Rollback", props.NewAction("rollback", props.String("v41"))).
						Variant(builder.VariantOutlined).
						Build(),
					builder.NewButton("Deploy", props.NewAction("deploy")).
						Variant(builder.VariantFilled).
						Accessible(props.Record{"hint": props.String("Starts the rollout")}).
						Build(),
				).
				Build(),
			builder.NewModal(false, props.NewAction("close_help")).
				Title("Help").
				Child(builder.NewText("Pick a service to see its rollout history.").Build()).
				Build(),
			builder.NewToast("Rollout finished").Duration(4000).Type(builder.ToastSuccess).Build(),
		).
		Build()

	surface, err := builder.New().Surface(root)
	if err != nil {
		t.Fatalf("dashboard surface: %v", err)
	}
	return surface
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// WriteGolden writes a JSON golden for an arbitrary value when UPDATE_GOLDENS
// is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// an encoder returns and writes the same payload without duplicating buffer
// setup.
func CaptureOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("capture output: %v", err)
	}

	return out, buf.String()
}
