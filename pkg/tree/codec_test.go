package tree_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-surface/pkg/props"
	"github.com/goliatone/go-surface/pkg/tree"
)

func buildWireSample() *tree.Surface {
	text := tree.NewNode("Text")
	text.Set("value", props.String("Hello"))
	text.Set("color", props.Color{R: 1, G: 0, B: 0, A: 1})

	button := tree.NewNode("Button")
	button.Set("label", props.String("Save"))
	button.Set("on_tap", props.NewAction("save", props.Number(1)))

	list := tree.NewNode("ScrollList")
	list.Set("items", props.List{props.String("a"), props.String("b")})
	list.Set("render", props.Lambda(3))
	list.Set("key", props.Lambda(4))
	list.Set("meta", props.Record{"z": props.Number(26), "a": props.Number(1)})
	list.Set("empty", props.Nil{})
	list.Set("dividers", props.Bool(true))

	root := tree.NewNode("Column")
	root.Set("spacing", props.Number(8))
	root.Add(text, button, list)
	return tree.NewSurface(root)
}

func TestNodeWireShape(t *testing.T) {
	node := tree.NewNode("Text")
	raw, err := node.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"Text","props":{},"children":[]}`
	if string(raw) != want {
		t.Fatalf("expected %s, got %s", want, raw)
	}
}

func TestPropsSerializeInSetOrder(t *testing.T) {
	node := tree.NewNode("Text")
	node.Set("value", props.String("x"))
	node.Set("align", props.String("center"))
	node.Set("color", props.RGB(0, 0, 0))

	raw, err := node.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"Text","props":{"value":"x","align":"center","color":{"r":0,"g":0,"b":0,"a":1}},"children":[]}`
	if string(raw) != want {
		t.Fatalf("expected set-order props, got %s", raw)
	}
}

func TestSurfaceEncodeWrapsRoot(t *testing.T) {
	s := tree.NewSurface(tree.NewNode("Toast"))
	raw, err := s.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"root":{"type":"Toast","props":{},"children":[]}}`
	if string(raw) != want {
		t.Fatalf("expected %s, got %s", want, raw)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	s := buildWireSample()
	first, err := s.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for i := 0; i < 100; i++ {
		got, err := s.Encode()
		if err != nil {
			t.Fatalf("encode iteration %d: %v", i, err)
		}
		if !bytes.Equal(first, got) {
			t.Fatalf("iteration %d produced different bytes:\n%s\n%s", i, first, got)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := buildWireSample()
	raw, err := s.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	back, err := tree.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(s, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	again, err := back.Encode()
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(raw, again) {
		t.Fatalf("re-encoded bytes differ:\n%s\n%s", raw, again)
	}
}

func TestEncodeIndentKeepsOrder(t *testing.T) {
	node := tree.NewNode("Text")
	node.Set("value", props.String("x"))
	node.Set("size", props.String("body"))
	s := tree.NewSurface(node)

	raw, err := s.EncodeIndent("", "  ")
	if err != nil {
		t.Fatalf("encode indent: %v", err)
	}
	valueAt := bytes.Index(raw, []byte(`"value"`))
	sizeAt := bytes.Index(raw, []byte(`"size"`))
	if valueAt == -1 || sizeAt == -1 || valueAt > sizeAt {
		t.Fatalf("expected value before size, got:\n%s", raw)
	}
}

func TestDecodeRejectsUnknownNodeKey(t *testing.T) {
	_, err := tree.Decode([]byte(`{"root":{"type":"Text","props":{},"children":[],"style":{}}}`))
	if err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestDecodeRejectsMissingRoot(t *testing.T) {
	var s tree.Surface
	if err := s.UnmarshalJSON([]byte(`{}`)); err == nil {
		t.Fatalf("expected missing root error")
	}
}

func TestDecodePreservesPropOrder(t *testing.T) {
	raw := []byte(`{"root":{"type":"Text","props":{"value":"x","size":"body","weight":"bold"},"children":[]}}`)
	s, err := tree.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	keys := s.Root.Props.Keys()
	want := []string{"value", "size", "weight"}
	for i, key := range want {
		if keys[i] != key {
			t.Fatalf("expected key %q at %d, got %q", key, i, keys[i])
		}
	}
}
