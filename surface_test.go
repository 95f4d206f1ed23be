package surface

import (
	"context"
	"io/fs"
	"strings"
	"testing"
)

func TestBuildAndSerialize(t *testing.T) {
	node, err := Build("Text", map[string]Value{"value": String("Hi")})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	s, err := NewSurface(node)
	if err != nil {
		t.Fatalf("surface: %v", err)
	}

	out, err := Serialize(s)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if want := `{"root":{"type":"Text","props":{"value":"Hi",`; !strings.HasPrefix(string(out), want) {
		t.Fatalf("serialized = %s, want prefix %s", out, want)
	}
}

func TestTypedBuildersCompose(t *testing.T) {
	root := Column().Spacing(12).Children(
		Text("Welcome").Build(),
		Button("Start", ActionRef("start")).Build(),
	).Build()

	s, err := NewSurface(root)
	if err != nil {
		t.Fatalf("surface: %v", err)
	}

	out, err := SerializeIndent(s, "", "  ")
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	for _, want := range []string{`"type": "Column"`, `"value": "Welcome"`, `"__action": "start"`} {
		if !strings.Contains(string(out), want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestGenerateFromBytes(t *testing.T) {
	doc := []byte(`
surface:
  name: toast-demo
  version: 1
root:
  type: Toast
  props:
    message: Saved
`)

	out, err := Generate(context.Background(), SourceFromBytes("toast.yaml", doc), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), `"type":"Toast"`) {
		t.Fatalf("output missing toast node:\n%s", out)
	}
	if !strings.Contains(string(out), `"message":"Saved"`) {
		t.Fatalf("output missing message prop:\n%s", out)
	}
}

func TestValidateReportsDiagnostics(t *testing.T) {
	doc := []byte(`
surface:
  name: bad
  version: 1
root:
  type: Wizard
`)

	list, err := Validate(context.Background(), SourceFromBytes("bad.yaml", doc))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("diagnostics = %v, want one unknown component", list)
	}
	if list[0].Component != "Wizard" {
		t.Fatalf("diagnostic = %+v", list[0])
	}
}

func TestEmbeddedTemplatesContainsComponentPage(t *testing.T) {
	fsys := EmbeddedTemplates()
	data, err := fs.ReadFile(fsys, "templates/component.md.tpl")
	if err != nil {
		t.Fatalf("expected component template to be readable: %v", err)
	}
	if !strings.Contains(string(data), "component.name") {
		t.Fatalf("expected component template to reference the component name")
	}
}
