package document

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-surface/pkg/tree"
)

// Marshal renders a surface as a YAML document that Parse reads back. The
// node tree is reshaped from the wire encoding, so prop order matches the
// serialized form and marshaling the same surface always produces the same
// bytes.
func Marshal(header Header, surface *tree.Surface) ([]byte, error) {
	if surface == nil {
		return nil, errors.New("document: surface is required")
	}
	if err := validateHeader(header); err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}

	wire, err := surface.Encode()
	if err != nil {
		return nil, fmt.Errorf("document: encode surface: %w", err)
	}

	var parsed yaml.Node
	if err := yaml.Unmarshal(wire, &parsed); err != nil {
		return nil, fmt.Errorf("document: reshape surface: %w", err)
	}
	root := wireRoot(&parsed)
	if root == nil {
		return nil, errors.New("document: reshape surface: root missing")
	}
	blockStyle(root)

	var headerNode yaml.Node
	if err := headerNode.Encode(header); err != nil {
		return nil, fmt.Errorf("document: encode header: %w", err)
	}

	doc := yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "surface"},
			&headerNode,
			{Kind: yaml.ScalarNode, Value: "root"},
			root,
		},
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("document: marshal: %w", err)
	}
	return out, nil
}

// Save writes the surface to path as a YAML document.
func Save(path string, header Header, surface *tree.Surface) error {
	data, err := Marshal(header, surface)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("document: write %s: %w", path, err)
	}
	return nil
}

// wireRoot digs the root value out of the decoded wire document.
func wireRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == "root" {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// blockStyle clears the flow styling left over from the JSON parse so the
// emitter produces block YAML. Empty collections keep flow style and render
// as {} and [].
func blockStyle(node *yaml.Node) {
	if node.Kind != yaml.ScalarNode && len(node.Content) == 0 {
		node.Style = yaml.FlowStyle
		return
	}
	node.Style = 0
	for _, child := range node.Content {
		blockStyle(child)
	}
}
