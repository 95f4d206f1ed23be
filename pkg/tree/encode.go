package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON writes props as a JSON object in slice order. Key escaping and
// value rendering delegate to encoding/json; ordering never does.
func (p Props) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, prop := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(prop.Key)
		if err != nil {
			return nil, fmt.Errorf("tree: prop key %q: %w", prop.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		if prop.Value == nil {
			buf.WriteString("null")
			continue
		}
		val, err := prop.Value.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("tree: prop %q: %w", prop.Key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON writes the frozen node shape: type, props, children, always all
// three keys.
func (n Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	nodeType, err := json.Marshal(n.Type)
	if err != nil {
		return nil, fmt.Errorf("tree: node type: %w", err)
	}
	buf.Write(nodeType)

	buf.WriteString(`,"props":`)
	propsRaw, err := n.Props.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf.Write(propsRaw)

	buf.WriteString(`,"children":[`)
	for i := range n.Children {
		if i > 0 {
			buf.WriteByte(',')
		}
		child, err := n.Children[i].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(child)
	}
	buf.WriteString(`]}`)
	return buf.Bytes(), nil
}

// MarshalJSON writes the root wrapper.
func (s Surface) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Root Node `json:"root"`
	}{s.Root})
}

// Encode returns the canonical wire bytes for the surface.
func (s *Surface) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// EncodeIndent returns indented wire bytes. Key order matches Encode.
func (s *Surface) EncodeIndent(prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(s, prefix, indent)
}
