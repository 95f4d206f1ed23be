package tree

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-surface/pkg/props"
)

// UnmarshalJSON decodes a node from its wire form, preserving prop order. The
// node shape is frozen; unknown keys are rejected.
func (n *Node) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return n.decode(dec)
}

func (n *Node) decode(dec *json.Decoder) error {
	if err := expectDelim(dec, '{', "node"); err != nil {
		return err
	}
	for dec.More() {
		key, err := decodeKey(dec, "node")
		if err != nil {
			return err
		}
		switch key {
		case "type":
			tok, err := dec.Token()
			if err != nil {
				return fmt.Errorf("tree: node type: %w", err)
			}
			s, ok := tok.(string)
			if !ok {
				return fmt.Errorf("tree: node type must be a string")
			}
			n.Type = s
		case "props":
			if err := n.decodeProps(dec); err != nil {
				return err
			}
		case "children":
			if err := n.decodeChildren(dec); err != nil {
				return err
			}
		default:
			return fmt.Errorf("tree: node has unknown key %q", key)
		}
	}
	return consumeDelim(dec, "node")
}

func (n *Node) decodeProps(dec *json.Decoder) error {
	if err := expectDelim(dec, '{', "props"); err != nil {
		return err
	}
	for dec.More() {
		key, err := decodeKey(dec, "props")
		if err != nil {
			return err
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("tree: prop %q: %w", key, err)
		}
		val, err := props.DecodeValue(raw)
		if err != nil {
			return fmt.Errorf("tree: prop %q: %w", key, err)
		}
		n.Props = append(n.Props, Prop{Key: key, Value: val})
	}
	return consumeDelim(dec, "props")
}

func (n *Node) decodeChildren(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("tree: children: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("tree: children must be a list")
	}
	for dec.More() {
		var child Node
		if err := child.decode(dec); err != nil {
			return err
		}
		n.Children = append(n.Children, child)
	}
	return consumeDelim(dec, "children")
}

// UnmarshalJSON decodes the root wrapper.
func (s *Surface) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := expectDelim(dec, '{', "surface"); err != nil {
		return err
	}
	seenRoot := false
	for dec.More() {
		key, err := decodeKey(dec, "surface")
		if err != nil {
			return err
		}
		if key != "root" {
			return fmt.Errorf("tree: surface has unknown key %q", key)
		}
		if err := s.Root.decode(dec); err != nil {
			return err
		}
		seenRoot = true
	}
	if !seenRoot {
		return fmt.Errorf("tree: surface requires a root node")
	}
	return consumeDelim(dec, "surface")
}

// Decode parses canonical wire bytes into a surface.
func Decode(data []byte) (*Surface, error) {
	var s Surface
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func expectDelim(dec *json.Decoder, want json.Delim, what string) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("tree: %s: %w", what, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("tree: %s must be an object", what)
	}
	return nil
}

func decodeKey(dec *json.Decoder, what string) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("tree: %s: %w", what, err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("tree: %s: expected object key", what)
	}
	return key, nil
}

func consumeDelim(dec *json.Decoder, what string) error {
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("tree: %s: %w", what, err)
	}
	return nil
}
