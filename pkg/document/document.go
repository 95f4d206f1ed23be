package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FormatVersion is the document format revision this package reads. Version
// gates parsing so future revisions can change shape without silently
// misreading old files.
const FormatVersion = 1

// Header carries document identity. Name is required; Version must match
// FormatVersion.
type Header struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Version     int    `json:"version" yaml:"version" validate:"eq=1"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Document is a parsed surface document: its header plus the raw node tree,
// not yet validated against the component registry. Compile turns it into a
// surface.
type Document struct {
	Header Header
	source Source
	root   rawNode
}

// rawNode mirrors the document tree shape before prop values are classified.
type rawNode struct {
	Type     string         `json:"type" yaml:"type"`
	Props    map[string]any `json:"props" yaml:"props"`
	Children []rawNode      `json:"children" yaml:"children"`
}

// stats counts nodes and depth without building anything, so budget checks
// can run before compilation allocates a tree.
func (n *rawNode) stats() (nodes, depth int) {
	nodes = 1
	for i := range n.Children {
		childNodes, childDepth := n.Children[i].stats()
		nodes += childNodes
		if childDepth > depth {
			depth = childDepth
		}
	}
	return nodes, depth + 1
}

type documentFile struct {
	Surface Header   `json:"surface" yaml:"surface"`
	Root    *rawNode `json:"root" yaml:"root"`
}

// Parse reads a JSON or YAML surface document. JSON is tried first; anything
// that fails both parsers reports a single combined error.
func Parse(src Source, data []byte) (*Document, error) {
	if src == nil {
		src = SourceFromBytes("inline", data)
	}
	location := src.Location()

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("document: %s is empty", location)
	}

	var file documentFile
	if err := json.Unmarshal(data, &file); err != nil {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("document: parse %s: invalid JSON or YAML", location)
		}
	}

	if err := validateHeader(file.Surface); err != nil {
		return nil, fmt.Errorf("document: %s: %w", location, err)
	}
	if file.Root == nil {
		return nil, fmt.Errorf("document: %s: root node is required", location)
	}

	return &Document{
		Header: file.Surface,
		source: src,
		root:   *file.Root,
	}, nil
}

// Source returns the origin metadata for the document.
func (d *Document) Source() Source {
	return d.source
}

// Location returns the string identifier for the origin.
func (d *Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

var (
	headerValidatorOnce sync.Once
	headerValidator     *validator.Validate
)

func validateHeader(h Header) error {
	headerValidatorOnce.Do(func() {
		headerValidator = validator.New(validator.WithRequiredStructEnabled())
	})

	err := headerValidator.Struct(h)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "Name":
				return errors.New("surface name is required")
			case "Version":
				return fmt.Errorf("unsupported format version %d (want %d)", h.Version, FormatVersion)
			}
		}
	}
	return fmt.Errorf("invalid header: %w", err)
}
