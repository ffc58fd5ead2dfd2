package codec

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orgentropy/hierarchy"
)

// Sentinel errors for document I/O.
var (
	// ErrMalformed indicates a document that does not have the nested tree shape.
	ErrMalformed = errors.New("codec: malformed document")

	// ErrUnknownFormat indicates a file extension other than .json, .yaml or .yml.
	ErrUnknownFormat = errors.New("codec: unknown document format")
)

// Document keys.
const (
	keyRelation = "relation"
	keyChildren = "children"
)

// relationKeys lists the relation field names in column order.
var relationKeys = [hierarchy.NumRelations]string{
	"direct_management",
	"direct_subordination",
	"indirect_management",
	"indirect_subordination",
	"subordination",
}

// relationDoc is the wire form of hierarchy.Relation. Pointers distinguish a
// missing field from an explicit zero.
type relationDoc struct {
	DirectManagement      *int `yaml:"direct_management" validate:"required,gte=0"`
	DirectSubordination   *int `yaml:"direct_subordination" validate:"required,gte=0"`
	IndirectManagement    *int `yaml:"indirect_management" validate:"required,gte=0"`
	IndirectSubordination *int `yaml:"indirect_subordination" validate:"required,gte=0"`
	Subordination         *int `yaml:"subordination" validate:"required,gte=0"`
}

// docValidate is the validator instance for wire documents.
var docValidate = validator.New()

// relation converts a validated relationDoc.
func (d relationDoc) relation() hierarchy.Relation {
	return hierarchy.Relation{
		DirectManagement:      *d.DirectManagement,
		DirectSubordination:   *d.DirectSubordination,
		IndirectManagement:    *d.IndirectManagement,
		IndirectSubordination: *d.IndirectSubordination,
		Subordination:         *d.Subordination,
	}
}

// malformed wraps ErrMalformed with the document path and cause.
func malformed(path string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformed, path, fmt.Sprintf(format, args...))
}

// decodeDocument parses YAML data into a sealed tree.
func decodeDocument(data []byte) (*hierarchy.Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, malformed("$", "empty document")
	}

	return decodeTop(doc.Content[0])
}

// decodeTop decodes the top-level mapping {root: body} into a sealed tree.
func decodeTop(top *yaml.Node) (*hierarchy.Tree, error) {
	if top.Kind != yaml.MappingNode {
		return nil, malformed("$", "want a mapping")
	}
	if len(top.Content) != 2 {
		return nil, malformed("$", "want exactly one root, got %d keys", len(top.Content)/2)
	}
	rootKey, rootBody := top.Content[0], top.Content[1]
	if rootKey.Kind != yaml.ScalarNode || rootKey.Value == "" {
		return nil, malformed("$", "root label must be a non-empty scalar")
	}

	tree, err := hierarchy.NewTree(rootKey.Value)
	if err != nil {
		return nil, err
	}
	d := &decoder{tree: tree}
	if err = d.node(rootKey.Value, rootBody, "$."+rootKey.Value); err != nil {
		return nil, err
	}
	if err = tree.Seal(); err != nil {
		return nil, err
	}

	return tree, nil
}

// decoder carries the tree being assembled.
type decoder struct {
	tree *hierarchy.Tree
}

// node decodes the body of label (already appended to the tree).
func (d *decoder) node(label string, body *yaml.Node, path string) error {
	if body.Kind != yaml.MappingNode {
		return malformed(path, "node must be a mapping")
	}

	var relNode, childNode *yaml.Node
	for i := 0; i+1 < len(body.Content); i += 2 {
		key, val := body.Content[i], body.Content[i+1]
		switch key.Value {
		case keyRelation:
			if relNode != nil {
				return malformed(path, "duplicate %q", keyRelation)
			}
			relNode = val
		case keyChildren:
			if childNode != nil {
				return malformed(path, "duplicate %q", keyChildren)
			}
			childNode = val
		default:
			return malformed(path, "unexpected key %q", key.Value)
		}
	}
	if relNode == nil {
		return malformed(path, "missing %q", keyRelation)
	}
	if childNode == nil {
		return malformed(path, "missing %q", keyChildren)
	}

	rel, err := decodeRelation(relNode, path+"."+keyRelation)
	if err != nil {
		return err
	}
	if err = d.tree.SetRelation(label, rel); err != nil {
		return err
	}

	return d.children(label, childNode, path+"."+keyChildren)
}

// children appends and decodes every child of parent in document order.
func (d *decoder) children(parent string, body *yaml.Node, path string) error {
	if body.Kind != yaml.MappingNode {
		return malformed(path, "children must be a mapping")
	}
	for i := 0; i+1 < len(body.Content); i += 2 {
		key, val := body.Content[i], body.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return malformed(path, "child label must be a non-empty scalar")
		}
		childPath := path + "." + key.Value
		if _, err := d.tree.Append(parent, key.Value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrMalformed, childPath, err)
		}
		if err := d.node(key.Value, val, childPath); err != nil {
			return err
		}
	}

	return nil
}

// decodeRelation checks the relation keys and validates the values.
func decodeRelation(n *yaml.Node, path string) (hierarchy.Relation, error) {
	if n.Kind != yaml.MappingNode {
		return hierarchy.Relation{}, malformed(path, "relation must be a mapping")
	}
	seen := make(map[string]bool, hierarchy.NumRelations)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i].Value, n.Content[i+1]
		if !isRelationKey(k) {
			return hierarchy.Relation{}, malformed(path, "unexpected key %q", k)
		}
		if seen[k] {
			return hierarchy.Relation{}, malformed(path, "duplicate %q", k)
		}
		seen[k] = true
		// yaml.v3 truncates floats into int fields, so the tag is checked first.
		if v.Kind != yaml.ScalarNode || v.ShortTag() != "!!int" {
			return hierarchy.Relation{}, malformed(path+"."+k, "want an integer, got %q", v.Value)
		}
	}

	var doc relationDoc
	if err := n.Decode(&doc); err != nil {
		return hierarchy.Relation{}, malformed(path, "%v", err)
	}
	if err := docValidate.Struct(doc); err != nil {
		return hierarchy.Relation{}, malformed(path, "%v", err)
	}

	return doc.relation(), nil
}

func isRelationKey(k string) bool {
	for _, rk := range relationKeys {
		if rk == k {
			return true
		}
	}

	return false
}
