package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orgentropy/hierarchy"
)

// Format selects a document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf maps a file name to its Format by extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// DecodeJSON parses a JSON document into a tree whose relation records are
// taken verbatim from the document. The tree is sealed and ready.
func DecodeJSON(data []byte) (*hierarchy.Tree, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}

	return decodeJSONDocument(data)
}

// DecodeYAML parses a YAML document, see DecodeJSON.
func DecodeYAML(data []byte) (*hierarchy.Tree, error) {
	return decodeDocument(data)
}

// Decode dispatches on f.
func Decode(data []byte, f Format) (*hierarchy.Tree, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

// EncodeJSON renders tree as a nested JSON document, children in insertion
// order. indent == "" produces compact output.
func EncodeJSON(tree *hierarchy.Tree, indent string) ([]byte, error) {
	if tree == nil {
		return nil, hierarchy.ErrNilTree
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeJSONEntry(&buf, tree, tree.Root()); err != nil {
		return nil, err
	}
	buf.WriteByte('}')

	if indent == "" {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", indent); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// writeJSONEntry writes `"label":{"relation":{...},"children":{...}}`.
func writeJSONEntry(buf *bytes.Buffer, tree *hierarchy.Tree, n *hierarchy.Node) error {
	key, err := json.Marshal(n.Label)
	if err != nil {
		return err
	}
	buf.Write(key)
	buf.WriteString(`:{"` + keyRelation + `":{`)
	for i, v := range n.Relation.Row() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`"` + relationKeys[i] + `":` + strconv.Itoa(v))
	}
	buf.WriteString(`},"` + keyChildren + `":{`)
	for i, c := range tree.Children(n) {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err = writeJSONEntry(buf, tree, c); err != nil {
			return err
		}
	}
	buf.WriteString("}}")

	return nil
}

// EncodeYAML renders tree as a nested YAML document, children in insertion order.
func EncodeYAML(tree *hierarchy.Tree) ([]byte, error) {
	if tree == nil {
		return nil, hierarchy.ErrNilTree
	}
	root := tree.Root()
	doc := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{labelNode(root.Label), yamlBody(tree, root)},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// labelNode forces labels to stay strings ("1" must not become 1).
func labelNode(label string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: label}
}

// yamlBody builds the relation/children mapping of n.
func yamlBody(tree *hierarchy.Tree, n *hierarchy.Node) *yaml.Node {
	rel := &yaml.Node{Kind: yaml.MappingNode}
	for i, v := range n.Relation.Row() {
		rel.Content = append(rel.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: relationKeys[i]},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)},
		)
	}
	children := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range tree.Children(n) {
		children.Content = append(children.Content, labelNode(c.Label), yamlBody(tree, c))
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: keyRelation}, rel,
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: keyChildren}, children,
		},
	}
}

// Encode dispatches on f. JSON output is indented with two spaces.
func Encode(tree *hierarchy.Tree, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return EncodeJSON(tree, "  ")
	case FormatYAML:
		return EncodeYAML(tree)
	default:
		return nil, fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

// Load reads a document from path; the format follows the file extension.
func Load(path string) (*hierarchy.Tree, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tree, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return tree, nil
}

// Save writes tree to path; the format follows the file extension.
func Save(path string, tree *hierarchy.Tree) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Encode(tree, f)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
