package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orgentropy/hierarchy"
)

// jsonNode reads one JSON value from the token stream of dec and returns it
// as a yaml.Node, keeping object keys in document order. Strings are decoded
// by encoding/json, so every JSON escape is honored.
func jsonNode(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		return jsonContainer(dec, v)
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}, nil
	case json.Number:
		tag := "!!float"
		if _, err = strconv.ParseInt(v.String(), 10, 64); err == nil {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.String()}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// jsonContainer reads the members of an object or array opened by delim,
// including the closing delimiter.
func jsonContainer(dec *json.Decoder, delim json.Delim) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if delim == '[' {
		n.Kind, n.Tag = yaml.SequenceNode, "!!seq"
	}

	for dec.More() {
		if n.Kind == yaml.MappingNode {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v is not a string", tok)
			}
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key})
		}
		val, err := jsonNode(dec)
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return n, nil
}

// decodeJSONDocument parses JSON data into a sealed tree.
func decodeJSONDocument(data []byte) (*hierarchy.Tree, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	top, err := jsonNode(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return decodeTop(top)
}
