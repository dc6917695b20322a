package model

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"maestro/internal/text"
)

// Parse decodes a complete album definition document.
func Parse(data []byte) (*Album, error) {
	var album Album
	if err := yaml.Unmarshal(data, &album); err != nil {
		return nil, err
	}
	return &album, nil
}

// Encode serializes the album back to YAML, using the same singular
// shapes accepted by Parse.
func (a *Album) Encode() ([]byte, error) {
	return yaml.Marshal(a)
}

// decodeText decodes the string-or-mapping shape shared by every text
// field. A bare string carries no ASCII override; a mapping must have a
// "text" key and may have an "ascii" key.
func decodeText(node *yaml.Node) (text.Text, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag != "!!str" {
			return text.Empty, fmt.Errorf("line %d: expected a string, got %s", node.Line, node.Tag)
		}
		return text.New(node.Value), nil

	case yaml.MappingNode:
		var value, ascii *string
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			if val.Kind != yaml.ScalarNode || val.Tag != "!!str" {
				return text.Empty, fmt.Errorf("line %d: %q must be a string", val.Line, key.Value)
			}
			switch key.Value {
			case "text":
				s := val.Value
				value = &s
			case "ascii":
				s := val.Value
				ascii = &s
			}
		}
		if value == nil {
			return text.Empty, fmt.Errorf("line %d: text mapping missing %q key", node.Line, "text")
		}
		if ascii == nil {
			return text.New(*value), nil
		}
		return text.WithASCII(*value, *ascii), nil

	default:
		return text.Empty, fmt.Errorf("line %d: text must be a string or mapping", node.Line)
	}
}

// decodeTextList decodes a sequence of text values. A bare string is
// not accepted here; singular keys are handled by the callers.
func decodeTextList(node *yaml.Node) ([]text.Text, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a list", node.Line)
	}
	list := make([]text.Text, 0, len(node.Content))
	for _, item := range node.Content {
		t, err := decodeText(item)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, nil
}

func decodeYear(node *yaml.Node) (*int, error) {
	if node.Kind != yaml.ScalarNode || node.Tag != "!!int" {
		return nil, fmt.Errorf("line %d: year must be an integer", node.Line)
	}
	year, err := strconv.Atoi(node.Value)
	if err != nil {
		return nil, fmt.Errorf("line %d: year: %w", node.Line, err)
	}
	return &year, nil
}

// Node builders used by the MarshalYAML implementations. Mappings are
// built by hand so key order matches what a person would write.

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func intNode(n int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(n)}
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, stringNode(key), value)
}

// textNode encodes a Text as a bare string, or as a text/ascii mapping
// when the transliteration was overridden.
func textNode(t text.Text) *yaml.Node {
	if !t.HasOverriddenASCII() {
		return stringNode(t.Value())
	}
	m := mappingNode()
	appendPair(m, "text", stringNode(t.Value()))
	appendPair(m, "ascii", stringNode(t.ASCII()))
	return m
}

func textListNode(list []text.Text) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, t := range list {
		seq.Content = append(seq.Content, textNode(t))
	}
	return seq
}

// encodeNode round-trips a value through its MarshalYAML implementation
// into a node usable inside a hand-built mapping.
func encodeNode(v interface{}) (*yaml.Node, error) {
	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	return node, nil
}
