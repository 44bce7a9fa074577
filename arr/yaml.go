package arr

import (
	"fmt"
	"math"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// FromYAML decodes a YAML document into a container. Mappings become *Map
// values with keys in document order, sequences become []any, aliases are
// followed and scalars are resolved to their tagged Go type. An empty
// document decodes to nil.
func FromYAML(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return fromNode(&root)
}

func fromNode(node *yaml.Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return fromNode(node.Content[0])

	case yaml.MappingNode:
		out := NewMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			val, err := fromNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			out.Set(node.Content[i].Value, val)
		}
		return out, nil

	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			val, err := fromNode(child)
			if err != nil {
				return nil, err
			}
			out = append(out, val)
		}
		return out, nil

	case yaml.AliasNode:
		return fromNode(node.Alias)

	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidYAML, node.Line, err)
		}
		return v, nil
	}
	return nil, nil
}

// ToYAML encodes a container as YAML, keeping *Map key order. Plain
// map[string]any levels are written in ascending key order.
func ToYAML(v any) ([]byte, error) {
	node, err := toNode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// MarshalYAML implements yaml.Marshaler.
func (m *Map) MarshalYAML() (any, error) {
	return toNode(m)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	v, err := fromNode(node)
	if err != nil {
		return err
	}
	decoded, ok := v.(*Map)
	if !ok {
		return fmt.Errorf("%w: got %s", ErrNotObject, kindOf(v))
	}
	*m = *decoded
	return nil
}

func toNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case nil:
		return scalarNode("!!null", "null"), nil
	case string:
		return scalarNode("!!str", val), nil
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(val)), nil
	case float32, float64:
		// Untagged so integral floats are written as "3" rather than "!!float 3".
		return scalarNode("", yamlFloat(val)), nil
	}
	if IsAccessible(v) && !isSlice(v) {
		node := &yaml.Node{Kind: yaml.MappingNode}
		for k, item := range Entries(v) {
			child, err := toNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalarNode("!!str", k), child)
		}
		return node, nil
	}
	if items, ok := v.([]any); ok {
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range items {
			child, err := toNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	}
	if n := numberOf(v); n.kind == signedNumber || n.kind == unsignedNumber {
		return scalarNode("!!int", KeyString(v)), nil
	}
	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, fmt.Errorf("arr: encode %T as YAML: %w", v, err)
	}
	return node, nil
}

// yamlFloat spells v the way the YAML core schema resolves back to a float.
func yamlFloat(v any) string {
	f := numberOf(v).f
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return KeyString(v)
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func isSlice(v any) bool {
	_, ok := v.([]any)
	return ok
}
