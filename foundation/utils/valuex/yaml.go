// File: yaml.go
// Title: YAML Codec
// Description: Decodes YAML documents through yaml.v3 nodes so that key order,
//              anchors, aliases and merge keys are honoured, and encodes values
//              back to block style YAML.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.0: File header added

package valuex

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxYAMLDepth bounds alias expansion.
const maxYAMLDepth = 512

type yamlCodec struct{}

func (yamlCodec) Format() Format      { return FormatYAML }
func (yamlCodec) ContentType() string { return "application/yaml" }

// Decode reads the first document through the yaml.Node tree so mapping order
// is kept. Aliases are expanded into independent copies and merge keys
// ("<<") are honored. Timestamps are kept as their source text.
func (yamlCodec) Decode(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, decodeError(FormatYAML, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	v, err := fromYAMLNode(doc.Content[0], 0)
	if err != nil {
		return nil, decodeError(FormatYAML, err)
	}
	return v, nil
}

func fromYAMLNode(n *yaml.Node, depth int) (Value, error) {
	if depth > maxYAMLDepth {
		return nil, fmt.Errorf("line %d: nesting deeper than %d", n.Line, maxYAMLDepth)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromYAMLNode(n.Content[0], depth+1)
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias, depth+1)
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	case yaml.SequenceNode:
		list := make(List, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := fromYAMLNode(item, depth+1)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valueNode := n.Content[i], n.Content[i+1]
			if keyNode.ShortTag() == "!!merge" {
				if err := mergeYAML(obj, valueNode, depth+1); err != nil {
					return nil, err
				}
				continue
			}
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", keyNode.Line)
			}
			v, err := fromYAMLNode(valueNode, depth+1)
			if err != nil {
				return nil, err
			}
			obj.Set(keyNode.Value, v)
		}
		return obj, nil
	}
	return nil, fmt.Errorf("line %d: unsupported node kind %v", n.Line, n.Kind)
}

// mergeYAML adds the entries of a merged mapping (or sequence of mappings)
// that obj does not already define.
func mergeYAML(obj *Object, n *yaml.Node, depth int) error {
	v, err := fromYAMLNode(n, depth)
	if err != nil {
		return err
	}

	sources := []Value{v}
	if KindOf(v) == KindList {
		sources = asSeq(v)
	}
	for _, src := range sources {
		m, ok := src.(*Object)
		if !ok {
			return fmt.Errorf("line %d: merge value must be a mapping", n.Line)
		}
		m.Range(func(key string, value Value) bool {
			if !obj.Has(key) {
				obj.Set(key, value)
			}
			return true
		})
	}
	return nil
}

func fromYAMLScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return i, nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return f, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return f, nil
	}
	return n.Value, nil
}

// Encode writes a block style YAML document with two space indentation.
func (yamlCodec) Encode(v Value) ([]byte, error) {
	node, err := toYAMLNode(v, "$")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, encodeError("$", err.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, encodeError("$", err.Error())
	}
	return buf.Bytes(), nil
}

func toYAMLNode(v Value, path string) (*yaml.Node, error) {
	switch KindOf(v) {
	case KindNull:
		return scalarNode("!!null", "null"), nil
	case KindBool:
		return scalarNode("!!bool", strconv.FormatBool(v.(bool))), nil
	case KindInt:
		return scalarNode("!!int", intString(v)), nil
	case KindFloat:
		return scalarNode("!!float", yamlFloat(toFloat(v))), nil
	case KindString:
		return scalarNode("!!str", v.(string)), nil
	case KindList:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, item := range asSeq(v) {
			child, err := toYAMLNode(item, childIndex(path, i))
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, child)
		}
		return seq, nil
	case KindObject:
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range objectKeys(v) {
			value, _ := lookup(v, key)
			child, err := toYAMLNode(value, childKey(path, key))
			if err != nil {
				return nil, err
			}
			m.Content = append(m.Content, scalarNode("!!str", key), child)
		}
		return m, nil
	}
	return nil, encodeError(path, fmt.Sprintf("%T is not plain data", v))
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// yamlFloat formats f so that it reads back as a float, never as an int.
func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
