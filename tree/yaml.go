// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package tree

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes the first document of data. Mapping order is kept,
// aliases are expanded and merge keys ("<<") are applied. Scalars take the
// kind of their resolved tag; tags other than null, bool, int and float
// decode as strings. Empty input decodes to null.
func DecodeYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, fmt.Errorf("decoding yaml: %w", err)
	}
	if doc.Kind == 0 {
		return Null(), nil
	}
	return fromYAML(&doc, 0)
}

func fromYAML(n *yaml.Node, depth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, tooDeep()
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return fromYAML(n.Content[0], depth)
	case yaml.AliasNode:
		return fromYAML(n.Alias, depth+1)
	case yaml.ScalarNode:
		return yamlScalar(n), nil
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromYAML(c, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return List(items...), nil
	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, val := n.Content[i], n.Content[i+1]
			if k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge" {
				if err := mergeYAML(m, val, depth+1); err != nil {
					return Value{}, err
				}
				continue
			}
			key, err := yamlKey(k)
			if err != nil {
				return Value{}, err
			}
			v, err := fromYAML(val, depth+1)
			if err != nil {
				return Value{}, err
			}
			m.Set(key, v)
		}
		return m, nil
	}
	return Value{}, fmt.Errorf("%w: yaml node kind %d at line %d", ErrUnsupportedInput, n.Kind, n.Line)
}

// mergeYAML copies the entries of the mapping (or sequence of mappings) src
// into m, skipping keys m already holds.
func mergeYAML(m Value, src *yaml.Node, depth int) error {
	if depth > maxDepth {
		return tooDeep()
	}
	if src.Kind == yaml.AliasNode {
		return mergeYAML(m, src.Alias, depth+1)
	}
	if src.Kind == yaml.SequenceNode {
		for _, c := range src.Content {
			if err := mergeYAML(m, c, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if src.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: merge key at line %d needs a mapping", ErrUnsupportedInput, src.Line)
	}

	merged, err := fromYAML(src, depth)
	if err != nil {
		return err
	}
	for p := merged.entries.Oldest(); p != nil; p = p.Next() {
		if _, exists := m.Get(p.Key); !exists {
			m.Set(p.Key, p.Value)
		}
	}
	return nil
}

func yamlKey(n *yaml.Node) (string, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("%w: non-scalar mapping key at line %d", ErrUnsupportedInput, n.Line)
	}
	return n.Value, nil
}

func yamlScalar(n *yaml.Node) Value {
	switch n.ShortTag() {
	case "!!null":
		return Null()
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return Bool(b)
		}
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return Int(i)
		}
		var f float64
		if err := n.Decode(&f); err == nil {
			return Float(f)
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return Float(f)
		}
	}
	return String(n.Value)
}
