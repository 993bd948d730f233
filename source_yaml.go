package coerce

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reoring/coerce/i18n"
)

// ValidateYAML decodes a YAML document into the engine's input
// representation and validates it against the schema. Mapping order is
// preserved by walking the yaml.v3 node tree directly instead of
// unmarshalling into a Go map. Scalars keep their literal text except
// booleans, which become native booleans. Malformed YAML fails with kind
// yaml_invalid.
func ValidateYAML(ctx context.Context, s *Schema, data []byte, mode Strictness) (any, error) {
	v, err := ValueFromYAML(data)
	if err != nil {
		return nil, err
	}
	return Validate(ctx, s, v, mode)
}

// ValueFromYAML converts a YAML document into a Value tree.
func ValueFromYAML(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Value{}, yamlIssue(err, data)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return Null(), nil
	}
	v, err := valueFromYAMLNode(root.Content[0])
	if err != nil {
		return Value{}, yamlIssue(err, data)
	}
	return v, nil
}

func valueFromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		pairs := make([]Pair, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, err := valueFromYAMLNode(n.Content[i])
			if err != nil {
				return Value{}, err
			}
			val, err := valueFromYAMLNode(n.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			pairs = append(pairs, Pair{Key: key, Value: val})
		}
		return Mapping(pairs...), nil
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := valueFromYAMLNode(c)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Sequence(items...), nil
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!bool":
			return BoolValue(strings.EqualFold(n.Value, "true")), nil
		case "!!null":
			return Null(), nil
		default:
			return Text(n.Value), nil
		}
	case yaml.AliasNode:
		return valueFromYAMLNode(n.Alias)
	default:
		return Value{}, fmt.Errorf("unsupported YAML node kind %d", n.Kind)
	}
}

func yamlIssue(err error, data []byte) Issues {
	return Issues{{
		Kind:    KindYAMLInvalid,
		Message: i18n.T(KindYAMLInvalid, map[string]string{"error": err.Error()}),
		Input:   string(data),
	}}
}
