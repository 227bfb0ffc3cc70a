package parser

import (
	"github.com/peter-hanzo/specdoc/internal/model"
	"go.yaml.in/yaml/v4"
)

// maxSchemaDepth bounds classification of nested fragments. Documents are
// author-supplied and occasionally pathological; fragments nested deeper
// than this classify as nothing rather than exhausting the stack.
const maxSchemaDepth = 64

// Classify converts one loosely-typed schema fragment into its structural
// shape. The precedence is fixed and encoded only here: array, then map,
// then object, then primitive. A nil or non-mapping fragment yields nil.
func Classify(n *yaml.Node) *model.SchemaNode {
	return classify(n, 0)
}

func classify(n *yaml.Node, depth int) *model.SchemaNode {
	if n == nil || n.Kind != yaml.MappingNode || depth > maxSchemaDepth {
		return nil
	}

	node := &model.SchemaNode{
		Type:        scalarValue(n, "type"),
		Format:      scalarValue(n, "format"),
		Description: scalarValue(n, "description"),
		Enum:        enumValues(n),
	}

	items := mappingValue(n, "items")
	additional := mappingValue(n, "additionalProperties")
	properties := mappingValue(n, "properties")

	switch {
	case node.Type == "array" && items != nil:
		node.Kind = model.KindArray
		node.Items = classify(items, depth+1)
	case node.Type == "object" && additional != nil:
		node.Kind = model.KindMap
		node.Values = classify(additional, depth+1)
	case properties != nil:
		node.Kind = model.KindObject
		node.Required = stringSequence(mappingValue(n, "required"))
		for name, prop := range mappingPairs(properties) {
			node.Properties = append(node.Properties, model.Property{
				Name:   name,
				Schema: classify(prop, depth+1),
			})
		}
	default:
		node.Kind = model.KindPrimitive
	}

	return node
}

func enumValues(n *yaml.Node) []string {
	return stringSequence(mappingValue(n, "enum"))
}

func stringSequence(n *yaml.Node) []string {
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}
	var out []string
	for _, c := range n.Content {
		if c.Kind == yaml.ScalarNode {
			out = append(out, c.Value)
		}
	}
	return out
}
