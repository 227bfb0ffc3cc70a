// Package parser extracts an ordered endpoint list from raw specification
// text and classifies the loosely-typed schema fragments it carries.
package parser

import (
	"encoding/json"
	"iter"
	"strings"

	"github.com/peter-hanzo/specdoc/internal/model"
	"go.yaml.in/yaml/v4"
)

// Document is a parsed specification: the ordered endpoint list plus the
// full concrete tree for consumers that want raw schema objects.
type Document struct {
	Root      *yaml.Node
	Endpoints []model.Endpoint
}

// Parse extracts one Endpoint per (path, method) entry of the document's
// paths mapping, in document order. The input must be valid JSON; the
// concrete tree is built with the YAML reader because it preserves mapping
// key order and duplicate keys, which plain JSON decoding would collapse.
//
// Nothing is validated beyond JSON syntax: operations with missing fields
// yield partially-empty endpoints rather than errors.
func Parse(data []byte) (*Document, error) {
	if !json.Valid(data) {
		var v any
		err := json.Unmarshal(data, &v)
		return nil, &DocumentError{Err: err}
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &DocumentError{Err: err}
	}

	doc := &Document{Root: &root}

	paths := mappingValue(documentRoot(&root), "paths")
	for path, item := range mappingPairs(paths) {
		for method, op := range mappingPairs(item) {
			// Path items carry non-operation keys too (parameters, $ref,
			// summary, extensions); only method keys become endpoints.
			if !model.KnownMethod(method) {
				continue
			}
			doc.Endpoints = append(doc.Endpoints, buildEndpoint(path, method, op))
		}
	}

	return doc, nil
}

func buildEndpoint(path, method string, op *yaml.Node) model.Endpoint {
	ep := model.Endpoint{
		Path:        path,
		Method:      model.Method(strings.ToUpper(method)),
		Summary:     scalarValue(op, "summary"),
		Description: scalarValue(op, "description"),
		OperationID: scalarValue(op, "operationId"),
	}

	if list := mappingValue(op, "parameters"); list != nil && list.Kind == yaml.SequenceNode {
		for _, p := range list.Content {
			param := buildParameter(p)
			ep.Parameters = append(ep.Parameters, param)
			if param.In == model.LocationBody && ep.InputSchema == nil {
				ep.InputSchema = param.Schema
			}
		}
	}

	ep.OutputSchema = responseSchema(mappingValue(op, "responses"))

	return ep
}

func buildParameter(n *yaml.Node) model.Parameter {
	return model.Parameter{
		Name:        scalarValue(n, "name"),
		In:          model.ParameterLocation(scalarValue(n, "in")),
		Description: scalarValue(n, "description"),
		Required:    boolValue(n, "required"),
		Type:        scalarValue(n, "type"),
		Format:      scalarValue(n, "format"),
		Enum:        enumValues(n),
		Schema:      Classify(mappingValue(n, "schema")),
		Items:       Classify(mappingValue(n, "items")),
	}
}

// responseSchema returns the first 2xx response schema in document order.
func responseSchema(responses *yaml.Node) *model.SchemaNode {
	for code, resp := range mappingPairs(responses) {
		if !strings.HasPrefix(code, "2") {
			continue
		}
		if s := Classify(mappingValue(resp, "schema")); s != nil {
			return s
		}
	}
	return nil
}

// mappingPairs iterates a mapping node's entries in document order,
// including duplicate keys. Non-mapping nodes yield nothing.
func mappingPairs(n *yaml.Node) iter.Seq2[string, *yaml.Node] {
	return func(yield func(string, *yaml.Node) bool) {
		if n == nil || n.Kind != yaml.MappingNode {
			return
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			if !yield(n.Content[i].Value, n.Content[i+1]) {
				return
			}
		}
	}
}

func documentRoot(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		return n.Content[0]
	}
	return n
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	for k, v := range mappingPairs(n) {
		if k == key {
			return v
		}
	}
	return nil
}

func scalarValue(n *yaml.Node, key string) string {
	if v := mappingValue(n, key); v != nil && v.Kind == yaml.ScalarNode {
		return v.Value
	}
	return ""
}

func boolValue(n *yaml.Node, key string) bool {
	return scalarValue(n, key) == "true"
}
