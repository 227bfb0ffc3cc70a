package model

import "slices"

// SchemaKind tags the structural shape of a schema fragment. The classifier
// in internal/parser assigns kinds with a fixed precedence: array, then map,
// then object, then primitive.
type SchemaKind string

const (
	KindPrimitive SchemaKind = "primitive"
	KindArray     SchemaKind = "array"
	KindMap       SchemaKind = "map"
	KindObject    SchemaKind = "object"
)

// SchemaNode is the classified form of one loosely-typed schema fragment.
// Only the fields matching Kind are populated.
type SchemaNode struct {
	Kind        SchemaKind
	Type        string
	Format      string
	Description string
	Enum        []string

	// Array items
	Items *SchemaNode

	// Map values (object with additionalProperties)
	Values *SchemaNode

	// Object properties, in document order
	Properties []Property
	Required   []string
}

type Property struct {
	Name   string
	Schema *SchemaNode
}

// RequiresProperty reports whether name is listed in the node's required set.
func (s *SchemaNode) RequiresProperty(name string) bool {
	return s != nil && slices.Contains(s.Required, name)
}
