package model

import "strings"

// Endpoint is one (path, HTTP method) operation extracted from a
// specification document. Identity is the (Path, Method) pair; the parser
// does not enforce uniqueness, duplicates from the source are preserved in
// document order.
type Endpoint struct {
	Path        string
	Method      Method
	Summary     string
	Description string
	OperationID string
	Parameters  []Parameter

	// Request body structure and first 2xx response structure, when the
	// document declares them.
	InputSchema  *SchemaNode
	OutputSchema *SchemaNode
}

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
)

var knownMethods = map[Method]bool{
	MethodGet:     true,
	MethodPost:    true,
	MethodPut:     true,
	MethodDelete:  true,
	MethodPatch:   true,
	MethodHead:    true,
	MethodOptions: true,
	MethodTrace:   true,
}

// KnownMethod reports whether s names an HTTP method, in any case.
func KnownMethod(s string) bool {
	return knownMethods[Method(strings.ToUpper(s))]
}

type ParameterLocation string

const (
	LocationPath     ParameterLocation = "path"
	LocationQuery    ParameterLocation = "query"
	LocationBody     ParameterLocation = "body"
	LocationFormData ParameterLocation = "formData"
	LocationHeader   ParameterLocation = "header"
)

type Parameter struct {
	Name        string
	In          ParameterLocation
	Description string
	Required    bool
	Type        string
	Format      string
	Enum        []string
	Schema      *SchemaNode
	Items       *SchemaNode
}
