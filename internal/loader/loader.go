package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/pb33f/libopenapi"
	"github.com/peter-hanzo/specdoc/internal/parser"
)

// Result carries the lenient parse of a specification document plus the raw
// bytes for strict advisory checks.
type Result struct {
	Document *parser.Document
	RawData  []byte
}

// LoadFile reads and parses a specification document. Parsing is lenient:
// anything that is valid JSON with a paths mapping yields endpoints, and
// partially-specified operations pass through rather than failing the load.
func LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	doc, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing specification: %w", err)
	}

	return &Result{Document: doc, RawData: data}, nil
}

// StrictWarnings rebuilds the document through libopenapi and reports
// everything the full OpenAPI model build objects to. Advisory only: the
// lenient endpoint list is unaffected.
func StrictWarnings(data []byte) []string {
	doc, err := libopenapi.NewDocument(data)
	if err != nil {
		return []string{fmt.Sprintf("strict parse: %v", err)}
	}

	version := doc.GetVersion()
	if !strings.HasPrefix(version, "3.") {
		return []string{fmt.Sprintf("strict checks need an OpenAPI 3.x document (found %q)", version)}
	}

	if _, err := doc.BuildV3Model(); err != nil {
		return []string{fmt.Sprintf("building OpenAPI model: %v", err)}
	}

	return nil
}
