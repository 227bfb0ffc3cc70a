// Package diagnose converts raw JSON parse failures into source-span
// diagnostics for an editing surface.
package diagnose

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/peter-hanzo/specdoc/internal/model"
)

// ModeJSON is the only mode the linter checks; any other mode yields no
// diagnostics. The mode choice is owned by the caller's configuration.
const ModeJSON = "json"

// Linter produces diagnostics for one document text. Checks are pure and
// cheap enough to run on every edit; debouncing is the embedding editor's
// concern.
type Linter struct {
	Mode string
}

// Check parses text and reports at most one diagnostic describing the first
// failure. Position resolution degrades through three tiers: exact node
// span, enclosing line, whole document. Valid JSON yields an empty list.
func (l Linter) Check(text string) []model.Diagnostic {
	if l.Mode != ModeJSON {
		return nil
	}

	var v any
	err := json.Unmarshal([]byte(text), &v)
	if err == nil {
		return nil
	}

	var syn *json.SyntaxError
	if !errors.As(err, &syn) {
		return []model.Diagnostic{{
			From:     0,
			To:       len(text),
			Severity: model.SeverityError,
			Message:  "invalid document: " + err.Error(),
		}}
	}

	// The decoder's offset counts bytes consumed, so the offending byte
	// sits just before it.
	pos := int(syn.Offset)
	if pos > 0 {
		pos--
	}
	if pos > len(text) {
		pos = len(text)
	}

	from, to := resolveSpan(text, pos)
	return []model.Diagnostic{{
		From:     from,
		To:       to,
		Severity: model.SeverityError,
		Message:  syn.Error(),
		Class:    model.ClassSyntax,
	}}
}

// resolveSpan locates the smallest syntactic construct containing pos,
// falling back to the line containing pos when the tree cannot pinpoint a
// non-degenerate node.
func resolveSpan(text string, pos int) (int, int) {
	if node := buildTree(text).smallest(pos); node != nil && node.from != node.to {
		return node.from, node.to
	}
	return lineSpan(text, pos)
}

// lineSpan returns the bounds of the line containing pos.
func lineSpan(text string, pos int) (int, int) {
	if pos > len(text) {
		pos = len(text)
	}
	start := strings.LastIndexByte(text[:pos], '\n') + 1
	end := strings.IndexByte(text[pos:], '\n')
	if end < 0 {
		return start, len(text)
	}
	return start, pos + end
}
