package diagnose

import (
	"encoding/json"
	"errors"
	"strings"
)

// span is one node of the concrete syntax tree: a half-open byte range
// [from, to) with nested children. Container spans include their
// delimiters; scalar spans cover exactly the token.
type span struct {
	from, to int
	children []*span
}

// buildTree tokenizes text into a span tree. Invalid input yields the tree
// of everything consumed before the failure, plus a terminal span covering
// the offending region, so offset resolution lands on the malformed token
// rather than an enclosing container. Unterminated containers extend to the
// end of the text.
func buildTree(text string) *span {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	root := &span{from: 0, to: len(text)}
	stack := []*span{root}
	prev := 0

	for {
		tok, err := dec.Token()
		after := int(dec.InputOffset())
		top := stack[len(stack)-1]

		if err != nil {
			var syn *json.SyntaxError
			if errors.As(err, &syn) {
				start := tokenStart(text, prev)
				// The decoder may report the offset at the token start, so
				// the terminal span must cover at least one byte to stay
				// addressable.
				end := min(max(int(syn.Offset), start+1), len(text))
				if end > start {
					top.children = append(top.children, &span{from: start, to: end})
				}
			}
			return root
		}

		start := tokenStart(text, prev)
		prev = after

		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				child := &span{from: start, to: len(text)}
				top.children = append(top.children, child)
				stack = append(stack, child)
			case '}', ']':
				top.to = after
				if len(stack) > 1 {
					stack = stack[:len(stack)-1]
				}
			}
			continue
		}

		top.children = append(top.children, &span{from: start, to: after})
	}
}

// smallest returns the innermost span containing off. Children are ordered
// and disjoint, so the scan recurses into at most one of them per level.
func (s *span) smallest(off int) *span {
	for i := len(s.children) - 1; i >= 0; i-- {
		c := s.children[i]
		if off >= c.from && off < c.to {
			return c.smallest(off)
		}
	}
	if off >= s.from && off < s.to {
		return s
	}
	return nil
}

// tokenStart advances from off past whitespace and element separators to
// the first byte of the next token.
func tokenStart(text string, off int) int {
	for off < len(text) {
		switch text[off] {
		case ' ', '\t', '\n', '\r', ',', ':':
			off++
		default:
			return off
		}
	}
	return off
}
