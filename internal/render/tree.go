// Package render turns classified schema fragments and endpoints into
// display trees for a documentation view.
package render

import (
	"fmt"
	"strings"

	"github.com/peter-hanzo/specdoc/internal/model"
)

// Node is one row of a rendered tree. Depth is advisory indentation only;
// Children hold the expanded sub-structure.
type Node struct {
	Title       string
	Detail      string
	Description string
	Required    bool
	Depth       int
	Children    []*Node
}

const noDescription = "(no description)"

// Tree renders one schema fragment as display rows. Nil and primitive
// fragments render nothing: real-world documents are frequently partial and
// an unrenderable shape is omitted rather than reported. The function is
// pure, so callers may memoize on input equality.
func Tree(s *model.SchemaNode, depth int) []*Node {
	if s == nil {
		return nil
	}
	switch s.Kind {
	case model.KindArray:
		return []*Node{arrayNode(s, depth)}
	case model.KindMap:
		return []*Node{mapNode(s, depth)}
	case model.KindObject:
		nodes := make([]*Node, 0, len(s.Properties))
		for _, p := range s.Properties {
			nodes = append(nodes, propertyNode(s, p, depth))
		}
		return nodes
	default:
		return nil
	}
}

func arrayNode(s *model.SchemaNode, depth int) *Node {
	itemType := "object"
	if s.Items != nil && s.Items.Type != "" {
		itemType = s.Items.Type
	}

	n := &Node{Title: "array of " + itemType, Depth: depth}
	if s.Items != nil && s.Items.Type == "object" {
		n.Children = Tree(s.Items, depth+1)
		return n
	}

	n.Description = noDescription
	if s.Items != nil && s.Items.Description != "" {
		n.Description = s.Items.Description
	}
	return n
}

func mapNode(s *model.SchemaNode, depth int) *Node {
	valueType := "object"
	format := ""
	if s.Values != nil {
		if s.Values.Type != "" {
			valueType = s.Values.Type
		}
		format = s.Values.Format
	}

	title := "map of string to " + valueType
	if format != "" {
		title += " (" + format + ")"
	}

	n := &Node{Title: title, Depth: depth}
	if s.Values != nil {
		n.Description = s.Values.Description
		if s.Values.Type == "object" {
			n.Children = Tree(s.Values, depth+1)
		}
	}
	return n
}

func propertyNode(parent *model.SchemaNode, p model.Property, depth int) *Node {
	n := &Node{
		Title:    p.Name,
		Depth:    depth,
		Required: parent.RequiresProperty(p.Name),
	}
	if p.Schema == nil {
		return n
	}

	n.Detail = Detail(p.Schema.Type, p.Schema.Format, p.Schema.Enum)
	n.Description = p.Schema.Description

	switch {
	case p.Schema.Type == "object":
		n.Children = Tree(p.Schema, depth+1)
	case p.Schema.Kind == model.KindArray:
		sub := &Node{Title: "array items", Depth: depth + 1}
		sub.Children = Tree(p.Schema.Items, depth+1)
		n.Children = []*Node{sub}
	}
	return n
}

// Detail formats the type/format/enum triple every flat row shows, e.g.
// "string (date-time) [active, archived]".
func Detail(typ, format string, enum []string) string {
	var b strings.Builder
	b.WriteString(typ)
	if format != "" {
		fmt.Fprintf(&b, " (%s)", format)
	}
	if len(enum) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(enum, ", "))
	}
	return b.String()
}
