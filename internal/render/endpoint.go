package render

import (
	"github.com/peter-hanzo/specdoc/internal/model"
	"github.com/peter-hanzo/specdoc/internal/params"
)

// Doc is the assembled documentation for one endpoint, consumed by the
// template layer.
type Doc struct {
	Method      string
	Path        string
	Summary     string
	Description string
	OperationID string
	Groups      []GroupDoc
	Response    []*Node
}

// GroupDoc is one rendered parameter group.
type GroupDoc struct {
	Label string
	Rows  []*Node
}

// Endpoint assembles the documentation tree for one endpoint. Body
// parameters expand through their schema, since the body's real structure
// lives there rather than in parameter-level type attributes; every other
// group renders flat rows plus a nested schema expansion when one exists.
func Endpoint(ep model.Endpoint) Doc {
	doc := Doc{
		Method:      string(ep.Method),
		Path:        ep.Path,
		Summary:     ep.Summary,
		Description: ep.Description,
		OperationID: ep.OperationID,
		Response:    Tree(ep.OutputSchema, 0),
	}

	for _, g := range params.Partition(ep.Parameters) {
		gd := GroupDoc{Label: g.Label}
		for _, p := range g.Params {
			if g.Location == model.LocationBody {
				gd.Rows = append(gd.Rows, bodyRows(p)...)
				continue
			}
			gd.Rows = append(gd.Rows, parameterRow(p))
		}
		// A body whose schema renders nothing would leave a bare header.
		if len(gd.Rows) == 0 {
			continue
		}
		doc.Groups = append(doc.Groups, gd)
	}

	return doc
}

func bodyRows(p model.Parameter) []*Node {
	rows := Tree(p.Schema, 0)
	if rows == nil && p.Description != "" {
		rows = []*Node{{Title: p.Name, Description: p.Description}}
	}
	return rows
}

func parameterRow(p model.Parameter) *Node {
	return &Node{
		Title:       p.Name,
		Detail:      Detail(p.Type, p.Format, p.Enum),
		Description: p.Description,
		Required:    p.Required,
		Children:    Tree(p.Schema, 1),
	}
}
