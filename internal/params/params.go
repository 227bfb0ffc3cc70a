// Package params groups an endpoint's parameters by location for display.
package params

import "github.com/peter-hanzo/specdoc/internal/model"

// Group is one non-empty location bucket.
type Group struct {
	Location model.ParameterLocation
	Label    string
	Params   []model.Parameter
}

// displayOrder fixes the group order regardless of input order. Body sorts
// last: its structure is expanded through the schema tree rather than
// rendered as flat rows.
var displayOrder = []struct {
	location model.ParameterLocation
	label    string
}{
	{model.LocationPath, "Path Parameters"},
	{model.LocationQuery, "Query Parameters"},
	{model.LocationFormData, "Form Parameters"},
	{model.LocationHeader, "Header Parameters"},
	{model.LocationBody, "Body"},
}

// Partition buckets parameters by location, preserving each bucket's
// relative input order. Empty buckets are omitted entirely.
func Partition(ps []model.Parameter) []Group {
	buckets := make(map[model.ParameterLocation][]model.Parameter)
	for _, p := range ps {
		buckets[p.In] = append(buckets[p.In], p)
	}

	var groups []Group
	for _, d := range displayOrder {
		if b := buckets[d.location]; len(b) > 0 {
			groups = append(groups, Group{Location: d.location, Label: d.label, Params: b})
		}
	}
	return groups
}
