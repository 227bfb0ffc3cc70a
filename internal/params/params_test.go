package params

import (
	"testing"

	"github.com/peter-hanzo/specdoc/internal/model"
	"github.com/stretchr/testify/require"
)

func TestPartitionFixedOrder(t *testing.T) {
	ps := []model.Parameter{
		{Name: "limit", In: model.LocationQuery},
		{Name: "id", In: model.LocationPath},
		{Name: "payload", In: model.LocationBody},
		{Name: "X-Trace", In: model.LocationHeader},
	}

	groups := Partition(ps)
	require.Len(t, groups, 4)

	// display order is fixed regardless of input order; formData is absent
	require.Equal(t, model.LocationPath, groups[0].Location)
	require.Equal(t, model.LocationQuery, groups[1].Location)
	require.Equal(t, model.LocationHeader, groups[2].Location)
	require.Equal(t, model.LocationBody, groups[3].Location)
}

func TestPartitionPreservesRelativeOrder(t *testing.T) {
	ps := []model.Parameter{
		{Name: "b", In: model.LocationQuery},
		{Name: "id", In: model.LocationPath},
		{Name: "a", In: model.LocationQuery},
	}

	groups := Partition(ps)
	require.Len(t, groups, 2)
	require.Equal(t, "Query Parameters", groups[1].Label)
	require.Equal(t, "b", groups[1].Params[0].Name)
	require.Equal(t, "a", groups[1].Params[1].Name)
}

func TestPartitionOmitsEmptyGroups(t *testing.T) {
	require.Empty(t, Partition(nil))

	groups := Partition([]model.Parameter{{Name: "f", In: model.LocationFormData}})
	require.Len(t, groups, 1)
	require.Equal(t, "Form Parameters", groups[0].Label)
}

func TestPartitionDeterminism(t *testing.T) {
	ps := []model.Parameter{
		{Name: "a", In: model.LocationQuery},
		{Name: "b", In: model.LocationHeader},
	}
	require.Equal(t, Partition(ps), Partition(ps))
}
