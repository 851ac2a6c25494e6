package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVisibleParameters(t *testing.T) {
	path := Path{
		Path: "/pets/{petId}",
		Parameters: []Parameter{
			{Name: "petId", InternalName: "pet_id", In: LocationPath, Required: true},
			{Name: "verbose", InternalName: "verbose", In: LocationQuery},
		},
	}
	op := Operation{
		Parameters: []Parameter{
			// Shadows the path-level definition; the path-level one wins.
			{Name: "pet-id", InternalName: "pet_id", In: LocationQuery},
			{Name: "limit", InternalName: "limit", In: LocationQuery},
		},
	}

	params := path.VisibleParameters(op)
	require.Len(t, params, 3)
	require.Equal(t, "petId", params[0].Name)
	require.Equal(t, LocationPath, params[0].In)
	require.Equal(t, "verbose", params[1].Name)
	require.Equal(t, "limit", params[2].Name)
}

func TestVisibleParametersOperationOnly(t *testing.T) {
	path := Path{Path: "/pets"}
	op := Operation{
		Parameters: []Parameter{
			{Name: "limit", InternalName: "limit", In: LocationQuery},
			{Name: "limit", InternalName: "limit", In: LocationHeader},
		},
	}

	params := path.VisibleParameters(op)
	require.Len(t, params, 1)
	require.Equal(t, LocationQuery, params[0].In)
}

func TestVisibleParametersEmpty(t *testing.T) {
	require.Empty(t, Path{}.VisibleParameters(Operation{}))
}
