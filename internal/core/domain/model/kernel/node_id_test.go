package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/pkg/errs"
)

func TestLocation_NodeID(t *testing.T) {
	tests := []struct {
		name string
		x, y kernel.Coordinate
		want kernel.NodeID
	}{
		{name: "origin", x: 0, y: 0, want: 0},
		{name: "end of first row", x: 8, y: 0, want: 8},
		{name: "start of second row", x: 0, y: 1, want: 9},
		{name: "center", x: 4, y: 4, want: 40},
		{name: "last cell", x: 8, y: 8, want: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := mustNewLocation(t, tt.x, tt.y)
			got, err := loc.NodeID()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("zero value location", func(t *testing.T) {
		var loc kernel.Location
		_, err := loc.NodeID()
		assert.Error(t, err)
	})
}

func TestLocationFromNodeID(t *testing.T) {
	t.Run("valid ids", func(t *testing.T) {
		loc, err := kernel.LocationFromNodeID(40)
		require.NoError(t, err)
		assert.Equal(t, kernel.Coordinate(4), loc.X())
		assert.Equal(t, kernel.Coordinate(4), loc.Y())
	})

	t.Run("id below range", func(t *testing.T) {
		_, err := kernel.LocationFromNodeID(-1)
		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("id above range", func(t *testing.T) {
		_, err := kernel.LocationFromNodeID(kernel.NodeCount)
		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNodeID_RoundTrip(t *testing.T) {
	// The node id mapping must be a bijection over all grid cells.
	for id := kernel.NodeID(0); id < kernel.NodeCount; id++ {
		loc, err := kernel.LocationFromNodeID(id)
		require.NoError(t, err)

		back, err := loc.NodeID()
		require.NoError(t, err)
		assert.Equal(t, id, back, "round trip failed for id %d", id)
	}
}

func TestNodeID_RoundTripFromLocations(t *testing.T) {
	for x := kernel.CoordinateMin; x <= kernel.CoordinateMax; x++ {
		for y := kernel.CoordinateMin; y <= kernel.CoordinateMax; y++ {
			loc := mustNewLocation(t, x, y)

			id, err := loc.NodeID()
			require.NoError(t, err)

			back, err := kernel.LocationFromNodeID(id)
			require.NoError(t, err)

			equal, err := loc.IsEqual(back)
			require.NoError(t, err)
			assert.True(t, equal, "round trip failed for %v", loc)
		}
	}
}
