package zone_test

import (
	"testing"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/zone"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) []kernel.GeoPoint {
	t.Helper()
	points := make([]kernel.GeoPoint, 0, 3)
	for _, coords := range [][2]float64{{40.40, -3.70}, {40.45, -3.70}, {40.42, -3.65}} {
		p, err := kernel.NewGeoPoint(coords[0], coords[1])
		require.NoError(t, err)
		points = append(points, p)
	}
	return points
}

func TestNewZone(t *testing.T) {
	z, err := zone.NewZone(kernel.NewUUID(), "Centro", triangle(t), decimal.NewFromFloat(4.50))

	require.NoError(t, err)
	assert.True(t, z.IsActive())
	assert.Len(t, z.Boundary(), 3)
}

func TestNewZoneValidation(t *testing.T) {
	_, err := zone.NewZone(kernel.NewUUID(), "", triangle(t), decimal.NewFromInt(1))
	assert.Error(t, err)

	_, err = zone.NewZone(kernel.NewUUID(), "Centro", triangle(t)[:2], decimal.NewFromInt(1))
	assert.ErrorIs(t, err, zone.ErrBoundaryIsTooSmall)

	_, err = zone.NewZone(kernel.NewUUID(), "Centro", triangle(t), decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, zone.ErrBaseRateIsNegative)
}

func TestZoneActivation(t *testing.T) {
	z, err := zone.NewZone(kernel.NewUUID(), "Centro", triangle(t), decimal.NewFromInt(4))
	require.NoError(t, err)

	z.Deactivate()
	assert.False(t, z.IsActive())

	z.Activate()
	assert.True(t, z.IsActive())
}

func TestBoundaryIsCopied(t *testing.T) {
	points := triangle(t)
	z, err := zone.NewZone(kernel.NewUUID(), "Centro", points, decimal.NewFromInt(4))
	require.NoError(t, err)

	boundary := z.Boundary()
	replacement, err := kernel.NewGeoPoint(0, 0)
	require.NoError(t, err)
	boundary[0] = replacement

	equal, eqErr := points[0].IsEqual(z.Boundary()[0])
	require.NoError(t, eqErr)
	assert.True(t, equal)
}
