package geo_test

import (
	"testing"

	"github.com/citypulse-backend/internal/pkg/geo"
	"github.com/stretchr/testify/assert"
)

func TestNewBoundingBox(t *testing.T) {
	t.Run("contains center", func(t *testing.T) {
		box := geo.NewBoundingBox(4.05, 9.70, 500)

		assert.True(t, box.Contains(4.05, 9.70))
		assert.Less(t, box.MinLat, box.MaxLat)
		assert.Less(t, box.MinLon, box.MaxLon)
	})

	t.Run("extents symmetric around center", func(t *testing.T) {
		lat, lon := 4.05, 9.70
		box := geo.NewBoundingBox(lat, lon, 1000)

		assert.InDelta(t, lat-box.MinLat, box.MaxLat-lat, 1e-9)
		assert.InDelta(t, lon-box.MinLon, box.MaxLon-lon, 1e-9)
	})

	t.Run("longitude extent widens with latitude", func(t *testing.T) {
		nearEquator := geo.NewBoundingBox(0, 0, 1000)
		midLatitude := geo.NewBoundingBox(60, 0, 1000)

		equatorSpan := nearEquator.MaxLon - nearEquator.MinLon
		midSpan := midLatitude.MaxLon - midLatitude.MinLon

		assert.Greater(t, midSpan, equatorSpan)
	})
}

func TestHaversineDistance(t *testing.T) {
	t.Run("zero for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, geo.HaversineDistance(4.05, 9.70, 4.05, 9.70))
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := geo.HaversineDistance(4.05, 9.70, 4.10, 9.75)
		d2 := geo.HaversineDistance(4.10, 9.75, 4.05, 9.70)

		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("known distances", func(t *testing.T) {
		// roughly 7.85 km between the two test points near Douala
		d := geo.HaversineDistance(4.05, 9.70, 4.10, 9.75)
		assert.InDelta(t, 7853, d, 10)

		// one degree of longitude on the equator
		d = geo.HaversineDistance(0, 0, 0, 1)
		assert.InDelta(t, 111195, d, 1)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, geo.ValidateCoordinates(4.05, 9.70))
	assert.True(t, geo.ValidateCoordinates(-90, 180))
	assert.False(t, geo.ValidateCoordinates(90.1, 0))
	assert.False(t, geo.ValidateCoordinates(0, -180.5))
}

func TestValidateRadius(t *testing.T) {
	assert.True(t, geo.ValidateRadius(500))
	assert.True(t, geo.ValidateRadius(100000))
	assert.False(t, geo.ValidateRadius(0))
	assert.False(t, geo.ValidateRadius(-1))
	assert.False(t, geo.ValidateRadius(100001))
}

func TestEncode(t *testing.T) {
	t.Run("respects precision", func(t *testing.T) {
		assert.Len(t, geo.Encode(4.05, 9.70, geo.WritePrecision), 9)
		assert.Len(t, geo.Encode(4.05, 9.70, geo.QueryPrecision), 7)
	})

	t.Run("coarser hash is prefix of finer hash", func(t *testing.T) {
		fine := geo.Encode(4.05, 9.70, geo.WritePrecision)
		coarse := geo.Encode(4.05, 9.70, geo.QueryPrecision)

		assert.Equal(t, coarse, fine[:7])
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t,
			geo.Encode(4.05, 9.70, 9),
			geo.Encode(4.05, 9.70, 9),
		)
	})
}

func TestCellRange(t *testing.T) {
	box := geo.NewBoundingBox(4.05, 9.70, 500)
	start, end := geo.CellRange(box, geo.QueryPrecision)

	assert.Len(t, start, 7)
	assert.Len(t, end, 7)
	assert.LessOrEqual(t, start, end)

	// the center of the box always hashes inside the range
	center := geo.Encode(4.05, 9.70, geo.QueryPrecision)
	assert.GreaterOrEqual(t, center, start)
	assert.LessOrEqual(t, center, end)
}
