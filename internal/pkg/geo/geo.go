package geo

import "math"

const (
	// Mean Earth radius, used for great-circle distances.
	haversineEarthRadiusM = 6371000.0

	// WGS84 equatorial radius, used for bounding box extents.
	boundingBoxEarthRadiusM = 6378137.0
)

// BoundingBox - axis-aligned box around a point, in degrees
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// NewBoundingBox computes the box covering radiusM meters around a center
// using an equirectangular approximation. The longitude extent widens with
// latitude and degenerates near the poles; callers validate coordinates
// before asking for a box.
func NewBoundingBox(lat, lon, radiusM float64) BoundingBox {
	dLat := radiusM / boundingBoxEarthRadiusM
	dLon := radiusM / (boundingBoxEarthRadiusM * math.Cos(math.Pi*lat/180))

	return BoundingBox{
		MinLat: lat - dLat*180/math.Pi,
		MinLon: lon - dLon*180/math.Pi,
		MaxLat: lat + dLat*180/math.Pi,
		MaxLon: lon + dLon*180/math.Pi,
	}
}

// Contains reports whether a point lies inside the box
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// HaversineDistance - great-circle distance between two points in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return haversineEarthRadiusM * c
}

// ValidateCoordinates checks latitude and longitude ranges
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateRadius checks the search radius in meters (up to 100 km)
func ValidateRadius(radiusM float64) bool {
	return radiusM > 0 && radiusM <= 100000
}
