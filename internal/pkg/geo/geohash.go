package geo

import "github.com/mmcloughlin/geohash"

const (
	// WritePrecision - geohash length stored on documents
	WritePrecision = 9

	// QueryPrecision - geohash length used for range scans. Coarser than
	// the stored hash so a box maps to a small lexicographic range.
	QueryPrecision = 7
)

// Encode returns the base32 geohash of a point at the given precision
func Encode(lat, lng float64, precision uint) string {
	return geohash.EncodeWithPrecision(lat, lng, precision)
}

// CellRange returns the lexicographic geohash range [start, end] covering
// a bounding box: the hashes of its SW and NE corners. Cells near the box
// edges can leak through the range, so callers must post-filter by exact
// distance.
func CellRange(box BoundingBox, precision uint) (start, end string) {
	start = geohash.EncodeWithPrecision(box.MinLat, box.MinLon, precision)
	end = geohash.EncodeWithPrecision(box.MaxLat, box.MaxLon, precision)
	return start, end
}
