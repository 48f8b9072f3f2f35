// Package geo holds the flat-earth proximity helpers used by nearby place lookups.
package geo

import "math"

const (
	// metersPerDegree は緯度 1 度あたりの概算距離。
	metersPerDegree = 111000.0
	earthRadius     = 6371e3

	// NearbyLimit caps a nearby lookup. There is no continuation token.
	NearbyLimit = 100
	// DefaultRadius is used when the client omits a radius.
	DefaultRadius = 1000.0
)

// Point is a WGS 84 coordinate.
type Point struct {
	Lat float64
	Lng float64
}

// DefaultCenter is the map center used when the client location is unknown (Seoul City Hall).
var DefaultCenter = Point{Lat: 37.5665, Lng: 126.978}

// BoundingBox is an axis-aligned lat/lng rectangle.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// NewBoundingBox approximates a circle of radiusMeters around (lat, lng).
// The box is not clamped; near the poles the longitude span grows without bound.
func NewBoundingBox(lat, lng, radiusMeters float64) BoundingBox {
	latDelta := radiusMeters / metersPerDegree
	lngDelta := radiusMeters / (metersPerDegree * math.Cos(lat*math.Pi/180))
	return BoundingBox{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLng: lng - lngDelta,
		MaxLng: lng + lngDelta,
	}
}

// Contains reports whether the point lies inside the box, edges included.
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// Distance returns the haversine distance between a and b in meters.
func Distance(a, b Point) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	dPhi := (b.Lat - a.Lat) * math.Pi / 180
	dLambda := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return earthRadius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
