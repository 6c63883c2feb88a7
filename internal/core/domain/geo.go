package domain

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/samirrijal/mapposter/internal/pkg/geospatial"
)

// GeoPoint represents a geographic coordinate (WGS 84).
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Point returns the coordinate as an orb point (lon, lat order).
func (p GeoPoint) Point() orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

// Label formats the point as "48.8566°N, 2.3522°E", converting signs to
// hemisphere letters.
func (p GeoPoint) Label() string {
	ns := "N"
	if p.Lat < 0 {
		ns = "S"
	}
	ew := "E"
	if p.Lon < 0 {
		ew = "W"
	}
	return fmt.Sprintf("%.4f°%s, %.4f°%s", math.Abs(p.Lat), ns, math.Abs(p.Lon), ew)
}

// Bounds represents a geographic bounding box.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// BoundsAround returns the box reaching radius meters from p in each
// cardinal direction.
func BoundsAround(p GeoPoint, radius float64) Bounds {
	minLat, minLon, maxLat, maxLon := geospatial.BoundingBox(p.Lat, p.Lon, radius)
	return Bounds{MinLat: minLat, MinLon: minLon, MaxLat: maxLat, MaxLon: maxLon}
}

// Bound converts the box to an orb.Bound.
func (b Bounds) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinLon, b.MinLat},
		Max: orb.Point{b.MaxLon, b.MaxLat},
	}
}
