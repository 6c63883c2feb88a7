package geospatial

import "math"

const earthRadiusKm = 6371.0

// metersPerDegreeLat is the length of one degree of latitude.
const metersPerDegreeLat = 111320.0

// Haversine calculates the great-circle distance in meters between two points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c * 1000 // meters
}

// PathLength sums the Haversine distances along a sequence of
// [lon, lat] coordinates.
func PathLength(coords [][2]float64) float64 {
	var total float64
	for i := 1; i < len(coords); i++ {
		a, b := coords[i-1], coords[i]
		total += Haversine(a[1], a[0], b[1], b[0])
	}
	return total
}

// BoundingBox returns a bounding box around a point with the given radius in meters.
func BoundingBox(lat, lon, radiusMeters float64) (minLat, minLon, maxLat, maxLon float64) {
	latDelta := radiusMeters / metersPerDegreeLat
	lonDelta := radiusMeters / (metersPerDegreeLat * math.Cos(toRad(lat)))

	return lat - latDelta, lon - lonDelta, lat + latDelta, lon + lonDelta
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
