package overpass

import (
	"fmt"
	"strings"
	"time"

	"github.com/samirrijal/mapposter/internal/core/domain"
)

// driveFilter selects the drivable public street network, following the
// OSMnx "drive" network type.
var driveFilter = strings.Join([]string{
	`["highway"]`,
	`["area"!~"yes"]`,
	`["highway"!~"abandoned|bridleway|bus_guideway|construction|corridor|cycleway|elevator|escalator|footway|no|path|pedestrian|planned|platform|proposed|raceway|razed|service|steps|track"]`,
	`["motor_vehicle"!~"no"]`,
	`["motorcar"!~"no"]`,
	`["service"!~"alley|driveway|emergency_access|parking|parking_aisle|private"]`,
}, "")

// bbox formats the square box of radius meters around center in
// Overpass order (south,west,north,east).
func bbox(center domain.GeoPoint, radius float64) string {
	b := domain.BoundsAround(center, radius)
	return fmt.Sprintf("%.7f,%.7f,%.7f,%.7f", b.MinLat, b.MinLon, b.MaxLat, b.MaxLon)
}

func header(timeout time.Duration) string {
	secs := int(timeout / time.Second)
	if secs <= 0 {
		secs = 180
	}
	return fmt.Sprintf("[out:json][timeout:%d];", secs)
}

// roadQuery selects drivable ways and their nodes.
func roadQuery(center domain.GeoPoint, radius float64, timeout time.Duration) string {
	var b strings.Builder
	b.WriteString(header(timeout))
	fmt.Fprintf(&b, "(way%s(%s););", driveFilter, bbox(center, radius))
	b.WriteString("(._;>;);out body;")
	return b.String()
}

// tagQuery selects ways and relations tagged key=value together with
// their member ways and nodes.
func tagQuery(center domain.GeoPoint, radius float64, key, value string, timeout time.Duration) string {
	box := bbox(center, radius)
	var b strings.Builder
	b.WriteString(header(timeout))
	fmt.Fprintf(&b, "(way[%q=%q](%s);relation[%q=%q](%s););", key, value, box, key, value, box)
	b.WriteString("(._;>;);out body;")
	return b.String()
}
