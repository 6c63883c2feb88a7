package domain

import "github.com/paulmach/orb"

// LayerKind names one category of map geometry.
type LayerKind string

const (
	LayerRoads     LayerKind = "roads"
	LayerWater     LayerKind = "water"
	LayerParks     LayerKind = "parks"
	LayerCoastline LayerKind = "coastline"
)

// Tags are the key/value attributes of an OSM element.
type Tags map[string]string

// Feature is one geometry with the tags of the element it was built from.
type Feature struct {
	ID       int64        `json:"id"`
	Geometry orb.Geometry `json:"-"`
	Tags     Tags         `json:"tags,omitempty"`
}

// Layer is an ordered collection of features. A nil layer means the data
// is absent, which downstream code treats the same as an empty one.
type Layer []Feature

// Empty reports whether the layer carries no features.
func (l Layer) Empty() bool {
	return len(l) == 0
}

// RoadNode is an intersection or dead end of the road network.
type RoadNode struct {
	ID       int64    `json:"id"`
	Location GeoPoint `json:"location"`
}

// RoadEdge is a piece of road between two nodes.
type RoadEdge struct {
	From     int64          `json:"from"`
	To       int64          `json:"to"`
	WayID    int64          `json:"way_id"`
	Tags     Tags           `json:"tags,omitempty"`
	Length   float64        `json:"length"` // meters
	Geometry orb.LineString `json:"-"`
}

// Highway returns the highway tag of the edge.
func (e RoadEdge) Highway() string {
	return e.Tags["highway"]
}

// RoadNetwork is a drivable road graph.
type RoadNetwork struct {
	Nodes []RoadNode `json:"nodes"`
	Edges []RoadEdge `json:"edges"`
}

// FeatureSet carries every layer fetched for one poster.
type FeatureSet struct {
	Roads     *RoadNetwork
	Water     Layer
	Parks     Layer
	Coastline []orb.LineString // resolved boundary lines, see CoastlineSource
	// CoastlineSource records which fallback tier produced Coastline.
	CoastlineSource string
}
