package overpass

import (
	"sort"

	"github.com/paulmach/orb"
	goverpass "github.com/serjvanilla/go-overpass"

	"github.com/samirrijal/mapposter/internal/core/domain"
	"github.com/samirrijal/mapposter/internal/pkg/geospatial"
)

// buildRoadNetwork turns highway ways into a graph. Graph nodes are way
// endpoints and every OSM node shared by more than one way position;
// each way is split into one edge per pair of consecutive graph nodes.
func buildRoadNetwork(res goverpass.Result) *domain.RoadNetwork {
	ways := sortedWays(res)

	uses := make(map[int64]int)
	for _, w := range ways {
		for _, n := range w.Nodes {
			uses[n.ID]++
		}
	}

	network := &domain.RoadNetwork{}
	seen := make(map[int64]bool)
	addNode := func(n *goverpass.Node) {
		if seen[n.ID] {
			return
		}
		seen[n.ID] = true
		network.Nodes = append(network.Nodes, domain.RoadNode{
			ID:       n.ID,
			Location: domain.GeoPoint{Lat: n.Lat, Lon: n.Lon},
		})
	}

	for _, w := range ways {
		if len(w.Nodes) < 2 {
			continue
		}
		start := 0
		addNode(w.Nodes[0])
		for i := 1; i < len(w.Nodes); i++ {
			if i != len(w.Nodes)-1 && uses[w.Nodes[i].ID] < 2 {
				continue
			}
			addNode(w.Nodes[i])
			network.Edges = append(network.Edges, newEdge(w, w.Nodes[start:i+1]))
			start = i
		}
	}
	return network
}

func newEdge(w *goverpass.Way, nodes []*goverpass.Node) domain.RoadEdge {
	line := make(orb.LineString, len(nodes))
	coords := make([][2]float64, len(nodes))
	for i, n := range nodes {
		line[i] = orb.Point{n.Lon, n.Lat}
		coords[i] = [2]float64{n.Lon, n.Lat}
	}
	return domain.RoadEdge{
		From:     nodes[0].ID,
		To:       nodes[len(nodes)-1].ID,
		WayID:    w.ID,
		Tags:     domain.Tags(w.Tags),
		Length:   geospatial.PathLength(coords),
		Geometry: line,
	}
}

func sortedWays(res goverpass.Result) []*goverpass.Way {
	ways := make([]*goverpass.Way, 0, len(res.Ways))
	for _, w := range res.Ways {
		ways = append(ways, w)
	}
	sort.Slice(ways, func(i, j int) bool { return ways[i].ID < ways[j].ID })
	return ways
}
