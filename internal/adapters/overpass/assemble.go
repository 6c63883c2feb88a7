package overpass

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	goverpass "github.com/serjvanilla/go-overpass"

	"github.com/samirrijal/mapposter/internal/core/domain"
)

// assembleLayer builds the features tagged key=value. Closed ways become
// polygons, open ways line strings and relations multipolygons. Ways that
// already form the outer ring of a matching relation are not repeated.
// It also returns the number of relation rings that could not be closed.
func assembleLayer(res goverpass.Result, key, value string) (domain.Layer, int) {
	var layer domain.Layer
	var dropped int
	covered := make(map[int64]bool)

	for _, r := range sortedRelations(res) {
		if r.Tags[key] != value {
			continue
		}
		g, unclosed := relationGeometry(r)
		dropped += unclosed
		for _, m := range r.Members {
			if m.Way != nil && m.Role != "inner" {
				covered[m.Way.ID] = true
			}
		}
		if g == nil {
			continue
		}
		layer = append(layer, domain.Feature{ID: r.ID, Geometry: g, Tags: domain.Tags(r.Tags)})
	}

	for _, w := range sortedWays(res) {
		if w.Tags[key] != value || covered[w.ID] {
			continue
		}
		g := wayGeometry(w)
		if g == nil {
			continue
		}
		layer = append(layer, domain.Feature{ID: w.ID, Geometry: g, Tags: domain.Tags(w.Tags)})
	}
	return layer, dropped
}

func wayGeometry(w *goverpass.Way) orb.Geometry {
	s := newSegment(w)
	switch {
	case s.closed():
		return orb.Polygon{s.ring()}
	case len(s.points) >= 2:
		return orb.LineString(s.points)
	}
	return nil
}

// relationGeometry merges the member ways of a multipolygon into rings
// and assigns every inner ring to the first outer ring containing it.
func relationGeometry(r *goverpass.Relation) (orb.Geometry, int) {
	var outers, inners []segment
	for _, m := range r.Members {
		if m.Way == nil || len(m.Way.Nodes) < 2 {
			continue
		}
		if m.Role == "inner" {
			inners = append(inners, newSegment(m.Way))
		} else {
			outers = append(outers, newSegment(m.Way))
		}
	}

	var unclosed int
	var polygons orb.MultiPolygon
	for _, s := range mergeRings(outers) {
		if !s.closed() {
			unclosed++
			continue
		}
		polygons = append(polygons, orb.Polygon{s.ring()})
	}
	for _, s := range mergeRings(inners) {
		if !s.closed() {
			unclosed++
			continue
		}
		hole := s.ring()
		for i := range polygons {
			if planar.RingContains(polygons[i][0], hole[0]) {
				polygons[i] = append(polygons[i], hole)
				break
			}
		}
	}

	switch len(polygons) {
	case 0:
		return nil, unclosed
	case 1:
		return polygons[0], unclosed
	}
	return polygons, unclosed
}

func sortedRelations(res goverpass.Result) []*goverpass.Relation {
	rels := make([]*goverpass.Relation, 0, len(res.Relations))
	for _, r := range res.Relations {
		rels = append(rels, r)
	}
	sort.Slice(rels, func(i, j int) bool { return rels[i].ID < rels[j].ID })
	return rels
}
