package overpass

import (
	"github.com/paulmach/orb"
	goverpass "github.com/serjvanilla/go-overpass"
)

// segment is a chain of OSM nodes, a way or several joined ways.
type segment struct {
	refs   []int64
	points []orb.Point
}

func newSegment(w *goverpass.Way) segment {
	s := segment{
		refs:   make([]int64, len(w.Nodes)),
		points: make([]orb.Point, len(w.Nodes)),
	}
	for i, n := range w.Nodes {
		s.refs[i] = n.ID
		s.points[i] = orb.Point{n.Lon, n.Lat}
	}
	return s
}

func (s segment) first() int64 { return s.refs[0] }
func (s segment) last() int64  { return s.refs[len(s.refs)-1] }

func (s segment) closed() bool {
	return len(s.refs) >= 4 && s.first() == s.last()
}

func (s segment) ring() orb.Ring {
	return orb.Ring(s.points)
}

func (s segment) reversed() segment {
	out := segment{
		refs:   make([]int64, len(s.refs)),
		points: make([]orb.Point, len(s.points)),
	}
	for i := range s.refs {
		j := len(s.refs) - 1 - i
		out.refs[j] = s.refs[i]
		out.points[j] = s.points[i]
	}
	return out
}

// join appends next, whose first node is the last node of s.
func (s segment) join(next segment) segment {
	out := segment{
		refs:   make([]int64, 0, len(s.refs)+len(next.refs)-1),
		points: make([]orb.Point, 0, len(s.points)+len(next.points)-1),
	}
	out.refs = append(append(out.refs, s.refs...), next.refs[1:]...)
	out.points = append(append(out.points, s.points...), next.points[1:]...)
	return out
}

// mergeRings joins segments that share end nodes, reversing them where
// needed, until each result is closed or cannot be extended. Segments are
// consumed in input order so the output is deterministic.
func mergeRings(segments []segment) []segment {
	open := make([]segment, 0, len(segments))
	for _, s := range segments {
		if len(s.refs) >= 2 {
			open = append(open, s)
		}
	}

	var out []segment
	for len(open) > 0 {
		cur := open[0]
		open = open[1:]
		for !cur.closed() {
			i, reverse := findJoin(open, cur.last())
			if i < 0 {
				break
			}
			next := open[i]
			open = append(open[:i], open[i+1:]...)
			if reverse {
				next = next.reversed()
			}
			cur = cur.join(next)
		}
		out = append(out, cur)
	}
	return out
}

func findJoin(candidates []segment, node int64) (int, bool) {
	for i, c := range candidates {
		if c.first() == node {
			return i, false
		}
		if c.last() == node {
			return i, true
		}
	}
	return -1, false
}
