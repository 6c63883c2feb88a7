package render

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
	"github.com/paulmach/orb/project"

	"github.com/samirrijal/mapposter/internal/core/domain"
)

// frame maps WGS 84 coordinates onto a square canvas of size units with
// the origin in the top left corner. The visible area is the bounding box
// of the poster radius in Web Mercator, centered and scaled to fit.
type frame struct {
	size   float64
	min    orb.Point // mercator
	scale  float64
	offset orb.Point // canvas
	bound  orb.Bound // canvas
}

func newFrame(center domain.GeoPoint, radius, size float64) frame {
	box := domain.BoundsAround(center, radius).Bound()
	lo := project.WGS84.ToMercator(box.Min)
	hi := project.WGS84.ToMercator(box.Max)

	w, h := hi[0]-lo[0], hi[1]-lo[1]
	span := math.Max(w, h)
	if span <= 0 {
		span = 1
	}
	scale := size / span

	return frame{
		size:  size,
		min:   lo,
		scale: scale,
		offset: orb.Point{
			(size - w*scale) / 2,
			(size - h*scale) / 2,
		},
		bound: orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{size, size}},
	}
}

// point projects one lon/lat point to canvas coordinates.
func (f frame) point(p orb.Point) orb.Point {
	m := project.WGS84.ToMercator(p)
	x := f.offset[0] + (m[0]-f.min[0])*f.scale
	y := f.size - (f.offset[1] + (m[1]-f.min[1])*f.scale)
	return orb.Point{x, y}
}

// geometry returns a projected copy of g clipped to the canvas, or nil
// when nothing of g is visible.
func (f frame) geometry(g orb.Geometry) orb.Geometry {
	projected := f.project(g)
	if projected == nil {
		return nil
	}
	return clip.Geometry(f.bound, projected)
}

func (f frame) project(g orb.Geometry) orb.Geometry {
	switch g := g.(type) {
	case orb.Point:
		return f.point(g)
	case orb.LineString:
		if len(g) == 0 {
			return nil
		}
		return orb.LineString(f.points(g))
	case orb.MultiLineString:
		out := make(orb.MultiLineString, 0, len(g))
		for _, ls := range g {
			if len(ls) > 0 {
				out = append(out, f.points(ls))
			}
		}
		return out
	case orb.Ring:
		return orb.Ring(f.points(g))
	case orb.Polygon:
		if len(g) == 0 {
			return nil
		}
		return f.polygon(g)
	case orb.MultiPolygon:
		out := make(orb.MultiPolygon, 0, len(g))
		for _, p := range g {
			if len(p) > 0 {
				out = append(out, f.polygon(p))
			}
		}
		return out
	case orb.Collection:
		out := make(orb.Collection, 0, len(g))
		for _, member := range g {
			if p := f.project(member); p != nil {
				out = append(out, p)
			}
		}
		return out
	}
	return nil
}

func (f frame) polygon(p orb.Polygon) orb.Polygon {
	out := make(orb.Polygon, len(p))
	for i, r := range p {
		out[i] = orb.Ring(f.points(r))
	}
	return out
}

func (f frame) points(ps []orb.Point) []orb.Point {
	out := make([]orb.Point, len(ps))
	for i, p := range ps {
		out[i] = f.point(p)
	}
	return out
}
