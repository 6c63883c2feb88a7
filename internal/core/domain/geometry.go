package domain

import "github.com/paulmach/orb"

// Outlines returns the lines to stroke for g. Line strings are returned
// as they are; polygons contribute their outer ring only.
func Outlines(g orb.Geometry) []orb.LineString {
	switch g := g.(type) {
	case orb.LineString:
		return nonEmpty(g)
	case orb.MultiLineString:
		var out []orb.LineString
		for _, ls := range g {
			out = append(out, nonEmpty(ls)...)
		}
		return out
	case orb.Polygon:
		if len(g) == 0 {
			return nil
		}
		return nonEmpty(orb.LineString(g[0]))
	case orb.MultiPolygon:
		var out []orb.LineString
		for _, p := range g {
			out = append(out, Outlines(p)...)
		}
		return out
	case orb.Collection:
		var out []orb.LineString
		for _, member := range g {
			out = append(out, Outlines(member)...)
		}
		return out
	}
	return nil
}

// PolygonOutlines is like Outlines but ignores everything except
// polygons and multi-polygons.
func PolygonOutlines(g orb.Geometry) []orb.LineString {
	switch g.(type) {
	case orb.Polygon, orb.MultiPolygon:
		return Outlines(g)
	}
	return nil
}

// Lines returns the line parts of g. Polygons are skipped.
func Lines(g orb.Geometry) []orb.LineString {
	switch g.(type) {
	case orb.LineString, orb.MultiLineString:
		return Outlines(g)
	}
	return nil
}

func nonEmpty(ls orb.LineString) []orb.LineString {
	if len(ls) < 2 {
		return nil
	}
	return []orb.LineString{ls}
}
