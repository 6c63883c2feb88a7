package render

import (
	"github.com/paulmach/orb"

	"github.com/samirrijal/mapposter/internal/core/domain"
)

// PosterInches is the edge length of the square poster.
const PosterInches = 12

// pointsPerInch is the SVG user unit density.
const pointsPerInch = 72

const coastlineWidth = 2.5

// areaLineWidth strokes open ways found in the water and park layers.
const areaLineWidth = 1.0

// area is one filled layer in canvas coordinates.
type area struct {
	color    string
	polygons []orb.Polygon
	lines    []orb.LineString
}

type stroke struct {
	line  orb.LineString
	color string
	width float64 // points
}

// anchor is the horizontal alignment of a text item.
type anchor int

const (
	anchorStart anchor = iota
	anchorEnd
)

// text is one label item in points. y is the baseline measured from the
// top of the canvas.
type text struct {
	value   string
	x, y    float64
	size    float64
	bold    bool
	anchor  anchor
	opacity float64
}

// canvas is a scene laid out in points on a square page.
type canvas struct {
	size       float64
	background string
	textColor  string
	water      area
	parks      area
	coastline  []stroke
	roads      []stroke
	bar        orb.Bound
	texts      []text
}

// layout projects and clips the scene onto a PosterInches square page
// measured in points. Layers end up in drawing order.
func layout(scene *domain.Scene) *canvas {
	size := float64(PosterInches * pointsPerInch)
	f := newFrame(scene.Center, scene.Radius, size)
	theme := scene.Theme

	c := &canvas{
		size:       size,
		background: theme.Background,
		textColor:  theme.Text,
		water:      layoutArea(f, scene.Water, theme.Water),
		parks:      layoutArea(f, scene.Parks, theme.Parks),
	}

	for _, line := range scene.Coastline {
		for _, ls := range domain.Lines(f.geometry(line)) {
			c.coastline = append(c.coastline, stroke{line: ls, color: theme.Coastline, width: coastlineWidth})
		}
	}

	for _, seg := range scene.Roads {
		for _, ls := range domain.Lines(f.geometry(seg.Geometry)) {
			c.roads = append(c.roads, stroke{line: ls, color: seg.Color, width: seg.Width})
		}
	}

	c.bar, c.texts = layoutLabels(scene.Labels, size)
	return c
}

func layoutArea(f frame, layer domain.Layer, color string) area {
	a := area{color: color}
	for _, feature := range layer {
		if feature.Geometry == nil {
			continue
		}
		g := f.geometry(feature.Geometry)
		a.polygons = append(a.polygons, polygons(g)...)
		a.lines = append(a.lines, domain.Lines(g)...)
	}
	return a
}

func polygons(g orb.Geometry) []orb.Polygon {
	switch g := g.(type) {
	case orb.Polygon:
		if len(g) > 0 && len(g[0]) >= 3 {
			return []orb.Polygon{g}
		}
	case orb.MultiPolygon:
		var out []orb.Polygon
		for _, p := range g {
			out = append(out, polygons(p)...)
		}
		return out
	case orb.Collection:
		var out []orb.Polygon
		for _, member := range g {
			out = append(out, polygons(member)...)
		}
		return out
	}
	return nil
}

// layoutLabels places the poster text in the lower left corner and the
// attribution in the lower right one. Positions are page fractions
// measured from the bottom.
func layoutLabels(labels domain.Labels, size float64) (orb.Bound, []text) {
	at := func(fx, fy float64) (float64, float64) {
		return fx * size, (1 - fy) * size
	}

	var texts []text
	i := 0
	for _, letter := range labels.City {
		x, y := at(0.05+float64(i)*0.06, 0.14)
		texts = append(texts, text{value: string(letter), x: x, y: y, size: 24, bold: true, opacity: 1})
		i++
	}

	barX, barY := at(0.05, 0.125)
	bar := orb.Bound{
		Min: orb.Point{barX, barY - 0.003*size},
		Max: orb.Point{barX + 0.15*size, barY},
	}

	if labels.Country != "" {
		x, y := at(0.05, 0.10)
		texts = append(texts, text{value: labels.Country, x: x, y: y, size: 14, opacity: 1})
	}

	x, y := at(0.05, 0.07)
	texts = append(texts, text{value: labels.Coordinates, x: x, y: y, size: 10, opacity: 1})

	if labels.Attribution != "" {
		x, y = at(0.98, 0.02)
		texts = append(texts, text{value: labels.Attribution, x: x, y: y, size: 8, anchor: anchorEnd, opacity: 0.6})
	}
	return bar, texts
}
