package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/paulmach/orb"
)

// encodeSVG writes the canvas as a vector document. Each geometry part
// stays a separate path so CAD tools can select and extrude it.
func encodeSVG(c *canvas) []byte {
	var buf bytes.Buffer
	doc := svg.New(&buf)

	size := int(c.size)
	doc.Startview(size, size, 0, 0, size, size)
	doc.Rect(0, 0, size, size, fmt.Sprintf(`fill="%s"`, c.background))

	writeArea(doc, "water", c.water)
	writeArea(doc, "parks", c.parks)
	writeStrokes(doc, "coastline", c.coastline)
	writeStrokes(doc, "roads", c.roads)

	doc.Gid("labels")
	doc.Path(rectPath(c.bar), fmt.Sprintf(`fill="%s"`, c.textColor), `stroke="none"`)
	for _, t := range c.texts {
		attrs := []string{
			fmt.Sprintf(`font-size="%s"`, num(t.size)),
			`font-family="sans-serif"`,
			fmt.Sprintf(`fill="%s"`, c.textColor),
		}
		if t.bold {
			attrs = append(attrs, `font-weight="bold"`)
		}
		if t.anchor == anchorEnd {
			attrs = append(attrs, `text-anchor="end"`)
		}
		if t.opacity < 1 {
			attrs = append(attrs, fmt.Sprintf(`fill-opacity="%s"`, num(t.opacity)))
		}
		doc.Text(int(t.x+0.5), int(t.y+0.5), t.value, attrs...)
	}
	doc.Gend()

	doc.End()
	return buf.Bytes()
}

func writeArea(doc *svg.SVG, id string, a area) {
	doc.Gid(id)
	for _, p := range a.polygons {
		doc.Path(polygonPath(p), fmt.Sprintf(`fill="%s"`, a.color), `fill-rule="evenodd"`, `stroke="none"`)
	}
	for _, ls := range a.lines {
		doc.Path(linePath(ls), `fill="none"`, fmt.Sprintf(`stroke="%s"`, a.color),
			fmt.Sprintf(`stroke-width="%s"`, num(areaLineWidth)))
	}
	doc.Gend()
}

func writeStrokes(doc *svg.SVG, id string, strokes []stroke) {
	doc.Gid(id)
	for _, s := range strokes {
		doc.Path(linePath(s.line),
			`fill="none"`,
			fmt.Sprintf(`stroke="%s"`, s.color),
			fmt.Sprintf(`stroke-width="%s"`, num(s.width)),
			`stroke-linecap="round"`,
			`stroke-linejoin="round"`,
		)
	}
	doc.Gend()
}

func linePath(ls orb.LineString) string {
	var b strings.Builder
	for i, p := range ls {
		if i == 0 {
			b.WriteString("M")
		} else {
			b.WriteString(" L")
		}
		b.WriteString(num(p[0]))
		b.WriteByte(' ')
		b.WriteString(num(p[1]))
	}
	return b.String()
}

func polygonPath(p orb.Polygon) string {
	var parts []string
	for _, r := range p {
		if len(r) < 3 {
			continue
		}
		parts = append(parts, linePath(orb.LineString(r))+" Z")
	}
	return strings.Join(parts, " ")
}

func rectPath(b orb.Bound) string {
	return fmt.Sprintf("M%s %s H%s V%s H%s Z",
		num(b.Min[0]), num(b.Min[1]), num(b.Max[0]), num(b.Max[1]), num(b.Min[0]))
}

// num formats a coordinate with two decimals, enough for 1/100 pt.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
