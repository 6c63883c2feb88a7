package render

import (
	"bytes"
	"context"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// encodePNG rasterizes the canvas at dpi. Canvas points are scaled by
// dpi/72, so stroke widths and font sizes keep their physical size. gg
// transforms path points but not line widths, so widths are scaled here.
func encodePNG(ctx context.Context, c *canvas, dpi int) ([]byte, error) {
	scale := float64(dpi) / pointsPerInch
	px := int(c.size*scale + 0.5)

	dc := gg.NewContext(px, px)
	dc.SetHexColor(c.background)
	dc.Clear()
	dc.Scale(scale, scale)

	fillArea(dc, c.water, scale)
	fillArea(dc, c.parks, scale)
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	strokeLines(dc, c.coastline, scale)
	strokeLines(dc, c.roads, scale)
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	dc.SetHexColor(c.textColor)
	dc.DrawRectangle(c.bar.Min[0], c.bar.Min[1], c.bar.Max[0]-c.bar.Min[0], c.bar.Max[1]-c.bar.Min[1])
	dc.Fill()

	// Text is drawn unscaled so glyphs are hinted at device resolution.
	dc.Identity()
	for _, t := range c.texts {
		face, err := fontFace(t.size, t.bold, float64(dpi))
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		dc.SetHexColor(withAlpha(c.textColor, t.opacity))
		ax := 0.0
		if t.anchor == anchorEnd {
			ax = 1
		}
		dc.DrawStringAnchored(t.value, t.x*scale, t.y*scale, ax, 0)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(err, "encode png")
	}
	return buf.Bytes(), nil
}

func fillArea(dc *gg.Context, a area, scale float64) {
	dc.SetHexColor(a.color)
	dc.SetFillRuleEvenOdd()
	for _, p := range a.polygons {
		for _, r := range p {
			tracePath(dc, orb.LineString(r))
			dc.ClosePath()
		}
		dc.Fill()
	}
	dc.SetLineWidth(areaLineWidth * scale)
	for _, ls := range a.lines {
		tracePath(dc, ls)
		dc.Stroke()
	}
}

func strokeLines(dc *gg.Context, strokes []stroke, scale float64) {
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	for _, s := range strokes {
		dc.SetHexColor(s.color)
		dc.SetLineWidth(s.width * scale)
		tracePath(dc, s.line)
		dc.Stroke()
	}
}

func tracePath(dc *gg.Context, ls orb.LineString) {
	dc.NewSubPath()
	for i, p := range ls {
		if i == 0 {
			dc.MoveTo(p[0], p[1])
		} else {
			dc.LineTo(p[0], p[1])
		}
	}
}

// withAlpha appends an alpha channel to a "#RRGGBB" color.
func withAlpha(hex string, opacity float64) string {
	if opacity >= 1 || len(hex) != 7 {
		return hex
	}
	a := int(opacity*255 + 0.5)
	const digits = "0123456789abcdef"
	return hex + string([]byte{digits[a>>4], digits[a&0x0f]})
}
