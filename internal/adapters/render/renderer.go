package render

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/samirrijal/mapposter/internal/core/domain"
)

// Renderer draws poster scenes as SVG or PNG.
type Renderer struct {
	logger *slog.Logger
}

// New creates a Renderer.
func New(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger}
}

// Render lays out the scene on a square page and encodes it.
func (r *Renderer) Render(ctx context.Context, scene *domain.Scene, format domain.Format, dpi int) ([]byte, error) {
	if scene == nil {
		return nil, errors.New("render: nil scene")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	c := layout(scene)
	r.logger.Debug("scene laid out",
		"water", len(c.water.polygons), "parks", len(c.parks.polygons),
		"coastline", len(c.coastline), "roads", len(c.roads))

	switch format {
	case domain.FormatSVG:
		return encodeSVG(c), nil
	case domain.FormatPNG:
		if dpi <= 0 {
			return nil, errors.Errorf("render: invalid dpi %d", dpi)
		}
		return encodePNG(ctx, c, dpi)
	}
	return nil, errors.Errorf("render: unsupported format %q", format)
}
