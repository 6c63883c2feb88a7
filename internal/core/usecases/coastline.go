package usecases

import (
	"context"

	"github.com/paulmach/orb"

	"github.com/samirrijal/mapposter/internal/core/domain"
	"github.com/samirrijal/mapposter/internal/core/ports"
)

// CoastlineNone is reported when no strategy produced boundary lines.
const CoastlineNone = "none"

// CoastlineStrategy is one tier of the coastline fallback chain.
type CoastlineStrategy interface {
	Name() string
	Boundaries(ctx context.Context) ([]orb.LineString, error)
}

// coastlineRadiusFactor widens the coastline query; coastline ways often
// lie outside the primary radius.
const coastlineRadiusFactor = 1.5

// TaggedCoastline fetches natural=coastline ways.
type TaggedCoastline struct {
	Provider ports.FeatureProvider
	Center   domain.GeoPoint
	Radius   float64
}

func (TaggedCoastline) Name() string { return "coastline" }

func (c TaggedCoastline) Boundaries(ctx context.Context) ([]orb.LineString, error) {
	layer, err := c.Provider.Features(ctx, c.Center, c.Radius*coastlineRadiusFactor, "natural", "coastline")
	if err != nil {
		return nil, err
	}
	var lines []orb.LineString
	for _, f := range layer {
		lines = append(lines, domain.Outlines(f.Geometry)...)
	}
	return lines, nil
}

// WaterBoundaries uses the exteriors of water polygons as coastline.
type WaterBoundaries struct {
	Water domain.Layer
}

func (WaterBoundaries) Name() string { return "water" }

func (w WaterBoundaries) Boundaries(context.Context) ([]orb.LineString, error) {
	var lines []orb.LineString
	for _, f := range w.Water {
		lines = append(lines, domain.PolygonOutlines(f.Geometry)...)
	}
	return lines, nil
}

// ResolveCoastline tries each strategy in order and returns the lines of
// the first one that yields any, with its name. Failing strategies are
// reported to onError and skipped. When every tier comes up empty the
// result is nil and CoastlineNone.
func ResolveCoastline(ctx context.Context, strategies []CoastlineStrategy, onError func(name string, err error)) ([]orb.LineString, string) {
	for _, s := range strategies {
		lines, err := s.Boundaries(ctx)
		if err != nil {
			if onError != nil {
				onError(s.Name(), err)
			}
			continue
		}
		if len(lines) > 0 {
			return lines, s.Name()
		}
	}
	return nil, CoastlineNone
}
