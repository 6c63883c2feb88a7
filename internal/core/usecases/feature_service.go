package usecases

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/samirrijal/mapposter/internal/core/domain"
	"github.com/samirrijal/mapposter/internal/core/ports"
	"github.com/samirrijal/mapposter/internal/pkg/metrics"
)

// FeatureService fetches the four feature layers of a poster.
type FeatureService struct {
	provider ports.FeatureProvider
	logger   *slog.Logger
}

// NewFeatureService creates a new FeatureService.
func NewFeatureService(provider ports.FeatureProvider, logger *slog.Logger) *FeatureService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FeatureService{provider: provider, logger: logger}
}

// Fetch retrieves roads, water, parks and coastline around center.
// Layers are fetched one after another. A failing roads fetch aborts;
// the other layers are optional and become absent on failure.
func (s *FeatureService) Fetch(ctx context.Context, center domain.GeoPoint, radius float64) (*domain.FeatureSet, error) {
	s.logger.Info("fetching road network", "radius_m", radius)
	roads, err := s.provider.RoadNetwork(ctx, center, radius)
	if err != nil {
		metrics.LayerFetchErrors.WithLabelValues(string(domain.LayerRoads)).Inc()
		return nil, errors.WithMessage(err, "fetch road network")
	}
	metrics.FeaturesFetched.WithLabelValues(string(domain.LayerRoads)).Add(float64(len(roads.Edges)))
	s.logger.Info("road network fetched", "nodes", len(roads.Nodes), "edges", len(roads.Edges))

	set := &domain.FeatureSet{Roads: roads}

	s.logger.Info("fetching water bodies")
	set.Water = s.optionalLayer(ctx, domain.LayerWater, center, radius, "natural", "water")

	s.logger.Info("fetching parks")
	set.Parks = s.optionalLayer(ctx, domain.LayerParks, center, radius, "leisure", "park")

	s.logger.Info("fetching coastline/boundary")
	strategies := []CoastlineStrategy{
		TaggedCoastline{Provider: s.provider, Center: center, Radius: radius},
		WaterBoundaries{Water: set.Water},
	}
	set.Coastline, set.CoastlineSource = ResolveCoastline(ctx, strategies, func(name string, err error) {
		metrics.LayerFetchErrors.WithLabelValues(string(domain.LayerCoastline)).Inc()
		s.logger.Warn("coastline source failed", "source", name, "error", err)
	})
	metrics.CoastlineSource.WithLabelValues(set.CoastlineSource).Set(1)

	switch set.CoastlineSource {
	case CoastlineNone:
		s.logger.Info("no coastline data found")
	case "water":
		s.logger.Info("using water body boundaries as coastline", "lines", len(set.Coastline))
	default:
		s.logger.Info("coastline fetched", "lines", len(set.Coastline))
	}
	metrics.FeaturesFetched.WithLabelValues(string(domain.LayerCoastline)).Add(float64(len(set.Coastline)))

	return set, nil
}

func (s *FeatureService) optionalLayer(ctx context.Context, kind domain.LayerKind, center domain.GeoPoint, radius float64, key, value string) domain.Layer {
	layer, err := s.provider.Features(ctx, center, radius, key, value)
	if err != nil {
		metrics.LayerFetchErrors.WithLabelValues(string(kind)).Inc()
		s.logger.Warn("feature layer unavailable", "layer", kind, "error", err)
		return nil
	}
	metrics.FeaturesFetched.WithLabelValues(string(kind)).Add(float64(len(layer)))
	return layer
}
