package usecases

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samirrijal/mapposter/internal/core/domain"
	"github.com/samirrijal/mapposter/internal/core/ports"
	"github.com/samirrijal/mapposter/internal/pkg/metrics"
	"github.com/samirrijal/mapposter/internal/pkg/telemetry"
)

// PosterService runs the poster pipeline: theme, geocode, fetch, style,
// render and write.
type PosterService struct {
	themes   *ThemeService
	geocoder ports.Geocoder
	features *FeatureService
	renderer ports.Renderer
	store    ports.PosterStore
	events   ports.EventPublisher
	logger   *slog.Logger
	tracer   trace.Tracer
	now      func() time.Time
}

// NewPosterService creates a new PosterService. events may be nil.
func NewPosterService(
	themes *ThemeService,
	geocoder ports.Geocoder,
	features *FeatureService,
	renderer ports.Renderer,
	store ports.PosterStore,
	events ports.EventPublisher,
	logger *slog.Logger,
) *PosterService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PosterService{
		themes:   themes,
		geocoder: geocoder,
		features: features,
		renderer: renderer,
		store:    store,
		events:   events,
		logger:   logger,
		tracer:   otel.Tracer(telemetry.TracerName),
		now:      time.Now,
	}
}

// SetClock replaces the clock used for output file names.
func (s *PosterService) SetClock(now func() time.Time) {
	s.now = now
}

// Generate creates one poster. Nothing is written unless every stage
// before the write succeeded.
func (s *PosterService) Generate(ctx context.Context, req domain.PosterRequest) (*domain.Poster, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	ctx, span := s.tracer.Start(ctx, "poster.generate", trace.WithAttributes(
		attribute.String("city", req.City),
		attribute.String("theme", req.Theme),
		attribute.String("format", string(req.Format)),
	))
	defer span.End()

	var theme domain.Theme
	err := s.stage(ctx, telemetry.StageTheme, func(ctx context.Context) error {
		var err error
		theme, err = s.themes.Load(req.Theme)
		return errors.WithMessagef(err, "load theme %q", req.Theme)
	})
	if err != nil {
		return nil, s.fail(span, err)
	}
	s.logger.Info("using theme", "theme", theme.Name)

	var center domain.GeoPoint
	err = s.stage(ctx, telemetry.StageGeocode, func(ctx context.Context) error {
		query := domain.GeocodeQuery(req.City, req.Country)
		s.logger.Info("geocoding", "query", query)
		var err error
		center, err = s.geocoder.Geocode(ctx, query)
		return err
	})
	if err != nil {
		return nil, s.fail(span, err)
	}
	s.logger.Info("coordinates resolved", "lat", center.Lat, "lon", center.Lon)

	var set *domain.FeatureSet
	err = s.stage(ctx, telemetry.StageFeatures, func(ctx context.Context) error {
		var err error
		set, err = s.features.Fetch(ctx, center, req.Distance)
		return err
	})
	if err != nil {
		return nil, s.fail(span, err)
	}

	var scene *domain.Scene
	_ = s.stage(ctx, telemetry.StageStyle, func(ctx context.Context) error {
		scene = &domain.Scene{
			Center:    center,
			Radius:    req.Distance,
			Theme:     theme,
			Water:     set.Water,
			Parks:     set.Parks,
			Coastline: set.Coastline,
			Roads:     StyleRoads(set.Roads, theme),
			Labels:    domain.NewLabels(req.City, req.Country, center),
		}
		return nil
	})

	var data []byte
	err = s.stage(ctx, telemetry.StageRender, func(ctx context.Context) error {
		s.logger.Info("rendering poster", "roads", len(scene.Roads), "format", req.Format)
		var err error
		data, err = s.renderer.Render(ctx, scene, req.Format, req.DPI)
		return errors.WithMessage(err, "render poster")
	})
	if err != nil {
		return nil, s.fail(span, err)
	}

	var poster *domain.Poster
	err = s.stage(ctx, telemetry.StageWrite, func(ctx context.Context) error {
		var err error
		poster, err = s.store.Save(ctx, req, s.now(), data)
		return errors.WithMessage(err, "write poster")
	})
	if err != nil {
		return nil, s.fail(span, err)
	}
	metrics.PostersWritten.WithLabelValues(string(req.Format)).Inc()
	metrics.PosterBytes.Set(float64(poster.Size))
	s.logger.Info("poster saved", "path", poster.Path, "bytes", poster.Size)

	s.publish(ctx, req, center, scene, poster)
	return poster, nil
}

func (s *PosterService) stage(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, name)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	metrics.StageDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (s *PosterService) fail(span trace.Span, err error) error {
	span.SetStatus(codes.Error, err.Error())
	return err
}

func (s *PosterService) publish(ctx context.Context, req domain.PosterRequest, center domain.GeoPoint, scene *domain.Scene, poster *domain.Poster) {
	if s.events == nil {
		return
	}
	event := &domain.PosterEvent{
		City:        req.City,
		Country:     req.Country,
		Theme:       req.Theme,
		Format:      req.Format,
		Path:        poster.Path,
		Lat:         center.Lat,
		Lon:         center.Lon,
		Roads:       len(scene.Roads),
		GeneratedAt: poster.CreatedAt,
	}
	if err := s.events.PublishPosterGenerated(ctx, event); err != nil {
		s.logger.Warn("publish poster event failed", "error", err)
	}
}
