// Package app wires the poster pipeline from configuration.
package app

import (
	"context"
	"log/slog"
	"time"

	natsadapter "github.com/samirrijal/mapposter/internal/adapters/nats"
	"github.com/samirrijal/mapposter/internal/adapters/nominatim"
	"github.com/samirrijal/mapposter/internal/adapters/overpass"
	"github.com/samirrijal/mapposter/internal/adapters/posterfs"
	"github.com/samirrijal/mapposter/internal/adapters/render"
	"github.com/samirrijal/mapposter/internal/adapters/themestore"
	"github.com/samirrijal/mapposter/internal/core/ports"
	"github.com/samirrijal/mapposter/internal/core/usecases"
	"github.com/samirrijal/mapposter/internal/pkg/config"
	"github.com/samirrijal/mapposter/internal/pkg/metrics"
	"github.com/samirrijal/mapposter/internal/pkg/telemetry"
)

// natsTimeout bounds connecting to NATS and flushing one event.
const natsTimeout = 2 * time.Second

// App holds the services of one process.
type App struct {
	Themes  *usecases.ThemeService
	Posters *usecases.PosterService

	cfg     *config.Config
	logger  *slog.Logger
	closers []func()
}

// New builds the pipeline. Optional integrations (tracing, NATS) that
// cannot be set up are logged and left out.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) *App {
	a := &App{cfg: cfg, logger: logger}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.TempoAddr)
		if err != nil {
			logger.Warn("telemetry init failed", "error", err)
		} else {
			a.closers = append(a.closers, shutdown)
		}
	}

	var events ports.EventPublisher
	if cfg.NATS.URL != "" {
		pub, err := natsadapter.NewPublisher(cfg.NATS.URL, cfg.NATS.Subject, cfg.Telemetry.ServiceName, natsTimeout)
		if err != nil {
			logger.Warn("nats unavailable", "error", err)
		} else {
			events = pub
			a.closers = append(a.closers, pub.Close)
		}
	}

	themes := usecases.NewThemeService(themestore.New(cfg.Paths.ThemesDir, logger), logger)
	geocoder := nominatim.New(nominatim.Config{
		URL:       cfg.Geocoder.URL,
		UserAgent: cfg.Geocoder.UserAgent,
		Timeout:   cfg.Geocoder.TimeoutDuration(),
	}, logger)
	provider := overpass.New(overpass.Config{
		URL:     cfg.Overpass.URL,
		Timeout: cfg.Overpass.TimeoutDuration(),
	}, logger)

	a.Themes = themes
	a.Posters = usecases.NewPosterService(
		themes,
		geocoder,
		usecases.NewFeatureService(provider, logger),
		render.New(logger),
		posterfs.New(cfg.Paths.PostersDir, logger),
		events,
		logger,
	)
	return a
}

// Close pushes the run metrics when a Pushgateway is configured and
// releases the optional integrations.
func (a *App) Close(ctx context.Context) {
	if url := a.cfg.Metrics.PushgatewayURL; url != "" {
		if err := metrics.Push(ctx, url, "mapposter"); err != nil {
			a.logger.Warn("metrics push failed", "url", url, "error", err)
		}
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
