package overpass

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"
	goverpass "github.com/serjvanilla/go-overpass"

	"github.com/samirrijal/mapposter/internal/core/domain"
)

// Config configures the Overpass client.
type Config struct {
	URL     string // interpreter endpoint
	Timeout time.Duration
}

// Provider fetches OSM geometry from an Overpass API endpoint.
type Provider struct {
	cfg       Config
	transport http.RoundTripper
	logger    *slog.Logger
}

// New creates an Overpass feature provider.
func New(cfg Config, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{cfg: cfg, transport: http.DefaultTransport, logger: logger}
}

// RoadNetwork fetches the drivable roads within radius of center.
func (p *Provider) RoadNetwork(ctx context.Context, center domain.GeoPoint, radius float64) (*domain.RoadNetwork, error) {
	res, err := p.query(ctx, roadQuery(center, radius, p.cfg.Timeout))
	if err != nil {
		return nil, errors.WithMessage(err, "query roads")
	}
	network := buildRoadNetwork(res)
	p.logger.Debug("road network assembled", "ways", len(res.Ways), "nodes", len(network.Nodes), "edges", len(network.Edges))
	return network, nil
}

// Features fetches the elements tagged key=value within radius of center.
func (p *Provider) Features(ctx context.Context, center domain.GeoPoint, radius float64, key, value string) (domain.Layer, error) {
	res, err := p.query(ctx, tagQuery(center, radius, key, value, p.cfg.Timeout))
	if err != nil {
		return nil, errors.WithMessagef(err, "query %s=%s", key, value)
	}
	layer, dropped := assembleLayer(res, key, value)
	if dropped > 0 {
		p.logger.Debug("dropped unclosed rings", "tag", key+"="+value, "rings", dropped)
	}
	return layer, nil
}

func (p *Provider) query(ctx context.Context, q string) (goverpass.Result, error) {
	if err := ctx.Err(); err != nil {
		return goverpass.Result{}, errors.WithStack(err)
	}
	httpClient := &http.Client{
		Timeout:   p.cfg.Timeout,
		Transport: contextTransport{ctx: ctx, base: p.transport},
	}
	client := goverpass.NewWithSettings(p.cfg.URL, 1, httpClient)

	start := time.Now()
	res, err := client.Query(q)
	if err != nil {
		return goverpass.Result{}, errors.Wrap(err, "overpass query")
	}
	p.logger.Debug("overpass query done",
		"nodes", len(res.Nodes), "ways", len(res.Ways), "relations", len(res.Relations),
		"elapsed", time.Since(start))
	return res, nil
}

// contextTransport binds outgoing requests to ctx; the Overpass client
// has no context parameter of its own.
type contextTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}
