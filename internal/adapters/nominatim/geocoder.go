package nominatim

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"

	"github.com/samirrijal/mapposter/internal/core/domain"
)

// Config configures the Nominatim search client.
type Config struct {
	URL       string // search endpoint, e.g. https://nominatim.openstreetmap.org/search
	UserAgent string
	Timeout   time.Duration
}

// Geocoder resolves place names with the Nominatim search API.
type Geocoder struct {
	client *fasthttp.Client
	cfg    Config
	logger *slog.Logger
}

// New creates a Nominatim geocoder.
func New(cfg Config, logger *slog.Logger) *Geocoder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Geocoder{
		client: &fasthttp.Client{
			Name:         cfg.UserAgent,
			ReadTimeout:  cfg.Timeout,
			WriteTimeout: cfg.Timeout,
		},
		cfg:    cfg,
		logger: logger,
	}
}

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode returns the first search result for query.
func (g *Geocoder) Geocode(ctx context.Context, query string) (domain.GeoPoint, error) {
	if err := ctx.Err(); err != nil {
		return domain.GeoPoint{}, errors.WithStack(err)
	}

	uri, err := g.searchURI(query)
	if err != nil {
		return domain.GeoPoint{}, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uri)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(g.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	if err := g.client.DoDeadline(req, resp, g.deadline(ctx)); err != nil {
		return domain.GeoPoint{}, errors.Wrapf(err, "nominatim request for %q", query)
	}
	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		return domain.GeoPoint{}, errors.Errorf("nominatim returned status %d for %q", code, query)
	}

	var places []place
	if err := json.Unmarshal(resp.Body(), &places); err != nil {
		return domain.GeoPoint{}, errors.Wrap(err, "decode nominatim response")
	}
	if len(places) == 0 {
		return domain.GeoPoint{}, errors.WithStack(&domain.LookupError{Query: query})
	}

	first := places[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return domain.GeoPoint{}, errors.Wrapf(err, "parse latitude %q", first.Lat)
	}
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return domain.GeoPoint{}, errors.Wrapf(err, "parse longitude %q", first.Lon)
	}

	g.logger.Debug("nominatim match", "query", query, "display_name", first.DisplayName, "results", len(places))
	return domain.GeoPoint{Lat: lat, Lon: lon}, nil
}

func (g *Geocoder) searchURI(query string) (string, error) {
	u, err := url.Parse(g.cfg.URL)
	if err != nil {
		return "", errors.Wrapf(err, "parse geocoder url %q", g.cfg.URL)
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("format", "jsonv2")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// deadline is the earlier of the context deadline and the configured
// timeout.
func (g *Geocoder) deadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(g.cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		return d
	}
	return deadline
}
