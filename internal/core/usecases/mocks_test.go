package usecases_test

import (
	"context"
	"time"

	"github.com/samirrijal/mapposter/internal/core/domain"
)

// --- Mock ThemeStore ---

type mockThemeStore struct {
	loadFn func(name string) (map[string]string, error)
	listFn func() ([]domain.ThemeInfo, error)
}

func (m *mockThemeStore) Load(name string) (map[string]string, error) {
	if m.loadFn != nil {
		return m.loadFn(name)
	}
	return nil, domain.ErrThemeNotFound
}

func (m *mockThemeStore) List() ([]domain.ThemeInfo, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return nil, nil
}

// --- Mock Geocoder ---

type mockGeocoder struct {
	geocodeFn func(ctx context.Context, query string) (domain.GeoPoint, error)
}

func (m *mockGeocoder) Geocode(ctx context.Context, query string) (domain.GeoPoint, error) {
	if m.geocodeFn != nil {
		return m.geocodeFn(ctx, query)
	}
	return domain.GeoPoint{}, &domain.LookupError{Query: query}
}

// --- Mock FeatureProvider ---

type mockProvider struct {
	roadsFn    func(ctx context.Context, center domain.GeoPoint, radius float64) (*domain.RoadNetwork, error)
	featuresFn func(ctx context.Context, center domain.GeoPoint, radius float64, key, value string) (domain.Layer, error)
	calls      []string
}

func (m *mockProvider) RoadNetwork(ctx context.Context, center domain.GeoPoint, radius float64) (*domain.RoadNetwork, error) {
	m.calls = append(m.calls, "roads")
	if m.roadsFn != nil {
		return m.roadsFn(ctx, center, radius)
	}
	return &domain.RoadNetwork{}, nil
}

func (m *mockProvider) Features(ctx context.Context, center domain.GeoPoint, radius float64, key, value string) (domain.Layer, error) {
	m.calls = append(m.calls, key+"="+value)
	if m.featuresFn != nil {
		return m.featuresFn(ctx, center, radius, key, value)
	}
	return nil, nil
}

// --- Mock Renderer ---

type mockRenderer struct {
	renderFn func(ctx context.Context, scene *domain.Scene, format domain.Format, dpi int) ([]byte, error)
}

func (m *mockRenderer) Render(ctx context.Context, scene *domain.Scene, format domain.Format, dpi int) ([]byte, error) {
	if m.renderFn != nil {
		return m.renderFn(ctx, scene, format, dpi)
	}
	return []byte("<svg/>"), nil
}

// --- Mock PosterStore ---

type mockPosterStore struct {
	saved []string
}

func (m *mockPosterStore) Save(ctx context.Context, req domain.PosterRequest, at time.Time, data []byte) (*domain.Poster, error) {
	name := domain.PosterFileName(req.City, req.Theme, at, req.Format)
	m.saved = append(m.saved, name)
	return &domain.Poster{Path: "posters/" + name, Format: req.Format, Size: len(data), CreatedAt: at}, nil
}

// --- Mock EventPublisher ---

type mockPublisher struct {
	events []*domain.PosterEvent
	err    error
}

func (m *mockPublisher) PublishPosterGenerated(ctx context.Context, event *domain.PosterEvent) error {
	m.events = append(m.events, event)
	return m.err
}
