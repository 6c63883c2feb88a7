package ports

import (
	"context"
	"time"

	"github.com/samirrijal/mapposter/internal/core/domain"
)

// ThemeStore reads theme files.
type ThemeStore interface {
	// Load returns the keys present in the named theme file. It returns
	// domain.ErrThemeNotFound when no file exists for name.
	Load(name string) (map[string]string, error)
	// List returns every valid theme file, sorted by ID.
	List() ([]domain.ThemeInfo, error)
}

// Geocoder resolves place names to coordinates.
type Geocoder interface {
	// Geocode returns the first match for the query. It returns a
	// *domain.LookupError when nothing matches.
	Geocode(ctx context.Context, query string) (domain.GeoPoint, error)
}

// FeatureProvider fetches map geometry around a point.
type FeatureProvider interface {
	RoadNetwork(ctx context.Context, center domain.GeoPoint, radius float64) (*domain.RoadNetwork, error)
	// Features returns the elements carrying tag key=value.
	Features(ctx context.Context, center domain.GeoPoint, radius float64, key, value string) (domain.Layer, error)
}

// Renderer draws a scene and encodes it.
type Renderer interface {
	Render(ctx context.Context, scene *domain.Scene, format domain.Format, dpi int) ([]byte, error)
}

// PosterStore persists rendered posters.
type PosterStore interface {
	// Save writes data under a unique file name derived from the request
	// and the given time.
	Save(ctx context.Context, req domain.PosterRequest, at time.Time, data []byte) (*domain.Poster, error)
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	PublishPosterGenerated(ctx context.Context, event *domain.PosterEvent) error
}
