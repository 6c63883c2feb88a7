package domain_test

import (
	"testing"

	"github.com/samirrijal/mapposter/internal/core/domain"
)

func TestBoundsAround(t *testing.T) {
	p := domain.GeoPoint{Lat: 45.4371, Lon: 12.3326}
	b := domain.BoundsAround(p, 4000)

	if !(b.MinLat < p.Lat && p.Lat < b.MaxLat && b.MinLon < p.Lon && p.Lon < b.MaxLon) {
		t.Fatalf("point %v not inside %+v", p, b)
	}
	// Longitude degrees are shorter away from the equator.
	if b.MaxLon-b.MinLon <= b.MaxLat-b.MinLat {
		t.Errorf("expected wider longitude span, got %+v", b)
	}

	bound := b.Bound()
	if bound.Min[0] != b.MinLon || bound.Max[1] != b.MaxLat {
		t.Errorf("unexpected orb bound %v", bound)
	}
}
