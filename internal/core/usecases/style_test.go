package usecases_test

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/samirrijal/mapposter/internal/core/domain"
	"github.com/samirrijal/mapposter/internal/core/usecases"
)

func TestStyleRoads(t *testing.T) {
	theme := domain.DefaultTheme()
	theme.RoadMotorway = "#FF0000"

	network := &domain.RoadNetwork{Edges: []domain.RoadEdge{
		{WayID: 1, Tags: domain.Tags{"highway": "motorway_link"}, Geometry: orb.LineString{{0, 0}, {1, 1}}},
		{WayID: 2, Tags: domain.Tags{"highway": "residential"}, Geometry: orb.LineString{{1, 1}, {2, 2}}},
		{WayID: 3, Geometry: orb.LineString{{2, 2}, {3, 3}}},
	}}

	segments := usecases.StyleRoads(network, theme)
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}
	if segments[0].Color != "#FF0000" || segments[0].Width != 1.2 {
		t.Errorf("unexpected motorway style %+v", segments[0])
	}
	if segments[1].Color != theme.RoadResidential || segments[1].Width != 0.4 {
		t.Errorf("unexpected residential style %+v", segments[1])
	}
	if segments[2].Class != domain.RoadDefault || segments[2].Color != theme.RoadDefault {
		t.Errorf("untagged edge should use default style, got %+v", segments[2])
	}
}

func TestStyleRoads_NilNetwork(t *testing.T) {
	if got := usecases.StyleRoads(nil, domain.DefaultTheme()); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
