package domain_test

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/samirrijal/mapposter/internal/core/domain"
)

var (
	square = orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
	hole   = orb.Ring{{0.2, 0.2}, {0.4, 0.2}, {0.4, 0.4}, {0.2, 0.2}}
	line   = orb.LineString{{0, 0}, {2, 2}}
)

func TestOutlines_FourShapes(t *testing.T) {
	tests := []struct {
		name string
		g    orb.Geometry
		want int
	}{
		{"line", line, 1},
		{"multiline", orb.MultiLineString{line, line}, 2},
		{"polygon outer ring only", orb.Polygon{square, hole}, 1},
		{"multipolygon", orb.MultiPolygon{{square, hole}, {square}}, 2},
		{"point", orb.Point{1, 1}, 0},
		{"nil", nil, 0},
		{"degenerate line", orb.LineString{{1, 1}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.Outlines(tt.g); len(got) != tt.want {
				t.Errorf("expected %d outlines, got %d", tt.want, len(got))
			}
		})
	}
}

func TestOutlines_PolygonUsesExterior(t *testing.T) {
	got := domain.Outlines(orb.Polygon{square, hole})
	if len(got) != 1 || len(got[0]) != len(square) {
		t.Fatalf("expected exterior ring, got %v", got)
	}
	if !got[0][1].Equal(square[1]) {
		t.Errorf("expected exterior coordinates, got %v", got[0])
	}
}

func TestLines_SkipsPolygons(t *testing.T) {
	if got := domain.Lines(orb.Polygon{square}); len(got) != 0 {
		t.Errorf("expected polygons to be skipped, got %d lines", len(got))
	}
	if got := domain.Lines(orb.MultiLineString{line}); len(got) != 1 {
		t.Errorf("expected 1 line, got %d", len(got))
	}
}

func TestPolygonOutlines_SkipsLines(t *testing.T) {
	if got := domain.PolygonOutlines(line); len(got) != 0 {
		t.Errorf("expected lines to be skipped, got %d", len(got))
	}
	if got := domain.PolygonOutlines(orb.MultiPolygon{{square}}); len(got) != 1 {
		t.Errorf("expected 1 outline, got %d", len(got))
	}
}
