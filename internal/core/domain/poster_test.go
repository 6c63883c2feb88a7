package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/samirrijal/mapposter/internal/core/domain"
)

func TestPosterFileName(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	got := domain.PosterFileName("San Francisco", "Feature_Based", at, domain.FormatSVG)
	want := "san_francisco_feature_based_20240309_140507.svg"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := domain.ParseFormat("PNG"); err != nil || f != domain.FormatPNG {
		t.Errorf("expected png, got %q (%v)", f, err)
	}
	if _, err := domain.ParseFormat("pdf"); err == nil {
		t.Error("expected error for pdf")
	}
}

func TestPosterRequest_Validate(t *testing.T) {
	ok := domain.PosterRequest{City: "Venice", Theme: "blueprint", Distance: 4000, Format: domain.FormatSVG}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := domain.PosterRequest{City: " ", Distance: 0, Format: "gif"}
	if err := bad.Validate(); err == nil {
		t.Error("expected validation error")
	}
}

func TestGeoPoint_Label(t *testing.T) {
	tests := []struct {
		p    domain.GeoPoint
		want string
	}{
		{domain.GeoPoint{Lat: 45.4408, Lon: 12.3155}, "45.4408°N, 12.3155°E"},
		{domain.GeoPoint{Lat: -33.8688, Lon: 151.2093}, "33.8688°S, 151.2093°E"},
		{domain.GeoPoint{Lat: 37.7749, Lon: -122.4194}, "37.7749°N, 122.4194°W"},
	}
	for _, tt := range tests {
		if got := tt.p.Label(); got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, got)
		}
	}
}

func TestLookupError_Is(t *testing.T) {
	var err error = &domain.LookupError{Query: "Nowhere12345xyz"}
	if !errors.Is(err, domain.ErrLocationNotFound) {
		t.Error("LookupError should match ErrLocationNotFound")
	}
	if err.Error() != "could not find coordinates for Nowhere12345xyz" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
