package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/paulmach/orb"
)

// Format is the output encoding of a poster.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat accepts "svg" or "png" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSVG, FormatPNG:
		return f, nil
	}
	return "", fmt.Errorf("invalid format %q: must be svg or png", s)
}

const (
	DefaultThemeName = "feature_based"
	DefaultDistance  = 10000
	DefaultDPI       = 300

	// Attribution is printed in the lower right corner of every poster.
	Attribution = "© OpenStreetMap contributors"
)

// PosterRequest holds the inputs of one poster run.
type PosterRequest struct {
	City     string  `json:"city"`
	Country  string  `json:"country,omitempty"`
	Theme    string  `json:"theme"`
	Distance float64 `json:"distance"` // meters
	Format   Format  `json:"format"`
	DPI      int     `json:"dpi"`
}

// Validate checks the request before any I/O happens.
func (r PosterRequest) Validate() error {
	var errs []string
	if strings.TrimSpace(r.City) == "" {
		errs = append(errs, "city is required")
	}
	if r.Distance <= 0 {
		errs = append(errs, fmt.Sprintf("distance must be positive, got %v", r.Distance))
	}
	if _, err := ParseFormat(string(r.Format)); err != nil {
		errs = append(errs, err.Error())
	}
	if r.Format == FormatPNG && r.DPI <= 0 {
		errs = append(errs, fmt.Sprintf("dpi must be positive, got %d", r.DPI))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid poster request: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Labels is the text printed on a poster.
type Labels struct {
	City        string
	Country     string
	Coordinates string
	Attribution string
}

// NewLabels builds the upper-cased poster labels for a request.
func NewLabels(city, country string, center GeoPoint) Labels {
	return Labels{
		City:        strings.ToUpper(city),
		Country:     strings.ToUpper(country),
		Coordinates: center.Label(),
		Attribution: Attribution,
	}
}

// PosterFileName returns "<city>_<theme>_<YYYYMMDD_HHMMSS>.<ext>" with the
// city lower-cased and spaces replaced by underscores.
func PosterFileName(city, theme string, at time.Time, format Format) string {
	citySafe := strings.ReplaceAll(strings.ToLower(city), " ", "_")
	themeSafe := strings.ToLower(theme)
	return fmt.Sprintf("%s_%s_%s.%s", citySafe, themeSafe, at.Format("20060102_150405"), format)
}

// Poster is a written output file.
type Poster struct {
	Path      string    `json:"path"`
	Format    Format    `json:"format"`
	Size      int       `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// PosterEvent is published after a poster was written.
type PosterEvent struct {
	City        string    `json:"city"`
	Country     string    `json:"country,omitempty"`
	Theme       string    `json:"theme"`
	Format      Format    `json:"format"`
	Path        string    `json:"path"`
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
	Roads       int       `json:"roads"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Scene is everything the renderer draws, in geographic coordinates.
type Scene struct {
	Center    GeoPoint
	Radius    float64 // meters
	Theme     Theme
	Water     Layer
	Parks     Layer
	Coastline []orb.LineString
	Roads     []StyledSegment
	Labels    Labels
}

// GeocodeQuery builds the geocoder query for a city and optional country.
func GeocodeQuery(city, country string) string {
	if country == "" {
		return city
	}
	return city + ", " + country
}
