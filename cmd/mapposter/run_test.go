package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const veniceRoads = `{
  "osm3s": {"timestamp_osm_base": "2024-05-01T12:00:00Z"},
  "elements": [
    {"type": "node", "id": 1, "lat": 45.4300, "lon": 12.3300},
    {"type": "node", "id": 2, "lat": 45.4371, "lon": 12.3326},
    {"type": "node", "id": 3, "lat": 45.4400, "lon": 12.3400},
    {"type": "node", "id": 4, "lat": 45.4420, "lon": 12.3250},
    {"type": "way", "id": 10, "nodes": [1, 2, 3], "tags": {"highway": "primary"}},
    {"type": "way", "id": 11, "nodes": [4, 2], "tags": {"highway": "residential;unclassified"}}
  ]
}`

const veniceWater = `{
  "osm3s": {"timestamp_osm_base": "2024-05-01T12:00:00Z"},
  "elements": [
    {"type": "node", "id": 21, "lat": 45.425, "lon": 12.320},
    {"type": "node", "id": 22, "lat": 45.425, "lon": 12.345},
    {"type": "node", "id": 23, "lat": 45.432, "lon": 12.345},
    {"type": "way", "id": 30, "nodes": [21, 22, 23, 21], "tags": {"natural": "water"}}
  ]
}`

const emptyResult = `{"osm3s": {"timestamp_osm_base": "2024-05-01T12:00:00Z"}, "elements": []}`

type env struct {
	themes  string
	posters string
	stdout  bytes.Buffer
	stderr  bytes.Buffer
}

// newEnv points the configuration at fake Nominatim and Overpass servers
// and fresh theme and poster directories.
func newEnv(t *testing.T, places string) *env {
	t.Helper()

	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(places))
	}))
	t.Cleanup(nominatim.Close)

	overpass := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.FormValue("data")
		switch {
		case strings.Contains(q, `["highway"]`):
			_, _ = w.Write([]byte(veniceRoads))
		case strings.Contains(q, `"natural"="water"`):
			_, _ = w.Write([]byte(veniceWater))
		default:
			_, _ = w.Write([]byte(emptyResult))
		}
	}))
	t.Cleanup(overpass.Close)

	e := &env{
		themes:  t.TempDir(),
		posters: filepath.Join(t.TempDir(), "posters"),
	}
	t.Setenv("MAPPOSTER_PATHS_THEMES_DIR", e.themes)
	t.Setenv("MAPPOSTER_PATHS_POSTERS_DIR", e.posters)
	t.Setenv("MAPPOSTER_GEOCODER_URL", nominatim.URL+"/search")
	t.Setenv("MAPPOSTER_OVERPASS_URL", overpass.URL+"/api/interpreter")
	t.Setenv("MAPPOSTER_LOG_LEVEL", "debug")
	return e
}

func (e *env) run(args ...string) int {
	getenv := func(string) string { return "" }
	return run(context.Background(), append([]string{"mapposter"}, args...), getenv, &e.stdout, &e.stderr)
}

func (e *env) posterFiles(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(e.posters)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

const venicePlace = `[{"lat": "45.4371", "lon": "12.3326", "display_name": "Venezia"}]`

func TestRun_VeniceBlueprintSVG(t *testing.T) {
	e := newEnv(t, venicePlace)
	require.NoError(t, os.WriteFile(filepath.Join(e.themes, "blueprint.json"),
		[]byte(`{"name": "Blueprint", "bg": "#1A3A5C", "text": "#E8F0F8", "road_primary": "#C8D8E8"}`), 0o644))

	code := e.run("-c", "Venice", "-C", "Italy", "-t", "blueprint", "-d", "4000")
	require.Equal(t, 0, code, e.stderr.String())

	files := e.posterFiles(t)
	require.Len(t, files, 1)
	assert.Contains(t, files[0], "venice_blueprint")
	assert.True(t, strings.HasSuffix(files[0], ".svg"))

	data, err := os.ReadFile(filepath.Join(e.posters, files[0]))
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, "<path")
	assert.Contains(t, doc, `fill="#1A3A5C"`)
	assert.Contains(t, doc, `stroke="#C8D8E8"`)
	assert.Contains(t, doc, ">ITALY</text>")

	assert.Contains(t, e.stdout.String(), "✓ SVG saved: "+filepath.Join(e.posters, files[0]))
	assert.Contains(t, e.stderr.String(), "using water body boundaries as coastline")
}

func TestRun_PNG(t *testing.T) {
	e := newEnv(t, venicePlace)

	code := e.run("--city", "Venice", "--format", "png", "--dpi", "20", "--distance", "4000")
	require.Equal(t, 0, code, e.stderr.String())

	files := e.posterFiles(t)
	require.Len(t, files, 1)
	assert.True(t, strings.HasPrefix(files[0], "venice_feature_based_"))
	assert.True(t, strings.HasSuffix(files[0], ".png"))
	assert.Contains(t, e.stdout.String(), "✓ PNG saved")
	assert.Contains(t, e.stderr.String(), "theme not found, using default theme")
}

func TestRun_UnknownCity(t *testing.T) {
	e := newEnv(t, `[]`)

	code := e.run("-c", "Nowhere12345xyz")
	assert.Equal(t, 1, code)
	assert.Contains(t, e.stderr.String(), "could not find coordinates for Nowhere12345xyz")
	assert.Empty(t, e.posterFiles(t))
}

func TestRun_ListThemes_Empty(t *testing.T) {
	e := newEnv(t, venicePlace)

	code := e.run("--list-themes")
	assert.Equal(t, 0, code)
	assert.Equal(t, "No themes found. Using default theme.\n", e.stdout.String())
}

func TestRun_ListThemes(t *testing.T) {
	e := newEnv(t, venicePlace)
	require.NoError(t, os.WriteFile(filepath.Join(e.themes, "noir.json"),
		[]byte(`{"name": "Noir", "description": "Black and white"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(e.themes, "blueprint.json"),
		[]byte(`{"name": "Blueprint"}`), 0o644))

	code := e.run("--list-themes")
	assert.Equal(t, 0, code)
	assert.Equal(t,
		"\nAvailable themes:\n"+
			"  blueprint            - Blueprint\n"+
			"  noir                 - Noir\n"+
			"    Black and white\n",
		e.stdout.String())
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing city", nil},
		{"unknown flag", []string{"--bogus"}},
		{"bad format", []string{"-c", "Venice", "-f", "gif"}},
		{"bad distance", []string{"-c", "Venice", "-d", "far"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t, venicePlace)
			assert.Equal(t, 2, e.run(tt.args...))
			assert.Empty(t, e.posterFiles(t))
		})
	}
}
