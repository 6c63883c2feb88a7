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

func TestSelectExamples(t *testing.T) {
	all, ok := selectExamples("0")
	require.True(t, ok)
	assert.Len(t, all, 3)

	one, ok := selectExamples("3")
	require.True(t, ok)
	require.Len(t, one, 1)
	assert.Equal(t, "Venice", one[0].request.City)
	assert.Equal(t, "blueprint", one[0].request.Theme)
	assert.Equal(t, 4000.0, one[0].request.Distance)

	for _, bad := range []string{"", "4", "-1", "x", "1.5"} {
		_, ok := selectExamples(bad)
		assert.False(t, ok, bad)
	}
}

func TestRun_InvalidChoice(t *testing.T) {
	t.Setenv("MAPPOSTER_PATHS_POSTERS_DIR", filepath.Join(t.TempDir(), "posters"))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"mapposter-examples"}, strings.NewReader("9\n"), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "3. Venice - Blueprint Theme")
	assert.True(t, strings.HasSuffix(stdout.String(), "Invalid choice. Exiting.\n"))
}

func TestRun_Venice(t *testing.T) {
	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"lat": "45.4371", "lon": "12.3326"}]`))
	}))
	defer nominatim.Close()
	overpass := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := `{"osm3s": {"timestamp_osm_base": "2024-05-01T12:00:00Z"}, "elements": []}`
		if strings.Contains(r.FormValue("data"), `["highway"]`) {
			resp = `{"osm3s": {"timestamp_osm_base": "2024-05-01T12:00:00Z"}, "elements": [
				{"type": "node", "id": 1, "lat": 45.43, "lon": 12.33},
				{"type": "node", "id": 2, "lat": 45.44, "lon": 12.34},
				{"type": "way", "id": 10, "nodes": [1, 2], "tags": {"highway": "tertiary"}}
			]}`
		}
		_, _ = w.Write([]byte(resp))
	}))
	defer overpass.Close()

	posters := filepath.Join(t.TempDir(), "posters")
	t.Setenv("MAPPOSTER_PATHS_THEMES_DIR", t.TempDir())
	t.Setenv("MAPPOSTER_PATHS_POSTERS_DIR", posters)
	t.Setenv("MAPPOSTER_GEOCODER_URL", nominatim.URL)
	t.Setenv("MAPPOSTER_OVERPASS_URL", overpass.URL)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"mapposter-examples"}, strings.NewReader("3\n"), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Contains(t, stdout.String(), "Running: Venice - Blueprint Theme")
	entries, err := os.ReadDir(posters)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "venice_blueprint_"))
}
