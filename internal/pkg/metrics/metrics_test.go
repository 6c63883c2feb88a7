package metrics_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/samirrijal/mapposter/internal/pkg/metrics"
)

func TestPush(t *testing.T) {
	metrics.PostersWritten.WithLabelValues("svg").Inc()

	var body string
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := metrics.Push(context.Background(), srv.URL, "mapposter"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(path, "/metrics/job/mapposter") {
		t.Errorf("unexpected push path %s", path)
	}
	if body == "" {
		t.Error("expected pushed metrics body")
	}
	if got := testutil.ToFloat64(metrics.PostersWritten.WithLabelValues("svg")); got < 1 {
		t.Errorf("expected posters_written_total >= 1, got %v", got)
	}
}
