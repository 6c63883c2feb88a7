package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Registry holds the metrics of one poster run. It is separate from the
// default registry so a push only carries pipeline metrics.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	StageDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mapposter",
		Subsystem: "pipeline",
		Name:      "stage_duration_seconds",
		Help:      "Duration of each poster pipeline stage",
		Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 180},
	}, []string{"stage"})

	FeaturesFetched = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mapposter",
		Subsystem: "features",
		Name:      "fetched_total",
		Help:      "Features fetched from the map data provider",
	}, []string{"layer"})

	LayerFetchErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mapposter",
		Subsystem: "features",
		Name:      "fetch_errors_total",
		Help:      "Feature layer fetches that failed and were treated as absent",
	}, []string{"layer"})

	CoastlineSource = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "mapposter",
		Subsystem: "features",
		Name:      "coastline_source",
		Help:      "Set to 1 for the fallback tier that produced the coastline",
	}, []string{"source"})

	PostersWritten = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mapposter",
		Subsystem: "output",
		Name:      "posters_written_total",
		Help:      "Poster files written",
	}, []string{"format"})

	PosterBytes = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: "mapposter",
		Subsystem: "output",
		Name:      "poster_size_bytes",
		Help:      "Size of the last poster written",
	})
)

// Push sends the run metrics to a Prometheus Pushgateway.
func Push(ctx context.Context, url, job string) error {
	return push.New(url, job).Gatherer(Registry).PushContext(ctx)
}
