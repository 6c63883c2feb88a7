package telemetry

// TracerName is the instrumentation scope of the poster pipeline.
const TracerName = "github.com/samirrijal/mapposter"

// Pipeline stage names, used for spans and the stage duration metric.
const (
	StageTheme    = "theme"
	StageGeocode  = "geocode"
	StageFeatures = "features"
	StageStyle    = "style"
	StageRender   = "render"
	StageWrite    = "write"
)
