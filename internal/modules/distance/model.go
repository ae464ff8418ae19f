// README: Distance resolution result types.
package distance

// Source tags which tier of the fallback chain produced a result.
type Source string

const (
	SourceLiveService Source = "live-service"
	SourceStaticTable Source = "static-table"
	SourceFallback    Source = "fallback-estimate"
)

// Result is the outcome of resolving one origin/destination pair.
// Estimated is true unless the live routing service answered.
type Result struct {
	DistanceKm      int    `json:"distance_km"`
	DurationMinutes int    `json:"duration_minutes"`
	Source          Source `json:"source"`
	Estimated       bool   `json:"estimated"`
	Warning         string `json:"warning,omitempty"`
}

// Conservative constants returned when neither the live service nor the
// static table knows the route.
const (
	fallbackDistanceKm      = 500
	fallbackDurationMinutes = 480
	fallbackWarning         = "Distance estimate - please verify"
)
