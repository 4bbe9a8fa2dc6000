package http

import (
	"net/http"
	"time"

	"github.com/tynanfleet/fleetcheck/internal/checklist/store"
	"github.com/tynanfleet/fleetcheck/pkg/fleetsdk"
	"github.com/tynanfleet/fleetcheck/pkg/httpx"
)

// LivezHandler reports process liveness.
//
//	@Summary	Liveness probe
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	fleetsdk.HealthResponse
//	@Router		/livez [get]
func LivezHandler(start time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, fleetsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(start).Round(time.Second).String(),
			Version: version,
		})
	}
}

// ReadyzHandler reports readiness, including database connectivity.
//
//	@Summary	Readiness probe
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	fleetsdk.HealthResponse
//	@Failure	503	{object}	fleetsdk.HealthResponse
//	@Router		/readyz [get]
func ReadyzHandler(start time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := fleetsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(start).Round(time.Second).String(),
			Version: version,
			Checks:  &fleetsdk.HealthChecks{Database: "ok"},
		}

		code := http.StatusOK
		if err := st.Ping(r.Context()); err != nil {
			resp.Status = "degraded"
			resp.Checks.Database = err.Error()
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, resp)
	}
}
