package handlers

import (
	"net/http"
	"time"

	"sportsgate-hq/sportsgate/pkg/providers"
	"sportsgate-hq/sportsgate/pkg/proxy/types"
)

// HealthHandler serves GET /health with proxy liveness and the upstream
// provider's last known health.
type HealthHandler struct {
	provider providers.SportsProvider
	started  time.Time
	version  string
}

// NewHealthHandler creates the health handler.
func NewHealthHandler(provider providers.SportsProvider, version string) *HealthHandler {
	return &HealthHandler{
		provider: provider,
		started:  time.Now(),
		version:  version,
	}
}

// healthResponse is the GET /health body.
type healthResponse struct {
	Status        string         `json:"status"`
	Version       string         `json:"version"`
	UptimeSeconds int64          `json:"uptime_seconds"`
	Provider      providerHealth `json:"provider"`
}

type providerHealth struct {
	Name      string `json:"name"`
	Healthy   bool   `json:"healthy"`
	LastError string `json:"last_error,omitempty"`
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	health := h.provider.Health()

	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
		Provider: providerHealth{
			Name:    h.provider.Name(),
			Healthy: health.IsHealthy,
		},
	}
	if health.LastError != nil {
		resp.Provider.LastError = health.LastError.Error()
	}

	status := http.StatusOK
	if !health.IsHealthy {
		resp.Status = "degraded"
	}

	types.WriteJSON(w, status, resp)
}
