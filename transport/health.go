package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/krishsharda/Buyer-Leads/utils/logger"
	"go.uber.org/zap"
)

// HealthCheck is one dependency probed by the diagnostic endpoint.
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

type HealthResponse struct {
	Status     string                `json:"status"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Health handler
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}

// Diagnostic handler
// @Summary Dependency diagnostic
// @Description Pings the database and Redis. Requires the internal API key.
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /internal/v1/diagnostic [get]
func (s *RestHandler) Diagnostic(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	res := HealthResponse{
		Status:     "ok",
		Components: make(map[string]CompStatus, len(s.checks)),
	}
	for _, c := range s.checks {
		start := time.Now()
		if err := c.Ping(ctx); err != nil {
			logger.Warn("[Diagnostic] dependency down", zap.String("component", c.Name), zap.String("error", err.Error()))
			res.Components[c.Name] = CompStatus{Status: "down"}
			res.Status = "down"
			continue
		}
		res.Components[c.Name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	res.Timestamp = time.Now().UTC()

	status := http.StatusOK
	if res.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, res)
}

// WarmBuyerCache handler
// @Summary Reload a buyer into the cache
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Param id path string true "Buyer ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /internal/v1/buyers/{id}/cache [post]
func (s *RestHandler) WarmBuyerCache(w http.ResponseWriter, r *http.Request) {
	if err := s.BuyerApp.WarmCache(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
