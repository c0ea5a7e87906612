package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"google.golang.org/grpc/connectivity"
)

// HealthHandler handles GET /health, the liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ConnStater reports the connectivity state of the shared backend channel.
type ConnStater interface {
	State() connectivity.State
}

// HealthDependenciesHandler handles GET /health/ready, the readiness probe.
// Inspects the backend channel state before declaring the gateway ready.
// The channel connects lazily, so Idle counts as healthy.
type HealthDependenciesHandler struct {
	backend ConnStater
}

func NewHealthDependenciesHandler(backend ConnStater) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{backend: backend}
}

type dependencyStatus struct {
	Status string `json:"status"`
	State  string `json:"state,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	deps := make(map[string]dependencyStatus)
	healthy := true

	state := h.backend.State()
	switch state {
	case connectivity.TransientFailure, connectivity.Shutdown:
		deps["user_service"] = dependencyStatus{Status: "unhealthy", State: state.String()}
		healthy = false
	default:
		deps["user_service"] = dependencyStatus{Status: "ok", State: state.String()}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
