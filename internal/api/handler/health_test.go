package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"google.golang.org/grpc/connectivity"
)

type fixedState connectivity.State

func (s fixedState) State() connectivity.State { return connectivity.State(s) }

func TestLiveness(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("liveness: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestReadiness(t *testing.T) {
	cases := []struct {
		state      connectivity.State
		wantStatus int
		wantBody   string
	}{
		{connectivity.Idle, http.StatusOK, "ok"},
		{connectivity.Connecting, http.StatusOK, "ok"},
		{connectivity.Ready, http.StatusOK, "ok"},
		{connectivity.TransientFailure, http.StatusServiceUnavailable, "degraded"},
		{connectivity.Shutdown, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tc := range cases {
		t.Run(tc.state.String(), func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := NewHealthDependenciesHandler(fixedState(tc.state))
			if err := h.Readiness(c); err != nil {
				t.Fatalf("readiness: %v", err)
			}
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}

			var body readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Status != tc.wantBody {
				t.Fatalf("body status = %q, want %q", body.Status, tc.wantBody)
			}
		})
	}
}
