package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleetsim/internal/api/models"
	"fleetsim/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus"
)

func TestStatusAndTelemetryEndpoints(t *testing.T) {
	state := NewState()
	state.Update(models.StatusResponse{Tick: 5, Steps: 10, Strategy: "reactive", TotalDevices: 2, ActiveDevices: 1}, []telemetry.DeviceRecord{
		{DeviceID: "edge-1", Active: true},
		{DeviceID: "edge-2", Active: false},
	}, nil)

	router := NewRouter(state, prometheus.NewRegistry())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status endpoint returned %d", rec.Code)
	}
	var status models.StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if status.Tick != 5 || status.TotalDevices != 2 {
		t.Fatalf("unexpected status: %+v", status)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/telemetry/latest?device_id=edge-1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("telemetry endpoint returned %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/strategies", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("strategies endpoint returned %d", rec.Code)
	}
	var strategies models.StrategiesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &strategies); err != nil {
		t.Fatalf("decode strategies: %v", err)
	}
	if len(strategies.Strategies) != 3 {
		t.Fatalf("expected 3 strategies, got %d", len(strategies.Strategies))
	}
}
