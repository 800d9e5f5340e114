package handlers

import (
	"net/http"

	"fleetsim/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// TelemetrySource is the read surface a TelemetryHandler needs from
// the running simulation's snapshot.
type TelemetrySource interface {
	Telemetry(deviceID string) ([]telemetry.DeviceRecord, []telemetry.ServiceRecord)
}

// TelemetryHandler serves the latest tick's device/service records.
type TelemetryHandler struct {
	source TelemetrySource
}

// NewTelemetryHandler creates a new telemetry handler over source.
func NewTelemetryHandler(source TelemetrySource) *TelemetryHandler {
	return &TelemetryHandler{source: source}
}

// latestResponse is the JSON body for GET /api/v1/telemetry/latest.
type latestResponse struct {
	Devices  []telemetry.DeviceRecord  `json:"devices"`
	Services []telemetry.ServiceRecord `json:"services"`
}

// GetLatest handles GET /api/v1/telemetry/latest, optionally filtered
// to one device via ?device_id=.
func (h *TelemetryHandler) GetLatest(c *gin.Context) {
	deviceID := c.Query("device_id")
	devices, services := h.source.Telemetry(deviceID)
	c.JSON(http.StatusOK, latestResponse{Devices: devices, Services: services})
}
