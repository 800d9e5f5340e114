// Package api wires the optional status/telemetry HTTP server: a gin
// router over a live State snapshot, plus a prometheus handler.
package api

import (
	"net/http"

	"fleetsim/internal/api/handlers"
	"fleetsim/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the gin engine serving /api/v1/status,
// /api/v1/strategies, /api/v1/telemetry/latest and /metrics. reg is
// the prometheus registry the run's MetricsCollector was constructed
// against; pass nil to serve the default registry instead.
func NewRouter(state *State, reg *prometheus.Registry) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.ErrorHandler())

	statusHandler := handlers.NewStatusHandler(state)
	strategyHandler := handlers.NewStrategyHandler()
	telemetryHandler := handlers.NewTelemetryHandler(state)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/status", statusHandler.GetStatus)
		v1.GET("/strategies", strategyHandler.ListStrategies)
		v1.GET("/telemetry/latest", telemetryHandler.GetLatest)
	}

	if reg != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	} else {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	return router
}
