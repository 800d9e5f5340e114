package handlers

import (
	"net/http"

	"fleetsim/internal/api/models"

	"github.com/gin-gonic/gin"
)

// StrategyHandler serves the static description of the offload
// policies a run can select, independent of which one is active.
type StrategyHandler struct{}

// NewStrategyHandler creates a new strategy handler.
func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// ListStrategies handles GET /api/v1/strategies.
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	strategies := []models.StrategyInfo{
		{
			Name:        "reactive",
			Description: "Moves a failing device's workload the instant its heartbeat drops, with no transfer duration.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "max_services_per_device",
					Type:        "int",
					Description: "Maximum number of services a partner device may host before it stops accepting more.",
					Default:     3,
				},
				{
					Name:        "offloading",
					Type:        "string",
					Description: "What a transfer moves: \"model\" (hosted services) or \"data\" (the temperature buffer).",
					Default:     "model",
				},
			},
		},
		{
			Name:        "proactive",
			Description: "Devices initiate a timed transfer before they fail, triggered on low power, and the server downloads onto high-power devices.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "min_power_threshold",
					Type:        "float",
					Description: "Actual power (or, with a battery, state of charge converted to watts) below which a device starts an upload.",
					Default:     5.0,
				},
				{
					Name:        "loadbalancing",
					Type:        "bool",
					Description: "Whether the server's download pass may assign more than one service per idle device.",
					Default:     false,
				},
			},
		},
		{
			Name:        "oracle",
			Description: "Same decision surface as reactive, plus a load-balancing pass that rebalances overflowing devices onto their online partners.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "max_services_per_device",
					Type:        "int",
					Description: "Maximum number of services a partner device may host before it stops accepting more.",
					Default:     3,
				},
				{
					Name:        "loadbalancing",
					Type:        "bool",
					Description: "Whether the post-pass load balancer runs this tick.",
					Default:     true,
				},
			},
		},
	}

	c.JSON(http.StatusOK, models.StrategiesResponse{Strategies: strategies})
}
