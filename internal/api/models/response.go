// Package models holds the DTOs the status/telemetry HTTP API returns.
package models

// StatusResponse reports the run's current progress and configuration.
type StatusResponse struct {
	Tick          int    `json:"tick"`
	Steps         int    `json:"steps"`
	Strategy      string `json:"strategy"`
	Offloading    string `json:"offloading"`
	LoadBalancing bool   `json:"loadbalancing"`
	TotalDevices  int    `json:"total_devices"`
	ActiveDevices int    `json:"active_devices"`
	Finished      bool   `json:"finished"`
}

// StrategiesResponse lists the offload policies a run can select.
type StrategiesResponse struct {
	Strategies []StrategyInfo `json:"strategies"`
}

// StrategyInfo describes one offload policy and its configuration knobs.
type StrategyInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a strategy parameter.
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "bool"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse is the uniform error body the API returns on failure.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code alongside the message.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
