// Package config loads and validates the YAML run configuration: which
// offload unit and strategy to use, topology and energy-data sources,
// and the per-strategy knobs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Offloading selects what a transfer moves.
type Offloading string

const (
	OffloadModel Offloading = "model"
	OffloadData  Offloading = "data"
)

// Topology selects which bundled device layout to simulate against.
type Topology string

const (
	TopologyTest Topology = "test"
	TopologyProd Topology = "prod"
)

// StrategyName selects the offload policy driving the run.
type StrategyName string

const (
	StrategyReactive  StrategyName = "reactive"
	StrategyProactive StrategyName = "proactive"
	StrategyOracle    StrategyName = "oracle"
)

// Config is the on-disk configuration shape.
type Config struct {
	Info              bool         `yaml:"info"`
	Debug             bool         `yaml:"debug"`
	Offloading        Offloading   `yaml:"offloading"`
	Topology          Topology     `yaml:"topology"`
	Strategy          StrategyName `yaml:"strategy"`
	LoadBalancing     bool         `yaml:"loadbalancing"`
	ComputeEnergyData bool         `yaml:"compute_energydata"`

	Simulation SimulationConfig `yaml:"simulation"`
	Proactive  ProactiveConfig  `yaml:"proactive"`
	Reactive   ReactiveConfig   `yaml:"reactive"`
	Oracle     OracleConfig     `yaml:"oracle"`
	Battery    BatteryConfig    `yaml:"battery"`
}

type SimulationConfig struct {
	Steps int `yaml:"steps"`
}

type ProactiveConfig struct {
	MinPowerThreshold float64 `yaml:"min_power_threshold"`
}

type ReactiveConfig struct {
	MaxServicesPerDevice int `yaml:"max_services_per_device"`
}

type OracleConfig struct {
	MaxServicesPerDevice int `yaml:"max_services_per_device"`
}

// BatteryConfig mirrors the per-device battery bank parameters. Only
// consulted when Enabled is true; a disabled battery leaves devices on
// the plain (no-storage) harvester.
type BatteryConfig struct {
	Enabled                bool    `yaml:"enabled"`
	PowerRequired          float64 `yaml:"power_required"`
	AmpereHours            float64 `yaml:"ampere_hours"`
	Volts                  float64 `yaml:"volts"`
	DepthOfDischarge       float64 `yaml:"depth_of_discharge"`
	Efficiency             float64 `yaml:"efficiency"`
	InitialChargeFraction  float64 `yaml:"initial_charge_fraction"`
}

// Load reads path, parses it as YAML and validates it before
// returning. Warnings (non-fatal) are returned as a second value rather
// than printed directly, so callers choose how to surface them.
func Load(path string) (*Config, []string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, nil, fmt.Errorf("config: %s is not valid YAML: %w", path, err)
	}
	warnings, err := c.Validate()
	if err != nil {
		return nil, warnings, err
	}
	return &c, warnings, nil
}

// Validate checks the required keys, enum values and cross-field
// constraints. It returns non-fatal warnings alongside a fatal error,
// mirroring the source config loader's separation of hard failures
// from printed warnings.
func (c *Config) Validate() ([]string, error) {
	var warnings []string

	if c.Offloading != OffloadModel && c.Offloading != OffloadData {
		return warnings, fmt.Errorf("config: invalid offloading %q, want model or data", c.Offloading)
	}
	if c.Topology != TopologyTest && c.Topology != TopologyProd {
		return warnings, fmt.Errorf("config: invalid topology %q, want test or prod", c.Topology)
	}
	if c.Strategy != StrategyReactive && c.Strategy != StrategyProactive && c.Strategy != StrategyOracle {
		return warnings, fmt.Errorf("config: invalid strategy %q, want reactive, proactive or oracle", c.Strategy)
	}

	if c.Simulation.Steps <= 0 {
		return warnings, fmt.Errorf("config: simulation.steps must be a positive integer, got %d", c.Simulation.Steps)
	}
	if c.Proactive.MinPowerThreshold <= 0 {
		return warnings, fmt.Errorf("config: proactive.min_power_threshold must be positive, got %v", c.Proactive.MinPowerThreshold)
	}
	if c.Reactive.MaxServicesPerDevice <= 0 {
		return warnings, fmt.Errorf("config: reactive.max_services_per_device must be a positive integer, got %d", c.Reactive.MaxServicesPerDevice)
	}
	if c.Oracle.MaxServicesPerDevice <= 0 {
		return warnings, fmt.Errorf("config: oracle.max_services_per_device must be a positive integer, got %d", c.Oracle.MaxServicesPerDevice)
	}

	if c.Strategy == StrategyReactive && c.Reactive.MaxServicesPerDevice > 10 {
		warnings = append(warnings, "reactive.max_services_per_device is higher than the number of services a device typically hosts")
	}

	if c.Battery.Enabled && c.Proactive.MinPowerThreshold >= c.Battery.PowerRequired {
		return warnings, fmt.Errorf("config: proactive.min_power_threshold (%v) must be lower than battery.power_required (%v)", c.Proactive.MinPowerThreshold, c.Battery.PowerRequired)
	}

	return warnings, nil
}
