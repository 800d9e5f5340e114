package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

const validConfig = `
info: true
debug: false
offloading: model
topology: test
strategy: reactive
loadbalancing: false
compute_energydata: true
simulation:
  steps: 100
proactive:
  min_power_threshold: 5.0
reactive:
  max_services_per_device: 3
oracle:
  max_services_per_device: 3
battery:
  enabled: false
`

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, validConfig)
	c, warnings, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if c.Strategy != StrategyReactive || c.Simulation.Steps != 100 {
		t.Fatalf("unexpected config: %+v", c)
	}
}

func TestLoadRejectsInvalidStrategy(t *testing.T) {
	path := writeConfig(t, strings.Replace(validConfig, "strategy: reactive", "strategy: bogus", 1))
	if _, _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid strategy, got nil")
	}
}

func TestLoadWarnsOnHighReactiveMaxServices(t *testing.T) {
	path := writeConfig(t, strings.Replace(validConfig, "reactive:\n  max_services_per_device: 3", "reactive:\n  max_services_per_device: 20", 1))
	_, warnings, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
}

func TestLoadRejectsBatteryThresholdAboveRequiredPower(t *testing.T) {
	path := writeConfig(t, strings.Replace(validConfig, "battery:\n  enabled: false", "battery:\n  enabled: true\n  power_required: 3.0", 1))
	if _, _, err := Load(path); err == nil {
		t.Fatal("expected error when min_power_threshold >= battery.power_required")
	}
}
