package sim

import (
	"math/rand"
	"testing"

	"fleetsim/internal/harvester"
	"fleetsim/internal/model"
	"fleetsim/internal/strategy"
	"fleetsim/internal/telemetry"
)

func buildTestFleet(t *testing.T) (*model.Fleet, []harvester.Sample) {
	t.Helper()
	server := &model.Device{ID: "server", Kind: model.KindServer, Specs: model.Specs{CPUCores: 8}}
	edge := &model.Device{
		ID:               "edge-1",
		Kind:             model.KindEdgeDevice,
		Specs:            model.Specs{CPUCores: 2},
		PartnerDeviceIDs: nil,
	}
	svc := &model.Service{ID: "svc-1", DeviceID: "edge-1", MaxTrainingTicks: 2, MaxPredictionTicks: 3}
	edge.Services = []*model.Service{svc}

	f, err := model.NewFleet("server", []*model.Device{server, edge}, []*model.Service{svc})
	if err != nil {
		t.Fatalf("NewFleet: %v", err)
	}

	trace := []harvester.Sample{
		{SolarW: 10, WindW: 0},
		{SolarW: 10, WindW: 0},
		{SolarW: 10, WindW: 0},
	}
	return f, trace
}

func TestEngineRunAdvancesServicesAndTelemetry(t *testing.T) {
	f, trace := buildTestFleet(t)
	h := harvester.NewEnergyHarvester(trace, []string{"edge-1"})
	strat := &strategy.Reactive{MaxServicesPerDevice: 4, Offloading: strategy.OffloadModel, Rand: rand.New(rand.NewSource(1))}

	var collected int
	collector := &countingCollector{onCollect: func(tick int, devices []telemetry.DeviceRecord, services []telemetry.ServiceRecord) {
		collected++
	}}

	e := New(f, h, strat, []telemetry.Collector{collector}, nil, Config{Steps: 3, PMin: 5.0, RequiredPowerW: 5.0, Rand: rand.New(rand.NewSource(2))})
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if collected != 3 {
		t.Fatalf("expected 3 collected ticks, got %d", collected)
	}

	svc := f.Service("svc-1")
	if svc.ProgramCounter != 3 {
		t.Fatalf("expected program counter 3 after 3 ticks, got %d", svc.ProgramCounter)
	}
	if h.Tick() != 3 {
		t.Fatalf("expected harvester tick 3, got %d", h.Tick())
	}
}

type countingCollector struct {
	onCollect func(tick int, devices []telemetry.DeviceRecord, services []telemetry.ServiceRecord)
}

func (c *countingCollector) Collect(tick int, devices []telemetry.DeviceRecord, services []telemetry.ServiceRecord) error {
	c.onCollect(tick, devices, services)
	return nil
}

func (c *countingCollector) Close() error { return nil }
