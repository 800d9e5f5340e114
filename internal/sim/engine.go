// Package sim drives the fixed per-tick update order every strategy
// shares: power and lifecycle, service run/stop, offload decisions,
// the strategy's post-pass, telemetry, then the harvester clock.
package sim

import (
	"fmt"
	"math/rand"

	"fleetsim/internal/harvester"
	"fleetsim/internal/lifecycle"
	"fleetsim/internal/measurement"
	"fleetsim/internal/model"
	"fleetsim/internal/runner"
	"fleetsim/internal/strategy"
	"fleetsim/internal/telemetry"
)

// Config bundles the knobs that stay fixed for the life of a run.
type Config struct {
	Steps          int
	PMin           float64 // actual-power threshold for battery-less devices
	RequiredPowerW float64 // power a battery-backed device attempts to draw per tick
	Rand           *rand.Rand
}

// Engine ties one Fleet, one Harvester, one Strategy and a set of
// Collectors together and drives them tick by tick. It holds no
// package-level state so multiple runs can proceed independently.
type Engine struct {
	Fleet      *model.Fleet
	Harvester  harvester.Harvester
	Strategy   strategy.Strategy
	Collectors []telemetry.Collector
	Logger     *telemetry.Logger
	Config     Config
}

// New builds an Engine, defaulting Config.Rand when the caller left it
// nil so tests and callers that don't care about determinism don't
// have to seed one.
func New(f *model.Fleet, h harvester.Harvester, strat strategy.Strategy, collectors []telemetry.Collector, logger *telemetry.Logger, cfg Config) *Engine {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}
	return &Engine{Fleet: f, Harvester: h, Strategy: strat, Collectors: collectors, Logger: logger, Config: cfg}
}

// Run advances the simulation for Config.Steps ticks, in the fixed
// order: per-device lifecycle/measurement/run-or-stop, per-device
// offload decisions, the strategy's post-pass, telemetry, then the
// harvester's clock.
func (e *Engine) Run() error {
	for tick := 0; tick < e.Config.Steps; tick++ {
		e.step(tick)
		if err := e.collect(tick); err != nil {
			return fmt.Errorf("sim: tick %d: %w", tick, err)
		}
		e.Harvester.AdvanceTick()
	}
	return nil
}

func (e *Engine) step(tick int) {
	for _, d := range e.Fleet.EdgeDevices() {
		lifecycle.Update(d, e.Harvester, e.Config.RequiredPowerW, e.Config.PMin)
		measurement.Collect(d, tick, e.Config.Rand)

		if e.Strategy.ServicesShouldRun(d) {
			for _, s := range e.Fleet.ServicesOn(d.ID) {
				runner.Run(s)
			}
		} else {
			for _, s := range e.Fleet.ServicesOn(d.ID) {
				runner.Stop(s)
			}
		}
	}

	for _, d := range e.Fleet.EdgeDevices() {
		e.Strategy.Decide(e.Fleet, d, tick)
	}

	e.Strategy.PostPass(e.Fleet, tick)
}

func (e *Engine) collect(tick int) error {
	if len(e.Collectors) == 0 {
		return nil
	}
	devices := make([]telemetry.DeviceRecord, 0, len(e.Fleet.Devices))
	services := make([]telemetry.ServiceRecord, 0, len(e.Fleet.Services))

	bh, hasBattery := e.Harvester.(harvester.BatteryCapable)
	for _, d := range e.Fleet.Devices {
		devices = append(devices, deviceRecord(d, tick, bh, hasBattery))
	}
	for _, s := range e.Fleet.Services {
		services = append(services, serviceRecord(s, tick))
	}

	for _, c := range e.Collectors {
		if err := c.Collect(tick, devices, services); err != nil {
			return err
		}
	}
	return nil
}

func deviceRecord(d *model.Device, tick int, bh harvester.BatteryCapable, hasBattery bool) telemetry.DeviceRecord {
	serviceIDs := make([]string, 0, len(d.Services))
	for _, s := range d.Services {
		serviceIDs = append(serviceIDs, s.ID)
	}
	rec := telemetry.DeviceRecord{
		Tick:                 tick,
		DeviceID:             d.ID,
		Kind:                 string(d.Kind),
		ServiceIDs:           serviceIDs,
		PowerSource:          string(d.Power.Source),
		ActualPowerW:         d.Power.ActualPowerW,
		Active:               d.Status.Active,
		State:                string(d.Status.State),
		TemperatureReadings:  len(d.TemperatureLog),
		Transferring:         d.Transfer.Transferring,
		TransferServiceIDs:   append([]string(nil), d.Transfer.ServiceIDs...),
		TransferDuration:     d.Transfer.DurationTicks,
		TransferTime:         d.Transfer.TargetDuration,
		TransferToDeviceID:   d.Transfer.ToDeviceID,
		TransferFromDeviceID: d.Transfer.FromDeviceID,
		SucceededTransfers:   d.Transfer.TransferSucceed,
		FailedTransfers:      d.Transfer.TransferFailed,
	}
	if hasBattery && d.Specs.HasBattery {
		rec.HasBattery = true
		rec.BatterySoCWh = bh.SoC(d.ID)
	}
	return rec
}

func serviceRecord(s *model.Service, tick int) telemetry.ServiceRecord {
	return telemetry.ServiceRecord{
		Tick:                tick,
		ServiceID:           s.ID,
		DeviceID:            s.DeviceID,
		State:               string(s.State),
		ProgramCounter:      s.ProgramCounter,
		Trained:             s.Trained,
		MaxTrainingTicks:    s.MaxTrainingTicks,
		ActualTrainingTicks: s.ActualTrainingTicks,
		MaxPredictionTicks:  s.MaxPredictionTicks,
		ActualPredictTicks:  s.ActualPredictTicks,
		PredictionsCounter:  s.PredictionsCounter,
	}
}
