package api

import (
	"sync"

	"fleetsim/internal/api/models"
	"fleetsim/internal/telemetry"
)

// State is the snapshot the status server reads from and the
// simulation loop writes to. It is the only piece of shared mutable
// state in the repo, guarded by a RWMutex since writes (one per tick)
// are far less frequent than reads from concurrent HTTP handlers.
type State struct {
	mu sync.RWMutex

	status   models.StatusResponse
	devices  []telemetry.DeviceRecord
	services []telemetry.ServiceRecord
}

// NewState returns an empty snapshot.
func NewState() *State {
	return &State{}
}

// Update replaces the snapshot. Called once per tick by the driving
// loop; devices/services are copied, so collectors that later rewrite
// the caller's records do not touch the snapshot.
func (s *State) Update(status models.StatusResponse, devices []telemetry.DeviceRecord, services []telemetry.ServiceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.devices = append([]telemetry.DeviceRecord(nil), devices...)
	s.services = append([]telemetry.ServiceRecord(nil), services...)
}

// Status returns the latest status snapshot.
func (s *State) Status() models.StatusResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// TickSink adapts a State plus the run's static configuration into a
// telemetry.StateSink, computing the derived status fields (active
// device count, finished flag) from each tick's records.
type TickSink struct {
	state         *State
	steps         int
	strategy      string
	offloading    string
	loadBalancing bool
}

// NewTickSink builds a TickSink over state for a run with the given
// static configuration.
func NewTickSink(state *State, steps int, strategy, offloading string, loadBalancing bool) *TickSink {
	return &TickSink{state: state, steps: steps, strategy: strategy, offloading: offloading, loadBalancing: loadBalancing}
}

// Update implements telemetry.StateSink.
func (t *TickSink) Update(tick int, devices []telemetry.DeviceRecord, services []telemetry.ServiceRecord) {
	active := 0
	for _, d := range devices {
		if d.Active {
			active++
		}
	}
	status := models.StatusResponse{
		Tick:          tick,
		Steps:         t.steps,
		Strategy:      t.strategy,
		Offloading:    t.offloading,
		LoadBalancing: t.loadBalancing,
		TotalDevices:  len(devices),
		ActiveDevices: active,
		Finished:      tick >= t.steps-1,
	}
	t.state.Update(status, devices, services)
}

// Telemetry returns the latest tick's device and service records,
// optionally filtered to one device id.
func (s *State) Telemetry(deviceID string) ([]telemetry.DeviceRecord, []telemetry.ServiceRecord) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if deviceID == "" {
		return append([]telemetry.DeviceRecord(nil), s.devices...), append([]telemetry.ServiceRecord(nil), s.services...)
	}
	var devices []telemetry.DeviceRecord
	for _, d := range s.devices {
		if d.DeviceID == deviceID {
			devices = append(devices, d)
		}
	}
	var services []telemetry.ServiceRecord
	for _, sv := range s.services {
		if sv.DeviceID == deviceID {
			services = append(services, sv)
		}
	}
	return devices, services
}
