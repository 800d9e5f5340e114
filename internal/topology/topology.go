// Package topology loads a device/service layout from JSON and builds
// the model.Fleet the rest of the simulator drives.
package topology

import (
	"encoding/json"
	"fmt"
	"os"

	"fleetsim/internal/model"
)

// Document is the on-disk topology shape: a server id, a flat list of
// devices and a flat list of services naming the device they start on.
type Document struct {
	ServerID string        `json:"server_id"`
	Devices  []DeviceSpec  `json:"devices"`
	Services []ServiceSpec `json:"services"`
}

// DeviceSpec describes one device entry in a topology file.
type DeviceSpec struct {
	ID                string   `json:"id"`
	Kind              string   `json:"kind"` // "edge_device" or "server"
	CPUCores          int      `json:"cpu_cores"`
	ReservedCPUCores  int      `json:"reserved_cpu_cores"`
	HasBattery        bool     `json:"has_battery"`
	PartnerDeviceIDs  []string `json:"partner_device_ids"`
	TransferTimeTicks int      `json:"transfer_time_ticks"`
}

// ServiceSpec describes one service entry in a topology file.
type ServiceSpec struct {
	ID                 string `json:"id"`
	DeviceID           string `json:"device_id"`
	MaxTrainingTicks   int    `json:"max_training_time"`
	MaxPredictionTicks int    `json:"max_prediction_time"`
}

// Load parses path and builds a Fleet from it.
func Load(path string) (*model.Fleet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("topology: reading %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("topology: %s is not valid JSON: %w", path, err)
	}
	return doc.Build()
}

// Build converts the parsed document into a Fleet, wiring each
// service's starting device and leaving lifecycle/power fields at
// their zero value for the first tick's Update call to populate.
func (doc *Document) Build() (*model.Fleet, error) {
	devices := make([]*model.Device, 0, len(doc.Devices))
	byID := make(map[string]*model.Device, len(doc.Devices))
	for _, spec := range doc.Devices {
		kind := model.KindEdgeDevice
		if spec.Kind == string(model.KindServer) {
			kind = model.KindServer
		}
		d := &model.Device{
			ID:   spec.ID,
			Kind: kind,
			Specs: model.Specs{
				CPUCores:         spec.CPUCores,
				ReservedCPUCores: spec.ReservedCPUCores,
				HasBattery:       spec.HasBattery,
			},
			PartnerDeviceIDs:  append([]string(nil), spec.PartnerDeviceIDs...),
			TransferTimeTicks: spec.TransferTimeTicks,
		}
		devices = append(devices, d)
		byID[d.ID] = d
	}

	services := make([]*model.Service, 0, len(doc.Services))
	for _, spec := range doc.Services {
		s := &model.Service{
			ID:                 spec.ID,
			DeviceID:           spec.DeviceID,
			MaxTrainingTicks:   spec.MaxTrainingTicks,
			MaxPredictionTicks: spec.MaxPredictionTicks,
		}
		services = append(services, s)
		host, ok := byID[spec.DeviceID]
		if !ok {
			return nil, fmt.Errorf("topology: service %q references unknown device %q", spec.ID, spec.DeviceID)
		}
		host.Services = append(host.Services, s)
	}

	return model.NewFleet(doc.ServerID, devices, services)
}

// DeviceIDs returns every device id in declaration order, the shape
// the harvester needs to split an energy trace across devices.
func (doc *Document) DeviceIDs() []string {
	ids := make([]string, 0, len(doc.Devices))
	for _, d := range doc.Devices {
		ids = append(ids, d.ID)
	}
	return ids
}
