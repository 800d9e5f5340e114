package model

import "fmt"

// Fleet is the full device/service topology for one simulation run.
type Fleet struct {
	ServerID string
	Devices  []*Device
	Services []*Service

	byDeviceID  map[string]*Device
	byServiceID map[string]*Service
}

// NewFleet indexes devices and services by id for O(1) lookups.
func NewFleet(serverID string, devices []*Device, services []*Service) (*Fleet, error) {
	f := &Fleet{
		ServerID:    serverID,
		Devices:     devices,
		Services:    services,
		byDeviceID:  make(map[string]*Device, len(devices)),
		byServiceID: make(map[string]*Service, len(services)),
	}
	for _, d := range devices {
		if _, dup := f.byDeviceID[d.ID]; dup {
			return nil, fmt.Errorf("model: duplicate device id %q", d.ID)
		}
		f.byDeviceID[d.ID] = d
	}
	for _, s := range services {
		if _, dup := f.byServiceID[s.ID]; dup {
			return nil, fmt.Errorf("model: duplicate service id %q", s.ID)
		}
		f.byServiceID[s.ID] = s
	}
	if _, ok := f.byDeviceID[serverID]; !ok {
		return nil, fmt.Errorf("model: server id %q not present among devices", serverID)
	}
	for _, d := range devices {
		for _, partnerID := range d.PartnerDeviceIDs {
			if _, ok := f.byDeviceID[partnerID]; !ok {
				return nil, fmt.Errorf("model: device %q names unknown partner device %q", d.ID, partnerID)
			}
		}
	}
	return f, nil
}

// Device looks up a device by id, or nil if absent.
func (f *Fleet) Device(id string) *Device {
	return f.byDeviceID[id]
}

// Service looks up a service by id, or nil if absent. Services appended
// to f.Services after NewFleet are found by scanning the slice.
func (f *Fleet) Service(id string) *Service {
	if s := f.byServiceID[id]; s != nil {
		return s
	}
	for _, s := range f.Services {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Server returns the fleet's single server device.
func (f *Fleet) Server() *Device {
	return f.byDeviceID[f.ServerID]
}

// EdgeDevices returns every device that is not the server, in fleet
// declaration order. Offload decisions walk devices in this order, not
// in PartnerDeviceIDs order.
func (f *Fleet) EdgeDevices() []*Device {
	out := make([]*Device, 0, len(f.Devices))
	for _, d := range f.Devices {
		if d.ID != f.ServerID {
			out = append(out, d)
		}
	}
	return out
}

// ServicesOn returns the services currently hosted on a device.
func (f *Fleet) ServicesOn(deviceID string) []*Service {
	out := make([]*Service, 0)
	for _, s := range f.Services {
		if s.DeviceID == deviceID {
			out = append(out, s)
		}
	}
	return out
}

// Migrate moves a service's ownership from one device to another,
// updating both the Service back-reference and each Device's Services
// slice atomically. This is the only place both sides of the cyclic
// device/service relationship are mutated together.
func (f *Fleet) Migrate(serviceID, toDeviceID string) error {
	s := f.Service(serviceID)
	if s == nil {
		return fmt.Errorf("model: unknown service id %q", serviceID)
	}
	to := f.Device(toDeviceID)
	if to == nil {
		return fmt.Errorf("model: unknown device id %q", toDeviceID)
	}
	if from := f.Device(s.DeviceID); from != nil {
		removeService(from, serviceID)
	}
	s.DeviceID = toDeviceID
	to.Services = append(to.Services, s)
	return nil
}

func removeService(d *Device, serviceID string) {
	kept := d.Services[:0]
	for _, s := range d.Services {
		if s.ID != serviceID {
			kept = append(kept, s)
		}
	}
	d.Services = kept
}

// PartnerDevices resolves a device's configured partner ids into live
// Device pointers. NewFleet rejects any fleet whose partner ids don't
// resolve, so every id here is guaranteed present.
func (f *Fleet) PartnerDevices(d *Device) []*Device {
	out := make([]*Device, 0, len(d.PartnerDeviceIDs))
	for _, id := range d.PartnerDeviceIDs {
		if p := f.byDeviceID[id]; p != nil {
			out = append(out, p)
		}
	}
	return out
}
