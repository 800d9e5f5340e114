// Package heartbeat implements the liveness probe and partner-device
// selection shared by every offload policy.
package heartbeat

import "fleetsim/internal/model"

// Alive reports whether d's heartbeat is up: any state other than off.
func Alive(d *model.Device) bool {
	return d.Status.State != model.StateOff
}

// Partners returns the subset of d's partner devices eligible to take
// on more work: not off, active, and with spare service capacity.
// Scanned in fleet order (not d.PartnerDeviceIDs order) so two devices
// sharing a partner set make consistent choices.
func Partners(f *model.Fleet, d *model.Device, maxServices int) []*model.Device {
	partnerSet := make(map[string]bool, len(d.PartnerDeviceIDs))
	for _, id := range d.PartnerDeviceIDs {
		partnerSet[id] = true
	}
	var out []*model.Device
	for _, candidate := range f.EdgeDevices() {
		if !partnerSet[candidate.ID] {
			continue
		}
		if candidate.Status.State == model.StateOff || !candidate.Status.Active {
			continue
		}
		if len(candidate.Services) >= maxServices {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

// OnlinePartners is the stricter variant used by the load balancer:
// requires state=on specifically, not merely "not off".
func OnlinePartners(f *model.Fleet, d *model.Device) []*model.Device {
	partnerSet := make(map[string]bool, len(d.PartnerDeviceIDs))
	for _, id := range d.PartnerDeviceIDs {
		partnerSet[id] = true
	}
	var out []*model.Device
	for _, candidate := range f.EdgeDevices() {
		if !partnerSet[candidate.ID] {
			continue
		}
		if candidate.Status.State == model.StateOn && candidate.Status.Active {
			out = append(out, candidate)
		}
	}
	return out
}
