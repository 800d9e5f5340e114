// Package transfer implements the two-slot per-device TransferFSM
// (upload/download), plus the instantaneous "checkpoint" move used by
// the reactive and oracle strategies, which route through the server
// in the same tick rather than paying transfer_time.
package transfer

import "fleetsim/internal/model"

// StartUpload begins an upload from d to toDeviceID, pinning
// serviceIDs (empty for a data transfer). Returns false without
// mutating state if a transfer is already in flight on d.
func StartUpload(d *model.Device, toDeviceID string, serviceIDs []string, targetDuration int, kind model.TransferKind) bool {
	if d.Transfer.Transferring {
		return false
	}
	d.Transfer = model.TransferState{
		Transferring:   true,
		ToDeviceID:     toDeviceID,
		ServiceIDs:     append([]string(nil), serviceIDs...),
		TargetDuration: targetDuration,
		Kind:           kind,
	}
	return true
}

// StartDownload begins a download onto d from fromDeviceID.
func StartDownload(d *model.Device, fromDeviceID string, serviceIDs []string, targetDuration int, kind model.TransferKind) bool {
	if d.Transfer.Transferring {
		return false
	}
	d.Transfer = model.TransferState{
		Transferring:   true,
		FromDeviceID:   fromDeviceID,
		ServiceIDs:     append([]string(nil), serviceIDs...),
		TargetDuration: targetDuration,
		Kind:           kind,
	}
	return true
}

// Tick advances d's in-flight transfer by one step. The failure check
// runs before the progress check: a device with zero actual power
// before reaching target_duration fails the transfer outright.
func Tick(d *model.Device, f *model.Fleet) (completed, failed bool) {
	if !d.Transfer.Transferring {
		return false, false
	}

	if d.Transfer.DurationTicks < d.Transfer.TargetDuration && d.Power.ActualPowerW == 0 {
		d.Transfer.TransferFailed++
		reset(d)
		return false, true
	}

	d.Transfer.DurationTicks++
	if d.Transfer.DurationTicks >= d.Transfer.TargetDuration {
		complete(d, f)
		d.Transfer.TransferSucceed++
		reset(d)
		return true, false
	}
	return false, false
}

func complete(d *model.Device, f *model.Fleet) {
	switch d.Transfer.Kind {
	case model.TransferModel:
		dest := d.Transfer.ToDeviceID
		if dest == "" {
			dest = d.ID // downloading: destination is d itself
		}
		for _, sid := range d.Transfer.ServiceIDs {
			_ = f.Migrate(sid, dest)
		}
	case model.TransferData:
		if d.Transfer.ToDeviceID != "" {
			if dst := f.Device(d.Transfer.ToDeviceID); dst != nil {
				dst.TemperatureLog = append(dst.TemperatureLog, d.TemperatureLog...)
				d.TemperatureLog = nil
			}
		} else if src := f.Device(d.Transfer.FromDeviceID); src != nil {
			d.TemperatureLog = append(d.TemperatureLog, src.TemperatureLog...)
			src.TemperatureLog = nil
		}
	}
}

func reset(d *model.Device) {
	d.Transfer.Transferring = false
	d.Transfer.ToDeviceID = ""
	d.Transfer.FromDeviceID = ""
	d.Transfer.ServiceIDs = nil
	d.Transfer.DurationTicks = 0
	d.Transfer.TargetDuration = 0
	d.Transfer.Kind = model.TransferNone
}

// Checkpoint moves a set of services to toDeviceID immediately, with no
// TransferFSM duration accounting. Used by reactive/oracle offloading.
func Checkpoint(f *model.Fleet, serviceIDs []string, toDeviceID string) {
	for _, sid := range serviceIDs {
		_ = f.Migrate(sid, toDeviceID)
	}
}

// CheckpointData moves the entire temperature measurement buffer from
// one device to another immediately.
func CheckpointData(from, to *model.Device) {
	to.TemperatureLog = append(to.TemperatureLog, from.TemperatureLog...)
	from.TemperatureLog = nil
}

// InFlightServiceIDs returns every service id currently pinned to any
// in-flight transfer across the fleet, used to prevent a proactive
// download pass from double-assigning a service already being moved by
// another device this tick.
func InFlightServiceIDs(f *model.Fleet) map[string]bool {
	out := make(map[string]bool)
	for _, d := range f.Devices {
		if d.Transfer.Transferring {
			for _, sid := range d.Transfer.ServiceIDs {
				out[sid] = true
			}
		}
	}
	return out
}
