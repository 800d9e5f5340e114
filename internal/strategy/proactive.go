package strategy

import (
	"fleetsim/internal/harvester"
	"fleetsim/internal/model"
	"fleetsim/internal/transfer"
)

// Proactive pre-empts predicted shortage: a device uploads its
// workload to the server as soon as its power reading looks weak, and
// the server downloads work back onto devices once they look strong
// again. Both directions pay the device's configured transfer_time
// instead of completing within the tick.
type Proactive struct {
	MinPowerThreshold float64
	Offloading        OffloadUnit
	LoadBalancing     bool
	Harvester         harvester.Harvester
}

func (p *Proactive) Name() string { return "proactive" }

func (p *Proactive) lowPower(d *model.Device) bool {
	if bh, ok := p.Harvester.(harvester.BatteryCapable); ok {
		soc := bh.SoC(d.ID)
		thresholdWh := round2(p.MinPowerThreshold / 3600)
		return soc < thresholdWh || soc <= 0.4*bh.MaxCapacity()
	}
	return d.Power.ActualPowerW < p.MinPowerThreshold
}

func (p *Proactive) highPower(d *model.Device) bool {
	if bh, ok := p.Harvester.(harvester.BatteryCapable); ok {
		soc := bh.SoC(d.ID)
		thresholdWh := round2(p.MinPowerThreshold / 3600)
		return soc >= thresholdWh && soc > 0.4*bh.MaxCapacity()
	}
	return d.Power.ActualPowerW >= p.MinPowerThreshold
}

// Decide is the device-initiated upload half: a device under power
// pressure pins its workload and starts moving it to the server.
func (p *Proactive) Decide(f *model.Fleet, d *model.Device, tick int) {
	if d.Transfer.Transferring || !p.lowPower(d) {
		return
	}
	server := f.Server()

	switch p.Offloading {
	case OffloadModel:
		services := f.ServicesOn(d.ID)
		if len(services) == 0 {
			return
		}
		transfer.StartUpload(d, server.ID, serviceIDs(services), d.TransferTimeTicks, model.TransferModel)
	case OffloadData:
		if len(d.TemperatureLog) == 0 {
			return
		}
		transfer.StartUpload(d, server.ID, nil, d.TransferTimeTicks, model.TransferData)
	}
}

// PostPass runs the server-side download pass, then advances every
// in-flight TransferFSM (failure check before progress check).
func (p *Proactive) PostPass(f *model.Fleet, tick int) {
	server := f.Server()

	switch p.Offloading {
	case OffloadModel:
		inFlight := transfer.InFlightServiceIDs(f)
		var candidates []*model.Service
		for _, s := range f.ServicesOn(server.ID) {
			if !inFlight[s.ID] {
				candidates = append(candidates, s)
			}
		}
		for _, d := range f.EdgeDevices() {
			if d.Transfer.Transferring || !p.highPower(d) || len(candidates) == 0 {
				continue
			}
			var freeSlots int
			if !p.LoadBalancing {
				if len(d.Services) > 0 {
					continue
				}
				freeSlots = 1
			} else {
				freeSlots = d.AvailableCores() - len(d.Services)
			}
			if freeSlots <= 0 {
				continue
			}
			n := freeSlots
			if n > len(candidates) {
				n = len(candidates)
			}
			assign := candidates[:n]
			candidates = candidates[n:]
			transfer.StartDownload(d, server.ID, serviceIDs(assign), d.TransferTimeTicks, model.TransferModel)
		}
	case OffloadData:
		if len(server.TemperatureLog) == 0 {
			break
		}
		for _, d := range f.EdgeDevices() {
			if d.Transfer.Transferring || !p.highPower(d) || len(d.TemperatureLog) != 0 {
				continue
			}
			transfer.StartDownload(d, server.ID, nil, d.TransferTimeTicks, model.TransferData)
			break
		}
	}

	for _, d := range f.Devices {
		transfer.Tick(d, f)
	}
}

func (p *Proactive) ServicesShouldRun(d *model.Device) bool {
	return d.Status.Active && !d.Transfer.Transferring
}
