package strategy

import (
	"math/rand"

	"fleetsim/internal/heartbeat"
	"fleetsim/internal/model"
	"fleetsim/internal/transfer"
)

// Reactive moves a failing device's workload the instant its heartbeat
// drops, with no TransferFSM duration: the edge-device-to-server and
// server-to-partner hops both happen within the same tick.
type Reactive struct {
	MaxServicesPerDevice int
	Offloading           OffloadUnit
	Rand                 *rand.Rand
}

func (r *Reactive) Name() string { return "reactive" }

func (r *Reactive) Decide(f *model.Fleet, d *model.Device, tick int) {
	if heartbeat.Alive(d) {
		return
	}
	partners := heartbeat.Partners(f, d, r.MaxServicesPerDevice)
	if len(partners) == 0 {
		return
	}

	switch r.Offloading {
	case OffloadModel:
		r.moveServices(f, d, partners)
	case OffloadData:
		r.moveData(f, d, partners)
	}
}

func (r *Reactive) moveServices(f *model.Fleet, d *model.Device, partners []*model.Device) {
	services := f.ServicesOn(d.ID)
	if len(services) == 0 {
		return
	}
	server := f.Server()
	transfer.Checkpoint(f, serviceIDs(services), server.ID)

	for _, s := range services {
		for _, p := range partners {
			if len(p.Services) < r.MaxServicesPerDevice {
				_ = f.Migrate(s.ID, p.ID)
				break
			}
		}
	}
}

func (r *Reactive) moveData(f *model.Fleet, d *model.Device, partners []*model.Device) {
	if len(d.TemperatureLog) == 0 {
		return
	}
	server := f.Server()
	transfer.CheckpointData(d, server)
	target := partners[r.Rand.Intn(len(partners))]
	transfer.CheckpointData(server, target)
}

func (r *Reactive) PostPass(f *model.Fleet, tick int) {}

func (r *Reactive) ServicesShouldRun(d *model.Device) bool { return d.Status.Active }
