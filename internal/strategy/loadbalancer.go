package strategy

import (
	"fleetsim/internal/heartbeat"
	"fleetsim/internal/model"
	"fleetsim/internal/transfer"
)

// RunLoadBalancer rebalances an overloaded device's services across its
// online partners, routed through the server as an immediate
// (reactive-style) move. A device is overloaded when its service count
// exceeds its own cpu_cores-reserved_cpu_cores budget.
func RunLoadBalancer(f *model.Fleet, d *model.Device) {
	overflow := len(d.Services) - d.AvailableCores()
	if overflow <= 0 {
		return
	}

	server := f.Server()
	remaining := append([]*model.Service(nil), f.ServicesOn(d.ID)...)

	for _, p := range heartbeat.OnlinePartners(f, d) {
		if overflow <= 0 || len(remaining) == 0 {
			break
		}
		free := p.AvailableCores() - len(p.Services)
		if free <= 0 {
			continue
		}
		n := free
		if n > overflow {
			n = overflow
		}
		if n > len(remaining) {
			n = len(remaining)
		}
		toMove := remaining[:n]
		remaining = remaining[n:]

		transfer.Checkpoint(f, serviceIDs(toMove), server.ID)
		for _, s := range toMove {
			_ = f.Migrate(s.ID, p.ID)
		}
		overflow -= n
	}
}
