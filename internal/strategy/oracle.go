package strategy

import (
	"math/rand"

	"fleetsim/internal/model"
)

// Oracle shares Reactive's exact heartbeat-driven decision surface —
// the source simulation literally reuses the reactive device's
// transfer methods for the oracle strategy — and adds a load-balancing
// post-pass.
type Oracle struct {
	Reactive
	LoadBalancing bool
}

// NewOracle builds an Oracle strategy with the given partner-capacity
// cap, offload unit, and load-balancing flag.
func NewOracle(maxServicesPerDevice int, offloading OffloadUnit, loadBalancing bool, rng *rand.Rand) *Oracle {
	return &Oracle{
		Reactive: Reactive{
			MaxServicesPerDevice: maxServicesPerDevice,
			Offloading:           offloading,
			Rand:                 rng,
		},
		LoadBalancing: loadBalancing,
	}
}

func (o *Oracle) Name() string { return "oracle" }

func (o *Oracle) PostPass(f *model.Fleet, tick int) {
	if !o.LoadBalancing || o.Offloading != OffloadModel {
		return
	}
	for _, d := range f.EdgeDevices() {
		RunLoadBalancer(f, d)
	}
}
