// Package strategy implements the three offload policies (reactive,
// proactive, oracle) sharing one fleet-walk skeleton, plus the
// load-balancing post-pass used by oracle.
package strategy

import "fleetsim/internal/model"

// OffloadUnit selects what a transfer moves.
type OffloadUnit string

const (
	OffloadModel OffloadUnit = "model"
	OffloadData  OffloadUnit = "data"
)

// Strategy is the decision object the scheduler drives per tick. Decide
// is called once per edge device during the offload pass; PostPass
// runs once per tick afterward (a no-op for strategies that don't need
// one).
type Strategy interface {
	Name() string
	Decide(f *model.Fleet, d *model.Device, tick int)
	PostPass(f *model.Fleet, tick int)

	// ServicesShouldRun reports whether d's hosted services advance this
	// tick. Every strategy stops services on an inactive device;
	// proactive additionally stops them while a transfer is in flight
	// on d, since the device's attention is on the move rather than on
	// serving predictions.
	ServicesShouldRun(d *model.Device) bool
}
