// Package measurement collects the simulated temperature sensor
// reading each active, non-transferring device produces per tick.
package measurement

import (
	"math/rand"

	"fleetsim/internal/model"
)

// Collect appends a reading for tick to d's temperature log, provided
// the device is on and has no transfer currently in flight.
func Collect(d *model.Device, tick int, rng *rand.Rand) {
	if d.Status.State != model.StateOn || d.Transfer.Transferring {
		return
	}
	reading := rng.Intn(41) // 0..40 inclusive
	d.TemperatureLog = append(d.TemperatureLog, model.Measurement{Tick: tick, Temperature: reading})
}
