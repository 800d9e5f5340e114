// Package lifecycle implements the per-device power update and the
// on/critical/off state machine it feeds.
package lifecycle

import (
	"fleetsim/internal/harvester"
	"fleetsim/internal/model"
)

// DefaultPMin is the actual-power threshold at or below which a
// battery-less device drops from "on" to "critical".
const DefaultPMin = 5.00

// BatteryHealthyFraction is the state-of-charge fraction of capacity
// above which a battery-backed device is considered healthy ("on")
// rather than merely alive ("critical").
const BatteryHealthyFraction = 0.4

// UpdatePower resolves this tick's actual power for a device. For a
// plain harvester it picks the larger of solar/wind. For a
// battery-backed harvester it charges first, then attempts to draw
// requiredPowerW; on refusal actual power is zero.
func UpdatePower(d *model.Device, h harvester.Harvester, requiredPowerW float64) {
	if bh, ok := h.(harvester.BatteryCapable); ok {
		bh.Charge(d.ID)
		ok := bh.Consume(d.ID, requiredPowerW)
		if ok {
			d.Power = model.PowerState{ActualPowerW: requiredPowerW, Source: model.PowerBattery}
		} else {
			d.Power = model.PowerState{ActualPowerW: 0, Source: model.PowerBattery}
		}
		return
	}

	solar, wind := h.GetEnergy(d.ID)
	switch {
	case solar == 0 && wind == 0:
		d.Power = model.PowerState{ActualPowerW: 0, Source: model.PowerNone}
	case solar >= wind:
		d.Power = model.PowerState{ActualPowerW: solar, Source: model.PowerSolar}
	default:
		d.Power = model.PowerState{ActualPowerW: wind, Source: model.PowerWind}
	}
}

// UpdateState derives {on, critical, off} + active from the device's
// current power reading, branching on whether the harvester backing it
// has a battery.
func UpdateState(d *model.Device, h harvester.Harvester, pMin float64) {
	if bh, ok := h.(harvester.BatteryCapable); ok {
		soc := bh.SoC(d.ID)
		maxCapacity := bh.MaxCapacity()
		minSoC := bh.MinSoC()
		p := d.Power.ActualPowerW
		switch {
		case p > 0 && soc >= BatteryHealthyFraction*maxCapacity:
			d.Status = model.Status{State: model.StateOn, Active: true}
		case p > 0 && soc >= minSoC && soc < BatteryHealthyFraction*maxCapacity:
			d.Status = model.Status{State: model.StateCritical, Active: true}
		default:
			d.Status = model.Status{State: model.StateOff, Active: false}
		}
		return
	}

	p := d.Power.ActualPowerW
	switch {
	case p > pMin:
		d.Status = model.Status{State: model.StateOn, Active: true}
	case p > 0:
		d.Status = model.Status{State: model.StateCritical, Active: true}
	default:
		d.Status = model.Status{State: model.StateOff, Active: false}
	}
}

// Update runs the power resolution then the state derivation, in the
// order the scheduler requires.
func Update(d *model.Device, h harvester.Harvester, requiredPowerW, pMin float64) {
	UpdatePower(d, h, requiredPowerW)
	UpdateState(d, h, pMin)
}
