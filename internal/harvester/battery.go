package harvester

import "math"

// BatteryParams are the physical parameters shared by every battery in
// a bank: capacity derived from the pack's amp-hour rating at a given
// voltage, and the depth-of-discharge floor.
type BatteryParams struct {
	AmpereHours           float64
	Volts                 float64
	DepthOfDischarge      float64 // fraction 0..1 of MaxCapacityWh that must remain
	Efficiency            float64 // fraction 0..1 applied to harvested energy before storage
	InitialChargeFraction float64 // fraction 0..1 of MaxCapacityWh devices start at
}

// MaxCapacityWh is the pack's usable energy capacity in watt-hours.
func (p BatteryParams) MaxCapacityWh() float64 {
	return round2(p.AmpereHours * p.Volts)
}

// MinSoCWh is the floor below which Consume starts reporting failure.
func (p BatteryParams) MinSoCWh() float64 {
	return round2(p.MaxCapacityWh() * p.DepthOfDischarge)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Bank tracks the state of charge for every battery-backed device in a
// fleet. One Bank is shared by all devices that have a battery; the
// per-device soc map mirrors the Python harvester's bsoc dict.
type Bank struct {
	Params BatteryParams
	soc    map[string]float64
}

// NewBank seeds every listed device at InitialChargeFraction of capacity.
func NewBank(params BatteryParams, deviceIDs []string) *Bank {
	b := &Bank{Params: params, soc: make(map[string]float64, len(deviceIDs))}
	initial := round2(params.MaxCapacityWh() * params.InitialChargeFraction)
	for _, id := range deviceIDs {
		b.soc[id] = initial
	}
	return b
}

// SoC returns the current state of charge, in watt-hours, for a device.
func (b *Bank) SoC(deviceID string) float64 {
	return b.soc[deviceID]
}

// Charge adds harvested energy for one tick. The harvested source is
// whichever of solar/wind is larger for that tick, not their sum; the
// resulting watt-hours are efficiency-scaled and capped at capacity.
func (b *Bank) Charge(deviceID string, solarW, windW float64) {
	harvestedW := math.Max(solarW, windW)
	addedWh := round2((harvestedW / 3600) * b.Params.Efficiency)
	next := b.soc[deviceID] + addedWh
	max := b.Params.MaxCapacityWh()
	if next > max {
		next = max
	}
	b.soc[deviceID] = next
}

// Consume withdraws the watt-hour equivalent of powerW for one tick.
//
// This preserves the original harvester's exact, slightly surprising
// floor behavior: if soc starts at or above the minimum, the
// withdrawal is always applied, even when the result drops below the
// minimum — only the return value signals that the floor was breached.
// If soc already starts below the minimum, nothing is withdrawn and
// Consume reports failure immediately.
func (b *Bank) Consume(deviceID string, powerW float64) bool {
	requiredWh := round2(powerW / 3600)
	min := b.Params.MinSoCWh()
	current := b.soc[deviceID]
	if current < min {
		return false
	}
	next := current - requiredWh
	b.soc[deviceID] = next
	return next >= min
}

// HighestAvailablePower returns the larger of the two instantaneous
// harvesting sources for this tick.
func HighestAvailablePower(solarW, windW float64) float64 {
	return math.Max(solarW, windW)
}
