package harvester

// Harvester is the capability every device can rely on: a per-tick
// energy reading and tick advance. EnergyHarvester implements only
// this; HarvesterBattery additionally satisfies BatteryCapable. Callers
// that need battery behavior type-assert rather than relying on a
// shared base type, since plain devices have no state of charge at all.
type Harvester interface {
	GetEnergy(deviceID string) (solarW, windW float64)
	HighestAvailablePower(deviceID string) float64
	AdvanceTick()
	Tick() int
}

// BatteryCapable is implemented by harvesters backing devices with a
// physical battery pack.
type BatteryCapable interface {
	Harvester
	Charge(deviceID string)
	Consume(deviceID string, powerW float64) bool
	SoC(deviceID string) float64
	MinSoC() float64
	MaxCapacity() float64
}

// EnergyHarvester is the plain (no battery) harvester: devices consume
// power directly from the instantaneous trace with no storage.
type EnergyHarvester struct {
	traces map[string][]Sample
	tick   int
}

// NewEnergyHarvester builds a harvester from a full trace split across
// the given device ids.
func NewEnergyHarvester(fullTrace []Sample, deviceIDs []string) *EnergyHarvester {
	return &EnergyHarvester{traces: SplitByDevice(fullTrace, deviceIDs)}
}

func (h *EnergyHarvester) GetEnergy(deviceID string) (float64, float64) {
	series := h.traces[deviceID]
	if h.tick < 0 || h.tick >= len(series) {
		return 0, 0
	}
	s := series[h.tick]
	return s.SolarW, s.WindW
}

func (h *EnergyHarvester) HighestAvailablePower(deviceID string) float64 {
	solar, wind := h.GetEnergy(deviceID)
	return HighestAvailablePower(solar, wind)
}

func (h *EnergyHarvester) AdvanceTick() { h.tick++ }
func (h *EnergyHarvester) Tick() int    { return h.tick }

// HarvesterBattery layers a Bank of per-device batteries on top of the
// plain harvester: energy is harvested into storage each tick instead
// of being consumed directly from the trace.
type HarvesterBattery struct {
	EnergyHarvester
	Bank *Bank
}

// NewHarvesterBattery builds a battery-backed harvester for the given
// device ids, seeding each device's state of charge per params.
func NewHarvesterBattery(fullTrace []Sample, deviceIDs []string, params BatteryParams) *HarvesterBattery {
	return &HarvesterBattery{
		EnergyHarvester: *NewEnergyHarvester(fullTrace, deviceIDs),
		Bank:            NewBank(params, deviceIDs),
	}
}

func (h *HarvesterBattery) Charge(deviceID string) {
	solar, wind := h.GetEnergy(deviceID)
	h.Bank.Charge(deviceID, solar, wind)
}

func (h *HarvesterBattery) Consume(deviceID string, powerW float64) bool {
	return h.Bank.Consume(deviceID, powerW)
}

func (h *HarvesterBattery) SoC(deviceID string) float64 { return h.Bank.SoC(deviceID) }
func (h *HarvesterBattery) MinSoC() float64             { return h.Bank.Params.MinSoCWh() }
func (h *HarvesterBattery) MaxCapacity() float64        { return h.Bank.Params.MaxCapacityWh() }
