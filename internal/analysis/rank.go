package analysis

import (
	"sort"

	"fleetsim/internal/harvester"
)

// RankedPotential is one device's potential as an entry of a ranked
// list; its rank is its position in the returned slice.
type RankedPotential struct {
	HarvestPotential
}

// RankByOracleUptime computes potentials per device and sorts
// descending by OracleUptimeTicks, so the highest-potential traces
// sort first for assignment to the topology's most power-hungry
// devices.
func RankByOracleUptime(byDevice map[string][]harvester.Sample) []RankedPotential {
	out := make([]RankedPotential, 0, len(byDevice))
	for deviceID, samples := range byDevice {
		out = append(out, RankedPotential{HarvestPotential: ComputePotential(deviceID, samples)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OracleUptimeTicks != out[j].OracleUptimeTicks {
			return out[i].OracleUptimeTicks > out[j].OracleUptimeTicks
		}
		return out[i].DeviceID < out[j].DeviceID
	})
	return out
}
