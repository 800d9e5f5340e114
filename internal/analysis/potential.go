// Package analysis ranks candidate device energy traces by harvesting
// potential, ahead of assigning them to a topology.
package analysis

import (
	"math"
	"sort"

	"fleetsim/internal/harvester"
)

// HarvestPotential is a trace-level summary used for ranking. It does
// not depend on any specific battery size; it reports raw power
// statistics plus an oracle sustained-uptime figure for a canonical
// normalized battery (1 Wh capacity, 100 SoC steps).
type HarvestPotential struct {
	DeviceID string

	Count int

	MinPowerW  float64
	MaxPowerW  float64
	MeanPowerW float64
	P05PowerW  float64
	P95PowerW  float64

	SpreadP95P05 float64

	// OracleUptimeTicks is the number of ticks, out of Count, that a
	// canonical 1 Wh battery fed by this trace could sustain a steady
	// draw at the trace's own mean power, using an optimal
	// store/idle/draw schedule computed in hindsight.
	OracleUptimeTicks int
}

// ComputePotential summarizes one device's harvested-power trace.
func ComputePotential(deviceID string, samples []harvester.Sample) HarvestPotential {
	p := HarvestPotential{DeviceID: deviceID}
	if len(samples) == 0 {
		return p
	}
	p.Count = len(samples)

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	vals := make([]float64, 0, len(samples))
	for _, s := range samples {
		v := harvester.HighestAvailablePower(s.SolarW, s.WindW)
		vals = append(vals, v)
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	sort.Float64s(vals)
	p.MinPowerW = minv
	p.MaxPowerW = maxv
	p.MeanPowerW = sum / float64(len(vals))
	p.P05PowerW = percentileSorted(vals, 0.05)
	p.P95PowerW = percentileSorted(vals, 0.95)
	p.SpreadP95P05 = p.P95PowerW - p.P05PowerW

	p.OracleUptimeTicks = oracleUptimeCanonical(samples, p.MeanPowerW)
	return p
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// oracleUptimeCanonical runs a small DP over a normalized SoC grid:
// each tick the schedule may idle, store harvested surplus (capped at
// capacity), or draw drawWh (rounded to whole SoC steps) toward
// uptime, maximizing the count of ticks a steady draw is satisfied.
// A draw that rounds to zero steps is never counted.
func oracleUptimeCanonical(samples []harvester.Sample, meanPowerW float64) int {
	if len(samples) == 0 || meanPowerW <= 0 {
		return 0
	}
	const steps = 100
	const capacityWh = 1.0
	stepWh := capacityWh / steps
	drawWh := meanPowerW / 3600

	nStates := steps + 1
	negInf := math.MinInt64 / 2
	dp := make([]int, nStates)
	next := make([]int, nStates)
	for i := range dp {
		dp[i] = negInf
	}
	dp[0] = 0 // start empty

	for _, s := range samples {
		for i := range next {
			next[i] = negInf
		}
		harvestedWh := harvester.HighestAvailablePower(s.SolarW, s.WindW) / 3600

		for soc := 0; soc <= steps; soc++ {
			if dp[soc] == negInf {
				continue
			}
			// Idle: harvested energy is simply not captured.
			if dp[soc] > next[soc] {
				next[soc] = dp[soc]
			}
			// Store: bank as much of this tick's harvest as fits.
			added := int(math.Min(harvestedWh, capacityWh-float64(soc)*stepWh) / stepWh)
			if added > 0 && soc+added <= steps && dp[soc] > next[soc+added] {
				next[soc+added] = dp[soc]
			}
			// Draw: spend drawWh, in whole SoC steps, for one tick of uptime if stored.
			drawSteps := int(math.Round(drawWh / stepWh))
			if drawSteps > 0 && soc-drawSteps >= 0 && dp[soc]+1 > next[soc-drawSteps] {
				next[soc-drawSteps] = dp[soc] + 1
			}
		}
		dp, next = next, dp
	}

	best := 0
	for _, v := range dp {
		if v > best {
			best = v
		}
	}
	return best
}
