// Package harvester implements the per-device energy trace, the
// watt-hour battery model, and the capability-based harvester variants
// (plain vs battery-backed) that feed device power updates each tick.
package harvester

import (
	"fmt"

	"github.com/jszwec/csvutil"
)

// Sample is one tick's resolved solar/wind power reading in watts.
type Sample struct {
	SolarW float64 `csv:"solar_w"`
	WindW  float64 `csv:"wind_w"`
}

// rawRow is the shape of a precomputed energy CSV (WindPower(W)/SolarPower(W)
// columns), matching the Python harvester's parquet cache schema.
type rawRow struct {
	WindPower  float64 `csv:"WindPower(W)"`
	SolarPower float64 `csv:"SolarPower(W)"`
}

// rawWeatherRow is the shape of the uncomputed weather export (wind
// speed in m/s, solar energy in Langley) that must be converted with
// the formulas below before use.
type rawWeatherRow struct {
	WindSpeed   float64 `csv:"WindSpeed"`
	SolarEnergy float64 `csv:"SolarEnergy"`
}

const (
	langleyToWattHourPerM2 = 11.622
	airDensityKgM3         = 1.225
	sweptAreaM2            = 0.5
	powerCoefficient       = 0.35
	generatorEfficiency    = 0.90
)

// solarPowerW converts Langley solar energy to watts, assuming a 1m^2 panel.
func solarPowerW(langley float64) float64 {
	return langley * langleyToWattHourPerM2
}

// windPowerW converts wind speed (m/s) to watts via the standard
// kinetic wind-turbine power equation.
func windPowerW(speedMS float64) float64 {
	return 0.5 * airDensityKgM3 * sweptAreaM2 * speedMS * speedMS * speedMS * powerCoefficient * generatorEfficiency
}

// LoadPrecomputed reads a CSV with WindPower(W)/SolarPower(W) columns.
func LoadPrecomputed(data []byte) ([]Sample, error) {
	var rows []rawRow
	if err := csvutil.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("harvester: decode precomputed trace: %w", err)
	}
	out := make([]Sample, len(rows))
	for i, r := range rows {
		out[i] = Sample{SolarW: r.SolarPower, WindW: r.WindPower}
	}
	return out, nil
}

// LoadWeather reads a CSV with WindSpeed/SolarEnergy columns and
// converts them to watts using the harvesting formulas.
func LoadWeather(data []byte) ([]Sample, error) {
	var rows []rawWeatherRow
	if err := csvutil.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("harvester: decode weather trace: %w", err)
	}
	out := make([]Sample, len(rows))
	for i, r := range rows {
		out[i] = Sample{
			SolarW: solarPowerW(r.SolarEnergy),
			WindW:  windPowerW(r.WindSpeed),
		}
	}
	return out, nil
}

// SplitByDevice partitions a single trace across num devices the way
// the harvester does: an equal chunk per device, with the final device
// absorbing any remainder so the whole trace is covered exactly once.
func SplitByDevice(samples []Sample, deviceIDs []string) map[string][]Sample {
	out := make(map[string][]Sample, len(deviceIDs))
	n := len(deviceIDs)
	if n == 0 {
		return out
	}
	chunk := len(samples) / n
	start := 0
	for i, id := range deviceIDs {
		end := start + chunk
		if i == n-1 {
			end = len(samples)
		}
		if end > len(samples) {
			end = len(samples)
		}
		if start > end {
			start = end
		}
		out[id] = samples[start:end]
		start = end
	}
	return out
}
