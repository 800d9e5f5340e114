package lifecycle

import (
	"testing"

	"fleetsim/internal/harvester"
	"fleetsim/internal/model"
)

func TestUpdateWithoutBatteryThresholds(t *testing.T) {
	cases := []struct {
		solar, wind float64
		wantState   model.LifecycleState
		wantActive  bool
	}{
		{solar: 10, wind: 0, wantState: model.StateOn, wantActive: true},
		{solar: 3, wind: 0, wantState: model.StateCritical, wantActive: true},
		{solar: 0, wind: 0, wantState: model.StateOff, wantActive: false},
	}
	for _, c := range cases {
		h := harvester.NewEnergyHarvester([]harvester.Sample{{SolarW: c.solar, WindW: c.wind}}, []string{"d1"})
		d := &model.Device{ID: "d1"}
		Update(d, h, 0, DefaultPMin)
		if d.Status.State != c.wantState || d.Status.Active != c.wantActive {
			t.Fatalf("solar=%v wind=%v: got state=%v active=%v, want state=%v active=%v",
				c.solar, c.wind, d.Status.State, d.Status.Active, c.wantState, c.wantActive)
		}
	}
}

func TestUpdateWithBatteryHealthyBand(t *testing.T) {
	params := harvester.BatteryParams{AmpereHours: 1, Volts: 1, DepthOfDischarge: 0.25, Efficiency: 1, InitialChargeFraction: 1}
	h := harvester.NewHarvesterBattery([]harvester.Sample{{SolarW: 100, WindW: 0}}, []string{"d1"}, params)
	d := &model.Device{ID: "d1"}

	Update(d, h, 0.01, DefaultPMin)
	if d.Status.State != model.StateOn {
		t.Fatalf("fully charged battery: got state=%v, want on", d.Status.State)
	}
}

func TestUpdateWithBatteryOffWhenConsumeFails(t *testing.T) {
	params := harvester.BatteryParams{AmpereHours: 1, Volts: 1, DepthOfDischarge: 0.25, Efficiency: 1, InitialChargeFraction: 0}
	h := harvester.NewHarvesterBattery([]harvester.Sample{{SolarW: 0, WindW: 0}}, []string{"d1"}, params)
	d := &model.Device{ID: "d1"}

	Update(d, h, 100, DefaultPMin)
	if d.Status.State != model.StateOff || d.Status.Active {
		t.Fatalf("empty battery with draw requested: got state=%v active=%v, want off/false", d.Status.State, d.Status.Active)
	}
}
