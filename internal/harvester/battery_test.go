package harvester

import "testing"

func testParams() BatteryParams {
	return BatteryParams{
		AmpereHours:           10,
		Volts:                 12,
		DepthOfDischarge:      0.2,
		Efficiency:            0.9,
		InitialChargeFraction: 1.0,
	}
}

func TestBankChargeCapsAtCapacity(t *testing.T) {
	p := testParams()
	b := NewBank(p, []string{"d1"})
	b.Charge("d1", 1_000_000, 0)
	if got, want := b.SoC("d1"), p.MaxCapacityWh(); got != want {
		t.Fatalf("SoC after overcharge = %v, want capped at %v", got, want)
	}
}

func TestBankConsumeAppliesEvenWhenItUndercutsFloor(t *testing.T) {
	p := testParams()
	b := NewBank(p, []string{"d1"})
	min := p.MinSoCWh()
	// Seed soc just above the floor so one large draw pushes it under.
	b.soc["d1"] = min + 0.01

	ok := b.Consume("d1", 3600*1000) // requests far more than available
	if ok {
		t.Fatalf("Consume() = true, want false once SoC drops below floor")
	}
	if got := b.SoC("d1"); got >= min {
		t.Fatalf("SoC after undercutting consume = %v, want below floor %v (withdrawal must still apply)", got, min)
	}
}

func TestBankConsumeRefusesBelowFloorWithoutMutating(t *testing.T) {
	p := testParams()
	b := NewBank(p, []string{"d1"})
	min := p.MinSoCWh()
	b.soc["d1"] = min - 1

	ok := b.Consume("d1", 100)
	if ok {
		t.Fatalf("Consume() = true, want false when already below floor")
	}
	if got := b.SoC("d1"); got != min-1 {
		t.Fatalf("SoC mutated on a refused consume: got %v, want unchanged %v", got, min-1)
	}
}

func TestHarvesterBatteryAdvanceTick(t *testing.T) {
	trace := []Sample{{SolarW: 10, WindW: 1}, {SolarW: 20, WindW: 2}}
	h := NewHarvesterBattery(trace, []string{"d1"}, testParams())
	solar, wind := h.GetEnergy("d1")
	if solar != 10 || wind != 1 {
		t.Fatalf("tick 0 energy = (%v, %v), want (10, 1)", solar, wind)
	}
	h.AdvanceTick()
	solar, wind = h.GetEnergy("d1")
	if solar != 20 || wind != 2 {
		t.Fatalf("tick 1 energy = (%v, %v), want (20, 2)", solar, wind)
	}
}
