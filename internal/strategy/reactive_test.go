package strategy

import (
	"math/rand"
	"testing"

	"fleetsim/internal/model"
)

func buildFleet(t *testing.T) (*model.Fleet, *model.Device, *model.Device, *model.Device) {
	t.Helper()
	server := &model.Device{ID: "server"}
	a := &model.Device{ID: "a", PartnerDeviceIDs: []string{"b"}}
	b := &model.Device{ID: "b", Status: model.Status{State: model.StateOn, Active: true}}
	f, err := model.NewFleet("server", []*model.Device{server, a, b}, nil)
	if err != nil {
		t.Fatalf("NewFleet: %v", err)
	}
	return f, server, a, b
}

func TestReactiveMovesServicesOnHeartbeatFailure(t *testing.T) {
	f, _, a, b := buildFleet(t)
	s1 := &model.Service{ID: "s1", DeviceID: "a"}
	s2 := &model.Service{ID: "s2", DeviceID: "a"}
	f.Services = append(f.Services, s1, s2)
	a.Services = append(a.Services, s1, s2)
	a.Status = model.Status{State: model.StateOff, Active: false}

	r := &Reactive{MaxServicesPerDevice: 3, Offloading: OffloadModel, Rand: rand.New(rand.NewSource(1))}
	r.Decide(f, a, 0)

	if len(a.Services) != 0 {
		t.Fatalf("a still hosts %d services, want 0", len(a.Services))
	}
	if len(b.Services) != 2 {
		t.Fatalf("b hosts %d services, want 2", len(b.Services))
	}
}

func TestReactiveSkipsWithoutEligiblePartner(t *testing.T) {
	f, _, a, b := buildFleet(t)
	s1 := &model.Service{ID: "s1", DeviceID: "a"}
	f.Services = append(f.Services, s1)
	a.Services = append(a.Services, s1)
	a.Status = model.Status{State: model.StateOff, Active: false}
	b.Status = model.Status{State: model.StateOff, Active: false} // no eligible partner

	r := &Reactive{MaxServicesPerDevice: 3, Offloading: OffloadModel, Rand: rand.New(rand.NewSource(1))}
	r.Decide(f, a, 0)

	if len(a.Services) != 1 {
		t.Fatalf("a hosts %d services, want unchanged 1 (no eligible partner)", len(a.Services))
	}
}

func TestReactiveNeverInitiatesWithNoPartners(t *testing.T) {
	server := &model.Device{ID: "server"}
	a := &model.Device{ID: "a"} // no partner ids configured
	f, _ := model.NewFleet("server", []*model.Device{server, a}, nil)
	s1 := &model.Service{ID: "s1", DeviceID: "a"}
	f.Services = append(f.Services, s1)
	a.Services = append(a.Services, s1)
	a.Status = model.Status{State: model.StateOff, Active: false}

	r := &Reactive{MaxServicesPerDevice: 3, Offloading: OffloadModel, Rand: rand.New(rand.NewSource(1))}
	r.Decide(f, a, 0)

	if len(a.Services) != 1 {
		t.Fatalf("a hosts %d services, want unchanged 1 (no partners configured at all)", len(a.Services))
	}
}
