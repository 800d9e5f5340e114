package transfer

import (
	"testing"

	"fleetsim/internal/model"
)

func newFleet(t *testing.T, ids ...string) *model.Fleet {
	t.Helper()
	devices := make([]*model.Device, len(ids))
	for i, id := range ids {
		devices[i] = &model.Device{ID: id}
	}
	f, err := model.NewFleet(ids[0], devices, nil)
	if err != nil {
		t.Fatalf("NewFleet: %v", err)
	}
	return f
}

func TestUploadCompletesAndMigratesServices(t *testing.T) {
	f := newFleet(t, "server", "edge")
	svc := &model.Service{ID: "s1", DeviceID: "edge"}
	f.Services = append(f.Services, svc)
	f.Device("edge").Services = append(f.Device("edge").Services, svc)

	edge := f.Device("edge")
	edge.Power.ActualPowerW = 10 // keeps the transfer alive
	StartUpload(edge, "server", []string{"s1"}, 2, model.TransferModel)

	completed, failed := Tick(edge, f)
	if completed || failed {
		t.Fatalf("tick 1: completed=%v failed=%v, want both false", completed, failed)
	}
	completed, failed = Tick(edge, f)
	if !completed || failed {
		t.Fatalf("tick 2: completed=%v failed=%v, want true/false", completed, failed)
	}
	if svc.DeviceID != "server" {
		t.Fatalf("service device = %v, want server", svc.DeviceID)
	}
	if edge.Transfer.Transferring {
		t.Fatalf("transfer state not reset after completion")
	}
}

func TestTransferFailsWhenPowerDropsToZero(t *testing.T) {
	f := newFleet(t, "server", "edge")
	edge := f.Device("edge")
	edge.Power.ActualPowerW = 0
	StartUpload(edge, "server", nil, 5, model.TransferModel)

	completed, failed := Tick(edge, f)
	if completed || !failed {
		t.Fatalf("completed=%v failed=%v, want false/true", completed, failed)
	}
	if edge.Transfer.TransferFailed != 1 {
		t.Fatalf("TransferFailed = %v, want 1", edge.Transfer.TransferFailed)
	}
	if edge.Transfer.Transferring {
		t.Fatalf("transfer should reset after failure")
	}
}

func TestStartUploadRefusesWhileInFlight(t *testing.T) {
	f := newFleet(t, "server", "edge")
	edge := f.Device("edge")
	StartUpload(edge, "server", nil, 5, model.TransferModel)
	if StartUpload(edge, "server", nil, 5, model.TransferModel) {
		t.Fatalf("second StartUpload should fail while a transfer is in flight")
	}
}
