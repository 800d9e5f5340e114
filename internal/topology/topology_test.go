package topology

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleDoc = `{
  "server_id": "server",
  "devices": [
    {"id": "server", "kind": "server", "cpu_cores": 8},
    {"id": "edge-1", "kind": "edge_device", "cpu_cores": 2, "partner_device_ids": ["edge-2"], "transfer_time_ticks": 3},
    {"id": "edge-2", "kind": "edge_device", "cpu_cores": 2, "partner_device_ids": ["edge-1"]}
  ],
  "services": [
    {"id": "svc-1", "device_id": "edge-1", "max_training_time": 5, "max_prediction_time": 10}
  ]
}`

func TestLoadBuildsFleet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topology.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.EdgeDevices()) != 2 {
		t.Fatalf("expected 2 edge devices, got %d", len(f.EdgeDevices()))
	}
	edge1 := f.Device("edge-1")
	if edge1 == nil || len(edge1.Services) != 1 || edge1.Services[0].ID != "svc-1" {
		t.Fatalf("expected svc-1 hosted on edge-1, got %+v", edge1)
	}
	if edge1.TransferTimeTicks != 3 {
		t.Fatalf("expected transfer time 3, got %d", edge1.TransferTimeTicks)
	}
}

func TestLoadRejectsUnknownServiceDevice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topology.json")
	bad := `{"server_id":"server","devices":[{"id":"server","kind":"server"}],"services":[{"id":"svc-1","device_id":"ghost"}]}`
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for service referencing unknown device")
	}
}

func TestLoadRejectsUnknownPartnerDevice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topology.json")
	bad := `{
	  "server_id": "server",
	  "devices": [
	    {"id": "server", "kind": "server", "cpu_cores": 8},
	    {"id": "edge-1", "kind": "edge_device", "cpu_cores": 2, "partner_device_ids": ["ghost"]}
	  ]
	}`
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for device naming unknown partner device")
	}
}
