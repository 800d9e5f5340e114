package telemetry

import (
	"bytes"
	"testing"

	"github.com/jszwec/csvutil"
)

type nopWriteCloser struct{ *bytes.Buffer }

func (nopWriteCloser) Close() error { return nil }

func TestCSVCollectorRoundTrip(t *testing.T) {
	var deviceBuf, serviceBuf bytes.Buffer
	c := NewCSVCollector(nopWriteCloser{&deviceBuf}, nopWriteCloser{&serviceBuf})

	devices := []DeviceRecord{{
		DeviceID:     "edge-1",
		Kind:         "edge_device",
		ServiceIDs:   []string{"s1", "s2"},
		PowerSource:  "solar",
		ActualPowerW: 12.5,
		Active:       true,
		State:        "on",
	}}
	services := []ServiceRecord{{ServiceID: "s1", DeviceID: "edge-1", State: "running", ProgramCounter: 3}}

	if err := c.Collect(7, devices, services); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var decoded []DeviceRecord
	if err := csvutil.Unmarshal(deviceBuf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode device csv: %v", err)
	}
	if len(decoded) != 1 || decoded[0].DeviceID != "edge-1" || decoded[0].ServiceIDsCSV != "s1;s2" {
		t.Fatalf("decoded device record mismatch: %+v", decoded)
	}
}
