package telemetry

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"
)

// CSVCollector appends device and service records to two CSV streams,
// encoded with csvutil's struct-tag-driven marshaling rather than a
// hand-built field list.
type CSVCollector struct {
	deviceWriter  *csvutil.Encoder
	serviceWriter *csvutil.Encoder
	deviceCSV     *csv.Writer
	serviceCSV    *csv.Writer
	deviceCloser  io.Closer
	serviceCloser io.Closer
}

// NewCSVCollector wraps the given writers. Callers are responsible for
// opening the underlying files; Close flushes and closes them.
func NewCSVCollector(deviceOut, serviceOut io.WriteCloser) *CSVCollector {
	deviceCSV := csv.NewWriter(deviceOut)
	serviceCSV := csv.NewWriter(serviceOut)
	return &CSVCollector{
		deviceWriter:  csvutil.NewEncoder(deviceCSV),
		serviceWriter: csvutil.NewEncoder(serviceCSV),
		deviceCSV:     deviceCSV,
		serviceCSV:    serviceCSV,
		deviceCloser:  deviceOut,
		serviceCloser: serviceOut,
	}
}

func (c *CSVCollector) Collect(tick int, devices []DeviceRecord, services []ServiceRecord) error {
	for i := range devices {
		devices[i].Tick = tick
		devices[i].prepareForCSV()
		if err := c.deviceWriter.Encode(devices[i]); err != nil {
			return fmt.Errorf("telemetry: encode device record: %w", err)
		}
	}
	for i := range services {
		services[i].Tick = tick
		if err := c.serviceWriter.Encode(services[i]); err != nil {
			return fmt.Errorf("telemetry: encode service record: %w", err)
		}
	}
	return nil
}

func (c *CSVCollector) Close() error {
	c.deviceCSV.Flush()
	c.serviceCSV.Flush()
	if err := c.deviceCSV.Error(); err != nil {
		return err
	}
	if err := c.serviceCSV.Error(); err != nil {
		return err
	}
	if err := c.deviceCloser.Close(); err != nil {
		return err
	}
	return c.serviceCloser.Close()
}
