// Package telemetry defines the per-tick device/service record shapes
// and the pluggable collectors (CSV, Prometheus) that persist them.
package telemetry

import "strings"

// DeviceRecord is one device's snapshot for one tick. Reactive and
// oracle runs leave the transfer fields at their zero value — the
// spec's "reduced variant" is expressed here as an always-present but
// unused set of columns rather than a second struct, so every run
// shares one CSV/JSON schema.
type DeviceRecord struct {
	Tick                 int      `csv:"tick" json:"tick"`
	DeviceID             string   `csv:"device_id" json:"model_name"`
	Kind                 string   `csv:"model_type" json:"model_type"`
	ServiceIDsCSV        string   `csv:"service_ids" json:"-"`
	ServiceIDs           []string `csv:"-" json:"service_ids"`
	PowerSource          string   `csv:"power_source" json:"power_source"`
	ActualPowerW         float64  `csv:"actual_power" json:"actual_power"`
	Active               bool     `csv:"active" json:"active"`
	State                string   `csv:"state" json:"state"`
	TemperatureReadings  int      `csv:"temperature_measurements" json:"temperature_measurements"`
	Transferring         bool     `csv:"transfer" json:"transfer"`
	TransferServiceIDsCSV string  `csv:"trans_service_ids" json:"-"`
	TransferServiceIDs   []string `csv:"-" json:"trans_service_ids"`
	TransferDuration     int      `csv:"transfer_duration" json:"transfer_duration"`
	TransferTime         int      `csv:"transfer_time" json:"transfer_time"`
	TransferToDeviceID   string   `csv:"transfer_to_device_id" json:"transfer_to_device_id"`
	TransferFromDeviceID string   `csv:"transfer_from_device_id" json:"transfer_from_device_id"`
	FailedTransfers      int      `csv:"failed_transfers" json:"failed_transfers"`
	SucceededTransfers   int      `csv:"succeeded_transfers" json:"succeeded_transfers"`
	BatterySoCWh         float64  `csv:"battery_soc_wh" json:"battery_soc_wh"`
	HasBattery           bool     `csv:"has_battery" json:"has_battery"`
}

// ServiceRecord is one service's snapshot for one tick.
type ServiceRecord struct {
	Tick                int    `csv:"tick" json:"tick"`
	ServiceID           string `csv:"service_id" json:"model_id"`
	DeviceID            string `csv:"device_id" json:"device_id"`
	State               string `csv:"state" json:"state"`
	ProgramCounter      int    `csv:"program_counter" json:"program_counter"`
	Trained             bool   `csv:"trained" json:"trained"`
	MaxTrainingTicks    int    `csv:"max_training_time" json:"max_training_time"`
	ActualTrainingTicks int    `csv:"actual_training_time" json:"actual_training_time"`
	MaxPredictionTicks  int    `csv:"max_prediction_time" json:"max_prediction_time"`
	ActualPredictTicks  int    `csv:"actual_prediction_time" json:"actual_prediction_time"`
	PredictionsCounter  int    `csv:"predictions_counter" json:"predictions_counter"`
}

// prepareForCSV joins the slice fields into flat columns; csvutil
// encodes struct fields directly and has no native slice support.
func (d *DeviceRecord) prepareForCSV() {
	d.ServiceIDsCSV = strings.Join(d.ServiceIDs, ";")
	d.TransferServiceIDsCSV = strings.Join(d.TransferServiceIDs, ";")
}

// Collector receives one tick's worth of records. Implementations must
// not retain the slices past the call.
type Collector interface {
	Collect(tick int, devices []DeviceRecord, services []ServiceRecord) error
	Close() error
}
