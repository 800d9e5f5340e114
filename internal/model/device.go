// Package model holds the plain data types shared across the simulator:
// devices, services and the fleet topology that wires them together.
package model

// LifecycleState is the on/critical/off state of a device.
type LifecycleState string

const (
	StateOn       LifecycleState = "on"
	StateCritical LifecycleState = "critical"
	StateOff      LifecycleState = "off"
)

// Status bundles the lifecycle fields that change together. State off
// always implies Active false; lifecycle.Update is the only place that
// may violate that briefly before restoring it.
type Status struct {
	State  LifecycleState
	Active bool
}

// Device is one edge node in the fleet: a power-constrained host that
// runs zero or more Services and may hold a Battery-backed harvester.
type Device struct {
	ID   string
	Kind DeviceKind

	Specs  Specs
	Status Status

	Power PowerState

	Services         []*Service
	TemperatureLog   []Measurement
	Transfer         TransferState
	PartnerDeviceIDs []string

	// TransferTimeTicks is the number of ticks a proactive transfer of a
	// model/data checkpoint takes on this device, in seconds-equivalent
	// ticks as configured by the topology.
	TransferTimeTicks int
}

// DeviceKind distinguishes the server (sink) from edge devices.
type DeviceKind string

const (
	KindEdgeDevice DeviceKind = "edge_device"
	KindServer     DeviceKind = "server"
)

// Specs are the static hardware characteristics of a device.
type Specs struct {
	CPUCores         int
	ReservedCPUCores int
	HasBattery       bool
}

// PowerSource names which harvesting source won out this tick.
type PowerSource string

const (
	PowerSolar   PowerSource = "solar"
	PowerWind    PowerSource = "wind"
	PowerBattery PowerSource = "battery"
	PowerNone    PowerSource = "none"
)

// PowerState is the resolved power reading for the current tick.
type PowerState struct {
	ActualPowerW float64
	Source       PowerSource
}

// Measurement is one recorded temperature sample.
type Measurement struct {
	Tick        int
	Temperature int
}

// TransferState mirrors the two-slot checkpoint bookkeeping carried on
// every device: which service is pinned to move, and which direction.
type TransferState struct {
	Transferring    bool
	ToDeviceID      string
	FromDeviceID    string
	ServiceIDs      []string // services currently pinned to this transfer
	DurationTicks   int
	TargetDuration  int
	Kind            TransferKind
	TransferSucceed int
	TransferFailed  int
}

type TransferKind string

const (
	TransferNone     TransferKind = ""
	TransferModel    TransferKind = "model"
	TransferData     TransferKind = "data"
)

// HasCapacity reports whether the device can take on one more service,
// i.e. whether it hosts fewer than maxServices services.
func (d *Device) HasCapacity(maxServices int) bool {
	return len(d.Services) < maxServices
}

// AvailableCores is the number of cores not reserved (cpu_cores minus
// reserved_cpu_cores, floored at zero). Hosted services are not
// subtracted; callers compare it against len(Services) themselves.
func (d *Device) AvailableCores() int {
	free := d.Specs.CPUCores - d.Specs.ReservedCPUCores
	if free < 0 {
		return 0
	}
	return free
}
