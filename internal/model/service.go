package model

// ServiceState is the micro state machine driving train/predict cycles.
type ServiceState string

const (
	ServiceIdle    ServiceState = "idle"
	ServiceRunning ServiceState = "running"
	ServiceStopped ServiceState = "stopped"
)

// Service is one AI workload hosted on a Device. DeviceID is a
// non-owning back-reference: the Device slice in Fleet.Devices is the
// owner, Service only remembers where it currently lives so migration
// can look it up by id instead of holding a pointer cycle.
type Service struct {
	ID       string
	DeviceID string

	State ServiceState

	Trained             bool
	ActualTrainingTicks int
	MaxTrainingTicks    int
	ActualPredictTicks  int
	MaxPredictionTicks  int
	PredictionsCounter  int
	ProgramCounter      int
}

// IncrementProgramCounter advances the service's run counter. Mirrors
// the original increase_program_counter hook: called once per run tick
// regardless of train/predict phase.
func (s *Service) IncrementProgramCounter() {
	s.ProgramCounter++
}
