// Package runner drives the train-then-predict micro state machine
// hosted services advance through while their device is active.
package runner

import "fleetsim/internal/model"

// Run advances one active service by one tick: train to completion,
// then predict in a loop, incrementing program_counter regardless.
func Run(s *model.Service) {
	s.State = model.ServiceRunning

	if !s.Trained {
		if s.ActualTrainingTicks < s.MaxTrainingTicks {
			s.ActualTrainingTicks++
		}
		if s.ActualTrainingTicks == s.MaxTrainingTicks {
			s.Trained = true
			s.ActualTrainingTicks = 0
		}
	} else {
		s.ActualPredictTicks++
		if s.ActualPredictTicks == s.MaxPredictionTicks {
			s.PredictionsCounter++
			s.ActualPredictTicks = 0
		}
	}

	s.IncrementProgramCounter()
}

// Stop parks an inactive (or mid-transfer, for proactive) service
// without advancing any of its counters.
func Stop(s *model.Service) {
	s.State = model.ServiceStopped
}
