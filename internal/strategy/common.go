package strategy

import (
	"math"

	"fleetsim/internal/model"
)

func serviceIDs(services []*model.Service) []string {
	ids := make([]string, len(services))
	for i, s := range services {
		ids[i] = s.ID
	}
	return ids
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
