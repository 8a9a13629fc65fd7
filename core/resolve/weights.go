package resolve

import (
	"fmt"

	"github.com/kilianp07/taskalloc/core/model"
)

// Weights controls the efficiency score composite.
type Weights struct {
	SkillMatch     float64 `json:"skill_match"`
	CostEfficiency float64 `json:"cost_efficiency"`
	Experience     float64 `json:"experience"`
	// Workload is reserved for a load balancing term. It is accepted in
	// configuration but never added to the score.
	Workload float64 `json:"workload"`
	// CostEfficiencyCap bounds the average/own cost ratio.
	CostEfficiencyCap float64 `json:"cost_efficiency_cap"`
	// ExperienceCostPerHour is the hourly cost treated as full experience.
	ExperienceCostPerHour float64 `json:"experience_cost_per_hour"`
}

// DefaultWeights returns the reference weights.
func DefaultWeights() Weights {
	return Weights{
		SkillMatch:            0.4,
		CostEfficiency:        0.3,
		Experience:            0.2,
		Workload:              0.1,
		CostEfficiencyCap:     1.5,
		ExperienceCostPerHour: 2000,
	}
}

// SetDefaults replaces a fully zero value with DefaultWeights.
func (w *Weights) SetDefaults() {
	if *w == (Weights{}) {
		*w = DefaultWeights()
	}
}

// Validate rejects negative weights and non-positive normalizers.
func (w Weights) Validate() error {
	if w.SkillMatch < 0 || w.CostEfficiency < 0 || w.Experience < 0 || w.Workload < 0 {
		return fmt.Errorf("%w: efficiency weights must not be negative", model.ErrConfiguration)
	}
	if w.CostEfficiencyCap <= 0 || w.ExperienceCostPerHour <= 0 {
		return fmt.Errorf("%w: efficiency normalizers must be positive", model.ErrConfiguration)
	}
	return nil
}
