package fitness

import (
	"fmt"

	"github.com/kilianp07/taskalloc/core/model"
)

// Config holds the penalty constants of the fitness function.
type Config struct {
	// Scale is the numerator of the fitness ratio and its upper bound.
	Scale float64 `json:"scale"`
	// MissingSkillPenalty is added for each required skill the employee lacks.
	MissingSkillPenalty float64 `json:"missing_skill_penalty"`
	// UnderqualifiedPenalty is added once per gene when the summed skill
	// score is below UnderqualifiedRatio times the required skill count.
	UnderqualifiedPenalty float64 `json:"underqualified_penalty"`
	UnderqualifiedRatio   float64 `json:"underqualified_ratio"`
	// MismatchWeight multiplies the total missing-skill count in the denominator.
	MismatchWeight float64 `json:"mismatch_weight"`
	// CostDivisor converts money into penalty units.
	CostDivisor float64 `json:"cost_divisor"`
	// Expensive specialists on small tasks.
	SmallTaskHours        float64 `json:"small_task_hours"`
	SpecialistCostPerHour float64 `json:"specialist_cost_per_hour"`
	OverqualifiedPenalty  float64 `json:"overqualified_penalty"`
	// Senior staff on high priority work.
	SeniorCostPerHour  float64 `json:"senior_cost_per_hour"`
	HighPriorityReward float64 `json:"high_priority_reward"`
}

// DefaultConfig returns the reference constants.
func DefaultConfig() Config {
	return Config{
		Scale:                 10000,
		MissingSkillPenalty:   500,
		UnderqualifiedPenalty: 300,
		UnderqualifiedRatio:   0.5,
		MismatchWeight:        100,
		CostDivisor:           1000,
		SmallTaskHours:        20,
		SpecialistCostPerHour: 1500,
		OverqualifiedPenalty:  100,
		SeniorCostPerHour:     1400,
		HighPriorityReward:    50,
	}
}

// SetDefaults replaces a fully zero config with DefaultConfig.
func (c *Config) SetDefaults() {
	if *c == (Config{}) {
		*c = DefaultConfig()
	}
}

// Validate rejects constants that would break the (0, Scale] bound.
func (c Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("%w: fitness scale must be positive", model.ErrConfiguration)
	}
	if c.CostDivisor <= 0 {
		return fmt.Errorf("%w: fitness cost_divisor must be positive", model.ErrConfiguration)
	}
	if c.MissingSkillPenalty < 0 || c.UnderqualifiedPenalty < 0 || c.OverqualifiedPenalty < 0 ||
		c.MismatchWeight < 0 || c.HighPriorityReward < 0 {
		return fmt.Errorf("%w: fitness penalties must not be negative", model.ErrConfiguration)
	}
	return nil
}
