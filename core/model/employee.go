package model

// MaxSkillLevel is the highest proficiency a skill can carry.
const MaxSkillLevel = 10

// SkillSet maps a skill tag to a proficiency level between 0 and MaxSkillLevel.
// A missing key means the employee does not have the skill at all; callers
// must go through Level rather than indexing the map.
type SkillSet map[string]int

// Level returns the proficiency for skill. ok is false when the skill is
// absent, in which case level is 0.
func (s SkillSet) Level(skill string) (level int, ok bool) {
	level, ok = s[skill]
	return level, ok
}

// Has reports whether the skill is present, whatever its level.
func (s SkillSet) Has(skill string) bool {
	_, ok := s[skill]
	return ok
}

// Employee is a resource that can take tasks.
type Employee struct {
	ID          int      `json:"id" yaml:"id" validate:"gt=0"`
	Name        string   `json:"name" yaml:"name" validate:"required"`
	DailyHours  float64  `json:"daily_hours" yaml:"daily_hours" validate:"gt=0"`
	CostPerHour float64  `json:"cost_per_hour" yaml:"cost_per_hour" validate:"gt=0"`
	Skills      SkillSet `json:"skills" yaml:"skills" validate:"dive,keys,required,endkeys,min=0,max=10"`
}

// AverageCostPerHour returns the mean hourly cost of employees, or 0 for an
// empty slice.
func AverageCostPerHour(employees []Employee) float64 {
	if len(employees) == 0 {
		return 0
	}
	var sum float64
	for _, e := range employees {
		sum += e.CostPerHour
	}
	return sum / float64(len(employees))
}
