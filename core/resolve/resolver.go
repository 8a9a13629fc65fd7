// Package resolve turns a gene sequence into human readable assignments with
// skill coverage, cost and an efficiency score.
package resolve

import (
	"fmt"
	"math"

	"github.com/kilianp07/taskalloc/core/model"
)

// Resolver expands individuals into assignments. It holds no state besides
// its weights, so the same inputs always produce the same output.
type Resolver struct {
	w Weights
}

// NewResolver returns a resolver using w.
func NewResolver(w Weights) *Resolver { return &Resolver{w: w} }

// Resolve returns one assignment per task, in task order. genes must have one
// entry per task and every gene must index employees.
func (r *Resolver) Resolve(genes []int, tasks []model.Task, employees []model.Employee) ([]model.Assignment, error) {
	if len(genes) != len(tasks) {
		return nil, fmt.Errorf("%w: %d genes for %d tasks", model.ErrDataReference, len(genes), len(tasks))
	}
	avgCost := model.AverageCostPerHour(employees)
	out := make([]model.Assignment, len(tasks))
	for i, gene := range genes {
		if gene < 0 || gene >= len(employees) {
			return nil, fmt.Errorf("%w: task %d assigned to employee index %d of %d",
				model.ErrDataReference, tasks[i].ID, gene, len(employees))
		}
		out[i] = r.assign(tasks[i], employees[gene], avgCost)
	}
	return out, nil
}

func (r *Resolver) assign(task model.Task, emp model.Employee, avgCost float64) model.Assignment {
	matched := make([]string, 0, len(task.Skills))
	missing := make([]string, 0)
	for _, s := range task.Skills {
		if emp.Skills.Has(s) {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return model.Assignment{
		TaskID:            task.ID,
		TaskName:          task.Name,
		TaskPriority:      task.Priority,
		TaskHours:         task.Hours,
		EmployeeID:        emp.ID,
		EmployeeName:      emp.Name,
		MatchedSkills:     matched,
		MissingSkills:     missing,
		SkillMatchPercent: SkillMatchPercent(len(matched), len(task.Skills)),
		EstimatedCost:     task.Hours * emp.CostPerHour,
		EfficiencyScore:   r.Efficiency(task, emp, avgCost),
	}
}

// SkillMatchPercent is 100 × matched / required, and 100 when nothing is
// required.
func SkillMatchPercent(matched, required int) float64 {
	if required == 0 {
		return 100
	}
	return 100 * float64(matched) / float64(required)
}

// Efficiency scores one task/employee pair on a 0-100 scale, rounded to two
// decimals. avgCost is the mean hourly cost across all employees.
func (r *Resolver) Efficiency(task model.Task, emp model.Employee, avgCost float64) float64 {
	skill := 1.0
	if len(task.Skills) > 0 {
		var sum float64
		for _, s := range task.Skills {
			lvl, _ := emp.Skills.Level(s)
			sum += float64(lvl) / model.MaxSkillLevel
		}
		skill = sum / float64(len(task.Skills))
	}

	costEff := 1.0
	if emp.CostPerHour > 0 {
		costEff = math.Min(avgCost/emp.CostPerHour, r.w.CostEfficiencyCap)
	}

	// Hourly cost stands in for seniority; nothing measures experience directly.
	experience := math.Min(emp.CostPerHour/r.w.ExperienceCostPerHour, 1)

	// Workload is intentionally absent from the sum, see Weights.Workload.
	score := 100 * (skill*r.w.SkillMatch + costEff*r.w.CostEfficiency + experience*r.w.Experience)
	return math.Min(100, math.Max(0, round2(score)))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
