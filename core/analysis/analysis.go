// Package analysis summarizes resolved assignments per employee and per
// priority and derives short textual recommendations.
package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/taskalloc/core/model"
)

// EmployeeSummary aggregates the assignments of one employee.
type EmployeeSummary struct {
	EmployeeID    int     `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	TaskCount     int     `json:"task_count"`
	TotalHours    float64 `json:"total_hours"`
	TotalCost     float64 `json:"total_cost"`
	AvgEfficiency float64 `json:"avg_efficiency"`
	AvgSkillMatch float64 `json:"avg_skill_match"`
}

// PrioritySummary aggregates the assignments of one priority level.
type PrioritySummary struct {
	Priority      model.Priority `json:"priority"`
	TaskCount     int            `json:"task_count"`
	TotalCost     float64        `json:"total_cost"`
	AvgEfficiency float64        `json:"avg_efficiency"`
}

// ByEmployee groups assignments by employee in order of first appearance.
func ByEmployee(assignments []model.Assignment) []EmployeeSummary {
	idx := make(map[int]int)
	var out []EmployeeSummary
	var eff, match [][]float64
	for _, a := range assignments {
		i, ok := idx[a.EmployeeID]
		if !ok {
			i = len(out)
			idx[a.EmployeeID] = i
			out = append(out, EmployeeSummary{EmployeeID: a.EmployeeID, EmployeeName: a.EmployeeName})
			eff = append(eff, nil)
			match = append(match, nil)
		}
		out[i].TaskCount++
		out[i].TotalHours += a.TaskHours
		out[i].TotalCost += a.EstimatedCost
		eff[i] = append(eff[i], a.EfficiencyScore)
		match[i] = append(match[i], a.SkillMatchPercent)
	}
	for i := range out {
		out[i].AvgEfficiency = stat.Mean(eff[i], nil)
		out[i].AvgSkillMatch = stat.Mean(match[i], nil)
	}
	return out
}

var priorityOrder = []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow}

// ByPriority groups assignments by priority, high first. Levels without any
// assignment are omitted.
func ByPriority(assignments []model.Assignment) []PrioritySummary {
	var out []PrioritySummary
	for _, p := range priorityOrder {
		s := PrioritySummary{Priority: p}
		var eff []float64
		for _, a := range assignments {
			if a.TaskPriority != p {
				continue
			}
			s.TaskCount++
			s.TotalCost += a.EstimatedCost
			eff = append(eff, a.EfficiencyScore)
		}
		if s.TaskCount == 0 {
			continue
		}
		s.AvgEfficiency = stat.Mean(eff, nil)
		out = append(out, s)
	}
	return out
}

// sortByEfficiency returns a copy of assignments ordered by descending
// efficiency. Ties keep input order.
func sortByEfficiency(assignments []model.Assignment) []model.Assignment {
	sorted := make([]model.Assignment, len(assignments))
	copy(sorted, assignments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EfficiencyScore > sorted[j].EfficiencyScore
	})
	return sorted
}
