package scheduler

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/taskalloc/core/model"
)

// On-time probability blend of average efficiency and skill match.
const (
	onTimeEfficiencyWeight = 0.6
	onTimeSkillWeight      = 0.4
)

// ComputeMetrics aggregates a schedule. An empty schedule yields zero
// metrics with an empty TasksPerEmployee map.
func ComputeMetrics(items []model.ScheduleItem) model.ProjectMetrics {
	m := model.ProjectMetrics{TaskCount: len(items), TasksPerEmployee: map[string]int{}}
	if len(items) == 0 {
		return m
	}
	eff := make([]float64, len(items))
	match := make([]float64, len(items))
	minStart, maxEnd := items[0].StartDate, items[0].EndDate
	employees := make(map[int]struct{})
	for i, it := range items {
		m.TotalHours += it.Hours
		m.TotalCost += it.Cost
		eff[i] = it.EfficiencyScore
		match[i] = it.SkillMatchPercent
		if it.TaskPriority == model.PriorityHigh {
			m.HighPriorityTaskCount++
		}
		if it.SkillMatchPercent < 100 {
			m.UnmatchedSkillTasks++
		}
		if it.StartDate.Before(minStart) {
			minStart = it.StartDate
		}
		if it.EndDate.After(maxEnd) {
			maxEnd = it.EndDate
		}
		employees[it.EmployeeID] = struct{}{}
		m.TasksPerEmployee[it.EmployeeName]++
	}
	m.TotalDurationDays = minStart.DaysUntil(maxEnd)
	m.EmployeeCount = len(employees)
	m.AvgEfficiency = stat.Mean(eff, nil)
	m.AvgSkillMatch = stat.Mean(match, nil)
	m.OnTimeProbability = math.Min(1, (m.AvgEfficiency*onTimeEfficiencyWeight+m.AvgSkillMatch*onTimeSkillWeight)/100)
	return m
}
