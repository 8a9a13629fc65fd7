package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/taskalloc/core/model"
)

func sample() []model.Assignment {
	return []model.Assignment{
		{TaskID: 1, TaskName: "api", TaskPriority: model.PriorityHigh, TaskHours: 40, EmployeeID: 2, EmployeeName: "bob",
			SkillMatchPercent: 100, EstimatedCost: 40000, EfficiencyScore: 90},
		{TaskID: 2, TaskName: "ui", TaskPriority: model.PriorityMedium, TaskHours: 20, EmployeeID: 1, EmployeeName: "ann",
			SkillMatchPercent: 50, MissingSkills: []string{"css"}, EstimatedCost: 10000, EfficiencyScore: 55},
		{TaskID: 3, TaskName: "db", TaskPriority: model.PriorityHigh, TaskHours: 10, EmployeeID: 2, EmployeeName: "bob",
			SkillMatchPercent: 100, EstimatedCost: 10000, EfficiencyScore: 70},
	}
}

func TestByEmployee(t *testing.T) {
	got := ByEmployee(sample())
	require.Len(t, got, 2)
	assert.Equal(t, "bob", got[0].EmployeeName)
	assert.Equal(t, 2, got[0].TaskCount)
	assert.InDelta(t, 50, got[0].TotalHours, 1e-9)
	assert.InDelta(t, 50000, got[0].TotalCost, 1e-9)
	assert.InDelta(t, 80, got[0].AvgEfficiency, 1e-9)
	assert.InDelta(t, 100, got[0].AvgSkillMatch, 1e-9)
	assert.Equal(t, "ann", got[1].EmployeeName)
	assert.InDelta(t, 50, got[1].AvgSkillMatch, 1e-9)

	assert.Empty(t, ByEmployee(nil))
}

func TestByPriority(t *testing.T) {
	got := ByPriority(sample())
	require.Len(t, got, 2)
	assert.Equal(t, model.PriorityHigh, got[0].Priority)
	assert.Equal(t, 2, got[0].TaskCount)
	assert.InDelta(t, 80, got[0].AvgEfficiency, 1e-9)
	assert.Equal(t, model.PriorityMedium, got[1].Priority)
	assert.InDelta(t, 10000, got[1].TotalCost, 1e-9)
}

func TestRecommend(t *testing.T) {
	got := Recommend(sample())
	require.Len(t, got, 5)
	assert.Equal(t, SeverityWarning, got[0].Severity)
	assert.Contains(t, got[0].Message, "low efficiency")
	assert.Equal(t, SeverityWarning, got[1].Severity)
	assert.Contains(t, got[1].Message, "missing: css")
	assert.Equal(t, SeveritySuccess, got[2].Severity)
	assert.Equal(t, 1, got[2].TaskID, "most efficient first")
	assert.Equal(t, 3, got[3].TaskID)
	assert.Equal(t, 2, got[4].TaskID)

	assert.Empty(t, Recommend(nil))
}

func TestRecommend_Capped(t *testing.T) {
	var many []model.Assignment
	for i := 1; i <= 6; i++ {
		many = append(many, model.Assignment{TaskID: i, EfficiencyScore: 10, SkillMatchPercent: 10})
	}
	got := Recommend(many)
	assert.Len(t, got, MaxRecommendations)
	for _, r := range got {
		assert.Equal(t, SeverityWarning, r.Severity)
	}
}
