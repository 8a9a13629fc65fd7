package fitness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/taskalloc/core/model"
)

func newTestEvaluator() *Evaluator { return NewEvaluator(DefaultConfig(), nil) }

func TestEvaluate_PerfectMatch(t *testing.T) {
	tasks := []model.Task{{ID: 1, Hours: 40, Priority: model.PriorityMedium, Skills: []string{"backend"}}}
	emps := []model.Employee{{ID: 1, DailyHours: 8, CostPerHour: 1000, Skills: model.SkillSet{"backend": 8}}}

	res := newTestEvaluator().Evaluate([]int{0}, tasks, emps)
	assert.Zero(t, res.Penalty)
	assert.Zero(t, res.SkillMismatches)
	assert.InDelta(t, 40000, res.Cost, 1e-9)
	// 10000 / (1 + 0 + 40 + 0)
	assert.InDelta(t, 10000.0/41.0, res.Fitness, 1e-9)
}

func TestEvaluate_MissingSkill(t *testing.T) {
	tasks := []model.Task{{ID: 1, Hours: 20, Priority: model.PriorityLow, Skills: []string{"devops"}}}
	emps := []model.Employee{{ID: 1, DailyHours: 8, CostPerHour: 1000, Skills: model.SkillSet{"frontend": 9}}}

	res := newTestEvaluator().Evaluate([]int{0}, tasks, emps)
	assert.Equal(t, 1, res.SkillMismatches)
	// 500 for the missing skill plus 300 for being underqualified overall.
	assert.InDelta(t, 800, res.Penalty, 1e-9)
	assert.InDelta(t, 10000.0/(1+800+20+100), res.Fitness, 1e-9)
}

func TestEvaluate_Underqualified(t *testing.T) {
	tasks := []model.Task{{ID: 1, Hours: 30, Priority: model.PriorityLow, Skills: []string{"a", "b"}}}
	emps := []model.Employee{{ID: 1, DailyHours: 8, CostPerHour: 1000, Skills: model.SkillSet{"a": 4, "b": 5}}}

	res := newTestEvaluator().Evaluate([]int{0}, tasks, emps)
	// 0.4 + 0.5 = 0.9 < 0.5 * 2
	assert.Zero(t, res.SkillMismatches)
	assert.InDelta(t, 300, res.Penalty, 1e-9)
}

func TestEvaluate_Heuristics(t *testing.T) {
	small := model.Task{ID: 1, Hours: 10, Priority: model.PriorityLow}
	high := model.Task{ID: 2, Hours: 100, Priority: model.PriorityHigh}
	specialist := model.Employee{ID: 1, DailyHours: 8, CostPerHour: 1600}
	ev := newTestEvaluator()

	res := ev.Evaluate([]int{0}, []model.Task{small}, []model.Employee{specialist})
	assert.InDelta(t, 100, res.Penalty, 1e-9)

	res = ev.Evaluate([]int{0, 0}, []model.Task{small, high}, []model.Employee{specialist})
	assert.InDelta(t, 50, res.Penalty, 1e-9)
}

func TestEvaluate_NegativeExcessClamped(t *testing.T) {
	task := model.Task{ID: 1, Hours: 25, Priority: model.PriorityHigh}
	senior := model.Employee{ID: 1, DailyHours: 8, CostPerHour: 1450}
	res := newTestEvaluator().Evaluate([]int{0}, []model.Task{task}, []model.Employee{senior})
	// penalty -50 outweighs cost 36.25
	assert.InDelta(t, -50, res.Penalty, 1e-9)
	assert.InDelta(t, 10000, res.Fitness, 1e-9)
}

func TestEvaluate_Bounds(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Hours: 40, Priority: model.PriorityHigh, Skills: []string{"sql"}},
		{ID: 2, Hours: 5, Priority: model.PriorityLow, Skills: []string{"devops", "api"}},
		{ID: 3, Hours: 80, Priority: model.PriorityMedium},
	}
	emps := []model.Employee{
		{ID: 1, DailyHours: 8, CostPerHour: 1800, Skills: model.SkillSet{"sql": 8}},
		{ID: 2, DailyHours: 6, CostPerHour: 1400, Skills: model.SkillSet{"api": 2}},
	}
	ev := newTestEvaluator()
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for c := 0; c < 2; c++ {
				res := ev.Evaluate([]int{a, b, c}, tasks, emps)
				assert.Greater(t, res.Fitness, 0.0)
				assert.LessOrEqual(t, res.Fitness, 10000.0)
			}
		}
	}
}

func TestEvaluate_MonotonicInPenaltyAndCost(t *testing.T) {
	task := model.Task{ID: 1, Hours: 40, Priority: model.PriorityMedium, Skills: []string{"go"}}
	skilled := model.Employee{ID: 1, DailyHours: 8, CostPerHour: 1000, Skills: model.SkillSet{"go": 9}}
	unskilled := skilled
	unskilled.Skills = nil
	pricier := skilled
	pricier.CostPerHour = 1200

	ev := newTestEvaluator()
	base := ev.Evaluate([]int{0}, []model.Task{task}, []model.Employee{skilled})
	worseSkill := ev.Evaluate([]int{0}, []model.Task{task}, []model.Employee{unskilled})
	worseCost := ev.Evaluate([]int{0}, []model.Task{task}, []model.Employee{pricier})

	assert.Less(t, worseSkill.Fitness, base.Fitness)
	assert.Less(t, worseCost.Fitness, base.Fitness)
}

func TestEvaluate_EmptyInputs(t *testing.T) {
	ev := newTestEvaluator()
	assert.Zero(t, ev.Evaluate(nil, nil, []model.Employee{{ID: 1}}).Fitness)
	assert.Zero(t, ev.Evaluate([]int{0}, []model.Task{{ID: 1}}, nil).Fitness)
}

func TestEvaluate_OutOfRangeGeneSkipped(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Hours: 40, Priority: model.PriorityLow, Skills: []string{"go"}},
		{ID: 2, Hours: 40, Priority: model.PriorityLow, Skills: []string{"go"}},
	}
	emps := []model.Employee{{ID: 1, DailyHours: 8, CostPerHour: 1000, Skills: model.SkillSet{"go": 9}}}
	ev := newTestEvaluator()

	only := ev.Evaluate([]int{0}, tasks[:1], emps)
	res := ev.Evaluate([]int{0, 5}, tasks, emps)
	require.Equal(t, 1, res.Skipped)
	assert.InDelta(t, only.Fitness, res.Fitness, 1e-9)

	res = ev.Evaluate([]int{-1, 0}, tasks, emps)
	assert.Equal(t, 1, res.Skipped)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	cfg := DefaultConfig()
	cfg.CostDivisor = 0
	assert.ErrorIs(t, cfg.Validate(), model.ErrConfiguration)

	var empty Config
	empty.SetDefaults()
	assert.Equal(t, DefaultConfig(), empty)
}
