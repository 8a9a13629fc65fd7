package fitness

import (
	"math"

	"github.com/kilianp07/taskalloc/core/logger"
	"github.com/kilianp07/taskalloc/core/model"
)

// Result carries the fitness and the terms it was derived from.
type Result struct {
	Fitness         float64
	Penalty         float64
	Cost            float64
	SkillMismatches int
	// Skipped counts genes that referenced no employee and were ignored.
	Skipped int
}

// Evaluator computes the fitness of a gene sequence. The zero value is not
// usable; build one with NewEvaluator.
type Evaluator struct {
	cfg Config
	log logger.Logger
}

// NewEvaluator returns an evaluator for cfg. A nil logger discards output.
func NewEvaluator(cfg Config, log logger.Logger) *Evaluator {
	return &Evaluator{cfg: cfg, log: logger.OrNop(log)}
}

// Config returns the constants used by the evaluator.
func (e *Evaluator) Config() Config { return e.cfg }

// Evaluate scores genes, where genes[i] is the index in employees of the
// person assigned to tasks[i]. Empty inputs score 0. A gene outside
// [0, len(employees)) is logged and skipped without penalty or credit.
func (e *Evaluator) Evaluate(genes []int, tasks []model.Task, employees []model.Employee) Result {
	var res Result
	if len(tasks) == 0 || len(employees) == 0 {
		return res
	}
	for i, gene := range genes {
		if i >= len(tasks) {
			break
		}
		if gene < 0 || gene >= len(employees) {
			res.Skipped++
			e.log.Warnf("gene %d references employee index %d outside [0,%d), skipped", i, gene, len(employees))
			continue
		}
		e.scoreGene(&res, tasks[i], employees[gene])
	}
	excess := res.Penalty + res.Cost/e.cfg.CostDivisor + float64(res.SkillMismatches)*e.cfg.MismatchWeight
	// The high priority reward can push the sum below zero; clamp so the
	// ratio never exceeds Scale.
	res.Fitness = e.cfg.Scale / (1 + math.Max(0, excess))
	return res
}

func (e *Evaluator) scoreGene(res *Result, task model.Task, emp model.Employee) {
	var skillScore float64
	for _, skill := range task.Skills {
		level, ok := emp.Skills.Level(skill)
		if !ok {
			res.SkillMismatches++
			res.Penalty += e.cfg.MissingSkillPenalty
			continue
		}
		skillScore += float64(level) / model.MaxSkillLevel
	}
	if skillScore < e.cfg.UnderqualifiedRatio*float64(len(task.Skills)) {
		res.Penalty += e.cfg.UnderqualifiedPenalty
	}

	res.Cost += task.Hours * emp.CostPerHour

	if task.Hours < e.cfg.SmallTaskHours && emp.CostPerHour > e.cfg.SpecialistCostPerHour {
		res.Penalty += e.cfg.OverqualifiedPenalty
	}
	if task.IsHighPriority() && emp.CostPerHour > e.cfg.SeniorCostPerHour {
		res.Penalty -= e.cfg.HighPriorityReward
	}
}
