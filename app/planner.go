// Package app wires the optimizer, resolver and schedule builder into a
// planning service with metrics sinks, progress publishing and run history.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/taskalloc/config"
	"github.com/kilianp07/taskalloc/core/analysis"
	"github.com/kilianp07/taskalloc/core/fitness"
	"github.com/kilianp07/taskalloc/core/genetic"
	"github.com/kilianp07/taskalloc/core/history"
	coremetrics "github.com/kilianp07/taskalloc/core/metrics"
	"github.com/kilianp07/taskalloc/core/model"
	"github.com/kilianp07/taskalloc/core/resolve"
	"github.com/kilianp07/taskalloc/core/scheduler"
	"github.com/kilianp07/taskalloc/infra/logger"
	"github.com/kilianp07/taskalloc/infra/mqtt"
	"github.com/kilianp07/taskalloc/pkg/dataset"

	// Builtin sink and store registrations.
	_ "github.com/kilianp07/taskalloc/infra/history"
	_ "github.com/kilianp07/taskalloc/infra/metrics"
)

// progressBuffer bounds queued generation events per run.
const progressBuffer = 64

// newPublisher is overridable in tests.
var newPublisher = func(cfg mqtt.Config) (coremetrics.MetricsSink, error) {
	pub, err := mqtt.NewPublisher(cfg)
	if err != nil {
		return nil, err
	}
	return pub, nil
}

// Report is the full outcome of one planning run.
type Report struct {
	RunID           string                     `json:"run_id"`
	Seed            uint64                     `json:"seed"`
	Stats           model.ProjectStats         `json:"project_stats"`
	BestFitness     float64                    `json:"best_fitness"`
	Fitness         fitness.Result             `json:"fitness"`
	Genes           []int                      `json:"genes"`
	Logbook         genetic.Logbook            `json:"logbook"`
	Assignments     []model.Assignment         `json:"assignments"`
	Schedule        []model.ScheduleItem       `json:"schedule"`
	Metrics         model.ProjectMetrics       `json:"metrics"`
	ByEmployee      []analysis.EmployeeSummary `json:"by_employee"`
	ByPriority      []analysis.PrioritySummary `json:"by_priority"`
	Recommendations []analysis.Recommendation  `json:"recommendations"`
	ExecutionTime   time.Duration              `json:"execution_time"`
	Interrupted     bool                       `json:"interrupted"`
}

// Planner runs the optimize, resolve and schedule pipeline.
type Planner struct {
	engineCfg genetic.Config
	evaluator *fitness.Evaluator
	resolver  *resolve.Resolver
	builder   *scheduler.Builder
	sink      coremetrics.MetricsSink
	store     history.Store
	log       logger.Logger
	observers []genetic.Observer
	closers   []func()
	now       func() time.Time
}

// Option customizes a Planner.
type Option func(*Planner)

// WithSink replaces the sinks built from configuration.
func WithSink(s coremetrics.MetricsSink) Option { return func(p *Planner) { p.sink = s } }

// WithStore replaces the history store built from configuration.
func WithStore(s history.Store) Option { return func(p *Planner) { p.store = s } }

// WithObserver adds a synchronous progress observer, such as a CLI
// progress line.
func WithObserver(o genetic.Observer) Option {
	return func(p *Planner) { p.observers = append(p.observers, o) }
}

// WithClock overrides the wall clock used for timestamps.
func WithClock(now func() time.Time) Option { return func(p *Planner) { p.now = now } }

// NewPlanner builds a planner from configuration. Sinks come from
// metrics.sinks plus the MQTT publisher when a broker is set; the history
// backend comes from history.
func NewPlanner(cfg *config.Config, opts ...Option) (*Planner, error) {
	log := logger.New("planner")
	p := &Planner{
		engineCfg: cfg.Optimizer,
		evaluator: fitness.NewEvaluator(cfg.Fitness, logger.New("fitness")),
		resolver:  resolve.NewResolver(cfg.Efficiency),
		builder:   scheduler.NewBuilder(logger.New("scheduler"), cfg.Scheduler.Workers),
		log:       log,
		now:       time.Now,
	}
	for _, o := range opts {
		o(p)
	}
	if p.sink == nil {
		sink, err := buildSink(cfg)
		if err != nil {
			p.Close()
			return nil, err
		}
		p.sink = sink
		p.closers = append(p.closers, func() { coremetrics.CloseSink(sink) })
	}
	if p.store == nil {
		store, err := history.NewStore(cfg.History)
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("history store: %w", err)
		}
		p.store = store
	}
	return p, nil
}

// buildSink closes what it already built when a later step fails. Sinks passed
// through WithSink are owned by the caller and never closed by the planner.
func buildSink(cfg *config.Config) (coremetrics.MetricsSink, error) {
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	if !cfg.MQTT.Enabled() {
		return sink, nil
	}
	pub, err := newPublisher(cfg.MQTT)
	if err != nil {
		coremetrics.CloseSink(sink)
		return nil, fmt.Errorf("mqtt publisher: %w", err)
	}
	return coremetrics.NewMultiSink(sink, pub), nil
}

// Plan optimizes the dataset, resolves the best individual into assignments
// and lays them out on the calendar. When ctx is cancelled during the search
// the report carries the best assignments found so far, no schedule, and an
// error wrapping model.ErrInterrupted. Every run that reaches the search is
// recorded in the sinks and the history store.
func (p *Planner) Plan(ctx context.Context, ds *dataset.Dataset) (*Report, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	start := p.now()
	rep := &Report{RunID: uuid.NewString(), Stats: ds.Stats()}

	async := genetic.NewAsyncObserver(func(pr genetic.Progress) {
		if err := p.sink.RecordGeneration(generationEvent(rep.RunID, pr, p.now())); err != nil {
			p.log.Warnf("record generation %d: %v", pr.Generation, err)
		}
	}, progressBuffer)
	opts := []genetic.Option{genetic.WithLogger(logger.New("genetic")), genetic.WithObserver(async.Observe)}
	for _, o := range p.observers {
		opts = append(opts, genetic.WithObserver(o))
	}
	engine := genetic.NewEngine(p.engineCfg, p.evaluator, opts...)

	res, runErr := engine.Run(ctx, ds.Tasks, ds.Employees)
	async.Close()
	if dropped := async.Dropped(); dropped > 0 {
		p.log.Warnf("%d progress updates dropped", dropped)
	}
	if runErr != nil && !errors.Is(runErr, model.ErrInterrupted) {
		return nil, runErr
	}
	rep.Interrupted = runErr != nil
	rep.Seed = res.Seed
	rep.Logbook = res.Logbook
	rep.BestFitness = res.BestFitness
	rep.Fitness = res.BestDetail

	err := p.assemble(ctx, rep, res, ds)
	if err != nil && errors.Is(err, model.ErrInterrupted) {
		rep.Interrupted = true
	} else if err != nil {
		return nil, err
	}
	rep.ExecutionTime = p.now().Sub(start)
	p.record(context.WithoutCancel(ctx), rep, ds, res)

	if runErr != nil {
		return rep, runErr
	}
	return rep, err
}

// assemble fills assignments, schedule, metrics and analysis from res.
func (p *Planner) assemble(ctx context.Context, rep *Report, res genetic.Result, ds *dataset.Dataset) error {
	if res.Best == nil {
		return nil
	}
	rep.Genes = append([]int(nil), res.Best.Genes...)
	asns, err := p.resolver.Resolve(res.Best.Genes, ds.Tasks, ds.Employees)
	if err != nil {
		return err
	}
	rep.Assignments = asns
	rep.ByEmployee = analysis.ByEmployee(asns)
	rep.ByPriority = analysis.ByPriority(asns)
	rep.Recommendations = analysis.Recommend(asns)
	if rep.Interrupted {
		return nil
	}
	items, err := p.builder.Build(ctx, asns, ds.Tasks, ds.Employees, ds.Calendar)
	if err != nil {
		return err
	}
	rep.Schedule = items
	rep.Metrics = scheduler.ComputeMetrics(items)
	return nil
}

func (p *Planner) record(ctx context.Context, rep *Report, ds *dataset.Dataset, res genetic.Result) {
	now := p.now()
	ev := coremetrics.RunEvent{
		RunID:             rep.RunID,
		TaskCount:         len(ds.Tasks),
		EmployeeCount:     len(ds.Employees),
		Generations:       res.Generations,
		Evaluations:       res.Logbook.TotalEvaluations(),
		BestFitness:       rep.BestFitness,
		TotalCost:         rep.Metrics.TotalCost,
		TotalHours:        rep.Metrics.TotalHours,
		TotalDurationDays: rep.Metrics.TotalDurationDays,
		AvgEfficiency:     rep.Metrics.AvgEfficiency,
		AvgSkillMatch:     rep.Metrics.AvgSkillMatch,
		OnTimeProbability: rep.Metrics.OnTimeProbability,
		Duration:          rep.ExecutionTime,
		Interrupted:       rep.Interrupted,
		Time:              now,
	}
	if err := p.sink.RecordRun(ev); err != nil {
		p.log.Warnf("record run %s: %v", rep.RunID, err)
	}
	rec := history.Record{
		RunID:             rep.RunID,
		Timestamp:         now,
		TaskCount:         ev.TaskCount,
		EmployeeCount:     ev.EmployeeCount,
		Generations:       ev.Generations,
		ExecutionTime:     rep.ExecutionTime,
		BestFitness:       rep.BestFitness,
		TotalCost:         rep.Metrics.TotalCost,
		TotalDurationDays: rep.Metrics.TotalDurationDays,
		AvgEfficiency:     rep.Metrics.AvgEfficiency,
		Interrupted:       rep.Interrupted,
	}
	if err := p.store.Append(ctx, rec); err != nil {
		p.log.Errorf("append history %s: %v", rep.RunID, err)
	}
	p.log.Infow("plan finished", map[string]any{
		"run_id": rep.RunID, "best_fitness": rep.BestFitness, "total_cost": rep.Metrics.TotalCost,
		"duration_days": rep.Metrics.TotalDurationDays, "interrupted": rep.Interrupted,
	})
}

// History lists the most recent runs.
func (p *Planner) History(ctx context.Context, limit int) ([]history.Record, error) {
	return p.store.List(ctx, limit)
}

// Close releases the publisher and the history store.
func (p *Planner) Close() {
	for _, c := range p.closers {
		c()
	}
	if p.store != nil {
		if err := p.store.Close(); err != nil {
			p.log.Errorf("history close: %v", err)
		}
	}
}

func generationEvent(runID string, pr genetic.Progress, at time.Time) coremetrics.GenerationEvent {
	return coremetrics.GenerationEvent{
		RunID:       runID,
		Generation:  pr.Generation,
		Total:       pr.Total,
		Evaluations: pr.Stats.Evaluations,
		BestFitness: pr.BestFitness,
		AvgFitness:  pr.AvgFitness,
		MinFitness:  pr.Stats.Min,
		MaxFitness:  pr.Stats.Max,
		StdFitness:  pr.Stats.Std,
		Time:        at,
	}
}
