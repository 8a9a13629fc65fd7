package genetic

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kilianp07/taskalloc/core/fitness"
	"github.com/kilianp07/taskalloc/core/logger"
	"github.com/kilianp07/taskalloc/core/model"
)

// Result is the outcome of a run.
type Result struct {
	// Best is the hall of fame individual. It is nil only when the run failed
	// before the initial population was evaluated.
	Best        *Individual
	BestFitness float64
	// BestDetail breaks down the score of Best.
	BestDetail fitness.Result
	Logbook    Logbook
	// Generations is the number of completed generations after the initial one.
	Generations int
	Seed        uint64
}

// Engine runs the genetic search.
type Engine struct {
	cfg       Config
	eval      *fitness.Evaluator
	log       logger.Logger
	rng       *rand.Rand
	observers []Observer
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRand injects the random source. An engine built with a shared source
// must not run concurrently.
func WithRand(r *rand.Rand) Option { return func(e *Engine) { e.rng = r } }

// WithObserver registers a progress observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l logger.Logger) Option { return func(e *Engine) { e.log = logger.OrNop(l) } }

// NewEngine builds an engine. cfg gets its defaults applied and is validated
// at Run time so that invalid settings surface together with invalid inputs.
func NewEngine(cfg Config, eval *fitness.Evaluator, opts ...Option) *Engine {
	cfg.SetDefaults()
	e := &Engine{cfg: cfg, eval: eval, log: logger.NopLogger{}}
	for _, o := range opts {
		o(e)
	}
	if e.eval == nil {
		e.eval = fitness.NewEvaluator(fitness.DefaultConfig(), e.log)
	}
	return e
}

// Config returns the effective configuration.
func (e *Engine) Config() Config { return e.cfg }

// Run searches for the best assignment of tasks to employees. Inputs and
// configuration are validated before any population is allocated. When ctx
// is cancelled the run stops before the next generation and returns the best
// result so far together with an error wrapping model.ErrInterrupted.
func (e *Engine) Run(ctx context.Context, tasks []model.Task, employees []model.Employee) (Result, error) {
	if err := e.validate(tasks, employees); err != nil {
		return Result{}, err
	}
	rng, seed := e.rng, e.cfg.Seed
	if rng == nil {
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	res := Result{Seed: seed}
	var hof HallOfFame
	nTasks, nEmps := len(tasks), len(employees)
	start := time.Now()

	pop := make(Population, e.cfg.PopulationSize)
	for i := range pop {
		pop[i] = NewIndividual(rng, nTasks, nEmps)
	}
	nevals := e.evaluate(pop, tasks, employees)
	hof.Update(pop)
	res.Logbook = append(res.Logbook, computeStats(0, nevals, pop.Fitnesses()))
	e.log.Debugw("initial population evaluated", map[string]any{
		"population": len(pop), "best": hof.Fitness(), "seed": seed,
	})

	for gen := 1; gen <= e.cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			e.finish(&res, &hof, tasks, employees)
			return res, fmt.Errorf("%w: stopped before generation %d: %w", model.ErrInterrupted, gen, err)
		}
		pool := selectTournament(rng, pop, len(pop), e.cfg.TournamentSize)
		pop = vary(rng, pool, nEmps, e.cfg)
		nevals = e.evaluate(pop, tasks, employees)

		hof.Update(pop)
		row := computeStats(gen, nevals, pop.Fitnesses())
		res.Logbook = append(res.Logbook, row)
		res.Generations = gen
		e.log.Debugw("generation", map[string]any{
			"gen": gen, "nevals": nevals, "avg": row.Avg, "min": row.Min, "max": row.Max, "best": hof.Fitness(),
		})
		e.notify(Progress{Generation: gen, Total: e.cfg.Generations, BestFitness: hof.Fitness(), AvgFitness: row.Avg, Stats: row})
	}

	e.finish(&res, &hof, tasks, employees)
	e.log.Infow("optimization finished", map[string]any{
		"generations": res.Generations, "best_fitness": res.BestFitness,
		"evaluations": res.Logbook.TotalEvaluations(), "elapsed_ms": time.Since(start).Milliseconds(),
	})
	return res, nil
}

func (e *Engine) validate(tasks []model.Task, employees []model.Employee) error {
	if len(tasks) == 0 {
		return fmt.Errorf("%w: no tasks to optimize", model.ErrConfiguration)
	}
	if len(employees) == 0 {
		return fmt.Errorf("%w: no employees to assign", model.ErrConfiguration)
	}
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	if err := model.ValidateTasks(tasks); err != nil {
		return err
	}
	return model.ValidateEmployees(employees)
}

// evaluate scores every individual with a stale fitness on the worker pool
// and returns how many were scored. It returns only after all workers are done.
func (e *Engine) evaluate(pop Population, tasks []model.Task, employees []model.Employee) int {
	var g errgroup.Group
	g.SetLimit(e.cfg.Workers)
	n := 0
	for _, ind := range pop {
		if ind.Valid() {
			continue
		}
		n++
		g.Go(func() error {
			ind.SetFitness(e.eval.Evaluate(ind.Genes, tasks, employees).Fitness)
			return nil
		})
	}
	_ = g.Wait()
	return n
}

func (e *Engine) notify(p Progress) {
	for _, o := range e.observers {
		o(p)
	}
}

func (e *Engine) finish(res *Result, hof *HallOfFame, tasks []model.Task, employees []model.Employee) {
	res.Best = hof.Best()
	res.BestFitness = hof.Fitness()
	if res.Best != nil {
		res.BestDetail = e.eval.Evaluate(res.Best.Genes, tasks, employees)
	}
}
