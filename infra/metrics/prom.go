package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/taskalloc/core/metrics"
)

const namespace = "taskalloc"

// PromSink exposes optimization progress as Prometheus metrics.
type PromSink struct {
	generations  prometheus.Counter
	evaluations  prometheus.Counter
	bestFitness  prometheus.Gauge
	avgFitness   prometheus.Gauge
	runs         *prometheus.CounterVec
	runDuration  prometheus.Histogram
	scheduleDays prometheus.Gauge
	scheduleCost prometheus.Gauge
	onTime       prometheus.Gauge
}

// NewPromSink registers run metrics on the default Prometheus registerer.
// The HTTP endpoint is started separately with StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// already registered by an earlier sink are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{}
	var err error
	if s.generations, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "ga_generations_total",
		Help: "Number of GA generations completed",
	})); err != nil {
		return nil, err
	}
	if s.evaluations, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "ga_evaluations_total",
		Help: "Number of fitness evaluations performed",
	})); err != nil {
		return nil, err
	}
	if s.bestFitness, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "ga_best_fitness",
		Help: "Best fitness found so far in the current run",
	})); err != nil {
		return nil, err
	}
	if s.avgFitness, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "ga_avg_fitness",
		Help: "Average fitness of the latest generation",
	})); err != nil {
		return nil, err
	}
	if s.runs, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "runs_total",
		Help: "Optimization runs by outcome",
	}, []string{"interrupted"})); err != nil {
		return nil, err
	}
	if s.runDuration, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace, Name: "run_duration_seconds",
		Help:    "Wall time of an optimization run",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
	})); err != nil {
		return nil, err
	}
	if s.scheduleDays, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "schedule_duration_days",
		Help: "Calendar span of the latest schedule",
	})); err != nil {
		return nil, err
	}
	if s.scheduleCost, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "schedule_cost",
		Help: "Total cost of the latest schedule",
	})); err != nil {
		return nil, err
	}
	if s.onTime, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "schedule_on_time_probability",
		Help: "Estimated on-time completion probability of the latest schedule",
	})); err != nil {
		return nil, err
	}
	return s, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordGeneration updates the generation counters and fitness gauges.
func (s *PromSink) RecordGeneration(ev coremetrics.GenerationEvent) error {
	s.generations.Inc()
	s.evaluations.Add(float64(ev.Evaluations))
	s.bestFitness.Set(ev.BestFitness)
	s.avgFitness.Set(ev.AvgFitness)
	return nil
}

// RecordRun observes the run duration and the schedule gauges.
func (s *PromSink) RecordRun(ev coremetrics.RunEvent) error {
	s.runs.WithLabelValues(strconv.FormatBool(ev.Interrupted)).Inc()
	s.runDuration.Observe(ev.Duration.Seconds())
	s.bestFitness.Set(ev.BestFitness)
	s.scheduleDays.Set(float64(ev.TotalDurationDays))
	s.scheduleCost.Set(ev.TotalCost)
	s.onTime.Set(ev.OnTimeProbability)
	return nil
}
