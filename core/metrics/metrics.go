package metrics

import (
	"errors"
	"time"
)

// GenerationEvent describes one completed generation of a run.
type GenerationEvent struct {
	RunID       string
	Generation  int
	Total       int
	Evaluations int
	BestFitness float64
	AvgFitness  float64
	MinFitness  float64
	MaxFitness  float64
	StdFitness  float64
	Time        time.Time
}

// RunEvent summarizes a finished or interrupted run.
type RunEvent struct {
	RunID             string
	TaskCount         int
	EmployeeCount     int
	Generations       int
	Evaluations       int
	BestFitness       float64
	TotalCost         float64
	TotalHours        float64
	TotalDurationDays int
	AvgEfficiency     float64
	AvgSkillMatch     float64
	OnTimeProbability float64
	Duration          time.Duration
	Interrupted       bool
	Time              time.Time
}

// MetricsSink records optimization progress for observability purposes.
type MetricsSink interface {
	RecordGeneration(ev GenerationEvent) error
	RecordRun(ev RunEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordGeneration(GenerationEvent) error { return nil }
func (NopSink) RecordRun(RunEvent) error               { return nil }

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordGeneration forwards the event to every sink. A failing sink does not
// stop the others; all errors are joined.
func (m *MultiSink) RecordGeneration(ev GenerationEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.RecordGeneration(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RecordRun forwards the run summary to every sink.
func (m *MultiSink) RecordRun(ev RunEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.RecordRun(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close releases every sink that holds resources.
func (m *MultiSink) Close() {
	for _, s := range m.Sinks {
		CloseSink(s)
	}
}
