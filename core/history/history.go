// Package history defines the persisted record of optimization runs and the
// store contract implemented by infra/history.
package history

import (
	"context"
	"time"

	"github.com/kilianp07/taskalloc/core/factory"
)

// Record captures one optimization run.
type Record struct {
	RunID             string        `json:"run_id"`
	Timestamp         time.Time     `json:"timestamp"`
	TaskCount         int           `json:"task_count"`
	EmployeeCount     int           `json:"employee_count"`
	Generations       int           `json:"generations"`
	ExecutionTime     time.Duration `json:"execution_time"`
	BestFitness       float64       `json:"best_fitness"`
	TotalCost         float64       `json:"total_cost"`
	TotalDurationDays int           `json:"total_duration_days"`
	AvgEfficiency     float64       `json:"avg_efficiency"`
	Interrupted       bool          `json:"interrupted"`
}

// Store persists run records. List returns the most recent records first; a
// limit <= 0 returns every record.
type Store interface {
	Append(ctx context.Context, rec Record) error
	List(ctx context.Context, limit int) ([]Record, error)
	Close() error
}

// NopStore discards records.
type NopStore struct{}

func (NopStore) Append(context.Context, Record) error        { return nil }
func (NopStore) List(context.Context, int) ([]Record, error) { return nil, nil }
func (NopStore) Close() error                                { return nil }

var storeRegistry = factory.NewRegistry[Store]()

// RegisterStore adds a store backend identified by name.
func RegisterStore(name string, f factory.Factory[Store]) error {
	return storeRegistry.Register(name, f)
}

// NewStore opens the configured backend. An empty type disables history.
func NewStore(cfg factory.ModuleConfig) (Store, error) {
	if cfg.Type == "" {
		return NopStore{}, nil
	}
	return storeRegistry.Create(cfg)
}
