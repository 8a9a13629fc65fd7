package genetic

import (
	"sync"

	"github.com/kilianp07/taskalloc/internal/eventbus"
)

// Progress is reported once per completed generation.
type Progress struct {
	Generation  int     `json:"generation"`
	Total       int     `json:"total"`
	BestFitness float64 `json:"best_fitness"`
	AvgFitness  float64 `json:"avg_fitness"`
	// Stats is the logbook row of the generation.
	Stats GenerationStats `json:"stats"`
}

// Observer receives progress on the engine goroutine. It must return quickly;
// wrap slow observers with NewAsyncObserver.
type Observer func(Progress)

// AsyncObserver decouples a slow observer from the search loop. Progress is
// delivered through a buffered bus; when the buffer is full the update is
// dropped rather than stalling the engine.
type AsyncObserver struct {
	bus  *eventbus.TypedBus[Progress]
	done sync.WaitGroup
}

// NewAsyncObserver starts a goroutine delivering progress to fn.
func NewAsyncObserver(fn Observer, buffer int) *AsyncObserver {
	a := &AsyncObserver{bus: eventbus.NewTyped[Progress](buffer)}
	ch := a.bus.Subscribe()
	a.done.Add(1)
	go func() {
		defer a.done.Done()
		for p := range ch {
			fn(p)
		}
	}()
	return a
}

// Observe publishes p without blocking.
func (a *AsyncObserver) Observe(p Progress) { a.bus.Publish(p) }

// Dropped returns the number of updates discarded because the buffer was full.
func (a *AsyncObserver) Dropped() uint64 { return a.bus.Dropped() }

// Close stops delivery and waits for the observer to drain what was queued.
func (a *AsyncObserver) Close() {
	a.bus.Close()
	a.done.Wait()
}
