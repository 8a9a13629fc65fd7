package genetic

import "math/rand/v2"

// Individual is one candidate solution. Genes[i] is the employee index
// assigned to task i. The cached fitness is only meaningful while Valid
// reports true; any gene change must be followed by Invalidate.
type Individual struct {
	Genes   []int
	fitness float64
	valid   bool
}

// NewIndividual draws every gene uniformly from [0, employees).
func NewIndividual(rng *rand.Rand, tasks, employees int) *Individual {
	genes := make([]int, tasks)
	for i := range genes {
		genes[i] = rng.IntN(employees)
	}
	return &Individual{Genes: genes}
}

// Fitness returns the cached score.
func (ind *Individual) Fitness() float64 { return ind.fitness }

// Valid reports whether the cached score matches the genes.
func (ind *Individual) Valid() bool { return ind.valid }

// SetFitness stores a freshly computed score.
func (ind *Individual) SetFitness(f float64) {
	ind.fitness = f
	ind.valid = true
}

// Invalidate marks the cached score as stale.
func (ind *Individual) Invalidate() {
	ind.fitness = 0
	ind.valid = false
}

// Clone returns a deep copy, including the cached score.
func (ind *Individual) Clone() *Individual {
	genes := make([]int, len(ind.Genes))
	copy(genes, ind.Genes)
	return &Individual{Genes: genes, fitness: ind.fitness, valid: ind.valid}
}

// Population is an unordered set of individuals of fixed size.
type Population []*Individual

// Fitnesses returns the cached scores in population order.
func (p Population) Fitnesses() []float64 {
	out := make([]float64, len(p))
	for i, ind := range p {
		out[i] = ind.fitness
	}
	return out
}

// Best returns the individual with the highest score, the first one on ties.
func (p Population) Best() *Individual {
	var best *Individual
	for _, ind := range p {
		if best == nil || ind.fitness > best.fitness {
			best = ind
		}
	}
	return best
}

// HallOfFame keeps the best individual ever observed. The stored individual
// is a private clone and is never mutated.
type HallOfFame struct {
	best *Individual
}

// Update replaces the elite when p holds a strictly fitter individual and
// reports whether it did.
func (h *HallOfFame) Update(p Population) bool {
	cand := p.Best()
	if cand == nil {
		return false
	}
	if h.best == nil || cand.fitness > h.best.fitness {
		h.best = cand.Clone()
		return true
	}
	return false
}

// Best returns a copy of the elite, or nil before the first update.
func (h *HallOfFame) Best() *Individual {
	if h.best == nil {
		return nil
	}
	return h.best.Clone()
}

// Fitness returns the elite's score, 0 before the first update.
func (h *HallOfFame) Fitness() float64 {
	if h.best == nil {
		return 0
	}
	return h.best.fitness
}
