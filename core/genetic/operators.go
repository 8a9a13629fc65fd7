package genetic

import "math/rand/v2"

// selectTournament fills a mating pool of size k. Each slot holds the fittest
// of tournSize individuals drawn uniformly with replacement.
func selectTournament(rng *rand.Rand, pop Population, k, tournSize int) Population {
	chosen := make(Population, k)
	for i := range chosen {
		best := pop[rng.IntN(len(pop))]
		for j := 1; j < tournSize; j++ {
			asp := pop[rng.IntN(len(pop))]
			if asp.fitness > best.fitness {
				best = asp
			}
		}
		chosen[i] = best
	}
	return chosen
}

// crossTwoPoint swaps the gene segment between two random cut points. Both
// parents are modified in place. Chromosomes shorter than two genes have no
// interior cut point and are left unchanged.
func crossTwoPoint(rng *rand.Rand, a, b *Individual) {
	size := min(len(a.Genes), len(b.Genes))
	if size < 2 {
		return
	}
	p1 := 1 + rng.IntN(size)
	p2 := 1 + rng.IntN(size-1)
	if p2 >= p1 {
		p2++
	} else {
		p1, p2 = p2, p1
	}
	for i := p1; i < p2; i++ {
		a.Genes[i], b.Genes[i] = b.Genes[i], a.Genes[i]
	}
}

// mutateUniform redraws each gene from [0, employees) with probability indpb.
// It reports whether any gene was redrawn.
func mutateUniform(rng *rand.Rand, ind *Individual, employees int, indpb float64) bool {
	touched := false
	for i := range ind.Genes {
		if rng.Float64() < indpb {
			ind.Genes[i] = rng.IntN(employees)
			touched = true
		}
	}
	return touched
}

// vary clones the mating pool and applies crossover to consecutive pairs and
// mutation to single individuals. Every touched offspring is invalidated.
func vary(rng *rand.Rand, pool Population, employees int, cfg Config) Population {
	off := make(Population, len(pool))
	for i, ind := range pool {
		off[i] = ind.Clone()
	}
	for i := 1; i < len(off); i += 2 {
		if rng.Float64() < cfg.CrossoverProb {
			crossTwoPoint(rng, off[i-1], off[i])
			off[i-1].Invalidate()
			off[i].Invalidate()
		}
	}
	for _, ind := range off {
		if rng.Float64() < cfg.MutationProb {
			mutateUniform(rng, ind, employees, cfg.GeneMutationProb)
			ind.Invalidate()
		}
	}
	return off
}
