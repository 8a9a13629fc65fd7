package genetic

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand() *rand.Rand { return rand.New(rand.NewPCG(42, 7)) }

func TestCrossTwoPointSwapsOneSegment(t *testing.T) {
	rng := testRand()
	for trial := 0; trial < 200; trial++ {
		a := &Individual{Genes: []int{0, 0, 0, 0, 0, 0}}
		b := &Individual{Genes: []int{1, 1, 1, 1, 1, 1}}
		crossTwoPoint(rng, a, b)

		// Position-wise the pair still holds one 0 and one 1.
		for i := range a.Genes {
			assert.Equal(t, 1, a.Genes[i]+b.Genes[i])
		}
		// The first gene is never part of the swapped segment.
		assert.Equal(t, 0, a.Genes[0])
		// The swapped positions form a single contiguous run.
		runs := 0
		for i := range a.Genes {
			if a.Genes[i] == 1 && (i == 0 || a.Genes[i-1] == 0) {
				runs++
			}
		}
		assert.Equal(t, 1, runs)
	}
}

func TestCrossTwoPointShortChromosome(t *testing.T) {
	a := &Individual{Genes: []int{3}}
	b := &Individual{Genes: []int{4}}
	crossTwoPoint(testRand(), a, b)
	assert.Equal(t, []int{3}, a.Genes)
	assert.Equal(t, []int{4}, b.Genes)
}

func TestMutateUniformStaysInRange(t *testing.T) {
	rng := testRand()
	ind := NewIndividual(rng, 500, 4)
	assert.True(t, mutateUniform(rng, ind, 4, 1.0))
	for _, g := range ind.Genes {
		assert.GreaterOrEqual(t, g, 0)
		assert.Less(t, g, 4)
	}
	before := append([]int(nil), ind.Genes...)
	assert.False(t, mutateUniform(rng, ind, 4, 0))
	assert.Equal(t, before, ind.Genes)
}

func TestSelectTournament(t *testing.T) {
	pop := make(Population, 10)
	for i := range pop {
		pop[i] = &Individual{Genes: []int{i}}
		pop[i].SetFitness(float64(i))
	}
	rng := testRand()
	pool := selectTournament(rng, pop, 50, 3)
	require.Len(t, pool, 50)
	var sum float64
	for _, ind := range pool {
		sum += ind.Fitness()
	}
	// Tournaments of three skew the pool above the population mean of 4.5.
	assert.Greater(t, sum/50, 4.5)

	single := selectTournament(rng, pop, 10, 1)
	assert.Len(t, single, 10)
}

func TestVaryInvalidatesTouchedOffspring(t *testing.T) {
	rng := testRand()
	pool := make(Population, 20)
	for i := range pool {
		pool[i] = NewIndividual(rng, 8, 3)
		pool[i].SetFitness(1)
	}
	cfg := DefaultConfig()
	cfg.CrossoverProb, cfg.MutationProb = 1, 0
	off := vary(rng, pool, 3, cfg)
	require.Len(t, off, 20)
	for i, ind := range off {
		assert.False(t, ind.Valid())
		assert.NotSame(t, pool[i], ind)
		assert.True(t, pool[i].Valid(), "parents are never modified")
	}

	cfg.CrossoverProb = 0
	off = vary(rng, pool, 3, cfg)
	for _, ind := range off {
		assert.True(t, ind.Valid(), "untouched clones keep their score")
	}
}

func TestHallOfFameIsStrictAndIsolated(t *testing.T) {
	var h HallOfFame
	assert.Nil(t, h.Best())

	a := &Individual{Genes: []int{1, 2}}
	a.SetFitness(5)
	require.True(t, h.Update(Population{a}))

	tie := &Individual{Genes: []int{9, 9}}
	tie.SetFitness(5)
	assert.False(t, h.Update(Population{tie}), "equal fitness does not replace the elite")

	a.Genes[0] = 7
	assert.Equal(t, []int{1, 2}, h.Best().Genes, "elite is a private copy")

	b := &Individual{Genes: []int{3, 3}}
	b.SetFitness(6)
	assert.True(t, h.Update(Population{tie, b}))
	assert.InDelta(t, 6, h.Fitness(), 1e-12)
}

func TestLogbookSelect(t *testing.T) {
	lb := Logbook{computeStats(0, 4, []float64{1, 2, 3, 6}), computeStats(1, 2, []float64{4, 4})}
	assert.Equal(t, []float64{3, 4}, lb.Select("avg"))
	assert.Equal(t, []float64{6, 4}, lb.Select("max"))
	assert.Equal(t, []float64{1, 4}, lb.Select("min"))
	assert.Nil(t, lb.Select("median"))
	assert.Equal(t, 6, lb.TotalEvaluations())
	last, ok := lb.Last()
	assert.True(t, ok)
	assert.Equal(t, 1, last.Generation)
	assert.Zero(t, lb.Select("std")[1])

	_, ok = Logbook{}.Last()
	assert.False(t, ok)
}
