package genetic

import (
	"fmt"
	"runtime"

	"github.com/kilianp07/taskalloc/core/model"
)

// Config defines the search parameters.
type Config struct {
	PopulationSize int     `json:"population_size"`
	Generations    int     `json:"generations"`
	CrossoverProb  float64 `json:"crossover_prob"`
	MutationProb   float64 `json:"mutation_prob"`
	// GeneMutationProb is the per-gene redraw probability applied to an
	// individual selected for mutation.
	GeneMutationProb float64 `json:"gene_mutation_prob"`
	TournamentSize   int     `json:"tournament_size"`
	// Workers bounds concurrent fitness evaluations. 0 means GOMAXPROCS.
	Workers int `json:"workers"`
	// Seed makes runs reproducible. 0 seeds from the clock.
	Seed uint64 `json:"seed"`
}

// DefaultConfig returns the reference parameters.
func DefaultConfig() Config {
	return Config{
		PopulationSize:   100,
		Generations:      50,
		CrossoverProb:    0.7,
		MutationProb:     0.2,
		GeneMutationProb: 0.1,
		TournamentSize:   3,
	}
}

// SetDefaults fills unset sizes and workers. Probabilities, gene_mutation_prob
// included, are kept as given since 0 is a legitimate rate; start from
// DefaultConfig to get the reference rates.
func (c *Config) SetDefaults() {
	d := DefaultConfig()
	if c.PopulationSize == 0 {
		c.PopulationSize = d.PopulationSize
	}
	if c.Generations == 0 {
		c.Generations = d.Generations
	}
	if c.TournamentSize == 0 {
		c.TournamentSize = d.TournamentSize
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
}

// Validate checks parameter ranges.
func (c Config) Validate() error {
	if c.PopulationSize < 2 {
		return fmt.Errorf("%w: population_size must be at least 2", model.ErrConfiguration)
	}
	if c.Generations < 1 {
		return fmt.Errorf("%w: generations must be positive", model.ErrConfiguration)
	}
	if c.TournamentSize < 1 || c.TournamentSize >= c.PopulationSize {
		return fmt.Errorf("%w: tournament_size %d must be in [1, population_size)", model.ErrConfiguration, c.TournamentSize)
	}
	for name, p := range map[string]float64{
		"crossover_prob":     c.CrossoverProb,
		"mutation_prob":      c.MutationProb,
		"gene_mutation_prob": c.GeneMutationProb,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %s %.3f outside [0,1]", model.ErrConfiguration, name, p)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", model.ErrConfiguration)
	}
	return nil
}
