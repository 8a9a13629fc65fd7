package genetic

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GenerationStats is one row of the convergence log.
type GenerationStats struct {
	Generation  int     `json:"gen"`
	Evaluations int     `json:"nevals"`
	Avg         float64 `json:"avg"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Std         float64 `json:"std"`
}

// Logbook is the convergence log of a run. Row 0 describes the initial
// population.
type Logbook []GenerationStats

// Select returns one column of the logbook: "avg", "min", "max" or "std".
// Unknown names yield nil.
func (l Logbook) Select(column string) []float64 {
	var pick func(GenerationStats) float64
	switch column {
	case "avg":
		pick = func(s GenerationStats) float64 { return s.Avg }
	case "min":
		pick = func(s GenerationStats) float64 { return s.Min }
	case "max":
		pick = func(s GenerationStats) float64 { return s.Max }
	case "std":
		pick = func(s GenerationStats) float64 { return s.Std }
	default:
		return nil
	}
	out := make([]float64, len(l))
	for i, s := range l {
		out[i] = pick(s)
	}
	return out
}

// Last returns the final row and false when the logbook is empty.
func (l Logbook) Last() (GenerationStats, bool) {
	if len(l) == 0 {
		return GenerationStats{}, false
	}
	return l[len(l)-1], true
}

// TotalEvaluations sums nevals over all rows.
func (l Logbook) TotalEvaluations() int {
	n := 0
	for _, s := range l {
		n += s.Evaluations
	}
	return n
}

func computeStats(gen, nevals int, fits []float64) GenerationStats {
	st := GenerationStats{Generation: gen, Evaluations: nevals}
	if len(fits) == 0 {
		return st
	}
	st.Avg = stat.Mean(fits, nil)
	st.Std = stat.PopStdDev(fits, nil)
	st.Min = floats.Min(fits)
	st.Max = floats.Max(fits)
	return st
}
