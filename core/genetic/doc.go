// Package genetic searches task→employee assignments with a generational
// genetic algorithm: tournament selection, two-point crossover, uniform
// integer mutation and a size one hall of fame.
//
// Each generation is evaluated on a bounded worker pool. The hall of fame,
// the logbook and observer notifications are only touched by the goroutine
// running Engine.Run, after every evaluation of the generation finished.
package genetic
