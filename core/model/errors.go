package model

import "errors"

// ErrConfiguration is returned for invalid or empty inputs and optimizer settings.
var ErrConfiguration = errors.New("configuration error")

// ErrDataReference is returned when an assignment, schedule item or gene refers
// to a task or employee that is not part of the current input sets.
var ErrDataReference = errors.New("data reference error")

// ErrDateArithmetic is returned when a calendar cannot produce business days.
var ErrDateArithmetic = errors.New("date arithmetic error")

// ErrInterrupted is returned when a run is cancelled between generations or
// between employees. Callers receive whatever partial result is documented by
// the operation alongside this error.
var ErrInterrupted = errors.New("run interrupted")
