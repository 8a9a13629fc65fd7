package model

import (
	"fmt"
	"strings"
)

// Priority ranks a task. Only High affects the optimizer.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority accepts high, medium or low in any case.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	}
	return "", fmt.Errorf("%w: invalid priority %q", ErrConfiguration, s)
}

func (p Priority) String() string { return string(p) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(b []byte) error {
	v, err := ParsePriority(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Task is a unit of work assigned to exactly one employee. Tasks are never
// modified once loaded.
type Task struct {
	ID       int      `json:"id" yaml:"id" validate:"gt=0"`
	Name     string   `json:"name" yaml:"name" validate:"required"`
	Hours    float64  `json:"hours" yaml:"hours" validate:"gt=0"`
	Priority Priority `json:"priority" yaml:"priority" validate:"oneof=high medium low"`
	// Deadline is informational; the optimizer does not enforce it.
	Deadline Date     `json:"deadline" yaml:"deadline"`
	Skills   []string `json:"skills" yaml:"skills" validate:"dive,required"`
}

// IsHighPriority reports whether the task has priority High.
func (t Task) IsHighPriority() bool { return t.Priority == PriorityHigh }
