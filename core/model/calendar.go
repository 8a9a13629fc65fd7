package model

import "fmt"

// Calendar defines which dates count as working days for a project.
type Calendar struct {
	StartDate Date `json:"start_date" yaml:"start_date"`
	// WorkDays lists working weekdays, 0=Monday .. 6=Sunday.
	WorkDays []int  `json:"work_days_per_week" yaml:"work_days_per_week"`
	Holidays []Date `json:"holidays" yaml:"holidays"`
}

// DefaultWorkDays is Monday to Friday.
var DefaultWorkDays = []int{0, 1, 2, 3, 4}

// Validate rejects calendars on which a business-day walk could never end.
func (c Calendar) Validate() error {
	if c.StartDate.IsZero() {
		return fmt.Errorf("%w: calendar start_date is required", ErrConfiguration)
	}
	if len(c.WorkDays) == 0 {
		return fmt.Errorf("%w: calendar has no working weekdays", ErrDateArithmetic)
	}
	for _, d := range c.WorkDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: weekday %d outside 0..6", ErrDateArithmetic, d)
		}
	}
	return nil
}

// BusinessDays is a precomputed membership view of a Calendar.
type BusinessDays struct {
	weekdays [7]bool
	holidays map[Date]struct{}
}

// BusinessDays builds the lookup used by date walks. Call Validate first.
func (c Calendar) BusinessDays() BusinessDays {
	var b BusinessDays
	for _, d := range c.WorkDays {
		if d >= 0 && d < 7 {
			b.weekdays[d] = true
		}
	}
	b.holidays = make(map[Date]struct{}, len(c.Holidays))
	for _, h := range c.Holidays {
		b.holidays[h] = struct{}{}
	}
	return b
}

// Contains reports whether d is a working weekday and not a holiday.
func (b BusinessDays) Contains(d Date) bool {
	if !b.weekdays[d.Weekday()] {
		return false
	}
	_, holiday := b.holidays[d]
	return !holiday
}

// IsBusinessDay reports whether d is a working weekday and not a holiday.
func (c Calendar) IsBusinessDay(d Date) bool {
	return c.BusinessDays().Contains(d)
}
