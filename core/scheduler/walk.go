package scheduler

import "github.com/kilianp07/taskalloc/core/model"

// walk advances one calendar day at a time from start, counting business
// days, and returns the day on which the count first reaches need together
// with the count. start itself may be a non-working day. A fractional need
// still consumes a whole business day.
func walk(days model.BusinessDays, start model.Date, need float64) (model.Date, int) {
	d := start
	completed := 0
	for {
		if days.Contains(d) {
			completed++
			if float64(completed) >= need {
				return d, completed
			}
		}
		d = d.AddDays(1)
	}
}
