// Package scheduler turns resolved assignments into dated per-employee
// timelines. Each employee works through their tasks in assignment order,
// counting only business days of the project calendar, with one idle
// calendar day between consecutive tasks. Timelines of different employees
// are independent and are built concurrently.
package scheduler
