package scheduler

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kilianp07/taskalloc/core/logger"
	"github.com/kilianp07/taskalloc/core/model"
)

// Builder lays out assignments on the project calendar.
type Builder struct {
	log     logger.Logger
	workers int
}

// NewBuilder returns a Builder. workers bounds how many employee timelines
// are built at once; 0 means one goroutine per employee.
func NewBuilder(log logger.Logger, workers int) *Builder {
	return &Builder{log: logger.OrNop(log), workers: workers}
}

type lane struct {
	emp   model.Employee
	tasks []laneTask
}

type laneTask struct {
	task model.Task
	asn  model.Assignment
}

// Build returns the schedule grouped by employee, in the order employees
// are listed, and within an employee in assignment order. The calendar and
// every task and employee reference are checked before any item is built; on
// error no items are returned.
func (b *Builder) Build(ctx context.Context, assignments []model.Assignment, tasks []model.Task,
	employees []model.Employee, cal model.Calendar) ([]model.ScheduleItem, error) {
	if err := cal.Validate(); err != nil {
		return nil, err
	}
	lanes, err := buildLanes(assignments, tasks, employees)
	if err != nil {
		return nil, err
	}
	if len(lanes) == 0 {
		return []model.ScheduleItem{}, nil
	}

	days := cal.BusinessDays()
	out := make([][]model.ScheduleItem, len(lanes))
	g, gctx := errgroup.WithContext(ctx)
	if b.workers > 0 {
		g.SetLimit(b.workers)
	}
	for i, l := range lanes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("%w: employee %d not scheduled: %w", model.ErrInterrupted, l.emp.ID, err)
			}
			out[i] = l.schedule(days, cal.StartDate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]model.ScheduleItem, 0, len(assignments))
	for _, l := range out {
		items = append(items, l...)
	}
	b.log.Debugw("schedule built", map[string]any{"items": len(items), "employees": len(lanes)})
	return items, nil
}

// buildLanes resolves every reference and groups assignments by employee.
func buildLanes(assignments []model.Assignment, tasks []model.Task, employees []model.Employee) ([]*lane, error) {
	taskByID := make(map[int]model.Task, len(tasks))
	for _, t := range tasks {
		taskByID[t.ID] = t
	}
	byEmp := make(map[int]*lane, len(employees))
	for _, e := range employees {
		byEmp[e.ID] = &lane{emp: e}
	}
	for _, a := range assignments {
		t, ok := taskByID[a.TaskID]
		if !ok {
			return nil, fmt.Errorf("%w: assignment references unknown task %d", model.ErrDataReference, a.TaskID)
		}
		l, ok := byEmp[a.EmployeeID]
		if !ok {
			return nil, fmt.Errorf("%w: task %d assigned to unknown employee %d", model.ErrDataReference, a.TaskID, a.EmployeeID)
		}
		if l.emp.DailyHours <= 0 {
			return nil, fmt.Errorf("%w: employee %d has no daily capacity", model.ErrConfiguration, l.emp.ID)
		}
		l.tasks = append(l.tasks, laneTask{task: t, asn: a})
	}
	var lanes []*lane
	for _, e := range employees {
		if l := byEmp[e.ID]; len(l.tasks) > 0 {
			lanes = append(lanes, l)
			// Guard against duplicate employee ids producing the lane twice.
			delete(byEmp, e.ID)
		}
	}
	return lanes, nil
}

func (l *lane) schedule(days model.BusinessDays, start model.Date) []model.ScheduleItem {
	items := make([]model.ScheduleItem, 0, len(l.tasks))
	cursor := start
	for _, lt := range l.tasks {
		end, count := walk(days, cursor, lt.task.Hours/l.emp.DailyHours)
		items = append(items, model.ScheduleItem{
			TaskID:            lt.task.ID,
			TaskName:          lt.task.Name,
			TaskPriority:      lt.task.Priority,
			EmployeeID:        l.emp.ID,
			EmployeeName:      l.emp.Name,
			StartDate:         cursor,
			EndDate:           end,
			DurationDays:      count,
			Hours:             lt.task.Hours,
			Cost:              lt.task.Hours * l.emp.CostPerHour,
			SkillMatchPercent: lt.asn.SkillMatchPercent,
			EfficiencyScore:   lt.asn.EfficiencyScore,
		})
		// The next task of this employee starts the day after this one ends.
		cursor = end.AddDays(1)
	}
	return items
}
