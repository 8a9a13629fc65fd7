package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDateWeekdayAndArithmetic(t *testing.T) {
	d := NewDate(2024, time.June, 3)
	assert.Equal(t, 0, d.Weekday(), "2024-06-03 is a Monday")
	assert.Equal(t, 6, d.AddDays(6).Weekday())
	assert.Equal(t, "2024-06-07", d.AddDays(4).String())
	assert.Equal(t, "2024-07-01", NewDate(2024, time.June, 31).String())
	assert.Equal(t, 4, d.DaysUntil(d.AddDays(4)))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
}

func TestDateTextRoundTrip(t *testing.T) {
	var task struct {
		Deadline Date `json:"deadline" yaml:"deadline"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"deadline":"2024-06-15"}`), &task))
	assert.Equal(t, NewDate(2024, time.June, 15), task.Deadline)

	out, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, `{"deadline":"2024-06-15"}`, string(out))

	require.NoError(t, yaml.Unmarshal([]byte("deadline: 2024-08-20\n"), &task))
	assert.Equal(t, "2024-08-20", task.Deadline.String())

	err = json.Unmarshal([]byte(`{"deadline":"15/06/2024"}`), &task)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority(" High ")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	_, err = ParsePriority("urgent")
	assert.ErrorIs(t, err, ErrConfiguration)

	var task Task
	err = json.Unmarshal([]byte(`{"id":1,"priority":"critical"}`), &task)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestSkillSetLevel(t *testing.T) {
	s := SkillSet{"backend": 8, "sql": 0}
	lvl, ok := s.Level("backend")
	assert.True(t, ok)
	assert.Equal(t, 8, lvl)

	lvl, ok = s.Level("sql")
	assert.True(t, ok, "level 0 is still present")
	assert.Equal(t, 0, lvl)

	lvl, ok = s.Level("devops")
	assert.False(t, ok)
	assert.Equal(t, 0, lvl)
	assert.False(t, SkillSet(nil).Has("x"))
}

func TestCalendarValidate(t *testing.T) {
	start := NewDate(2024, time.June, 3)
	assert.NoError(t, Calendar{StartDate: start, WorkDays: DefaultWorkDays}.Validate())
	assert.ErrorIs(t, Calendar{StartDate: start}.Validate(), ErrDateArithmetic)
	assert.ErrorIs(t, Calendar{StartDate: start, WorkDays: []int{7}}.Validate(), ErrDateArithmetic)
	assert.ErrorIs(t, Calendar{WorkDays: DefaultWorkDays}.Validate(), ErrConfiguration)
}

func TestCalendarIsBusinessDay(t *testing.T) {
	cal := Calendar{
		StartDate: NewDate(2024, time.June, 1),
		WorkDays:  DefaultWorkDays,
		Holidays:  []Date{NewDate(2024, time.June, 12)},
	}
	assert.False(t, cal.IsBusinessDay(NewDate(2024, time.June, 1)), "saturday")
	assert.True(t, cal.IsBusinessDay(NewDate(2024, time.June, 11)))
	assert.False(t, cal.IsBusinessDay(NewDate(2024, time.June, 12)), "holiday")
}

func TestValidateTasks(t *testing.T) {
	valid := Task{ID: 1, Name: "api", Hours: 10, Priority: PriorityLow, Skills: []string{"go"}}
	cases := []struct {
		name  string
		tasks []Task
		ok    bool
	}{
		{"valid", []Task{valid}, true},
		{"empty", nil, false},
		{"zero hours", []Task{{ID: 1, Name: "a", Hours: 0, Priority: PriorityLow}}, false},
		{"negative id", []Task{{ID: -1, Name: "a", Hours: 1, Priority: PriorityLow}}, false},
		{"missing priority", []Task{{ID: 1, Name: "a", Hours: 1}}, false},
		{"duplicate", []Task{valid, valid}, false},
		{"blank skill", []Task{{ID: 1, Name: "a", Hours: 1, Priority: PriorityLow, Skills: []string{""}}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTasks(tc.tasks)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestValidateEmployees(t *testing.T) {
	valid := Employee{ID: 1, Name: "ann", DailyHours: 8, CostPerHour: 1500, Skills: SkillSet{"go": 7}}
	assert.NoError(t, ValidateEmployees([]Employee{valid}))
	assert.ErrorIs(t, ValidateEmployees(nil), ErrConfiguration)

	bad := valid
	bad.Skills = SkillSet{"go": 11}
	assert.ErrorIs(t, ValidateEmployees([]Employee{bad}), ErrConfiguration)

	bad = valid
	bad.CostPerHour = 0
	assert.ErrorIs(t, ValidateEmployees([]Employee{bad}), ErrConfiguration)

	bad = valid
	bad.DailyHours = -8
	assert.ErrorIs(t, ValidateEmployees([]Employee{bad}), ErrConfiguration)

	assert.ErrorIs(t, ValidateEmployees([]Employee{valid, valid}), ErrConfiguration)
}

func TestComputeProjectStats(t *testing.T) {
	tasks := []Task{{ID: 1, Hours: 40}, {ID: 2, Hours: 20}}
	emps := []Employee{{ID: 1, CostPerHour: 1000}, {ID: 2, CostPerHour: 2000}}
	st := ComputeProjectStats(tasks, emps)
	assert.Equal(t, 2, st.TotalTasks)
	assert.Equal(t, 2, st.TotalEmployees)
	assert.InDelta(t, 60, st.TotalHours, 1e-9)
	assert.InDelta(t, 30, st.AvgTaskHours, 1e-9)
	assert.InDelta(t, 1500, st.AvgEmployeeCost, 1e-9)
	assert.InDelta(t, 90000, st.EstimatedProjectCost, 1e-9)

	empty := ComputeProjectStats(nil, nil)
	assert.Zero(t, empty.AvgTaskHours)
	assert.Zero(t, empty.AvgEmployeeCost)
}
