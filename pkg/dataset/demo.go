package dataset

import "github.com/kilianp07/taskalloc/core/model"

// Demo returns a small five-task project used by the demo command.
func Demo() *Dataset {
	d := model.MustParseDate
	return &Dataset{
		Tasks: []model.Task{
			{ID: 1, Name: "Architecture design", Hours: 40, Priority: model.PriorityHigh, Deadline: d("2024-06-15"), Skills: []string{"architecture", "sql"}},
			{ID: 2, Name: "Frontend development", Hours: 80, Priority: model.PriorityHigh, Deadline: d("2024-07-10"), Skills: []string{"frontend", "ui/ux"}},
			{ID: 3, Name: "Backend API", Hours: 120, Priority: model.PriorityHigh, Deadline: d("2024-08-01"), Skills: []string{"backend", "api"}},
			{ID: 4, Name: "Testing", Hours: 60, Priority: model.PriorityMedium, Deadline: d("2024-08-15"), Skills: []string{"testing"}},
			{ID: 5, Name: "Deployment", Hours: 20, Priority: model.PriorityMedium, Deadline: d("2024-08-20"), Skills: []string{"devops"}},
		},
		Employees: []model.Employee{
			{ID: 1, Name: "Ivan Petrov", DailyHours: 8, CostPerHour: 1800, Skills: model.SkillSet{"architecture": 9, "sql": 8, "backend": 7}},
			{ID: 2, Name: "Maria Sidorova", DailyHours: 8, CostPerHour: 1600, Skills: model.SkillSet{"frontend": 9, "ui/ux": 8, "testing": 6}},
			{ID: 3, Name: "Alexey Ivanov", DailyHours: 8, CostPerHour: 1700, Skills: model.SkillSet{"backend": 9, "api": 9, "devops": 7}},
			{ID: 4, Name: "Elena Kuznetsova", DailyHours: 6, CostPerHour: 1400, Skills: model.SkillSet{"testing": 8, "frontend": 6}},
			{ID: 5, Name: "Dmitry Smirnov", DailyHours: 8, CostPerHour: 1750, Skills: model.SkillSet{"devops": 9, "architecture": 6}},
		},
		Calendar: model.Calendar{
			StartDate: d("2024-06-01"),
			WorkDays:  append([]int(nil), model.DefaultWorkDays...),
			Holidays:  []model.Date{d("2024-06-12"), d("2024-07-01")},
		},
	}
}
