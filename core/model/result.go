package model

// Assignment describes one task placed on one employee, as derived from a
// chosen individual.
type Assignment struct {
	TaskID            int      `json:"task_id"`
	TaskName          string   `json:"task_name"`
	TaskPriority      Priority `json:"task_priority"`
	TaskHours         float64  `json:"task_hours"`
	EmployeeID        int      `json:"employee_id"`
	EmployeeName      string   `json:"employee_name"`
	MatchedSkills     []string `json:"matched_skills"`
	MissingSkills     []string `json:"missing_skills"`
	SkillMatchPercent float64  `json:"skill_match_percent"`
	EstimatedCost     float64  `json:"estimated_cost"`
	EfficiencyScore   float64  `json:"efficiency_score"`
}

// FullSkillMatch reports whether the employee has every required skill.
func (a Assignment) FullSkillMatch() bool { return len(a.MissingSkills) == 0 }

// ScheduleItem is a dated task slot on one employee's timeline.
type ScheduleItem struct {
	TaskID            int      `json:"task_id"`
	TaskName          string   `json:"task_name"`
	TaskPriority      Priority `json:"task_priority"`
	EmployeeID        int      `json:"employee_id"`
	EmployeeName      string   `json:"employee_name"`
	StartDate         Date     `json:"start_date"`
	EndDate           Date     `json:"end_date"`
	DurationDays      int      `json:"duration_business_days"`
	Hours             float64  `json:"hours"`
	Cost              float64  `json:"cost"`
	SkillMatchPercent float64  `json:"skill_match_percent"`
	EfficiencyScore   float64  `json:"efficiency_score"`
}

// ProjectMetrics aggregates a schedule. All fields are zero for an empty
// schedule.
type ProjectMetrics struct {
	TotalDurationDays     int            `json:"total_duration_days"`
	TotalHours            float64        `json:"total_hours"`
	TotalCost             float64        `json:"total_cost"`
	AvgEfficiency         float64        `json:"avg_efficiency"`
	AvgSkillMatch         float64        `json:"avg_skill_match"`
	TaskCount             int            `json:"task_count"`
	EmployeeCount         int            `json:"employee_count"`
	HighPriorityTaskCount int            `json:"high_priority_task_count"`
	OnTimeProbability     float64        `json:"on_time_completion_probability"`
	UnmatchedSkillTasks   int            `json:"unmatched_skill_task_count"`
	TasksPerEmployee      map[string]int `json:"tasks_per_employee"`
}
