package model

// ProjectStats summarizes the inputs before any optimization runs.
type ProjectStats struct {
	TotalTasks           int     `json:"total_tasks"`
	TotalEmployees       int     `json:"total_employees"`
	TotalHours           float64 `json:"total_hours"`
	AvgTaskHours         float64 `json:"avg_task_hours"`
	AvgEmployeeCost      float64 `json:"avg_employee_cost"`
	EstimatedProjectCost float64 `json:"estimated_project_cost"`
}

// ComputeProjectStats prices every task at the average employee rate. Empty
// inputs produce zero averages.
func ComputeProjectStats(tasks []Task, employees []Employee) ProjectStats {
	st := ProjectStats{TotalTasks: len(tasks), TotalEmployees: len(employees)}
	for _, t := range tasks {
		st.TotalHours += t.Hours
	}
	if len(tasks) > 0 {
		st.AvgTaskHours = st.TotalHours / float64(len(tasks))
	}
	st.AvgEmployeeCost = AverageCostPerHour(employees)
	st.EstimatedProjectCost = st.TotalHours * st.AvgEmployeeCost
	return st
}
