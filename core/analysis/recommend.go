package analysis

import (
	"fmt"
	"strings"

	"github.com/kilianp07/taskalloc/core/model"
)

// Severity classifies a recommendation.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
)

// Thresholds below which an assignment is flagged.
const (
	LowEfficiencyThreshold = 60.0
	LowSkillMatchThreshold = 80.0
	topSuccesses           = 3
	MaxRecommendations     = 5
)

// Recommendation is a short message about a single assignment.
type Recommendation struct {
	Severity Severity `json:"severity"`
	TaskID   int      `json:"task_id"`
	Message  string   `json:"message"`
}

// Recommend flags low efficiency and incomplete skill coverage, then lists
// the most efficient assignments. At most MaxRecommendations are returned,
// warnings first.
func Recommend(assignments []model.Assignment) []Recommendation {
	var out []Recommendation
	for _, a := range assignments {
		if a.EfficiencyScore < LowEfficiencyThreshold {
			out = append(out, Recommendation{
				Severity: SeverityWarning,
				TaskID:   a.TaskID,
				Message: fmt.Sprintf("task %q has low efficiency (%.1f%%) with %s; consider another employee",
					a.TaskName, a.EfficiencyScore, a.EmployeeName),
			})
		}
		if a.SkillMatchPercent < LowSkillMatchThreshold {
			msg := fmt.Sprintf("task %q is covered at %.1f%% of required skills by %s",
				a.TaskName, a.SkillMatchPercent, a.EmployeeName)
			if len(a.MissingSkills) > 0 {
				msg += "; missing: " + strings.Join(a.MissingSkills, ", ")
			}
			out = append(out, Recommendation{Severity: SeverityWarning, TaskID: a.TaskID, Message: msg})
		}
	}
	for i, a := range sortByEfficiency(assignments) {
		if i == topSuccesses {
			break
		}
		out = append(out, Recommendation{
			Severity: SeveritySuccess,
			TaskID:   a.TaskID,
			Message:  fmt.Sprintf("%s on %q is a strong fit (%.1f%% efficiency)", a.EmployeeName, a.TaskName, a.EfficiencyScore),
		})
	}
	if len(out) > MaxRecommendations {
		out = out[:MaxRecommendations]
	}
	return out
}
