package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/kilianp07/taskalloc/app"
	"github.com/kilianp07/taskalloc/core/history"
	"github.com/kilianp07/taskalloc/core/model"
)

func printReport(w io.Writer, rep *app.Report) {
	fmt.Fprintf(w, "\nrun %s (seed %d)  best fitness %.4f  penalty %.0f  mismatches %d\n",
		rep.RunID, rep.Seed, rep.BestFitness, rep.Fitness.Penalty, rep.Fitness.SkillMismatches)

	fmt.Fprintln(w, "\nASSIGNMENTS")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TASK\tPRIORITY\tEMPLOYEE\tSKILLS\tMISSING\tCOST\tEFFICIENCY")
	for _, a := range rep.Assignments {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.0f%%\t%s\t%.0f\t%.1f\n", a.TaskName, a.TaskPriority, a.EmployeeName,
			a.SkillMatchPercent, strings.Join(a.MissingSkills, ","), a.EstimatedCost, a.EfficiencyScore)
	}
	_ = tw.Flush()

	if len(rep.Schedule) > 0 {
		fmt.Fprintln(w, "\nSCHEDULE")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "EMPLOYEE\tTASK\tSTART\tEND\tDAYS\tHOURS\tCOST")
		for _, it := range rep.Schedule {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%.0f\t%.0f\n", it.EmployeeName, it.TaskName,
				it.StartDate, it.EndDate, it.DurationDays, it.Hours, it.Cost)
		}
		_ = tw.Flush()
		printMetrics(w, rep.Metrics)
	}

	if len(rep.Recommendations) > 0 {
		fmt.Fprintln(w, "\nRECOMMENDATIONS")
		for _, r := range rep.Recommendations {
			fmt.Fprintf(w, "  [%s] %s\n", r.Severity, r.Message)
		}
	}
}

func printMetrics(w io.Writer, m model.ProjectMetrics) {
	fmt.Fprintln(w, "\nMETRICS")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "duration\t%d days\n", m.TotalDurationDays)
	fmt.Fprintf(tw, "hours\t%.0f\n", m.TotalHours)
	fmt.Fprintf(tw, "cost\t%.0f\n", m.TotalCost)
	fmt.Fprintf(tw, "avg efficiency\t%.1f%%\n", m.AvgEfficiency)
	fmt.Fprintf(tw, "avg skill match\t%.1f%%\n", m.AvgSkillMatch)
	fmt.Fprintf(tw, "on-time probability\t%.0f%%\n", m.OnTimeProbability*100)
	fmt.Fprintf(tw, "tasks with missing skills\t%d\n", m.UnmatchedSkillTasks)
	names := make([]string, 0, len(m.TasksPerEmployee))
	for n := range m.TasksPerEmployee {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(tw, "  %s\t%d tasks\n", n, m.TasksPerEmployee[n])
	}
	_ = tw.Flush()
}

func printStats(w io.Writer, st model.ProjectStats) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "tasks\t%d\n", st.TotalTasks)
	fmt.Fprintf(tw, "employees\t%d\n", st.TotalEmployees)
	fmt.Fprintf(tw, "total hours\t%.0f\n", st.TotalHours)
	fmt.Fprintf(tw, "avg task hours\t%.1f\n", st.AvgTaskHours)
	fmt.Fprintf(tw, "avg employee cost\t%.0f\n", st.AvgEmployeeCost)
	fmt.Fprintf(tw, "estimated cost\t%.0f\n", st.EstimatedProjectCost)
	_ = tw.Flush()
}

func printHistory(w io.Writer, recs []history.Record) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tTIME\tTASKS\tEMPLOYEES\tFITNESS\tCOST\tDAYS\tELAPSED\tINTERRUPTED")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.4f\t%.0f\t%d\t%s\t%t\n", r.RunID, r.Timestamp.Format("2006-01-02 15:04:05"),
			r.TaskCount, r.EmployeeCount, r.BestFitness, r.TotalCost, r.TotalDurationDays, r.ExecutionTime.Round(1e6), r.Interrupted)
	}
	_ = tw.Flush()
}
