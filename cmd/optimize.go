package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/taskalloc/app"
	"github.com/kilianp07/taskalloc/core/genetic"
	"github.com/kilianp07/taskalloc/core/model"
	"github.com/kilianp07/taskalloc/infra/logger"
	"github.com/kilianp07/taskalloc/infra/metrics"
	"github.com/kilianp07/taskalloc/pkg/dataset"
)

type inputFlags struct {
	project   string
	tasks     string
	employees string
	calendar  string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.project, "project", "p", "", "project file holding tasks, employees and calendar")
	cmd.Flags().StringVar(&f.tasks, "tasks", "", "tasks file")
	cmd.Flags().StringVar(&f.employees, "employees", "", "employees file")
	cmd.Flags().StringVar(&f.calendar, "calendar", "", "calendar file")
}

// load prefers flags over the data section of the configuration.
func (f inputFlags) load() (*dataset.Dataset, error) {
	d := cfg.Data
	if f.project != "" || f.tasks != "" || f.employees != "" {
		d.Project, d.Tasks, d.Employees, d.Calendar = f.project, f.tasks, f.employees, f.calendar
	}
	switch {
	case d.Project != "":
		return dataset.Load(d.Project)
	case d.Tasks != "" && d.Employees != "":
		return dataset.LoadFiles(d.Tasks, d.Employees, d.Calendar)
	}
	return nil, errors.New("no input: pass --project or --tasks and --employees")
}

type runFlags struct {
	out         string
	generations int
	population  int
	seed        uint64
	progress    bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write the full report to this json or yaml file")
	cmd.Flags().IntVar(&f.generations, "generations", 0, "override optimizer.generations")
	cmd.Flags().IntVar(&f.population, "population", 0, "override optimizer.population_size")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "override optimizer.seed")
	cmd.Flags().BoolVar(&f.progress, "progress", true, "print progress every generation")
}

func (f runFlags) apply() {
	if f.generations > 0 {
		cfg.Optimizer.Generations = f.generations
	}
	if f.population > 0 {
		cfg.Optimizer.PopulationSize = f.population
	}
	if f.seed > 0 {
		cfg.Optimizer.Seed = f.seed
	}
}

var (
	optimizeInputs inputFlags
	optimizeRun    runFlags
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Optimize the assignment and print the schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := optimizeInputs.load()
		if err != nil {
			return err
		}
		return runPlan(cmd, ds, optimizeRun)
	},
}

func init() {
	optimizeInputs.register(optimizeCmd)
	optimizeRun.register(optimizeCmd)
	rootCmd.AddCommand(optimizeCmd)
}

func runPlan(cmd *cobra.Command, ds *dataset.Dataset, f runFlags) error {
	ctx, stop := signalContext()
	defer stop()
	log := logger.New("cli")

	f.apply()
	if err := cfg.Optimizer.Validate(); err != nil {
		return err
	}
	if addr := cfg.Metrics.PrometheusAddr; addr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, addr); err != nil {
				log.Errorf("prom server: %v", err)
			}
		}()
	}

	var opts []app.Option
	out := cmd.OutOrStdout()
	if f.progress {
		opts = append(opts, app.WithObserver(func(p genetic.Progress) {
			fmt.Fprintf(out, "\rgeneration %d/%d  best %.4f  avg %.4f", p.Generation, p.Total, p.BestFitness, p.AvgFitness)
			if p.Generation == p.Total {
				fmt.Fprintln(out)
			}
		}))
	}
	planner, err := app.NewPlanner(cfg, opts...)
	if err != nil {
		return err
	}
	defer planner.Close()

	rep, err := planner.Plan(ctx, ds)
	if err != nil && !errors.Is(err, model.ErrInterrupted) {
		return err
	}
	if rep.Interrupted {
		fmt.Fprintln(out)
		log.Warnf("run interrupted, showing best assignment found so far")
	}
	printReport(out, rep)
	if f.out != "" {
		if werr := dataset.Save(f.out, rep); werr != nil {
			return fmt.Errorf("write report: %w", werr)
		}
		fmt.Fprintf(out, "\nreport written to %s\n", f.out)
	}
	return err
}
