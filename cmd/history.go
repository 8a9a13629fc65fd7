package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kilianp07/taskalloc/app"
	coremetrics "github.com/kilianp07/taskalloc/core/metrics"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded optimization runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		planner, err := app.NewPlanner(cfg, app.WithSink(coremetrics.NopSink{}))
		if err != nil {
			return err
		}
		defer planner.Close()
		recs, err := planner.History(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		printHistory(cmd.OutOrStdout(), recs)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to show, 0 for all")
	rootCmd.AddCommand(historyCmd)
}
