package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/taskalloc/pkg/dataset"
)

var (
	demoWrite string
	demoRun   runFlags
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Optimize the bundled five-task demo project",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds := dataset.Demo()
		if demoWrite != "" {
			if err := dataset.Save(demoWrite, ds); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "demo project written to %s\n", demoWrite)
			return nil
		}
		return runPlan(cmd, ds, demoRun)
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoWrite, "write", "", "write the demo project to this file instead of running it")
	demoRun.register(demoCmd)
	rootCmd.AddCommand(demoCmd)
}
