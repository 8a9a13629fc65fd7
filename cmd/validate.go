package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateInputs inputFlags

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check input files and print project statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := validateInputs.load()
		if err != nil {
			return err
		}
		if err := ds.Validate(); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printStats(out, ds.Stats())
		fmt.Fprintln(out, "input is valid")
		return nil
	},
}

func init() {
	validateInputs.register(validateCmd)
	rootCmd.AddCommand(validateCmd)
}
