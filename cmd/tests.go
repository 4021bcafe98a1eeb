package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mleoca/ucn/query"
)

var testsCmd = &cobra.Command{
	Use:   "tests <name>",
	Short: "Find test references to a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		callsOnly, _ := cmd.Flags().GetBool("calls-only")
		result := eng.Tests(args[0], query.TestsOptions{CallsOnly: callsOnly})
		return printJSON(result)
	},
}

func init() {
	testsCmd.Flags().Bool("calls-only", false, "only report occurrences that are calls, not mere references")
	rootCmd.AddCommand(testsCmd)
}
