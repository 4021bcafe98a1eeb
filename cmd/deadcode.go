package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mleoca/ucn/query"
)

var deadcodeCmd = &cobra.Command{
	Use:   "deadcode",
	Short: "List symbols with zero resolved callers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		includeExported, _ := cmd.Flags().GetBool("include-exported")
		includeDecorated, _ := cmd.Flags().GetBool("include-decorated")
		includeTests, _ := cmd.Flags().GetBool("include-tests")
		exclude, _ := cmd.Flags().GetStringSlice("exclude")
		in, _ := cmd.Flags().GetStringSlice("in")

		result := eng.Deadcode(query.DeadcodeOptions{
			IncludeExported:  includeExported,
			IncludeDecorated: includeDecorated,
			IncludeTests:     includeTests,
			Exclude:          exclude,
			In:               in,
		})
		return printJSON(result)
	},
}

func init() {
	deadcodeCmd.Flags().Bool("include-exported", false, "include exported symbols (normally assumed reachable externally)")
	deadcodeCmd.Flags().Bool("include-decorated", false, "include framework-decorated symbols (routes, tests, lifecycle hooks)")
	deadcodeCmd.Flags().Bool("include-tests", false, "include symbols defined in test files")
	deadcodeCmd.Flags().StringSlice("exclude", nil, "path patterns to drop")
	deadcodeCmd.Flags().StringSlice("in", nil, "path patterns to require")
	rootCmd.AddCommand(deadcodeCmd)
}
