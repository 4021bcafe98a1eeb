package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mleoca/ucn/query"
)

var aboutCmd = &cobra.Command{
	Use:   "about <name>",
	Short: "Summarize a symbol: callers, callees, tests, reference count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		maxCallers, _ := cmd.Flags().GetInt("max-callers")
		maxCallees, _ := cmd.Flags().GetInt("max-callees")
		includeMethods, _ := cmd.Flags().GetBool("include-methods")
		includeUncertain, _ := cmd.Flags().GetBool("include-uncertain")

		result, ok := eng.About(args[0], query.AboutOptions{
			MaxCallers:       maxCallers,
			MaxCallees:       maxCallees,
			IncludeMethods:   includeMethods,
			IncludeUncertain: includeUncertain,
		})
		if !ok {
			return printNotFound(eng, args[0])
		}
		return printJSON(result)
	},
}

func init() {
	aboutCmd.Flags().Int("max-callers", 0, "cap on callers shown (default 5)")
	aboutCmd.Flags().Int("max-callees", 0, "cap on callees shown (default 5)")
	aboutCmd.Flags().Bool("include-methods", false, "include method calls")
	aboutCmd.Flags().Bool("include-uncertain", false, "include uncertain call resolutions")
	rootCmd.AddCommand(aboutCmd)
}
