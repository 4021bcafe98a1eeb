package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mleoca/ucn/query"
)

var traceCmd = &cobra.Command{
	Use:   "trace <name>",
	Short: "Walk a symbol's callee tree to a bounded depth",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		depth, _ := cmd.Flags().GetInt("depth")
		includeMethods, _ := cmd.Flags().GetBool("include-methods")
		includeUncertain, _ := cmd.Flags().GetBool("include-uncertain")

		result, ok := eng.Trace(args[0], query.TraceOptions{
			Depth:            depth,
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
	traceCmd.Flags().Int("depth", 0, "maximum callee depth (default 5)")
	traceCmd.Flags().Bool("include-methods", false, "include method calls")
	traceCmd.Flags().Bool("include-uncertain", false, "include uncertain call resolutions")
	rootCmd.AddCommand(traceCmd)
}
