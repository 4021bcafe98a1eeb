package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mleoca/ucn/query"
)

var contextCmd = &cobra.Command{
	Use:   "context <name>",
	Short: "Show a symbol's immediate callers, callees, and methods",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		includeMethods, _ := cmd.Flags().GetBool("include-methods")
		includeUncertain, _ := cmd.Flags().GetBool("include-uncertain")
		file, _ := cmd.Flags().GetString("file")
		exclude, _ := cmd.Flags().GetStringSlice("exclude")

		result, ok := eng.Context(args[0], query.ContextOptions{
			IncludeMethods:   includeMethods,
			IncludeUncertain: includeUncertain,
			File:             file,
			Exclude:          exclude,
		})
		if !ok {
			return printNotFound(eng, args[0])
		}
		return printJSON(result)
	},
}

func init() {
	contextCmd.Flags().Bool("include-methods", false, "include method calls in callers/callees")
	contextCmd.Flags().Bool("include-uncertain", false, "include uncertain call resolutions")
	contextCmd.Flags().String("file", "", "restrict the symbol lookup to a file")
	contextCmd.Flags().StringSlice("exclude", nil, "path patterns to drop")
	rootCmd.AddCommand(contextCmd)
}
