package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mleoca/ucn/query"
)

var smartCmd = &cobra.Command{
	Use:   "smart <name>",
	Short: "Gather a symbol's own source plus its first-hop callee and type source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		withTypes, _ := cmd.Flags().GetBool("with-types")
		includeMethods, _ := cmd.Flags().GetBool("include-methods")
		includeUncertain, _ := cmd.Flags().GetBool("include-uncertain")

		result, ok := eng.Smart(args[0], query.SmartOptions{
			WithTypes:        withTypes,
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
	smartCmd.Flags().Bool("with-types", false, "include source of referenced parameter/return types")
	smartCmd.Flags().Bool("include-methods", false, "include method calls")
	smartCmd.Flags().Bool("include-uncertain", false, "include uncertain call resolutions")
	rootCmd.AddCommand(smartCmd)
}
