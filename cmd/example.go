package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mleoca/ucn/query"
)

var exampleCmd = &cobra.Command{
	Use:   "example <name>",
	Short: "Show a handful of real call sites illustrating how a symbol is used",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		maxExamples, _ := cmd.Flags().GetInt("max-examples")
		includeTests, _ := cmd.Flags().GetBool("include-tests")

		result, ok := eng.Example(args[0], query.ExampleOptions{MaxExamples: maxExamples, IncludeTests: includeTests})
		if !ok {
			return printNotFound(eng, args[0])
		}
		return printJSON(result)
	},
}

func init() {
	exampleCmd.Flags().Int("max-examples", 0, "maximum call sites to show (default 3)")
	exampleCmd.Flags().Bool("include-tests", false, "include call sites found in test files")
	rootCmd.AddCommand(exampleCmd)
}
