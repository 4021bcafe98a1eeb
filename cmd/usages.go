package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mleoca/ucn/query"
)

var usagesCmd = &cobra.Command{
	Use:   "usages <name>",
	Short: "List every syntactic occurrence of a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		codeOnly, _ := cmd.Flags().GetBool("code-only")
		context, _ := cmd.Flags().GetInt("context")
		exclude, _ := cmd.Flags().GetStringSlice("exclude")
		in, _ := cmd.Flags().GetStringSlice("in")

		occurrences := eng.Usages(args[0], query.UsagesOptions{CodeOnly: codeOnly, Context: context, Exclude: exclude, In: in})
		if len(occurrences) == 0 {
			return printNotFound(eng, args[0])
		}
		return printJSON(occurrences)
	},
}

func init() {
	usagesCmd.Flags().Bool("code-only", false, "omit occurrences inside comments/string literals")
	usagesCmd.Flags().Int("context", 0, "lines of context before/after to attach")
	usagesCmd.Flags().StringSlice("exclude", nil, "path patterns to drop")
	usagesCmd.Flags().StringSlice("in", nil, "path patterns to require")
	rootCmd.AddCommand(usagesCmd)
}
