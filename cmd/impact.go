package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mleoca/ucn/query"
)

var impactCmd = &cobra.Command{
	Use:   "impact <name>",
	Short: "Group every call site resolving to a symbol by caller file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		exclude, _ := cmd.Flags().GetStringSlice("exclude")

		result, ok := eng.Impact(args[0], query.ImpactOptions{File: file, Exclude: exclude})
		if !ok {
			return printNotFound(eng, args[0])
		}
		return printJSON(result)
	},
}

func init() {
	impactCmd.Flags().String("file", "", "restrict the symbol lookup to a file")
	impactCmd.Flags().StringSlice("exclude", nil, "path patterns to drop")
	rootCmd.AddCommand(impactCmd)
}
