package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mleoca/ucn/query"
)

var findCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Find symbols by exact or substring name match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		exact, _ := cmd.Flags().GetBool("exact")
		exclude, _ := cmd.Flags().GetStringSlice("exclude")
		in, _ := cmd.Flags().GetStringSlice("in")

		records := eng.Find(args[0], query.FindOptions{File: file, Exact: exact, Exclude: exclude, In: in})
		if len(records) == 0 {
			return printNotFound(eng, args[0])
		}
		return printJSON(records)
	},
}

func init() {
	findCmd.Flags().String("file", "", "restrict to a single-file glob/substring")
	findCmd.Flags().Bool("exact", false, "match name exactly instead of by substring")
	findCmd.Flags().StringSlice("exclude", nil, "path patterns to drop")
	findCmd.Flags().StringSlice("in", nil, "path patterns to require")
	rootCmd.AddCommand(findCmd)
}
