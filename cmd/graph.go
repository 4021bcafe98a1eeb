package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mleoca/ucn/query"
)

var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Walk the import graph from a file to a bounded depth",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		direction, _ := cmd.Flags().GetString("direction")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")

		result := eng.Graph(args[0], query.GraphOptions{
			Direction: query.GraphDirection(direction),
			MaxDepth:  maxDepth,
		})
		return printJSON(result)
	},
}

func init() {
	graphCmd.Flags().String("direction", "imports", "imports, importers, or both")
	graphCmd.Flags().Int("max-depth", 0, "maximum BFS depth")
	rootCmd.AddCommand(graphCmd)
}
