package cmd

import "github.com/spf13/cobra"

var relatedCmd = &cobra.Command{
	Use:   "related <name>",
	Short: "Find symbols related to a name by file, name root, or shared caller/callee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		result, ok := eng.Related(args[0])
		if !ok {
			return printNotFound(eng, args[0])
		}
		return printJSON(result)
	},
}

func init() {
	rootCmd.AddCommand(relatedCmd)
}
