package cmd

import "github.com/spf13/cobra"

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Project-wide file/line/symbol counts by language and kind",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		return printJSON(eng.Stats())
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
