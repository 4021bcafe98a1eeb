package cmd

import "github.com/spf13/cobra"

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "List exported symbols project-wide or for one file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		return printJSON(eng.Api(file))
	},
}

func init() {
	apiCmd.Flags().String("file", "", "restrict to one file's exports")
	rootCmd.AddCommand(apiCmd)
}
