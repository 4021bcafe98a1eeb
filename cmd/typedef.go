package cmd

import "github.com/spf13/cobra"

var typedefCmd = &cobra.Command{
	Use:   "typedef <name>",
	Short: "Find type declarations (class/interface/struct/enum/...) by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		result := eng.Typedef(args[0])
		if len(result) == 0 {
			return printNotFound(eng, args[0])
		}
		return printJSON(result)
	},
}

func init() {
	rootCmd.AddCommand(typedefCmd)
}
