package cmd

import "github.com/spf13/cobra"

var fileExportsCmd = &cobra.Command{
	Use:   "file-exports <file>",
	Short: "List a single file's exports",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		result, ok := eng.FileExports(args[0])
		if !ok {
			return printJSON(map[string]interface{}{"found": false, "file": args[0]})
		}
		return printJSON(result)
	},
}

func init() {
	rootCmd.AddCommand(fileExportsCmd)
}
