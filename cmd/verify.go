package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mleoca/ucn/query"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <name>",
	Short: "Classify every call site against a function's current signature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		result, ok := eng.Verify(args[0], query.VerifyOptions{File: file})
		if !ok {
			return printNotFound(eng, args[0])
		}
		return printJSON(result)
	},
}

func init() {
	verifyCmd.Flags().String("file", "", "restrict the symbol lookup to a file")
	rootCmd.AddCommand(verifyCmd)
}
