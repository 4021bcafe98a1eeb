package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var stacktraceCmd = &cobra.Command{
	Use:   "stacktrace",
	Short: "Resolve each frame of a stack trace (read from stdin) to a source snippet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		return printJSON(eng.Stacktrace(string(text)))
	},
}

func init() {
	rootCmd.AddCommand(stacktraceCmd)
}
