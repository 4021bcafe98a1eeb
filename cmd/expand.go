package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mleoca/ucn/query"
)

var expandCmd = &cobra.Command{
	Use:   "expand <name> <n>",
	Short: "Expand a numbered item from a symbol's context into source text",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("expand: invalid item number %q", args[1])
		}
		includeMethods, _ := cmd.Flags().GetBool("include-methods")
		includeUncertain, _ := cmd.Flags().GetBool("include-uncertain")

		ctxResult, ok := eng.Context(args[0], query.ContextOptions{
			IncludeMethods:   includeMethods,
			IncludeUncertain: includeUncertain,
		})
		if !ok {
			return printNotFound(eng, args[0])
		}
		if n < 1 || n > len(ctxResult.Expandable) {
			return fmt.Errorf("expand: item %d out of range (1-%d)", n, len(ctxResult.Expandable))
		}

		result, ok := eng.Expand(ctxResult.Expandable[n-1])
		if !ok {
			return fmt.Errorf("expand: could not read source for item %d", n)
		}
		return printJSON(result)
	},
}

func init() {
	expandCmd.Flags().Bool("include-methods", false, "include method calls in callers/callees")
	expandCmd.Flags().Bool("include-uncertain", false, "include uncertain call resolutions")
	rootCmd.AddCommand(expandCmd)
}
