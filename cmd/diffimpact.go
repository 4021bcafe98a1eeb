package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mleoca/ucn/query"
)

var diffImpactCmd = &cobra.Command{
	Use:   "diff-impact",
	Short: "Map changed hunks (vs. a base revision, or staged) to the symbols they overlap and their callers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		base, _ := cmd.Flags().GetString("base")
		staged, _ := cmd.Flags().GetBool("staged")
		file, _ := cmd.Flags().GetString("file")

		result, err := eng.DiffImpact(cmd.Context(), query.DiffImpactOptions{Base: base, Staged: staged, File: file})
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

func init() {
	diffImpactCmd.Flags().String("base", "", "base revision to diff against (default: working tree vs HEAD)")
	diffImpactCmd.Flags().Bool("staged", false, "use staged changes instead of a base revision")
	diffImpactCmd.Flags().String("file", "", "restrict to one file")
	rootCmd.AddCommand(diffImpactCmd)
}
