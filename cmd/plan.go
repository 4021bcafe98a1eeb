package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mleoca/ucn/query"
)

var planCmd = &cobra.Command{
	Use:   "plan <name>",
	Short: "Plan a signature refactor (addParam/removeParam/renameTo) and list affected call sites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		kind, _ := cmd.Flags().GetString("kind")
		param, _ := cmd.Flags().GetString("param")
		defaultValue, _ := cmd.Flags().GetString("default-value")
		renameTo, _ := cmd.Flags().GetString("rename-to")
		file, _ := cmd.Flags().GetString("file")

		result, ok := eng.Plan(args[0], query.PlanOptions{
			Kind:         query.RefactorKind(kind),
			Param:        param,
			DefaultValue: defaultValue,
			RenameTo:     renameTo,
			File:         file,
		})
		if !ok {
			return printNotFound(eng, args[0])
		}
		return printJSON(result)
	},
}

func init() {
	planCmd.Flags().String("kind", "", "addParam, removeParam, or renameTo")
	planCmd.Flags().String("param", "", "parameter name (addParam/removeParam)")
	planCmd.Flags().String("default-value", "", "default value for an added parameter")
	planCmd.Flags().String("rename-to", "", "new name (renameTo)")
	planCmd.Flags().String("file", "", "restrict the symbol lookup to a file")
	_ = planCmd.MarkFlagRequired("kind")
	rootCmd.AddCommand(planCmd)
}
