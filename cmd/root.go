package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mleoca/ucn/output"
)

var (
	verboseFlag bool
	quietFlag   bool
	projectDir  string
	Version     = "0.1.0"
	GitCommit   = "HEAD"
)

var rootCmd = &cobra.Command{
	Use:   "ucn",
	Short: "Polyglot source-code navigator: index a project, query its symbols and graphs",
	Long: `ucn indexes a project across Go, Python, JavaScript, TypeScript, Rust, and Java,
building a call graph, import graph, and inheritance graph, then answers a family of
read-only queries against them (find, usages, context, impact, trace, and more).`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		verboseFlag, _ = cmd.Flags().GetBool("verbose")
		quietFlag, _ = cmd.Flags().GetBool("quiet")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose progress output on stderr")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress progress output on stderr")
	rootCmd.PersistentFlags().StringVar(&projectDir, "project", ".", "project root to index")
}

func logger() *output.Logger {
	switch {
	case quietFlag:
		return output.NewLogger(output.VerbosityQuiet)
	case verboseFlag:
		return output.NewLogger(output.VerbosityVerbose)
	default:
		return output.NewLogger(output.VerbosityNormal)
	}
}
