package cmd

import (
	"github.com/spf13/cobra"

	mcp "github.com/mleoca/ucn/mcpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the query engine over the MCP protocol on stdin/stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		capacity, _ := cmd.Flags().GetInt("cache-size")
		srv := mcp.NewServer(capacity, logger())
		return srv.ServeStdio()
	},
}

func init() {
	serveCmd.Flags().Int("cache-size", 0, "maximum concurrently-cached project indices (default 8)")
	rootCmd.AddCommand(serveCmd)
}
