package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/refhub/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing hub listing, search and stats tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(context.Background())
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "refhub MCP server started on stdio (hubs=%s, loaded=%d)\n", e.cfg.HubsDir, e.reg.Len())

		srv := mcpserver.NewServer(e.reg, e.policy)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
