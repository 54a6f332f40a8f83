package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/alukotobi/tobichat/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long: `Starts a Model Context Protocol (MCP) server on stdio, exposing the
chat and knowledge tools to editor agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		assist, err := buildAssistant(cfg)
		if err != nil {
			return err
		}

		mcpserver.Version = Version

		fmt.Fprintln(os.Stderr, "tobichat MCP server started on stdio")

		srv := mcpserver.NewServer(assist)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
