package cmd

import (
	"time"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/contract"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/mcp"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the sprintlens MCP server",
	Long:  `Launch an MCP server that allows AI agents to compute sprint analytics via standard tools.`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// The MCP protocol owns stdio, so setup must stay quiet.
		if err := archiveSetup(); err != nil {
			return err
		}

		// Report defaults for tool calls that omit the optional arguments.
		cfg.Mode = schema.CountingMode(viper.GetString("mode"))
		cfg.Chart = schema.ChartMode(viper.GetString("chart"))
		today, err := contract.ResolveToday(viper.GetString("today"), time.Now())
		if err != nil {
			return err
		}
		cfg.Today = today
		return nil
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, store)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
