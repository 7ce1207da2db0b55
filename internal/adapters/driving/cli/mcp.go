package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/atsearch/internal/adapters/driven/browser"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can build and
open ATS job searches.

Tools:
  build_search_urls  Build search URLs without opening them
  open_search        Open the searches in the browser
  list_sites         List the searchable ATS sites

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default, for desktop assistants)
  atsearch mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  atsearch mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	bindMCPFlags()
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func bindMCPFlags() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	if siteRegistry == nil {
		return errors.New("site registry not configured")
	}

	// stdout carries JSON-RPC in stdio mode, so nothing else may write to it.
	browser.Quiet()
	forms, _ := newFormService(cmd.ErrOrStderr(), dispatchSettings.PrintOnly, dispatchSettings.Interval)

	server, err := mcp.NewServer(&mcp.Ports{
		Forms:    forms,
		Registry: siteRegistry,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
