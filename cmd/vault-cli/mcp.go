package main

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the vault operations as MCP tools over stdio",
		Long: `mcp starts a Model Context Protocol server on stdio exposing the same
eight vault operations the CLI offers, backed by the same Local REST
API client, so any MCP-compatible harness can drive the vault.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := mcp.NewServer(&mcp.Implementation{
				Name:    "vault-cli",
				Version: version,
			}, nil)

			registerTools(server)

			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fmt.Errorf("error running server: %w", err)
			}
			return nil
		},
	}
}
