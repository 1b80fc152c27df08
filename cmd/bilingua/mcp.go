package main

import (
	"log"
	"os"

	"github.com/aretw0/bilingua/internal/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts Bilingua as an MCP server on Standard Input/Output.
Agents can read the pair at the pointer, move the pointer and save edits
through the get_pointer, set_pointer, get_pair and save_pair tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)

		srv := mcp.NewServer(rt.Service, rt.Logger)
		rt.Logger.Info("Starting Bilingua MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			rt.Logger.Error("MCP Server execution failed", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
