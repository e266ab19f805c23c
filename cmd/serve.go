package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deskhand/deskhand/internal/logger"
	"github.com/deskhand/deskhand/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long:  "Expose the automation tools over the Model Context Protocol, on stdio by default or streamable HTTP with --transport streamable-http.",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8931, "Port for the streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	srv, err := server.New()
	if err != nil {
		return err
	}
	logger.Info("starting mcp server", "transport", transport)
	return srv.Serve(server.Config{Transport: transport, Port: port})
}
