// ABOUTME: CLI command to serve the pipeline as an MCP server over stdio
// ABOUTME: Exposes ingest_documents, ask_question, and clear_index tools
package commands

import (
	"log"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"docqa/internal/mcp"
)

// NewMCPCmd creates the mcp command.
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the document QA tools over MCP stdio",
		Long: `Starts an MCP server on stdio so MCP clients can ingest documents
and ask questions through the ingest_documents, ask_question, and
clear_index tools.`,
		RunE: runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	server := mcpserver.NewMCPServer("docqa", versionString())
	mcp.RegisterTools(server, p.ingestor, p.answerer, p.index)

	log.Println("docqa MCP server starting on stdio...")
	return mcpserver.ServeStdio(server)
}
