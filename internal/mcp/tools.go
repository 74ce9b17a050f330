// ABOUTME: MCP tool definitions and registration for the document QA server
// ABOUTME: Exposes ingest, ask, and clear over stdio for MCP clients
package mcp

import (
	"docqa/internal/core"
	"docqa/internal/index"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers the pipeline's entry points as MCP tools.
func RegisterTools(server *mcpserver.MCPServer, ingestor *core.Ingestor, answerer *core.Answerer, ix *index.Index) *Handlers {
	handlers := &Handlers{
		ingestor: ingestor,
		answerer: answerer,
		index:    ix,
	}

	server.AddTool(mcp.Tool{
		Name:        "ingest_documents",
		Description: "Load, chunk, embed, and index PDF files so their content can answer questions.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"paths": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Local file paths to ingest, processed in order",
				},
			},
			Required: []string{"paths"},
		},
	}, handlers.IngestDocuments)

	server.AddTool(mcp.Tool{
		Name:        "ask_question",
		Description: "Answer a question from the indexed documents. Returns an answer plus verbatim reference excerpts.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "The question to answer",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskQuestion)

	server.AddTool(mcp.Tool{
		Name:        "clear_index",
		Description: "Remove all indexed documents from the knowledge base.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ClearIndex)

	return handlers
}
