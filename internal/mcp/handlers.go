// ABOUTME: MCP tool handler implementations for the document QA server
// ABOUTME: Thin adapters around the core entry points with JSON results
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"docqa/internal/core"
	"docqa/internal/index"
)

// Handlers holds the tool handler functions.
type Handlers struct {
	ingestor *core.Ingestor
	answerer *core.Answerer
	index    *index.Index
}

// IngestDocuments handles the ingest_documents tool.
func (h *Handlers) IngestDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawPaths, ok := request.GetArguments()["paths"].([]interface{})
	if !ok || len(rawPaths) == 0 {
		return mcp.NewToolResultError("paths argument is required and must be a non-empty array of strings"), nil
	}

	paths := make([]string, len(rawPaths))
	for i, raw := range rawPaths {
		path, ok := raw.(string)
		if !ok {
			return mcp.NewToolResultError("paths entries must be strings"), nil
		}
		paths[i] = path
	}

	result, err := h.ingestor.Ingest(ctx, paths)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ingestion failed: %v", err)), nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// AskQuestion handles the ask_question tool.
func (h *Handlers) AskQuestion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	requestID := uuid.New().String()[:8]
	log.Printf("[%s] answering question (%d chars)", requestID, len(question))

	answer, err := h.answerer.Answer(ctx, question, nil)
	if err != nil {
		log.Printf("[%s] answer failed: %v", requestID, err)
		return mcp.NewToolResultError(fmt.Sprintf("answer failed: %v", err)), nil
	}

	data, err := json.Marshal(answer)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding answer: %v", err)), nil
	}
	log.Printf("[%s] answered with %d reference(s)", requestID, len(answer.References))
	return mcp.NewToolResultText(string(data)), nil
}

// ClearIndex handles the clear_index tool.
func (h *Handlers) ClearIndex(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := core.ClearIndex(h.index)

	data, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	if result.Status != 200 {
		return mcp.NewToolResultError(result.Message), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
