// ABOUTME: Shared pipeline construction for CLI commands
// ABOUTME: Builds config, provider client, index, and the core entry points
package commands

import (
	"fmt"

	"github.com/joho/godotenv"

	"docqa/internal/chunker"
	"docqa/internal/config"
	"docqa/internal/core"
	"docqa/internal/index"
	"docqa/internal/llm"
	"docqa/internal/loader"
	"docqa/internal/retriever"
)

// pipeline bundles everything a command needs.
type pipeline struct {
	cfg      *config.Config
	index    *index.Index
	ingestor *core.Ingestor
	answerer *core.Answerer
}

// newPipeline loads configuration and wires the components together.
// Every component gets its dependencies at construction; nothing
// reads global state afterwards.
func newPipeline() (*pipeline, error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	ix, err := index.Open(cfg.IndexPath(), cfg.Collection, client)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	ingestor := core.NewIngestor(
		loader.NewRegistry(),
		chunker.NewSplitter(cfg.ChunkSize, cfg.ChunkOverlap),
		ix,
	)
	answerer := core.NewAnswerer(retriever.New(ix, cfg), client)

	return &pipeline{
		cfg:      cfg,
		index:    ix,
		ingestor: ingestor,
		answerer: answerer,
	}, nil
}

func (p *pipeline) Close() error {
	return p.index.Close()
}
