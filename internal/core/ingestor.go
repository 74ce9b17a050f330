// ABOUTME: Ingestion orchestrator: load, chunk, and upsert documents into the vector index
// ABOUTME: Processes files in input order; an unsupported file aborts the call at that point
package core

import (
	"context"
	"fmt"

	"docqa/internal/chunker"
	"docqa/internal/index"
	"docqa/internal/loader"
	"docqa/internal/models"
)

// Ingestor drives the write path: file → pages → chunks → index
// entries.
type Ingestor struct {
	loaders  *loader.Registry
	splitter *chunker.Splitter
	index    *index.Index

	// Progress, when set, is called after each file is committed.
	// Used by the CLI for its progress bar; nil elsewhere.
	Progress func(done, total int, path string)
}

// NewIngestor creates an Ingestor.
func NewIngestor(loaders *loader.Registry, splitter *chunker.Splitter, ix *index.Index) *Ingestor {
	return &Ingestor{loaders: loaders, splitter: splitter, index: ix}
}

// Ingest loads, chunks, and indexes each file in input order. An
// unsupported or unreadable file aborts the call where it is reached;
// index mutations already committed for earlier files stay in place.
func (ing *Ingestor) Ingest(ctx context.Context, paths []string) (*models.IngestResult, error) {
	result := &models.IngestResult{Message: "Documents processed successfully"}

	for i, path := range paths {
		pages, err := ing.loaders.Load(path)
		if err != nil {
			return nil, err
		}

		source := loader.SourceName(path)
		texts := ing.splitter.SplitPages(pages)

		// A shorter re-upload must not leave chunks of the previous,
		// longer version behind: upsert alone never removes them.
		if err := ing.index.DeleteSource(source); err != nil {
			return nil, err
		}

		entries := make([]index.Entry, len(texts))
		for j, text := range texts {
			entries[j] = index.Entry{
				ID:   fmt.Sprintf("%s_%d", source, j),
				Text: text,
				Metadata: map[string]string{
					index.MetadataSource: source,
					"chunk":              fmt.Sprintf("%d", j),
				},
			}
		}
		if err := ing.index.Upsert(ctx, entries); err != nil {
			return nil, err
		}

		result.DocumentsIndexed++
		result.TotalChunks += len(texts)
		if ing.Progress != nil {
			ing.Progress(i+1, len(paths), path)
		}
	}

	return result, nil
}
