// ABOUTME: Fixed-configuration wrapper around vector index search
// ABOUTME: Produces the context string handed to prompt assembly
package retriever

import (
	"context"
	"strings"

	"docqa/internal/config"
	"docqa/internal/index"
	"docqa/internal/models"
)

// Retriever runs index searches with the strategy and parameters fixed
// at construction.
type Retriever struct {
	index     *index.Index
	strategy  index.Strategy
	params    index.SearchParams
	threshold float64
}

// New builds a Retriever from the pipeline configuration.
func New(ix *index.Index, cfg *config.Config) *Retriever {
	strategy := index.StrategySimilarity
	if cfg.SearchType == config.SearchTypeMMR {
		strategy = index.StrategyMMR
	}
	return &Retriever{
		index:    ix,
		strategy: strategy,
		params: index.SearchParams{
			K:      cfg.TopK,
			FetchK: cfg.FetchK,
			Lambda: cfg.Lambda,
		},
		threshold: cfg.ScoreThreshold,
	}
}

// Passages returns the ranked passages for a question, dropping any
// below the minimum score threshold when one is configured.
func (r *Retriever) Passages(ctx context.Context, question string) ([]models.SearchResult, error) {
	results, err := r.index.Search(ctx, question, r.strategy, r.params)
	if err != nil {
		return nil, err
	}
	if r.threshold <= 0 {
		return results, nil
	}

	kept := results[:0]
	for _, res := range results {
		if res.Score >= r.threshold {
			kept = append(kept, res)
		}
	}
	return kept, nil
}

// Retrieve returns the retrieved passages joined with blank lines as a
// single context string. An empty index or no qualifying passage
// yields an empty context, not an error.
func (r *Retriever) Retrieve(ctx context.Context, question string) (string, error) {
	results, err := r.Passages(ctx, question)
	if err != nil {
		return "", err
	}

	texts := make([]string, len(results))
	for i, res := range results {
		texts[i] = res.Text
	}
	return strings.Join(texts, "\n\n"), nil
}
