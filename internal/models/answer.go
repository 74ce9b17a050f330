// ABOUTME: Result types returned by the core entry points
// ABOUTME: StructuredAnswer is schema-validated before it leaves the pipeline
package models

import "errors"

// StructuredAnswer is the schema-constrained output of the generative
// step: an answer plus verbatim excerpts from the retrieved context.
type StructuredAnswer struct {
	Answer     string   `json:"answer" description:"The answer to the user question, based on the context."`
	References []string `json:"references" description:"List of relevant excerpts from the retrieved context, copy and pasted exactly as they appear."`
}

// Validate checks that a decoded answer carries both required fields.
// A generation missing either field fails closed.
func (a *StructuredAnswer) Validate() error {
	if a.Answer == "" {
		return errors.New("missing required field: answer")
	}
	if a.References == nil {
		return errors.New("missing required field: references")
	}
	return nil
}

// IngestResult aggregates one Ingest call.
type IngestResult struct {
	Message          string `json:"message"`
	DocumentsIndexed int    `json:"documents_indexed"`
	TotalChunks      int    `json:"total_chunks"`
}

// ClearResult reports the outcome of a ClearIndex call.
type ClearResult struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// SearchResult is one ranked hit from a vector index search.
// Not persisted; scoped to a single query.
type SearchResult struct {
	ID    string  `json:"id"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}
