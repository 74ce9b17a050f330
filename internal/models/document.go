// ABOUTME: Document-side data types for the ingestion pipeline
// ABOUTME: Pages come out of the loader, chunks out of the splitter
package models

// Page is one page of text extracted from a source document.
// Pages keep document order; they are input to the chunker, not
// retrieval units themselves.
type Page struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Chunk is a bounded slice of a source document's text, the unit of
// indexing and retrieval. ID is "{source}_{index}" and is the primary
// key of the vector index.
type Chunk struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Index  int    `json:"index"`
	Text   string `json:"text"`
}
