// ABOUTME: Tests for the ingestion orchestrator
// ABOUTME: Covers aggregation, abort-on-unsupported, re-ingestion stability, and stale chunk removal
package core

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"docqa/internal/chunker"
	"docqa/internal/index"
	"docqa/internal/loader"
	"docqa/internal/models"
)

// memLoader serves canned pages per path, standing in for PDF parsing.
type memLoader struct {
	files map[string][]models.Page
}

func (m *memLoader) Load(path string) ([]models.Page, error) {
	pages, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return pages, nil
}

type countingEmbedder struct{}

func (countingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{1, 0}, nil
}

func (countingEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0}
	}
	return out, nil
}

func alphabetText(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('a' + i%26))
	}
	return b.String()
}

func newTestIngestor(t *testing.T, files map[string][]models.Page) (*Ingestor, *index.Index, *chunker.Splitter) {
	t.Helper()

	ix, err := index.Open(filepath.Join(t.TempDir(), "db.bolt"), "knowledge_base", countingEmbedder{})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = ix.Close() })

	registry := loader.NewRegistry()
	registry.Register(".pdf", &memLoader{files: files})

	splitter := chunker.NewSplitter(1024, 256)
	return NewIngestor(registry, splitter, ix), ix, splitter
}

func TestIngest_AggregatesCounts(t *testing.T) {
	files := map[string][]models.Page{
		"manual.pdf": {{Number: 1, Text: alphabetText(3000)}},
		"report.pdf": {{Number: 1, Text: "A short report."}},
	}
	ing, _, splitter := newTestIngestor(t, files)

	result, err := ing.Ingest(context.Background(), []string{"manual.pdf", "report.pdf"})
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	if result.DocumentsIndexed != 2 {
		t.Errorf("DocumentsIndexed = %d, want 2", result.DocumentsIndexed)
	}

	want := len(splitter.SplitPages(files["manual.pdf"])) + len(splitter.SplitPages(files["report.pdf"]))
	if result.TotalChunks != want {
		t.Errorf("TotalChunks = %d, want %d (independent chunker run)", result.TotalChunks, want)
	}
	if result.Message != "Documents processed successfully" {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestIngest_SingleLongPage(t *testing.T) {
	files := map[string][]models.Page{
		"manual.pdf": {{Number: 1, Text: alphabetText(3000)}},
	}
	ing, ix, splitter := newTestIngestor(t, files)

	result, err := ing.Ingest(context.Background(), []string{"manual.pdf"})
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	if result.DocumentsIndexed != 1 {
		t.Errorf("DocumentsIndexed = %d, want 1", result.DocumentsIndexed)
	}
	want := len(splitter.SplitPages(files["manual.pdf"]))
	if result.TotalChunks != want || result.TotalChunks <= 1 {
		t.Errorf("TotalChunks = %d, want %d (> 1)", result.TotalChunks, want)
	}

	n, _ := ix.Count()
	if n != result.TotalChunks {
		t.Errorf("index holds %d entries, want %d", n, result.TotalChunks)
	}
}

func TestIngest_UnsupportedFirstFileLeavesIndexUnchanged(t *testing.T) {
	ing, ix, _ := newTestIngestor(t, map[string][]models.Page{
		"manual.pdf": {{Number: 1, Text: "some text"}},
	})

	result, err := ing.Ingest(context.Background(), []string{"report.txt", "manual.pdf"})
	if result != nil {
		t.Errorf("expected nil result, got %+v", result)
	}

	var ufe *loader.UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if !strings.Contains(err.Error(), "report.txt") {
		t.Errorf("error %q should name report.txt", err.Error())
	}

	n, _ := ix.Count()
	if n != 0 {
		t.Errorf("index holds %d entries, want 0", n)
	}
}

func TestIngest_UnsupportedLaterFileKeepsEarlierCommits(t *testing.T) {
	files := map[string][]models.Page{
		"manual.pdf": {{Number: 1, Text: "committed content"}},
	}
	ing, ix, _ := newTestIngestor(t, files)

	_, err := ing.Ingest(context.Background(), []string{"manual.pdf", "notes.docx"})
	var ufe *loader.UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}

	// No cross-file rollback: the first file's chunks stay committed.
	n, _ := ix.Count()
	if n != 1 {
		t.Errorf("index holds %d entries, want 1", n)
	}
}

func TestIngest_ReingestionIsStable(t *testing.T) {
	files := map[string][]models.Page{
		"manual.pdf": {{Number: 1, Text: alphabetText(3000)}},
	}
	ing, ix, _ := newTestIngestor(t, files)
	ctx := context.Background()

	first, err := ing.Ingest(ctx, []string{"manual.pdf"})
	if err != nil {
		t.Fatalf("first Ingest() error = %v", err)
	}
	second, err := ing.Ingest(ctx, []string{"manual.pdf"})
	if err != nil {
		t.Fatalf("second Ingest() error = %v", err)
	}

	if first.TotalChunks != second.TotalChunks {
		t.Errorf("chunk counts differ: %d vs %d", first.TotalChunks, second.TotalChunks)
	}

	// Upsert overwrites; nothing is duplicated.
	n, _ := ix.Count()
	if n != first.TotalChunks {
		t.Errorf("index holds %d entries after re-ingestion, want %d", n, first.TotalChunks)
	}
}

func TestIngest_ShrinkingDocumentDropsStaleChunks(t *testing.T) {
	long := map[string][]models.Page{
		"manual.pdf": {{Number: 1, Text: alphabetText(3000)}},
	}
	ing, ix, _ := newTestIngestor(t, long)
	ctx := context.Background()

	if _, err := ing.Ingest(ctx, []string{"manual.pdf"}); err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	// Replace with a one-chunk version of the same source.
	long["manual.pdf"] = []models.Page{{Number: 1, Text: "a much shorter revision"}}
	result, err := ing.Ingest(ctx, []string{"manual.pdf"})
	if err != nil {
		t.Fatalf("Ingest() of revision error = %v", err)
	}
	if result.TotalChunks != 1 {
		t.Fatalf("TotalChunks = %d, want 1", result.TotalChunks)
	}

	n, _ := ix.Count()
	if n != 1 {
		t.Errorf("index holds %d entries, want 1 (stale manual_* removed)", n)
	}
}

func TestIngest_ProgressCallback(t *testing.T) {
	files := map[string][]models.Page{
		"a.pdf": {{Number: 1, Text: "a"}},
		"b.pdf": {{Number: 1, Text: "b"}},
	}
	ing, _, _ := newTestIngestor(t, files)

	var seen []string
	ing.Progress = func(done, total int, path string) {
		seen = append(seen, fmt.Sprintf("%d/%d %s", done, total, path))
	}

	if _, err := ing.Ingest(context.Background(), []string{"a.pdf", "b.pdf"}); err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	want := []string{"1/2 a.pdf", "2/2 b.pdf"}
	if len(seen) != len(want) || seen[0] != want[0] || seen[1] != want[1] {
		t.Errorf("progress calls = %v, want %v", seen, want)
	}
}
