// ABOUTME: Persistent vector index over bbolt with upsert, similarity search, and clear
// ABOUTME: One bucket per collection; embeddings are computed internally via the Embedder
package index

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"go.etcd.io/bbolt"

	"docqa/internal/models"
)

// Embedder maps text to fixed-dimension vectors. The index owns no
// retry policy; the provider client behind this interface does.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Strategy selects how Search ranks results.
type Strategy string

const (
	// StrategySimilarity returns the k entries nearest to the query.
	StrategySimilarity Strategy = "similarity"
	// StrategyMMR diversity-ranks a fetchK candidate pool down to k.
	StrategyMMR Strategy = "mmr"
)

// SearchParams tunes one search call.
type SearchParams struct {
	K      int
	FetchK int
	Lambda float64
}

// Entry is one unit to upsert: identifier, text, and metadata. The
// vector is computed by the index.
type Entry struct {
	ID       string
	Text     string
	Metadata map[string]string
}

// record is the persisted form of an entry.
type record struct {
	Vector   []float32         `json:"vector"`
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// MetadataSource is the metadata key holding the owning source name.
const MetadataSource = "source"

// Index is a persistent vector store keyed by entry identifier.
// Reopening the same path and collection restores the same state.
type Index struct {
	db       *bbolt.DB
	bucket   []byte
	embedder Embedder
}

// Open opens (or creates) the index file at path and ensures the
// collection bucket exists.
func Open(path, collection string, embedder Embedder) (*Index, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening index %s: %w", path, err)
	}

	bucket := []byte(collection)
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating collection %s: %w", collection, err)
	}

	return &Index{db: db, bucket: bucket, embedder: embedder}, nil
}

// Close closes the underlying database.
func (ix *Index) Close() error {
	return ix.db.Close()
}

// Upsert inserts or replaces entries by identifier. Embeddings are
// computed first; the batch is written in a single transaction, so a
// failed call leaves the collection untouched.
func (ix *Index) Upsert(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
	}

	vectors, err := ix.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return &WriteError{Err: err}
	}

	err = ix.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(ix.bucket)
		for i, e := range entries {
			data, err := json.Marshal(record{
				Vector:   vectors[i],
				Text:     e.Text,
				Metadata: e.Metadata,
			})
			if err != nil {
				return err
			}
			if err := b.Put([]byte(e.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// Search embeds the query and returns up to params.K ranked results.
// An empty collection yields an empty result, not an error.
func (ix *Index) Search(ctx context.Context, query string, strategy Strategy, params SearchParams) ([]models.SearchResult, error) {
	queryVec, err := ix.embedder.Embed(ctx, query)
	if err != nil {
		return nil, &ReadError{Err: err}
	}

	type candidate struct {
		id     string
		text   string
		vector []float32
		score  float64
	}

	var candidates []candidate
	err = ix.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(ix.bucket).ForEach(func(k, v []byte) error {
			var rec record
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("corrupt entry %s: %w", k, err)
			}
			candidates = append(candidates, candidate{
				id:     string(k),
				text:   rec.Text,
				vector: rec.Vector,
				score:  cosineSimilarity(queryVec, rec.Vector),
			})
			return nil
		})
	})
	if err != nil {
		return nil, &ReadError{Err: err}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	switch strategy {
	case StrategyMMR:
		pool := candidates
		if params.FetchK > 0 && len(pool) > params.FetchK {
			pool = pool[:params.FetchK]
		}
		vectors := make([][]float32, len(pool))
		scores := make([]float64, len(pool))
		for i, c := range pool {
			vectors[i] = c.vector
			scores[i] = c.score
		}
		picked := mmrSelect(vectors, scores, params.K, params.Lambda)
		results := make([]models.SearchResult, 0, len(picked))
		for _, i := range picked {
			results = append(results, models.SearchResult{ID: pool[i].id, Text: pool[i].text, Score: pool[i].score})
		}
		return results, nil

	default:
		if params.K > 0 && len(candidates) > params.K {
			candidates = candidates[:params.K]
		}
		results := make([]models.SearchResult, 0, len(candidates))
		for _, c := range candidates {
			results = append(results, models.SearchResult{ID: c.id, Text: c.text, Score: c.score})
		}
		return results, nil
	}
}

// DeleteSource removes every entry owned by the given source. Needed
// on re-ingestion: a shorter document must not leave stale chunks
// from its previous version behind.
func (ix *Index) DeleteSource(source string) error {
	err := ix.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(ix.bucket)

		var stale [][]byte
		err := b.ForEach(func(k, v []byte) error {
			var rec record
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("corrupt entry %s: %w", k, err)
			}
			if rec.Metadata[MetadataSource] == source {
				key := make([]byte, len(k))
				copy(key, k)
				stale = append(stale, key)
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, key := range stale {
			if err := b.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// Clear removes all entries from the collection. Idempotent.
func (ix *Index) Clear() error {
	err := ix.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(ix.bucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(ix.bucket)
		return err
	})
	if err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// Count returns the number of stored entries.
func (ix *Index) Count() (int, error) {
	var n int
	err := ix.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(ix.bucket).Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, &ReadError{Err: err}
	}
	return n, nil
}

// cosineSimilarity compares two vectors; zero when either has no
// magnitude or the dimensions differ.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
