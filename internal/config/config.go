// ABOUTME: Centralized configuration for the document QA pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
)

// Search strategies understood by the vector index.
const (
	SearchTypeMMR        = "mmr"
	SearchTypeSimilarity = "similarity"
)

// Config holds all configuration for the pipeline. It is built once
// and passed to each component at construction; nothing reads ambient
// global state after Load.
type Config struct {
	// OpenAI settings
	OpenAIKey      string
	EmbeddingModel string
	ChatModel      string
	Temperature    float32
	MaxRetries     int
	RetryDelay     time.Duration
	Timeout        time.Duration

	// Chunking settings (characters)
	ChunkSize    int
	ChunkOverlap int

	// Retrieval settings
	SearchType     string
	TopK           int
	FetchK         int
	Lambda         float64
	ScoreThreshold float64

	// Index settings
	Collection string
	DataDir    string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		EmbeddingModel: getEnv("DOCQA_EMBEDDING_MODEL", "text-embedding-3-small"),
		ChatModel:      getEnv("DOCQA_CHAT_MODEL", "gpt-4o-mini"),
		Temperature:    float32(getEnvFloat("DOCQA_TEMPERATURE", 0.3)),
		MaxRetries:     getEnvInt("DOCQA_MAX_RETRIES", 3),
		RetryDelay:     getEnvDuration("DOCQA_RETRY_DELAY", 2*time.Second),
		Timeout:        getEnvDuration("DOCQA_TIMEOUT", 60*time.Second),
		ChunkSize:      getEnvInt("DOCQA_CHUNK_SIZE", 1024),
		ChunkOverlap:   getEnvInt("DOCQA_CHUNK_OVERLAP", 256),
		SearchType:     getEnv("DOCQA_SEARCH_TYPE", SearchTypeMMR),
		TopK:           getEnvInt("DOCQA_TOP_K", 5),
		FetchK:         getEnvInt("DOCQA_FETCH_K", 20),
		Lambda:         getEnvFloat("DOCQA_MMR_LAMBDA", 0.7),
		ScoreThreshold: getEnvFloat("DOCQA_SCORE_THRESHOLD", 0),
		Collection:     getEnv("DOCQA_COLLECTION", "knowledge_base"),
		DataDir:        getEnv("DOCQA_DATA_DIR", defaultDataDir()),
	}

	return cfg, cfg.Validate()
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("DOCQA_CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("DOCQA_CHUNK_OVERLAP must be in [0, chunk size), got %d", c.ChunkOverlap)
	}
	if c.SearchType != SearchTypeMMR && c.SearchType != SearchTypeSimilarity {
		return fmt.Errorf("DOCQA_SEARCH_TYPE must be %q or %q, got %q", SearchTypeMMR, SearchTypeSimilarity, c.SearchType)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("DOCQA_TOP_K must be positive, got %d", c.TopK)
	}
	if c.FetchK < c.TopK {
		return fmt.Errorf("DOCQA_FETCH_K must be >= DOCQA_TOP_K, got %d < %d", c.FetchK, c.TopK)
	}
	if c.Lambda < 0 || c.Lambda > 1 {
		return fmt.Errorf("DOCQA_MMR_LAMBDA must be 0-1, got %f", c.Lambda)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("DOCQA_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.Collection == "" {
		return fmt.Errorf("DOCQA_COLLECTION must not be empty")
	}
	return nil
}

// IndexPath returns the on-disk location of the vector index file.
func (c *Config) IndexPath() string {
	return filepath.Join(c.DataDir, "vector_db.bolt")
}

// defaultDataDir follows XDG, with the env override honored directly
// so tests can redirect storage.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}
	return filepath.Join(dataHome, "docqa")
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
