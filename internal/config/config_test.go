// ABOUTME: Tests for configuration loading and validation
// ABOUTME: Covers defaults, env overrides, and rejected values
package config

import (
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"OPENAI_API_KEY", "DOCQA_EMBEDDING_MODEL", "DOCQA_CHAT_MODEL",
		"DOCQA_TEMPERATURE", "DOCQA_MAX_RETRIES", "DOCQA_RETRY_DELAY",
		"DOCQA_TIMEOUT", "DOCQA_CHUNK_SIZE", "DOCQA_CHUNK_OVERLAP",
		"DOCQA_SEARCH_TYPE", "DOCQA_TOP_K", "DOCQA_FETCH_K",
		"DOCQA_MMR_LAMBDA", "DOCQA_SCORE_THRESHOLD", "DOCQA_COLLECTION",
		"DOCQA_DATA_DIR",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %q, want text-embedding-3-small", cfg.EmbeddingModel)
	}
	if cfg.ChunkSize != 1024 || cfg.ChunkOverlap != 256 {
		t.Errorf("chunking defaults = %d/%d, want 1024/256", cfg.ChunkSize, cfg.ChunkOverlap)
	}
	if cfg.SearchType != SearchTypeMMR {
		t.Errorf("SearchType = %q, want mmr", cfg.SearchType)
	}
	if cfg.TopK != 5 || cfg.FetchK != 20 {
		t.Errorf("retrieval defaults = k=%d fetchK=%d, want 5/20", cfg.TopK, cfg.FetchK)
	}
	if cfg.Lambda != 0.7 {
		t.Errorf("Lambda = %f, want 0.7", cfg.Lambda)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.Collection != "knowledge_base" {
		t.Errorf("Collection = %q, want knowledge_base", cfg.Collection)
	}
	if cfg.RetryDelay != 2*time.Second {
		t.Errorf("RetryDelay = %v, want 2s", cfg.RetryDelay)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOCQA_CHUNK_SIZE", "512")
	t.Setenv("DOCQA_CHUNK_OVERLAP", "64")
	t.Setenv("DOCQA_SEARCH_TYPE", "similarity")
	t.Setenv("DOCQA_MMR_LAMBDA", "0.4")
	t.Setenv("DOCQA_DATA_DIR", "/tmp/docqa-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ChunkSize != 512 || cfg.ChunkOverlap != 64 {
		t.Errorf("chunking = %d/%d, want 512/64", cfg.ChunkSize, cfg.ChunkOverlap)
	}
	if cfg.SearchType != SearchTypeSimilarity {
		t.Errorf("SearchType = %q, want similarity", cfg.SearchType)
	}
	if cfg.Lambda != 0.4 {
		t.Errorf("Lambda = %f, want 0.4", cfg.Lambda)
	}
	if !strings.HasPrefix(cfg.IndexPath(), "/tmp/docqa-test") {
		t.Errorf("IndexPath = %q, want under /tmp/docqa-test", cfg.IndexPath())
	}
}

func TestValidate_Rejects(t *testing.T) {
	base := func() *Config {
		clearEnv(t)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }},
		{"overlap >= chunk size", func(c *Config) { c.ChunkOverlap = c.ChunkSize }},
		{"negative overlap", func(c *Config) { c.ChunkOverlap = -1 }},
		{"unknown search type", func(c *Config) { c.SearchType = "hybrid" }},
		{"zero k", func(c *Config) { c.TopK = 0 }},
		{"fetchK below k", func(c *Config) { c.FetchK = c.TopK - 1 }},
		{"lambda above 1", func(c *Config) { c.Lambda = 1.5 }},
		{"lambda below 0", func(c *Config) { c.Lambda = -0.1 }},
		{"excessive retries", func(c *Config) { c.MaxRetries = 11 }},
		{"empty collection", func(c *Config) { c.Collection = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
