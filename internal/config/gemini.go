package config

import (
	"os"
	"sync"
)

type GeminiConfig struct {
	APIKey         string
	Model          string
	EmbeddingModel string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			model = "gemini-2.5-flash"
		}
		embeddingModel := os.Getenv("GEMINI_EMBEDDING_MODEL")
		if embeddingModel == "" {
			embeddingModel = "gemini-embedding-001"
		}
		geminiConfig = &GeminiConfig{
			APIKey:         os.Getenv("GEMINI_API_KEY"),
			Model:          model,
			EmbeddingModel: embeddingModel,
		}
	})
	return geminiConfig
}
