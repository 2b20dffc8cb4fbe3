package config

import (
	"os"
	"sync"
)

type DehashedConfig struct {
	BaseURL  string
	Username string
	APIKey   string
}

var (
	dehashedConfig *DehashedConfig
	dehashedOnce   sync.Once
)

func LoadDehashedConfig() *DehashedConfig {
	dehashedOnce.Do(func() {
		baseURL := os.Getenv("DEHASHED_BASE_URL")
		if baseURL == "" {
			baseURL = "https://api.dehashed.com/v1/search"
		}
		dehashedConfig = &DehashedConfig{
			BaseURL:  baseURL,
			Username: os.Getenv("DEHASHED_USERNAME"),
			APIKey:   os.Getenv("DEHASHED_API_KEY"),
		}
	})
	return dehashedConfig
}
