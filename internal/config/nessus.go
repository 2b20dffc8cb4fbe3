package config

import (
	"os"
	"sync"
)

type NessusConfig struct {
	URL       string
	AccessKey string
	SecretKey string
}

var (
	nessusConfig *NessusConfig
	nessusOnce   sync.Once
)

func LoadNessusConfig() *NessusConfig {
	nessusOnce.Do(func() {
		nessusConfig = &NessusConfig{
			URL:       os.Getenv("NESSUS_URL"),
			AccessKey: os.Getenv("NESSUS_ACCESS_KEY"),
			SecretKey: os.Getenv("NESSUS_SECRET_KEY"),
		}
	})
	return nessusConfig
}
