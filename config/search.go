package config

import (
	"os"
	"time"
)

// SearchConfig holds the connection settings for the search/indexing
// service. A single base URL, supplied at process start; the service itself
// is an opaque HTTP API.
type SearchConfig struct {
	BaseURL string
	Timeout time.Duration
}

func GetSearchConfig() *SearchConfig {
	baseURL := os.Getenv("SEARCH_SERVICE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000/api"
	}

	return &SearchConfig{
		BaseURL: baseURL,
		Timeout: 30 * time.Second,
	}
}
