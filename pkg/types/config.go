// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "movie-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// TMDBConfig holds settings for the TMDB catalog client.
type TMDBConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey authenticates requests against the TMDB v3 API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Language is the optional ISO 639-1 language code for localized
	// titles and overviews.
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// MaxRetries is the number of retry attempts on rate-limited
	// responses (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// RecommendConfig holds settings for the recommendation engine.
type RecommendConfig struct {
	// Limit is the maximum number of recommendations returned (default 10).
	Limit int `json:"limit" yaml:"limit"`

	// FetchConcurrency caps the number of in-flight per-movie detail
	// requests while building the profile or ranking candidates
	// (default 4).
	FetchConcurrency int `json:"fetch_concurrency" yaml:"fetch_concurrency"`

	// PoolPage is the page of the popular listing used as the
	// candidate pool (default 1).
	PoolPage int `json:"pool_page" yaml:"pool_page"`
}

// LibraryConfig holds settings for the local user library store.
type LibraryConfig struct {
	// LibraryDir is the base directory for the library database and
	// exports (default "library").
	LibraryDir string `json:"library_dir" yaml:"library_dir"`
}

// AppConfig groups all stage configurations.
type AppConfig struct {
	TMDB      TMDBConfig      `json:"tmdb" yaml:"tmdb"`
	Recommend RecommendConfig `json:"recommend" yaml:"recommend"`
	Library   LibraryConfig   `json:"library" yaml:"library"`
}
