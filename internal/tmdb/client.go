// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tmdb is the client for The Movie Database (TMDB) v3 API, the
// external movie catalog behind search, listings, and per-movie detail.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pdiddy/movie-engine/internal/httputil"
	"github.com/pdiddy/movie-engine/pkg/types"
)

// apiBase is the TMDB v3 API root. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://api.themoviedb.org/3"

// ErrNotFound is returned when TMDB has no record for the requested id.
var ErrNotFound = errors.New("movie not found")

const defaultTimeout = 30 * time.Second

// Client calls the TMDB v3 API. The zero value is not usable; construct
// with New.
type Client struct {
	httpClient *http.Client
	apiKey     string
	userAgent  string
	language   string
	maxRetries int
}

// New returns a Client configured from cfg. The HTTP timeout defaults
// to 30 s when unset.
func New(cfg types.TMDBConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		language:   cfg.Language,
		maxRetries: cfg.MaxRetries,
	}
}

// MovieDetail fetches the full record for a single movie, with keyword
// tags appended so the recommendation engine can derive features.
// Returns ErrNotFound for unknown ids.
func (c *Client) MovieDetail(ctx context.Context, movieID int) (*types.MovieDetail, error) {
	params := url.Values{"append_to_response": {"keywords"}}
	var detail types.MovieDetail
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), params, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Popular fetches one page of the popular-movie listing, the general
// candidate pool for recommendations.
func (c *Client) Popular(ctx context.Context, page int) ([]types.MovieSummary, error) {
	if page <= 0 {
		page = 1
	}
	params := url.Values{"page": {fmt.Sprintf("%d", page)}}
	var resp listResponse
	if err := c.get(ctx, "/movie/popular", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Trending fetches this week's trending movies.
func (c *Client) Trending(ctx context.Context) ([]types.MovieSummary, error) {
	var resp listResponse
	if err := c.get(ctx, "/trending/movie/week", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// SearchPage is one page of movie search results.
type SearchPage struct {
	Page         int                  `json:"page"`
	TotalPages   int                  `json:"total_pages"`
	TotalResults int                  `json:"total_results"`
	Results      []types.MovieSummary `json:"results"`
}

// SearchMovies queries the catalog by title.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (SearchPage, error) {
	if query == "" {
		return SearchPage{}, fmt.Errorf("search query is empty")
	}
	if page <= 0 {
		page = 1
	}
	params := url.Values{
		"query": {query},
		"page":  {fmt.Sprintf("%d", page)},
	}
	var sp SearchPage
	if err := c.get(ctx, "/search/movie", params, &sp); err != nil {
		return SearchPage{}, err
	}
	return sp, nil
}

// Genres fetches the full movie genre list.
func (c *Client) Genres(ctx context.Context) ([]types.Genre, error) {
	var resp genreResponse
	if err := c.get(ctx, "/genre/movie/list", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Genres, nil
}

// get performs an authenticated GET against path and decodes the JSON
// body into out. Rate-limited responses are retried via httputil.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.apiKey == "" {
		return fmt.Errorf("TMDB API key not configured")
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}

	reqURL := apiBase + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.maxRetries)
	if err != nil {
		return fmt.Errorf("TMDB API request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("TMDB API returned HTTP %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing TMDB response: %w", err)
	}
	return nil
}

// TMDB listing JSON structures.
type listResponse struct {
	Page    int                  `json:"page"`
	Results []types.MovieSummary `json:"results"`
}

type genreResponse struct {
	Genres []types.Genre `json:"genres"`
}
