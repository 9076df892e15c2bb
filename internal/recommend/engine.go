// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recommend

import (
	"context"
	"fmt"

	"github.com/pdiddy/movie-engine/pkg/types"
)

// User-facing result messages. The personalized message is static even
// when filtering leaves the list empty; only the no-favorites branch
// uses the fallback message.
const (
	MessageFallback     = "Favorite some movies to get personalized recommendations!"
	MessagePersonalized = "Here are your personalized recommendations!"
)

const (
	defaultLimit            = 10
	defaultFetchConcurrency = 4
	defaultPoolPage         = 1
)

// DetailFetcher fetches the full record for a single movie id. It is
// the sole per-item catalog dependency of the engine; implementations
// return an error for not-found or transient failure, which the engine
// treats as "skip this item".
type DetailFetcher interface {
	MovieDetail(ctx context.Context, movieID int) (*types.MovieDetail, error)
}

// FavoriteLister lists a user's favorited movies.
type FavoriteLister interface {
	ListFavorites(ctx context.Context, userID string) ([]types.FavoriteRecord, error)
}

// PoolProvider supplies the candidate pool of movies eligible for
// recommendation.
type PoolProvider interface {
	Popular(ctx context.Context, page int) ([]types.MovieSummary, error)
}

// TrendingProvider supplies the currently-trending list used when the
// user has no favorites.
type TrendingProvider interface {
	Trending(ctx context.Context) ([]types.MovieSummary, error)
}

// UpstreamError reports a fatal failure of a listing fetch (candidate
// pool or trending). Per-movie detail failures are recovered locally
// and never produce an UpstreamError.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("fetching %s listing: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Engine produces content-based recommendations for a user. All
// collaborators are injected; the engine holds no durable state and
// recomputes from scratch on every call.
type Engine struct {
	favorites FavoriteLister
	details   DetailFetcher
	pool      PoolProvider
	trending  TrendingProvider
	cfg       types.RecommendConfig
}

// NewEngine wires an Engine from its collaborators. Zero config fields
// fall back to defaults: limit 10, fetch concurrency 4, pool page 1.
func NewEngine(favorites FavoriteLister, details DetailFetcher, pool PoolProvider, trending TrendingProvider, cfg types.RecommendConfig) *Engine {
	if cfg.Limit <= 0 {
		cfg.Limit = defaultLimit
	}
	if cfg.FetchConcurrency <= 0 {
		cfg.FetchConcurrency = defaultFetchConcurrency
	}
	if cfg.PoolPage <= 0 {
		cfg.PoolPage = defaultPoolPage
	}
	return &Engine{
		favorites: favorites,
		details:   details,
		pool:      pool,
		trending:  trending,
		cfg:       cfg,
	}
}

// Recommend returns ranked recommendations for userID. With no
// favorites it falls back to the trending list, unfiltered. With
// favorites it builds the taste profile, scores the popular pool
// against it, and returns the top matches; an empty ranked list is a
// valid success. Listing failures surface as *UpstreamError.
func (e *Engine) Recommend(ctx context.Context, userID string) (types.RecommendationResult, error) {
	favorites, err := e.favorites.ListFavorites(ctx, userID)
	if err != nil {
		return types.RecommendationResult{}, fmt.Errorf("listing favorites: %w", err)
	}

	if len(favorites) == 0 {
		return e.trendingFallback(ctx)
	}

	profile, err := BuildProfile(ctx, favorites, e.details, e.cfg.FetchConcurrency)
	if err != nil {
		return types.RecommendationResult{}, err
	}

	pool, err := e.pool.Popular(ctx, e.cfg.PoolPage)
	if err != nil {
		return types.RecommendationResult{}, &UpstreamError{Op: "popular", Err: err}
	}

	favoriteIDs := make(map[int]struct{}, len(favorites))
	for _, fav := range favorites {
		favoriteIDs[fav.MovieID] = struct{}{}
	}

	ranked, err := Rank(ctx, profile, pool, favoriteIDs, e.details, e.cfg.Limit, e.cfg.FetchConcurrency)
	if err != nil {
		return types.RecommendationResult{}, err
	}

	return types.RecommendationResult{
		Message:         MessagePersonalized,
		Recommendations: ranked,
	}, nil
}

// trendingFallback serves the no-favorites branch: the first limit
// trending movies with no similarity filtering.
func (e *Engine) trendingFallback(ctx context.Context) (types.RecommendationResult, error) {
	trending, err := e.trending.Trending(ctx)
	if err != nil {
		return types.RecommendationResult{}, &UpstreamError{Op: "trending", Err: err}
	}

	if len(trending) > e.cfg.Limit {
		trending = trending[:e.cfg.Limit]
	}

	recs := make([]types.MovieDetail, len(trending))
	for i, s := range trending {
		recs[i] = detailFromSummary(s)
	}

	return types.RecommendationResult{
		Message:         MessageFallback,
		Recommendations: recs,
	}, nil
}

// detailFromSummary lifts a listing entry into the result record type.
// Listing entries carry no genre or keyword tags.
func detailFromSummary(s types.MovieSummary) types.MovieDetail {
	return types.MovieDetail{
		ID:          s.ID,
		Title:       s.Title,
		PosterPath:  s.PosterPath,
		ReleaseDate: s.ReleaseDate,
		Overview:    s.Overview,
		VoteAverage: s.VoteAverage,
		Popularity:  s.Popularity,
	}
}
