// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recommend

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/movie-engine/pkg/types"
)

// BuildProfile aggregates the user's taste profile: the union of the
// feature sets of every distinct favorited movie. Each distinct movie id
// is fetched at most once, with at most concurrency requests in flight.
// A favorite whose detail fetch fails is skipped silently; an empty
// profile is a valid outcome meaning "no signal". The only error
// returned is context cancellation.
func BuildProfile(ctx context.Context, favorites []types.FavoriteRecord, fetcher DetailFetcher, concurrency int) (FeatureSet, error) {
	ids := distinctMovieIDs(favorites)

	details, err := fetchDetails(ctx, ids, fetcher, concurrency)
	if err != nil {
		return nil, err
	}

	profile := make(FeatureSet)
	for _, d := range details {
		if d == nil {
			continue
		}
		profile.Union(ExtractFeatures(d))
	}
	return profile, nil
}

// distinctMovieIDs returns the favorite movie ids in first-seen order.
func distinctMovieIDs(favorites []types.FavoriteRecord) []int {
	seen := make(map[int]struct{}, len(favorites))
	var ids []int
	for _, fav := range favorites {
		if _, ok := seen[fav.MovieID]; ok {
			continue
		}
		seen[fav.MovieID] = struct{}{}
		ids = append(ids, fav.MovieID)
	}
	return ids
}

// fetchDetails fetches every id with bounded concurrency. The result
// slice is indexed by the input order, one writer per slot, so callers
// see logical order regardless of completion order. Failed fetches
// leave a nil slot; cancellation aborts the whole batch.
func fetchDetails(ctx context.Context, ids []int, fetcher DetailFetcher, concurrency int) ([]*types.MovieDetail, error) {
	if concurrency <= 0 {
		concurrency = defaultFetchConcurrency
	}

	details := make([]*types.MovieDetail, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			d, err := fetcher.MovieDetail(gctx, id)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				// Item-level failure: skip, never fatal.
				return nil
			}
			details[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}
