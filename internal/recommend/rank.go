// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recommend

import (
	"context"
	"sort"

	"github.com/pdiddy/movie-engine/pkg/types"
)

// scoredCandidate pairs a candidate's full record with its similarity
// to the user profile.
type scoredCandidate struct {
	detail     *types.MovieDetail
	similarity float64
}

// Rank scores every candidate against the profile and returns the best
// matches, at most limit, ordered by similarity descending. Candidates
// already in favoriteIDs are never recommended. Candidates whose detail
// fetch fails are skipped. Zero-similarity candidates are discarded
// rather than de-prioritized. Ties keep the candidates' relative order
// in the input pool, independent of fetch completion order. Emitted
// movie ids are deduplicated.
func Rank(ctx context.Context, profile FeatureSet, candidates []types.MovieSummary, favoriteIDs map[int]struct{}, fetcher DetailFetcher, limit, concurrency int) ([]types.MovieDetail, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	// Already-favorited candidates are dropped before fetching so they
	// cost no catalog round trip.
	eligible := make([]types.MovieSummary, 0, len(candidates))
	for _, cand := range candidates {
		if _, ok := favoriteIDs[cand.ID]; ok {
			continue
		}
		eligible = append(eligible, cand)
	}

	ids := make([]int, len(eligible))
	for i, cand := range eligible {
		ids[i] = cand.ID
	}

	details, err := fetchDetails(ctx, ids, fetcher, concurrency)
	if err != nil {
		return nil, err
	}

	// Accumulate in input order: details is slot-aligned with eligible.
	var scored []scoredCandidate
	for _, d := range details {
		if d == nil {
			continue
		}
		similarity := Jaccard(profile, ExtractFeatures(d))
		if similarity > 0 {
			scored = append(scored, scoredCandidate{detail: d, similarity: similarity})
		}
	}

	// Stable sort keeps pool order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].similarity > scored[j].similarity
	})

	var ranked []types.MovieDetail
	emitted := make(map[int]struct{})
	for _, sc := range scored {
		if len(ranked) >= limit {
			break
		}
		if _, ok := emitted[sc.detail.ID]; ok {
			continue
		}
		emitted[sc.detail.ID] = struct{}{}
		ranked = append(ranked, *sc.detail)
	}
	return ranked, nil
}
