// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recommend

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/pdiddy/movie-engine/pkg/types"
)

// fakeFetcher serves canned movie details and counts fetches per id.
// Safe for concurrent use.
type fakeFetcher struct {
	mu      sync.Mutex
	details map[int]*types.MovieDetail
	calls   map[int]int
}

func newFakeFetcher(details ...*types.MovieDetail) *fakeFetcher {
	f := &fakeFetcher{
		details: make(map[int]*types.MovieDetail),
		calls:   make(map[int]int),
	}
	for _, d := range details {
		f.details[d.ID] = d
	}
	return f
}

func (f *fakeFetcher) MovieDetail(ctx context.Context, movieID int) (*types.MovieDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[movieID]++
	d, ok := f.details[movieID]
	if !ok {
		return nil, errors.New("movie not found")
	}
	return d, nil
}

func (f *fakeFetcher) callCount(movieID int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[movieID]
}

func (f *fakeFetcher) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func favorite(movieID int) types.FavoriteRecord {
	return types.FavoriteRecord{UserID: "u1", MovieID: movieID}
}

func TestBuildProfileUnionsFavorites(t *testing.T) {
	fetcher := newFakeFetcher(
		detailWithTags(1, []string{"Action", "Thriller"}, []string{"heist"}),
		detailWithTags(2, []string{"Action", "Comedy"}, nil),
	)

	profile, err := BuildProfile(context.Background(), []types.FavoriteRecord{favorite(1), favorite(2)}, fetcher, 2)
	if err != nil {
		t.Fatalf("BuildProfile() error = %v", err)
	}

	want := set("action", "thriller", "heist", "comedy")
	if len(profile) != len(want) {
		t.Fatalf("profile = %v, want %v", profile, want)
	}
	for f := range want {
		if _, ok := profile[f]; !ok {
			t.Errorf("profile missing feature %q", f)
		}
	}
}

func TestBuildProfileDeduplicatesFavoriteIDs(t *testing.T) {
	fetcher := newFakeFetcher(detailWithTags(1, []string{"Action"}, nil))

	favorites := []types.FavoriteRecord{favorite(1), favorite(1), favorite(1)}
	_, err := BuildProfile(context.Background(), favorites, fetcher, 2)
	if err != nil {
		t.Fatalf("BuildProfile() error = %v", err)
	}

	if got := fetcher.callCount(1); got != 1 {
		t.Errorf("movie 1 fetched %d times, want 1", got)
	}
}

func TestBuildProfileEmptyFavorites(t *testing.T) {
	fetcher := newFakeFetcher()

	profile, err := BuildProfile(context.Background(), nil, fetcher, 2)
	if err != nil {
		t.Fatalf("BuildProfile() error = %v", err)
	}
	if len(profile) != 0 {
		t.Errorf("profile = %v, want empty", profile)
	}
}

func TestBuildProfileSkipsFailedFetches(t *testing.T) {
	// Movie 2 is unknown to the fetcher; its failure must not abort
	// the build or leak into the profile.
	fetcher := newFakeFetcher(detailWithTags(1, []string{"Drama"}, nil))

	profile, err := BuildProfile(context.Background(), []types.FavoriteRecord{favorite(1), favorite(2)}, fetcher, 2)
	if err != nil {
		t.Fatalf("BuildProfile() error = %v", err)
	}

	want := set("drama")
	if len(profile) != len(want) {
		t.Errorf("profile = %v, want %v", profile, want)
	}
}

func TestBuildProfileAllFetchesFail(t *testing.T) {
	fetcher := newFakeFetcher()

	profile, err := BuildProfile(context.Background(), []types.FavoriteRecord{favorite(1), favorite(2)}, fetcher, 2)
	if err != nil {
		t.Fatalf("BuildProfile() error = %v", err)
	}
	if len(profile) != 0 {
		t.Errorf("profile = %v, want empty (all fetches failed)", profile)
	}
}

func TestBuildProfileCancelled(t *testing.T) {
	fetcher := newFakeFetcher(detailWithTags(1, []string{"Action"}, nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildProfile(ctx, []types.FavoriteRecord{favorite(1)}, fetcher, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("BuildProfile() error = %v, want context.Canceled", err)
	}
}

func TestDistinctMovieIDsPreservesOrder(t *testing.T) {
	favorites := []types.FavoriteRecord{
		favorite(3), favorite(1), favorite(3), favorite(2), favorite(1),
	}
	got := distinctMovieIDs(favorites)
	want := []int{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("distinctMovieIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("distinctMovieIDs()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
