// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/movie-engine/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.LibraryConfig{LibraryDir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func fav(userID string, movieID int, title string) types.FavoriteRecord {
	return types.FavoriteRecord{UserID: userID, MovieID: movieID, Title: title}
}

// --- favorites ---

func TestFavoritesAddListRemove(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AddFavorite(ctx, fav("u1", 550, "Fight Club")); err != nil {
		t.Fatalf("AddFavorite() error = %v", err)
	}
	if err := s.AddFavorite(ctx, fav("u1", 603, "The Matrix")); err != nil {
		t.Fatalf("AddFavorite() error = %v", err)
	}

	favorites, err := s.ListFavorites(ctx, "u1")
	if err != nil {
		t.Fatalf("ListFavorites() error = %v", err)
	}
	if len(favorites) != 2 {
		t.Fatalf("len(favorites) = %d, want 2", len(favorites))
	}

	ok, err := s.IsFavorite(ctx, "u1", 550)
	if err != nil || !ok {
		t.Errorf("IsFavorite(550) = %v, %v, want true, nil", ok, err)
	}
	ok, err = s.IsFavorite(ctx, "u1", 999)
	if err != nil || ok {
		t.Errorf("IsFavorite(999) = %v, %v, want false, nil", ok, err)
	}

	if err := s.RemoveFavorite(ctx, "u1", 550); err != nil {
		t.Fatalf("RemoveFavorite() error = %v", err)
	}
	favorites, err = s.ListFavorites(ctx, "u1")
	if err != nil {
		t.Fatalf("ListFavorites() error = %v", err)
	}
	if len(favorites) != 1 || favorites[0].MovieID != 603 {
		t.Errorf("favorites after remove = %+v, want only 603", favorites)
	}
}

func TestAddFavoriteDuplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AddFavorite(ctx, fav("u1", 550, "Fight Club")); err != nil {
		t.Fatalf("AddFavorite() error = %v", err)
	}
	err := s.AddFavorite(ctx, fav("u1", 550, "Fight Club"))
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate AddFavorite() error = %v, want ErrDuplicate", err)
	}

	// A different user may favorite the same movie.
	if err := s.AddFavorite(ctx, fav("u2", 550, "Fight Club")); err != nil {
		t.Errorf("AddFavorite() for another user error = %v", err)
	}
}

func TestRemoveFavoriteNotFound(t *testing.T) {
	s := newTestStore(t)
	err := s.RemoveFavorite(context.Background(), "u1", 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveFavorite() error = %v, want ErrNotFound", err)
	}
}

func TestListFavoritesScopedByUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AddFavorite(ctx, fav("u1", 1, "A")); err != nil {
		t.Fatal(err)
	}
	if err := s.AddFavorite(ctx, fav("u2", 2, "B")); err != nil {
		t.Fatal(err)
	}

	favorites, err := s.ListFavorites(ctx, "u1")
	if err != nil {
		t.Fatalf("ListFavorites() error = %v", err)
	}
	if len(favorites) != 1 || favorites[0].MovieID != 1 {
		t.Errorf("favorites = %+v, want only u1's movie 1", favorites)
	}
}

// --- watchlists ---

func TestWatchlistLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	wl, err := s.CreateWatchlist(ctx, "u1", "noir classics")
	if err != nil {
		t.Fatalf("CreateWatchlist() error = %v", err)
	}

	if err := s.AddToWatchlist(ctx, wl.ID, types.WatchlistMovie{MovieID: 550, Title: "Fight Club"}); err != nil {
		t.Fatalf("AddToWatchlist() error = %v", err)
	}
	err = s.AddToWatchlist(ctx, wl.ID, types.WatchlistMovie{MovieID: 550, Title: "Fight Club"})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate AddToWatchlist() error = %v, want ErrDuplicate", err)
	}

	got, err := s.WatchlistByName(ctx, "u1", "noir classics")
	if err != nil {
		t.Fatalf("WatchlistByName() error = %v", err)
	}
	if len(got.Movies) != 1 || got.Movies[0].MovieID != 550 {
		t.Errorf("watchlist movies = %+v, want [550]", got.Movies)
	}

	if err := s.RemoveFromWatchlist(ctx, wl.ID, 550); err != nil {
		t.Fatalf("RemoveFromWatchlist() error = %v", err)
	}
	err = s.RemoveFromWatchlist(ctx, wl.ID, 550)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveFromWatchlist() again error = %v, want ErrNotFound", err)
	}

	if err := s.DeleteWatchlist(ctx, wl.ID); err != nil {
		t.Fatalf("DeleteWatchlist() error = %v", err)
	}
	if _, err := s.WatchlistByName(ctx, "u1", "noir classics"); !errors.Is(err, ErrNotFound) {
		t.Errorf("WatchlistByName() after delete error = %v, want ErrNotFound", err)
	}
}

func TestCreateWatchlistDuplicateName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateWatchlist(ctx, "u1", "to watch"); err != nil {
		t.Fatalf("CreateWatchlist() error = %v", err)
	}
	if _, err := s.CreateWatchlist(ctx, "u1", "to watch"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate CreateWatchlist() error = %v, want ErrDuplicate", err)
	}
	// Same name under another user is allowed.
	if _, err := s.CreateWatchlist(ctx, "u2", "to watch"); err != nil {
		t.Errorf("CreateWatchlist() for another user error = %v", err)
	}
}

func TestCreateWatchlistEmptyName(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreateWatchlist(context.Background(), "u1", ""); err == nil {
		t.Error("CreateWatchlist(\"\") error = nil, want error")
	}
}

func TestWatchlistsListsAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"b-movies", "award winners"} {
		if _, err := s.CreateWatchlist(ctx, "u1", name); err != nil {
			t.Fatal(err)
		}
	}

	lists, err := s.Watchlists(ctx, "u1")
	if err != nil {
		t.Fatalf("Watchlists() error = %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("len(lists) = %d, want 2", len(lists))
	}
	// Ordered by name.
	if lists[0].Name != "award winners" || lists[1].Name != "b-movies" {
		t.Errorf("list names = [%s, %s], want sorted by name", lists[0].Name, lists[1].Name)
	}
}

// --- reviews ---

func TestReviewLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := types.Review{UserID: "u1", MovieID: 550, Rating: 9, Comment: "still holds up", Title: "Fight Club"}
	if err := s.AddReview(ctx, r); err != nil {
		t.Fatalf("AddReview() error = %v", err)
	}
	if err := s.AddReview(ctx, r); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate AddReview() error = %v, want ErrDuplicate", err)
	}

	got, err := s.Review(ctx, "u1", 550)
	if err != nil {
		t.Fatalf("Review() error = %v", err)
	}
	if got.Rating != 9 || got.Comment != "still holds up" {
		t.Errorf("review = %+v, want rating 9 comment preserved", got)
	}

	if err := s.UpdateReview(ctx, "u1", 550, 7, "rewatched, liked it less"); err != nil {
		t.Fatalf("UpdateReview() error = %v", err)
	}
	got, err = s.Review(ctx, "u1", 550)
	if err != nil {
		t.Fatalf("Review() error = %v", err)
	}
	if got.Rating != 7 {
		t.Errorf("rating after update = %d, want 7", got.Rating)
	}

	if err := s.DeleteReview(ctx, "u1", 550); err != nil {
		t.Fatalf("DeleteReview() error = %v", err)
	}
	if _, err := s.Review(ctx, "u1", 550); !errors.Is(err, ErrNotFound) {
		t.Errorf("Review() after delete error = %v, want ErrNotFound", err)
	}
}

func TestReviewRatingValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, rating := range []int{0, 11, -1} {
		r := types.Review{UserID: "u1", MovieID: 1, Rating: rating, Title: "X"}
		if err := s.AddReview(ctx, r); err == nil {
			t.Errorf("AddReview(rating=%d) error = nil, want range error", rating)
		}
	}
	if err := s.UpdateReview(ctx, "u1", 1, 0, ""); err == nil {
		t.Error("UpdateReview(rating=0) error = nil, want range error")
	}
}

func TestUpdateReviewNotFound(t *testing.T) {
	s := newTestStore(t)
	err := s.UpdateReview(context.Background(), "u1", 42, 5, "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateReview() error = %v, want ErrNotFound", err)
	}
}

// --- export ---

func TestExportYAML(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AddFavorite(ctx, fav("u1", 550, "Fight Club")); err != nil {
		t.Fatal(err)
	}
	wl, err := s.CreateWatchlist(ctx, "u1", "to watch")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AddToWatchlist(ctx, wl.ID, types.WatchlistMovie{MovieID: 603, Title: "The Matrix"}); err != nil {
		t.Fatal(err)
	}
	if err := s.AddReview(ctx, types.Review{UserID: "u1", MovieID: 550, Rating: 9, Title: "Fight Club"}); err != nil {
		t.Fatal(err)
	}

	path, err := s.ExportYAML(ctx, "u1")
	if err != nil {
		t.Fatalf("ExportYAML() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	content := string(data)
	for _, want := range []string{"Fight Club", "The Matrix", "to watch", "rating: 9"} {
		if !strings.Contains(content, want) {
			t.Errorf("export missing %q\n%s", want, content)
		}
	}
}

func TestExportJSON(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AddFavorite(ctx, fav("u1", 550, "Fight Club")); err != nil {
		t.Fatal(err)
	}

	path, err := s.ExportJSON(ctx, "u1")
	if err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	if filepath.Base(path) != "export.json" {
		t.Errorf("export path = %q, want export.json", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.Contains(string(data), `"movie_id": 550`) {
		t.Errorf("export missing favorite:\n%s", data)
	}
}

func TestExportEmptyLibrary(t *testing.T) {
	s := newTestStore(t)

	path, err := s.ExportYAML(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ExportYAML() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.Contains(string(data), "favorites: []") {
		t.Errorf("empty export should have empty favorites list:\n%s", data)
	}
}
