// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library persists a user's movie library: favorites,
// watchlists, and reviews, backed by a local SQLite database.
package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/pdiddy/movie-engine/pkg/types"
)

const dbFile = "library.db"

// ErrDuplicate is returned when an insert violates a uniqueness rule:
// a favorite or review that already exists for the user and movie, a
// watchlist name already taken, or a movie already on a watchlist.
var ErrDuplicate = errors.New("already exists")

// ErrNotFound is returned when the targeted record does not exist.
var ErrNotFound = errors.New("not found")

// Store manages the library SQLite database.
type Store struct {
	db         *sql.DB
	libraryDir string
}

// NewStore opens or creates the library database at
// libraryDir/library.db, creating the schema if it does not exist.
func NewStore(cfg types.LibraryConfig) (*Store, error) {
	dir := cfg.LibraryDir
	if dir == "" {
		dir = "library"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating library directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, libraryDir: dir}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS favorites (
			user_id TEXT NOT NULL,
			movie_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			poster_path TEXT,
			release_date TEXT,
			added_at TEXT NOT NULL,
			PRIMARY KEY (user_id, movie_id)
		)`,
		`CREATE TABLE IF NOT EXISTS watchlists (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			created_at TEXT NOT NULL,
			UNIQUE (user_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS watchlist_movies (
			watchlist_id INTEGER NOT NULL REFERENCES watchlists(id) ON DELETE CASCADE,
			movie_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			poster_path TEXT,
			added_at TEXT NOT NULL,
			UNIQUE (watchlist_id, movie_id)
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			user_id TEXT NOT NULL,
			movie_id INTEGER NOT NULL,
			rating INTEGER NOT NULL,
			comment TEXT,
			title TEXT NOT NULL,
			poster_path TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (user_id, movie_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_watchlists_user ON watchlists(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_user ON reviews(user_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// isConstraintViolation reports whether err is a SQLite uniqueness or
// other constraint failure.
func isConstraintViolation(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.Code == sqlite3.ErrConstraint
}

// --- favorites ---

// AddFavorite records a movie as favorited. Returns ErrDuplicate when
// the user has already favorited it.
func (s *Store) AddFavorite(ctx context.Context, fav types.FavoriteRecord) error {
	addedAt := fav.AddedAt
	if addedAt.IsZero() {
		addedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO favorites (user_id, movie_id, title, poster_path, release_date, added_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		fav.UserID, fav.MovieID, fav.Title, fav.PosterPath, fav.ReleaseDate,
		addedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("adding favorite: %w", err)
	}
	return nil
}

// RemoveFavorite deletes a favorite. Returns ErrNotFound when the user
// never favorited the movie.
func (s *Store) RemoveFavorite(ctx context.Context, userID string, movieID int) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND movie_id = ?`, userID, movieID)
	if err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListFavorites returns the user's favorites in the order they were
// added. It satisfies the recommendation engine's FavoriteLister.
func (s *Store) ListFavorites(ctx context.Context, userID string) ([]types.FavoriteRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, movie_id, title, poster_path, release_date, added_at
		 FROM favorites WHERE user_id = ? ORDER BY added_at, movie_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	defer rows.Close()

	var favorites []types.FavoriteRecord
	for rows.Next() {
		var (
			fav        types.FavoriteRecord
			posterPath sql.NullString
			release    sql.NullString
			addedAt    string
		)
		if err := rows.Scan(&fav.UserID, &fav.MovieID, &fav.Title, &posterPath, &release, &addedAt); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		fav.PosterPath = posterPath.String
		fav.ReleaseDate = release.String
		if t, parseErr := time.Parse(time.RFC3339, addedAt); parseErr == nil {
			fav.AddedAt = t
		}
		favorites = append(favorites, fav)
	}
	return favorites, rows.Err()
}

// IsFavorite reports whether the user has favorited the movie.
func (s *Store) IsFavorite(ctx context.Context, userID string, movieID int) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM favorites WHERE user_id = ? AND movie_id = ?`, userID, movieID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking favorite: %w", err)
	}
	return true, nil
}

// --- watchlists ---

// CreateWatchlist creates an empty named watchlist. Names are unique
// per user; a taken name returns ErrDuplicate.
func (s *Store) CreateWatchlist(ctx context.Context, userID, name string) (*types.Watchlist, error) {
	if name == "" {
		return nil, fmt.Errorf("watchlist name is empty")
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO watchlists (user_id, name, created_at) VALUES (?, ?, ?)`,
		userID, name, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		if isConstraintViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("creating watchlist: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("creating watchlist: %w", err)
	}
	return &types.Watchlist{ID: id, UserID: userID, Name: name}, nil
}

// WatchlistByName looks up one of the user's watchlists, including its
// movies. Returns ErrNotFound for unknown names.
func (s *Store) WatchlistByName(ctx context.Context, userID, name string) (*types.Watchlist, error) {
	wl := &types.Watchlist{UserID: userID, Name: name}
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM watchlists WHERE user_id = ? AND name = ?`, userID, name).Scan(&wl.ID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("looking up watchlist: %w", err)
	}

	movies, err := s.watchlistMovies(ctx, wl.ID)
	if err != nil {
		return nil, err
	}
	wl.Movies = movies
	return wl, nil
}

// Watchlists returns all of the user's watchlists with their movies.
func (s *Store) Watchlists(ctx context.Context, userID string) ([]types.Watchlist, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name FROM watchlists WHERE user_id = ? ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing watchlists: %w", err)
	}
	defer rows.Close()

	var lists []types.Watchlist
	for rows.Next() {
		wl := types.Watchlist{UserID: userID}
		if err := rows.Scan(&wl.ID, &wl.Name); err != nil {
			return nil, fmt.Errorf("scanning watchlist: %w", err)
		}
		lists = append(lists, wl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range lists {
		movies, err := s.watchlistMovies(ctx, lists[i].ID)
		if err != nil {
			return nil, err
		}
		lists[i].Movies = movies
	}
	return lists, nil
}

func (s *Store) watchlistMovies(ctx context.Context, watchlistID int64) ([]types.WatchlistMovie, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT movie_id, title, poster_path, added_at
		 FROM watchlist_movies WHERE watchlist_id = ? ORDER BY added_at, movie_id`, watchlistID)
	if err != nil {
		return nil, fmt.Errorf("listing watchlist movies: %w", err)
	}
	defer rows.Close()

	var movies []types.WatchlistMovie
	for rows.Next() {
		var (
			m          types.WatchlistMovie
			posterPath sql.NullString
			addedAt    string
		)
		if err := rows.Scan(&m.MovieID, &m.Title, &posterPath, &addedAt); err != nil {
			return nil, fmt.Errorf("scanning watchlist movie: %w", err)
		}
		m.PosterPath = posterPath.String
		if t, parseErr := time.Parse(time.RFC3339, addedAt); parseErr == nil {
			m.AddedAt = t
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// AddToWatchlist appends a movie to a watchlist. Returns ErrDuplicate
// when the movie is already on it.
func (s *Store) AddToWatchlist(ctx context.Context, watchlistID int64, m types.WatchlistMovie) error {
	addedAt := m.AddedAt
	if addedAt.IsZero() {
		addedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO watchlist_movies (watchlist_id, movie_id, title, poster_path, added_at)
		 VALUES (?, ?, ?, ?, ?)`,
		watchlistID, m.MovieID, m.Title, m.PosterPath, addedAt.Format(time.RFC3339))
	if err != nil {
		if isConstraintViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("adding movie to watchlist: %w", err)
	}
	return nil
}

// RemoveFromWatchlist deletes a movie from a watchlist. Returns
// ErrNotFound when the movie is not on it.
func (s *Store) RemoveFromWatchlist(ctx context.Context, watchlistID int64, movieID int) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM watchlist_movies WHERE watchlist_id = ? AND movie_id = ?`, watchlistID, movieID)
	if err != nil {
		return fmt.Errorf("removing movie from watchlist: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("removing movie from watchlist: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteWatchlist removes a watchlist and, via cascade, its movies.
func (s *Store) DeleteWatchlist(ctx context.Context, watchlistID int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM watchlists WHERE id = ?`, watchlistID)
	if err != nil {
		return fmt.Errorf("deleting watchlist: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting watchlist: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- reviews ---

// AddReview records a rating and comment. One review per user per
// movie; a second insert returns ErrDuplicate. Ratings are 1-10.
func (s *Store) AddReview(ctx context.Context, r types.Review) error {
	if r.Rating < 1 || r.Rating > 10 {
		return fmt.Errorf("rating %d out of range 1-10", r.Rating)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reviews (user_id, movie_id, rating, comment, title, poster_path, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.UserID, r.MovieID, r.Rating, r.Comment, r.Title, r.PosterPath, now, now)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("adding review: %w", err)
	}
	return nil
}

// Review returns the user's review of a movie, or ErrNotFound.
func (s *Store) Review(ctx context.Context, userID string, movieID int) (*types.Review, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT user_id, movie_id, rating, comment, title, poster_path, created_at, updated_at
		 FROM reviews WHERE user_id = ? AND movie_id = ?`, userID, movieID)
	r, err := scanReview(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching review: %w", err)
	}
	return r, nil
}

// Reviews returns all of the user's reviews, most recently updated first.
func (s *Store) Reviews(ctx context.Context, userID string) ([]types.Review, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, movie_id, rating, comment, title, poster_path, created_at, updated_at
		 FROM reviews WHERE user_id = ? ORDER BY updated_at DESC, movie_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}
	defer rows.Close()

	var reviews []types.Review
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		reviews = append(reviews, *r)
	}
	return reviews, rows.Err()
}

// UpdateReview replaces the rating and comment of an existing review.
func (s *Store) UpdateReview(ctx context.Context, userID string, movieID, rating int, comment string) error {
	if rating < 1 || rating > 10 {
		return fmt.Errorf("rating %d out of range 1-10", rating)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE reviews SET rating = ?, comment = ?, updated_at = ?
		 WHERE user_id = ? AND movie_id = ?`,
		rating, comment, time.Now().UTC().Format(time.RFC3339), userID, movieID)
	if err != nil {
		return fmt.Errorf("updating review: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating review: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteReview removes the user's review of a movie.
func (s *Store) DeleteReview(ctx context.Context, userID string, movieID int) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM reviews WHERE user_id = ? AND movie_id = ?`, userID, movieID)
	if err != nil {
		return fmt.Errorf("deleting review: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting review: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanReview(row scanner) (*types.Review, error) {
	var (
		r          types.Review
		comment    sql.NullString
		posterPath sql.NullString
		createdAt  string
		updatedAt  string
	)
	if err := row.Scan(&r.UserID, &r.MovieID, &r.Rating, &comment, &r.Title, &posterPath, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	r.Comment = comment.String
	r.PosterPath = posterPath.String
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		r.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		r.UpdatedAt = t
	}
	return &r, nil
}
