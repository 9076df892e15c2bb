// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the movie-engine
// pipeline: catalog records fetched from TMDB, the user's library
// entries, and the recommendation result envelope.
package types

import "time"

// Genre is a TMDB genre tag attached to a movie.
type Genre struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Keyword is a TMDB keyword tag attached to a movie.
type Keyword struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// KeywordList wraps the keyword array. TMDB nests keywords one level
// deep when fetched via append_to_response.
type KeywordList struct {
	Keywords []Keyword `json:"keywords" yaml:"keywords"`
}

// MovieSummary is a lightweight entry from a listing endpoint (popular,
// trending, search). It carries no genre or keyword detail.
type MovieSummary struct {
	ID          int     `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	PosterPath  string  `json:"poster_path,omitempty" yaml:"poster_path,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty" yaml:"release_date,omitempty"`
	Overview    string  `json:"overview,omitempty" yaml:"overview,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty" yaml:"vote_average,omitempty"`
	Popularity  float64 `json:"popularity,omitempty" yaml:"popularity,omitempty"`
}

// MovieDetail is the full per-movie record, including the genre and
// keyword tags the recommendation engine derives features from.
type MovieDetail struct {
	ID          int         `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	PosterPath  string      `json:"poster_path,omitempty" yaml:"poster_path,omitempty"`
	ReleaseDate string      `json:"release_date,omitempty" yaml:"release_date,omitempty"`
	Overview    string      `json:"overview,omitempty" yaml:"overview,omitempty"`
	Runtime     int         `json:"runtime,omitempty" yaml:"runtime,omitempty"`
	VoteAverage float64     `json:"vote_average,omitempty" yaml:"vote_average,omitempty"`
	Popularity  float64     `json:"popularity,omitempty" yaml:"popularity,omitempty"`
	Genres      []Genre     `json:"genres" yaml:"genres"`
	Keywords    KeywordList `json:"keywords" yaml:"keywords"`
}

// FavoriteRecord identifies a movie a user has marked as favorite,
// with enough display fields to avoid a catalog round trip.
type FavoriteRecord struct {
	UserID      string    `json:"user_id" yaml:"user_id"`
	MovieID     int       `json:"movie_id" yaml:"movie_id"`
	Title       string    `json:"title" yaml:"title"`
	PosterPath  string    `json:"poster_path,omitempty" yaml:"poster_path,omitempty"`
	ReleaseDate string    `json:"release_date,omitempty" yaml:"release_date,omitempty"`
	AddedAt     time.Time `json:"added_at" yaml:"added_at"`
}

// WatchlistMovie is one entry inside a watchlist.
type WatchlistMovie struct {
	MovieID    int       `json:"movie_id" yaml:"movie_id"`
	Title      string    `json:"title" yaml:"title"`
	PosterPath string    `json:"poster_path,omitempty" yaml:"poster_path,omitempty"`
	AddedAt    time.Time `json:"added_at" yaml:"added_at"`
}

// Watchlist is a named, user-owned list of movies. Names are unique
// per user.
type Watchlist struct {
	ID     int64            `json:"id" yaml:"id"`
	UserID string           `json:"user_id" yaml:"user_id"`
	Name   string           `json:"name" yaml:"name"`
	Movies []WatchlistMovie `json:"movies" yaml:"movies"`
}

// Review is a user's rating and comment for a movie. One review per
// user per movie; rating is on a 1-10 scale.
type Review struct {
	UserID     string    `json:"user_id" yaml:"user_id"`
	MovieID    int       `json:"movie_id" yaml:"movie_id"`
	Rating     int       `json:"rating" yaml:"rating"`
	Comment    string    `json:"comment,omitempty" yaml:"comment,omitempty"`
	Title      string    `json:"title" yaml:"title"`
	PosterPath string    `json:"poster_path,omitempty" yaml:"poster_path,omitempty"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" yaml:"updated_at"`
}

// RecommendationResult is the envelope returned to the caller: a
// user-facing message plus an ordered, deduplicated list of at most
// ten movie records.
type RecommendationResult struct {
	Message         string        `json:"message" yaml:"message"`
	Recommendations []MovieDetail `json:"recommendations" yaml:"recommendations"`
}
