// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Snapshot is the full library of one user as written by the export
// commands.
type Snapshot struct {
	UserID     string            `json:"user_id" yaml:"user_id"`
	Favorites  []exportFavorite  `json:"favorites" yaml:"favorites"`
	Watchlists []exportWatchlist `json:"watchlists" yaml:"watchlists"`
	Reviews    []exportReview    `json:"reviews" yaml:"reviews"`
}

type exportFavorite struct {
	MovieID    int    `json:"movie_id" yaml:"movie_id"`
	Title      string `json:"title" yaml:"title"`
	PosterPath string `json:"poster_path,omitempty" yaml:"poster_path,omitempty"`
	AddedAt    string `json:"added_at" yaml:"added_at"`
}

type exportWatchlist struct {
	Name   string           `json:"name" yaml:"name"`
	Movies []exportFavorite `json:"movies" yaml:"movies"`
}

type exportReview struct {
	MovieID int    `json:"movie_id" yaml:"movie_id"`
	Title   string `json:"title" yaml:"title"`
	Rating  int    `json:"rating" yaml:"rating"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// ExportYAML writes the user's library to libraryDir/export.yaml.
func (s *Store) ExportYAML(ctx context.Context, userID string) (string, error) {
	snap, err := s.snapshot(ctx, userID)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(s.libraryDir, "export.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

// ExportJSON writes the user's library to libraryDir/export.json.
func (s *Store) ExportJSON(ctx context.Context, userID string) (string, error) {
	snap, err := s.snapshot(ctx, userID)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	path := filepath.Join(s.libraryDir, "export.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

func (s *Store) snapshot(ctx context.Context, userID string) (Snapshot, error) {
	snap := Snapshot{
		UserID:     userID,
		Favorites:  []exportFavorite{},
		Watchlists: []exportWatchlist{},
		Reviews:    []exportReview{},
	}

	favorites, err := s.ListFavorites(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}
	for _, fav := range favorites {
		snap.Favorites = append(snap.Favorites, exportFavorite{
			MovieID:    fav.MovieID,
			Title:      fav.Title,
			PosterPath: fav.PosterPath,
			AddedAt:    fav.AddedAt.Format("2006-01-02"),
		})
	}

	watchlists, err := s.Watchlists(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}
	for _, wl := range watchlists {
		ewl := exportWatchlist{Name: wl.Name, Movies: []exportFavorite{}}
		for _, m := range wl.Movies {
			ewl.Movies = append(ewl.Movies, exportFavorite{
				MovieID:    m.MovieID,
				Title:      m.Title,
				PosterPath: m.PosterPath,
				AddedAt:    m.AddedAt.Format("2006-01-02"),
			})
		}
		snap.Watchlists = append(snap.Watchlists, ewl)
	}

	reviews, err := s.Reviews(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}
	for _, r := range reviews {
		snap.Reviews = append(snap.Reviews, exportReview{
			MovieID: r.MovieID,
			Title:   r.Title,
			Rating:  r.Rating,
			Comment: r.Comment,
		})
	}

	return snap, nil
}
