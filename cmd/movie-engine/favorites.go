// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/movie-engine/internal/library"
	"github.com/pdiddy/movie-engine/internal/tmdb"
	"github.com/pdiddy/movie-engine/pkg/types"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage favorited movies (add, remove, list)",
	Long: `Favorites manages the movies that feed the recommendation engine's
taste profile. Adding a favorite looks the movie up in the catalog so
the library keeps its title and poster.`,
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add [movie id]",
	Short: "Favorite a movie by catalog id",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesAdd,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove [movie id]",
	Short: "Remove a movie from favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesRemove,
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorited movies",
	RunE:  runFavoritesList,
}

func init() {
	favoritesListCmd.Flags().Bool("json", false, "output favorites as JSON")

	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.AddCommand(favoritesListCmd)

	rootCmd.AddCommand(favoritesCmd)
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	movieID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id %q", args[0])
	}

	client, err := tmdbClient(cmd)
	if err != nil {
		return err
	}
	detail, err := client.MovieDetail(cmd.Context(), movieID)
	if errors.Is(err, tmdb.ErrNotFound) {
		return fmt.Errorf("movie %d not found in the catalog", movieID)
	}
	if err != nil {
		return err
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	fav := types.FavoriteRecord{
		UserID:      currentUser(cmd),
		MovieID:     detail.ID,
		Title:       detail.Title,
		PosterPath:  detail.PosterPath,
		ReleaseDate: detail.ReleaseDate,
	}
	if err := store.AddFavorite(cmd.Context(), fav); err != nil {
		if errors.Is(err, library.ErrDuplicate) {
			return fmt.Errorf("%s is already in favorites", detail.Title)
		}
		return err
	}

	fmt.Printf("Favorited %s (%d)\n", detail.Title, detail.ID)
	return nil
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	movieID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id %q", args[0])
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.RemoveFavorite(cmd.Context(), currentUser(cmd), movieID); err != nil {
		if errors.Is(err, library.ErrNotFound) {
			return fmt.Errorf("movie %d is not in favorites", movieID)
		}
		return err
	}

	fmt.Printf("Removed movie %d from favorites\n", movieID)
	return nil
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	favorites, err := store.ListFavorites(cmd.Context(), currentUser(cmd))
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(favorites)
	}

	if len(favorites) == 0 {
		fmt.Println("No favorites yet. Add one with: movie-engine favorites add <movie id>")
		return nil
	}

	fmt.Printf("%-10s  %-50s  %s\n", "ID", "Title", "Added")
	fmt.Println(strings.Repeat("-", 74))
	for _, fav := range favorites {
		title := fav.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		fmt.Printf("%-10d  %-50s  %s\n", fav.MovieID, title, fav.AddedAt.Format("2006-01-02"))
	}
	fmt.Printf("\n%d favorites\n", len(favorites))
	return nil
}
