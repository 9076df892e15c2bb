// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/movie-engine/internal/library"
	"github.com/pdiddy/movie-engine/internal/tmdb"
	"github.com/pdiddy/movie-engine/pkg/types"
)

var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Manage named watchlists (create, list, add, remove, delete)",
	Long: `Watchlist manages named lists of movies to watch later. Watchlist
names are unique per user; a movie can appear on a list only once.`,
}

var watchlistCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create an empty watchlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatchlistCreate,
}

var watchlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List watchlists and their movies",
	RunE:  runWatchlistList,
}

var watchlistAddCmd = &cobra.Command{
	Use:   "add [name] [movie id]",
	Short: "Add a movie to a watchlist",
	Args:  cobra.ExactArgs(2),
	RunE:  runWatchlistAdd,
}

var watchlistRemoveCmd = &cobra.Command{
	Use:   "remove [name] [movie id]",
	Short: "Remove a movie from a watchlist",
	Args:  cobra.ExactArgs(2),
	RunE:  runWatchlistRemove,
}

var watchlistDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a watchlist and its movies",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatchlistDelete,
}

func init() {
	watchlistCmd.AddCommand(watchlistCreateCmd)
	watchlistCmd.AddCommand(watchlistListCmd)
	watchlistCmd.AddCommand(watchlistAddCmd)
	watchlistCmd.AddCommand(watchlistRemoveCmd)
	watchlistCmd.AddCommand(watchlistDeleteCmd)

	rootCmd.AddCommand(watchlistCmd)
}

func runWatchlistCreate(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	wl, err := store.CreateWatchlist(cmd.Context(), currentUser(cmd), args[0])
	if err != nil {
		if errors.Is(err, library.ErrDuplicate) {
			return fmt.Errorf("watchlist %q already exists", args[0])
		}
		return err
	}
	fmt.Printf("Created watchlist %q\n", wl.Name)
	return nil
}

func runWatchlistList(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	lists, err := store.Watchlists(cmd.Context(), currentUser(cmd))
	if err != nil {
		return err
	}

	if len(lists) == 0 {
		fmt.Println("No watchlists yet. Create one with: movie-engine watchlist create <name>")
		return nil
	}

	for _, wl := range lists {
		fmt.Printf("%s (%d movies)\n", wl.Name, len(wl.Movies))
		for _, m := range wl.Movies {
			fmt.Printf("  %-10d  %s\n", m.MovieID, m.Title)
		}
	}
	return nil
}

func runWatchlistAdd(cmd *cobra.Command, args []string) error {
	movieID, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid movie id %q", args[1])
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

	wl, err := store.WatchlistByName(cmd.Context(), currentUser(cmd), args[0])
	if errors.Is(err, library.ErrNotFound) {
		return fmt.Errorf("watchlist %q not found", args[0])
	}
	if err != nil {
		return err
	}

	movie := types.WatchlistMovie{
		MovieID:    detail.ID,
		Title:      detail.Title,
		PosterPath: detail.PosterPath,
	}
	if err := store.AddToWatchlist(cmd.Context(), wl.ID, movie); err != nil {
		if errors.Is(err, library.ErrDuplicate) {
			return fmt.Errorf("%s is already on %q", detail.Title, wl.Name)
		}
		return err
	}

	fmt.Printf("Added %s to %q\n", detail.Title, wl.Name)
	return nil
}

func runWatchlistRemove(cmd *cobra.Command, args []string) error {
	movieID, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid movie id %q", args[1])
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	wl, err := store.WatchlistByName(cmd.Context(), currentUser(cmd), args[0])
	if errors.Is(err, library.ErrNotFound) {
		return fmt.Errorf("watchlist %q not found", args[0])
	}
	if err != nil {
		return err
	}

	if err := store.RemoveFromWatchlist(cmd.Context(), wl.ID, movieID); err != nil {
		if errors.Is(err, library.ErrNotFound) {
			return fmt.Errorf("movie %d is not on %q", movieID, wl.Name)
		}
		return err
	}

	fmt.Printf("Removed movie %d from %q\n", movieID, wl.Name)
	return nil
}

func runWatchlistDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	wl, err := store.WatchlistByName(cmd.Context(), currentUser(cmd), args[0])
	if errors.Is(err, library.ErrNotFound) {
		return fmt.Errorf("watchlist %q not found", args[0])
	}
	if err != nil {
		return err
	}

	if err := store.DeleteWatchlist(cmd.Context(), wl.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted watchlist %q\n", wl.Name)
	return nil
}
