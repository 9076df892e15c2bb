// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/movie-engine/internal/library"
	"github.com/pdiddy/movie-engine/internal/tmdb"
	"github.com/pdiddy/movie-engine/pkg/types"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Manage movie reviews (add, list, update, delete)",
	Long:  `Review records a 1-10 rating and an optional comment, one per movie.`,
}

var reviewAddCmd = &cobra.Command{
	Use:   "add [movie id]",
	Short: "Review a movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewAdd,
}

var reviewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your reviews",
	RunE:  runReviewList,
}

var reviewUpdateCmd = &cobra.Command{
	Use:   "update [movie id]",
	Short: "Replace the rating and comment of an existing review",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewUpdate,
}

var reviewDeleteCmd = &cobra.Command{
	Use:   "delete [movie id]",
	Short: "Delete a review",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewDelete,
}

func init() {
	reviewAddCmd.Flags().Int("rating", 0, "rating from 1 to 10 (required)")
	reviewAddCmd.Flags().String("comment", "", "optional comment")
	reviewUpdateCmd.Flags().Int("rating", 0, "new rating from 1 to 10 (required)")
	reviewUpdateCmd.Flags().String("comment", "", "new comment")

	reviewCmd.AddCommand(reviewAddCmd)
	reviewCmd.AddCommand(reviewListCmd)
	reviewCmd.AddCommand(reviewUpdateCmd)
	reviewCmd.AddCommand(reviewDeleteCmd)

	rootCmd.AddCommand(reviewCmd)
}

func runReviewAdd(cmd *cobra.Command, args []string) error {
	movieID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id %q", args[0])
	}
	rating, _ := cmd.Flags().GetInt("rating")
	comment, _ := cmd.Flags().GetString("comment")

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

	review := types.Review{
		UserID:     currentUser(cmd),
		MovieID:    detail.ID,
		Rating:     rating,
		Comment:    comment,
		Title:      detail.Title,
		PosterPath: detail.PosterPath,
	}
	if err := store.AddReview(cmd.Context(), review); err != nil {
		if errors.Is(err, library.ErrDuplicate) {
			return fmt.Errorf("you already reviewed %s; use review update", detail.Title)
		}
		return err
	}

	fmt.Printf("Reviewed %s: %d/10\n", detail.Title, rating)
	return nil
}

func runReviewList(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	reviews, err := store.Reviews(cmd.Context(), currentUser(cmd))
	if err != nil {
		return err
	}

	if len(reviews) == 0 {
		fmt.Println("No reviews yet.")
		return nil
	}

	fmt.Printf("%-10s  %-40s  %-6s  %s\n", "ID", "Title", "Rating", "Comment")
	fmt.Println(strings.Repeat("-", 90))
	for _, r := range reviews {
		title := r.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		comment := r.Comment
		if len(comment) > 30 {
			comment = comment[:27] + "..."
		}
		fmt.Printf("%-10d  %-40s  %-6d  %s\n", r.MovieID, title, r.Rating, comment)
	}
	return nil
}

func runReviewUpdate(cmd *cobra.Command, args []string) error {
	movieID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id %q", args[0])
	}
	rating, _ := cmd.Flags().GetInt("rating")
	comment, _ := cmd.Flags().GetString("comment")

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.UpdateReview(cmd.Context(), currentUser(cmd), movieID, rating, comment); err != nil {
		if errors.Is(err, library.ErrNotFound) {
			return fmt.Errorf("no review for movie %d; use review add", movieID)
		}
		return err
	}
	fmt.Printf("Updated review of movie %d: %d/10\n", movieID, rating)
	return nil
}

func runReviewDelete(cmd *cobra.Command, args []string) error {
	movieID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id %q", args[0])
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteReview(cmd.Context(), currentUser(cmd), movieID); err != nil {
		if errors.Is(err, library.ErrNotFound) {
			return fmt.Errorf("no review for movie %d", movieID)
		}
		return err
	}
	fmt.Printf("Deleted review of movie %d\n", movieID)
	return nil
}
