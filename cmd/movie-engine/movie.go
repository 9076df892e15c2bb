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

	"github.com/pdiddy/movie-engine/internal/tmdb"
)

var movieCmd = &cobra.Command{
	Use:   "movie [id]",
	Short: "Show full detail for one movie",
	Long: `Movie fetches a single movie's full catalog record by TMDB id,
including the genre and keyword tags the recommendation engine uses.`,
	Args: cobra.ExactArgs(1),
	RunE: runMovie,
}

func init() {
	movieCmd.Flags().Bool("json", false, "output the record as JSON")

	rootCmd.AddCommand(movieCmd)
}

func runMovie(cmd *cobra.Command, args []string) error {
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

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(detail)
	}

	fmt.Printf("%s (%d)\n", detail.Title, detail.ID)
	if detail.ReleaseDate != "" {
		fmt.Printf("Released: %s\n", detail.ReleaseDate)
	}
	if detail.Runtime > 0 {
		fmt.Printf("Runtime:  %d min\n", detail.Runtime)
	}
	if detail.VoteAverage > 0 {
		fmt.Printf("Rating:   %.1f\n", detail.VoteAverage)
	}

	var genres []string
	for _, g := range detail.Genres {
		genres = append(genres, g.Name)
	}
	if len(genres) > 0 {
		fmt.Printf("Genres:   %s\n", strings.Join(genres, ", "))
	}

	var keywords []string
	for _, k := range detail.Keywords.Keywords {
		keywords = append(keywords, k.Name)
	}
	if len(keywords) > 0 {
		fmt.Printf("Keywords: %s\n", strings.Join(keywords, ", "))
	}

	if detail.Overview != "" {
		fmt.Printf("\n%s\n", detail.Overview)
	}
	return nil
}
