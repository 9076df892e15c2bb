// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/movie-engine/pkg/types"
)

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "List this week's trending movies",
	RunE:  runTrending,
}

var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "List popular movies",
	RunE:  runPopular,
}

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the catalog's movie genres",
	RunE:  runGenres,
}

func init() {
	trendingCmd.Flags().Bool("json", false, "output results as JSON")
	popularCmd.Flags().Int("page", 1, "result page to fetch")
	popularCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(popularCmd)
	rootCmd.AddCommand(genresCmd)
}

func runTrending(cmd *cobra.Command, args []string) error {
	client, err := tmdbClient(cmd)
	if err != nil {
		return err
	}
	movies, err := client.Trending(cmd.Context())
	if err != nil {
		return err
	}
	return printListing(cmd, movies)
}

func runPopular(cmd *cobra.Command, args []string) error {
	page, _ := cmd.Flags().GetInt("page")
	client, err := tmdbClient(cmd)
	if err != nil {
		return err
	}
	movies, err := client.Popular(cmd.Context(), page)
	if err != nil {
		return err
	}
	return printListing(cmd, movies)
}

func runGenres(cmd *cobra.Command, args []string) error {
	client, err := tmdbClient(cmd)
	if err != nil {
		return err
	}
	genres, err := client.Genres(cmd.Context())
	if err != nil {
		return err
	}
	for _, g := range genres {
		fmt.Printf("%-6d %s\n", g.ID, g.Name)
	}
	return nil
}

func printListing(cmd *cobra.Command, movies []types.MovieSummary) error {
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(movies)
	}
	printMovieTable(movies)
	return nil
}

// printMovieTable writes listing entries as a human-readable table.
func printMovieTable(movies []types.MovieSummary) {
	if len(movies) == 0 {
		fmt.Println("No movies found.")
		return
	}

	fmt.Printf("%-4s  %-10s  %-50s  %-4s  %s\n", "Rank", "ID", "Title", "Year", "Rating")
	fmt.Println(strings.Repeat("-", 84))

	for i, m := range movies {
		title := m.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		year := ""
		if len(m.ReleaseDate) >= 4 {
			year = m.ReleaseDate[:4]
		}
		fmt.Printf("%-4d  %-10d  %-50s  %-4s  %.1f\n", i+1, m.ID, title, year, m.VoteAverage)
	}

	fmt.Printf("\n%d movies\n", len(movies))
}
