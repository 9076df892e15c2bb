// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the movie catalog by title",
	Long: `Search queries TMDB for movies matching a title. Results are returned in
the catalog's relevance order.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("page", 1, "result page to fetch")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a search query")
	}
	query := strings.Join(args, " ")
	page, _ := cmd.Flags().GetInt("page")

	client, err := tmdbClient(cmd)
	if err != nil {
		return err
	}

	result, err := client.SearchMovies(cmd.Context(), query, page)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printMovieTable(result.Results)
	if result.TotalResults > 0 {
		fmt.Printf("\nPage %d of %d (%d results total)\n", result.Page, result.TotalPages, result.TotalResults)
	}
	return nil
}
