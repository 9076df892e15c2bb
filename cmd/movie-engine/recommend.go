// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/movie-engine/internal/recommend"
	"github.com/pdiddy/movie-engine/pkg/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Get personalized movie recommendations",
	Long: `Recommend builds a taste profile from your favorited movies and ranks
the current popular pool by feature overlap. With no favorites it falls
back to this week's trending movies.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().Int("limit", 0, "maximum number of recommendations")
	recommendCmd.Flags().Bool("json", false, "print the result as JSON")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	client, err := tmdbClient(cmd)
	if err != nil {
		return err
	}
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	cfg := types.RecommendConfig{
		Limit:            limit,
		FetchConcurrency: viper.GetInt("recommend.fetch_concurrency"),
		PoolPage:         viper.GetInt("recommend.pool_page"),
	}

	engine := recommend.NewEngine(store, client, client, client, cfg)
	result, err := engine.Recommend(cmd.Context(), currentUser(cmd))
	if err != nil {
		return fmt.Errorf("building recommendations: %w", err)
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(result.Message)
	if len(result.Recommendations) == 0 {
		return nil
	}
	fmt.Println()
	printDetailTable(result.Recommendations)
	return nil
}

func printDetailTable(movies []types.MovieDetail) {
	fmt.Printf("%-4s  %-10s  %-44s  %-4s  %s\n", "Rank", "ID", "Title", "Year", "Genres")
	fmt.Println(strings.Repeat("-", 96))

	for i, m := range movies {
		title := m.Title
		if len(title) > 44 {
			title = title[:41] + "..."
		}
		year := ""
		if len(m.ReleaseDate) >= 4 {
			year = m.ReleaseDate[:4]
		}
		names := make([]string, 0, len(m.Genres))
		for _, g := range m.Genres {
			names = append(names, g.Name)
		}
		fmt.Printf("%-4d  %-10d  %-44s  %-4s  %s\n", i+1, m.ID, title, year, strings.Join(names, ", "))
	}
}
