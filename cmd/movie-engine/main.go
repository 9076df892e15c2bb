// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the movie-engine CLI: a movie
// catalog browser, a local favorites/watchlist/review library, and a
// content-based recommendation engine on top of both.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/movie-engine/internal/library"
	"github.com/pdiddy/movie-engine/internal/secrets"
	"github.com/pdiddy/movie-engine/internal/tmdb"
	"github.com/pdiddy/movie-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "movie-engine/0.1"
)

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the movie-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "movie-engine",
	Short: "Movie catalog, personal library, and content-based recommendations",
	Long: `movie-engine browses The Movie Database (TMDB), keeps a local library of
favorites, watchlists, and reviews, and recommends movies matching the
genre and keyword profile of what you have favorited.

Catalog commands (search, movie, trending, popular, genres) query TMDB
directly. Library commands (favorites, watchlist, review) manage local
SQLite state. The recommend command combines the two.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./movie-engine.yaml or ~/.config/movie-engine/config.yaml)")
	rootCmd.PersistentFlags().String("user", "default", "library user the command acts for")
	rootCmd.PersistentFlags().String("api-key", "", "TMDB API key (overrides config and .secrets/tmdb-api-key)")
	rootCmd.PersistentFlags().String("library-dir", "library", "base directory for the local library database")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("movie-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "movie-engine"))
		}
	}

	viper.SetEnvPrefix("MOVIE_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// apiKey resolves the TMDB key: flag, then config, then secrets file.
func apiKey(cmd *cobra.Command) string {
	if k, _ := cmd.Flags().GetString("api-key"); k != "" {
		return k
	}
	if k := viper.GetString("tmdb.api_key"); k != "" {
		return k
	}
	return loadedSecrets["tmdb-api-key"]
}

// tmdbClient builds the catalog client shared by all commands.
func tmdbClient(cmd *cobra.Command) (*tmdb.Client, error) {
	key := apiKey(cmd)
	if key == "" {
		return nil, fmt.Errorf("no TMDB API key: set --api-key, tmdb.api_key in config, or .secrets/tmdb-api-key")
	}
	return tmdb.New(types.TMDBConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   defaultTimeout,
			UserAgent: defaultUserAgent,
		},
		APIKey:     key,
		Language:   viper.GetString("tmdb.language"),
		MaxRetries: viper.GetInt("tmdb.max_retries"),
	}), nil
}

// openStore opens the local library database.
func openStore(cmd *cobra.Command) (*library.Store, error) {
	dir, _ := cmd.Flags().GetString("library-dir")
	return library.NewStore(types.LibraryConfig{LibraryDir: dir})
}

// currentUser returns the library user the command acts for.
func currentUser(cmd *cobra.Command) string {
	user, _ := cmd.Flags().GetString("user")
	if user == "" {
		user = "default"
	}
	return user
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
