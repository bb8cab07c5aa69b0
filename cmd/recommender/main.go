// Movie Recommendation System - MovieLens User-Based Collaborative Filtering
// Copyright 2026 Anirudh Vashist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anirudh-Vashist/movie-recommendation-system

// Package main is the entry point for the movie recommender console tool.
//
// The recommender loads the MovieLens-style movies.csv and ratings.csv
// files, builds a dense user-by-title rating matrix, and answers
// interactive queries on stdin with user-based collaborative-filtering
// recommendations.
//
// # Application Architecture
//
// The tool initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Dataset: Parse the movie catalog and ratings CSVs
//  3. Matrix: Pivot ratings into the dense user-by-title matrix
//  4. Recommender: Cosine-similarity neighborhood scoring
//  5. Query loop: Interactive stdin prompt until "exit" or EOF
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (MOVIES_PATH, RATINGS_PATH, RECOMMEND_NEIGHBORS,
//     RECOMMEND_TOP_N, OUTPUT_FORMAT, LOG_LEVEL, LOG_FORMAT, LOG_CALLER)
//   - Config file (config.yaml, or the path in CONFIG_PATH)
//   - Built-in defaults
//
// # Example Usage
//
// With the dataset in the working directory:
//
//	./recommender
//
// With explicit dataset paths and JSON output:
//
//	export MOVIES_PATH=/data/ml-latest-small/movies.csv
//	export RATINGS_PATH=/data/ml-latest-small/ratings.csv
//	export OUTPUT_FORMAT=json
//	./recommender
//
// # Signal Handling
//
// The tool exits cleanly on SIGINT and SIGTERM: the current query is
// cancelled and the loop terminates as if "exit" had been entered.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Anirudh-Vashist/movie-recommendation-system/internal/cli"
	"github.com/Anirudh-Vashist/movie-recommendation-system/internal/config"
	"github.com/Anirudh-Vashist/movie-recommendation-system/internal/dataset"
	"github.com/Anirudh-Vashist/movie-recommendation-system/internal/logging"
	"github.com/Anirudh-Vashist/movie-recommendation-system/internal/matrix"
	"github.com/Anirudh-Vashist/movie-recommendation-system/internal/recommend"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("movies_path", cfg.Dataset.MoviesPath).
		Str("ratings_path", cfg.Dataset.RatingsPath).
		Int("neighbors", cfg.Recommend.Neighbors).
		Int("top_n", cfg.Recommend.TopN).
		Str("output_format", cfg.Output.Format).
		Msg("Configuration loaded")

	loader := dataset.NewLoader(logging.Logger())
	tables, err := loader.Load(cfg.Dataset.MoviesPath, cfg.Dataset.RatingsPath)
	if err != nil {
		if errors.Is(err, dataset.ErrFileNotFound) {
			fmt.Println("❌ Error: Make sure 'movies.csv' and 'ratings.csv' are in the same directory.")
			logging.Error().Err(err).Msg("Dataset files not found")
			os.Exit(1)
		}
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}
	fmt.Println("✅ Data loaded successfully!")
	logging.Info().
		Int("movies", len(tables.Movies)).
		Int("ratings", len(tables.Ratings)).
		Msg("Dataset loaded")

	m := matrix.Build(tables, logging.Logger())
	fmt.Println("✅ User-item matrix created.")
	logging.Info().
		Int("users", m.NumUsers()).
		Int("titles", m.NumTitles()).
		Int("dropped_ratings", m.DroppedRatings()).
		Msg("User-item matrix built")

	rec := recommend.New(recommend.Config{
		Neighbors: cfg.Recommend.Neighbors,
		TopN:      cfg.Recommend.TopN,
	}, m, logging.Logger())

	var render cli.Renderer
	switch cfg.Output.Format {
	case "json":
		render = cli.JSONRenderer{}
	default:
		render = cli.NewTextRenderer(cfg.Recommend.TopN)
	}

	// Cancel in-flight queries and stop the loop on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loop := cli.NewLoop(os.Stdin, os.Stdout, rec, render)
	if err := loop.Run(ctx); err != nil {
		logging.Fatal().Err(err).Msg("Query loop failed")
	}

	logging.Info().Msg("Shutting down")
}
