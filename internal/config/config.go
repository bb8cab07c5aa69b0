// Movie Recommendation System - MovieLens User-Based Collaborative Filtering
// Copyright 2026 Anirudh Vashist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anirudh-Vashist/movie-recommendation-system

// Package config loads and validates application configuration.
//
// Configuration is loaded via Koanf v2 with layered sources
// (highest priority wins):
//   - Environment variables (MOVIES_PATH, RECOMMEND_NEIGHBORS, LOG_LEVEL, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// The defaults reproduce the conventional behavior: movies.csv and
// ratings.csv in the working directory, ten neighbors, ten recommendations,
// plain text console output.
package config

import (
	"fmt"

	"github.com/Anirudh-Vashist/movie-recommendation-system/internal/validation"
)

// Config is the root application configuration.
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	Recommend RecommendConfig `koanf:"recommend"`
	Output    OutputConfig    `koanf:"output"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatasetConfig locates the two input files.
type DatasetConfig struct {
	// MoviesPath is the movie catalog CSV (movieId,title,genres).
	MoviesPath string `koanf:"movies_path" validate:"required"`

	// RatingsPath is the ratings CSV (userId,movieId,rating[,timestamp]).
	RatingsPath string `koanf:"ratings_path" validate:"required"`
}

// RecommendConfig tunes the collaborative-filtering kernel.
type RecommendConfig struct {
	// Neighbors is the maximum neighborhood size (most similar users).
	Neighbors int `koanf:"neighbors" validate:"gte=1,lte=1000"`

	// TopN is the maximum number of recommendations returned per query.
	TopN int `koanf:"top_n" validate:"gte=1,lte=100"`
}

// OutputConfig controls how results are rendered on the console.
type OutputConfig struct {
	// Format is "text" (the classic console listing) or "json".
	Format string `koanf:"format" validate:"oneof=text json"`
}

// LoggingConfig configures the zerolog logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values applied.
// Defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			MoviesPath:  "movies.csv",
			RatingsPath: "ratings.csv",
		},
		Recommend: RecommendConfig{
			Neighbors: 10,
			TopN:      10,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
