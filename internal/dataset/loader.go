// Movie Recommendation System - MovieLens User-Based Collaborative Filtering
// Copyright 2026 Anirudh Vashist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anirudh-Vashist/movie-recommendation-system

// Package dataset loads the two tabular inputs (movie catalog and user
// ratings) from CSV files into in-memory tables.
//
// Both files are expected to carry a header row naming their columns
// (movieId,title,genres and userId,movieId,rating). Columns are resolved by
// header name, so extra columns such as the ratings timestamp are ignored.
// A missing file maps to ErrFileNotFound so the caller can abort startup
// with a friendly message; any structural problem (missing column, value of
// the wrong type) fails fast with ErrSchema.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

var (
	// ErrFileNotFound indicates a required input file is missing.
	ErrFileNotFound = errors.New("dataset file not found")

	// ErrSchema indicates a file exists but its contents do not match
	// the expected column layout or value types.
	ErrSchema = errors.New("dataset schema error")
)

// Loader reads the movie catalog and ratings tables.
type Loader struct {
	logger zerolog.Logger
}

// NewLoader creates a dataset loader.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{
		logger: logger.With().Str("component", "dataset").Logger(),
	}
}

// Load reads both input files. It fails on the first missing or
// malformed file; both tables are returned only when both load cleanly.
func (l *Loader) Load(moviesPath, ratingsPath string) (*Tables, error) {
	movies, err := l.LoadMovies(moviesPath)
	if err != nil {
		return nil, err
	}

	ratings, err := l.LoadRatings(ratingsPath)
	if err != nil {
		return nil, err
	}

	l.logger.Info().
		Int("movies", len(movies)).
		Int("ratings", len(ratings)).
		Msg("dataset loaded")

	return &Tables{Movies: movies, Ratings: ratings}, nil
}

// LoadMovies reads the movie catalog CSV, preserving file order.
func (l *Loader) LoadMovies(path string) ([]Movie, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	idCol, err := header.column(path, "movieId")
	if err != nil {
		return nil, err
	}
	titleCol, err := header.column(path, "title")
	if err != nil {
		return nil, err
	}
	genresCol, err := header.column(path, "genres")
	if err != nil {
		return nil, err
	}

	movies := make([]Movie, 0, len(rows))
	for i, row := range rows {
		id, err := strconv.Atoi(row[idCol])
		if err != nil {
			return nil, schemaErrorf(path, i, "movieId %q is not an integer", row[idCol])
		}
		movies = append(movies, Movie{
			ID:     id,
			Title:  row[titleCol],
			Genres: row[genresCol],
		})
	}

	l.logger.Debug().Str("path", path).Int("rows", len(movies)).Msg("movie catalog loaded")
	return movies, nil
}

// LoadRatings reads the ratings CSV, preserving file order.
// Extra columns (such as the conventional timestamp) are ignored.
func (l *Loader) LoadRatings(path string) ([]Rating, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	userCol, err := header.column(path, "userId")
	if err != nil {
		return nil, err
	}
	movieCol, err := header.column(path, "movieId")
	if err != nil {
		return nil, err
	}
	ratingCol, err := header.column(path, "rating")
	if err != nil {
		return nil, err
	}

	ratings := make([]Rating, 0, len(rows))
	for i, row := range rows {
		userID, err := strconv.Atoi(row[userCol])
		if err != nil {
			return nil, schemaErrorf(path, i, "userId %q is not an integer", row[userCol])
		}
		movieID, err := strconv.Atoi(row[movieCol])
		if err != nil {
			return nil, schemaErrorf(path, i, "movieId %q is not an integer", row[movieCol])
		}
		value, err := strconv.ParseFloat(row[ratingCol], 64)
		if err != nil {
			return nil, schemaErrorf(path, i, "rating %q is not a number", row[ratingCol])
		}
		ratings = append(ratings, Rating{
			UserID:  userID,
			MovieID: movieID,
			Value:   value,
		})
	}

	l.logger.Debug().Str("path", path).Int("rows", len(ratings)).Msg("ratings loaded")
	return ratings, nil
}

// headerIndex maps column names to their position in the header row.
type headerIndex map[string]int

// column resolves a required column name to its index.
func (h headerIndex) column(path, name string) (int, error) {
	idx, ok := h[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s: missing required column %q", ErrSchema, path, name)
	}
	return idx, nil
}

// readCSV reads an entire CSV file and splits off its header row.
func readCSV(path string) ([][]string, headerIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	reader := csv.NewReader(f)

	headerRow, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%w: %s: file is empty", ErrSchema, path)
		}
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	header := make(headerIndex, len(headerRow))
	for i, name := range headerRow {
		header[name] = i
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrSchema, path, err)
	}

	return rows, header, nil
}

// schemaErrorf builds an ErrSchema for a data row. The row index is
// zero-based over data rows, so the reported line accounts for the header.
func schemaErrorf(path string, row int, format string, args ...interface{}) error {
	detail := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s: line %d: %s", ErrSchema, path, row+2, detail)
}
