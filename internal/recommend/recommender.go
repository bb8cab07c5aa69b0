// Movie Recommendation System - MovieLens User-Based Collaborative Filtering
// Copyright 2026 Anirudh Vashist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anirudh-Vashist/movie-recommendation-system

// Package recommend implements user-based collaborative filtering over the
// dense user-item matrix.
//
// For a target user, the recommender computes cosine similarity to every
// other user, keeps the most similar ones as the neighborhood, and scores
// each movie the target has not rated with the unweighted arithmetic mean
// of the neighborhood's matrix entries for that movie. The mean runs over
// every selected neighbor, including the zero cells of neighbors who have
// not rated the movie; the similarity scores select the neighborhood but
// deliberately do not weight the aggregation.
//
// The similarity matrix is recomputed from scratch on every query; nothing
// is cached or persisted between queries.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/Anirudh-Vashist/movie-recommendation-system/internal/matrix"
)

// ErrUserNotFound indicates the queried user has no row in the matrix.
var ErrUserNotFound = errors.New("user not found")

// Config tunes the recommender.
type Config struct {
	// Neighbors is the maximum neighborhood size. Only users with a
	// strictly positive similarity to the target are eligible.
	Neighbors int

	// TopN is the maximum number of recommendations returned.
	TopN int
}

// DefaultConfig returns the default recommender configuration.
func DefaultConfig() Config {
	return Config{
		Neighbors: 10,
		TopN:      10,
	}
}

// Neighbor is a user similar to the query target.
type Neighbor struct {
	// UserID identifies the similar user.
	UserID int `json:"user_id"`

	// Similarity is the cosine similarity to the target, in (0, 1].
	Similarity float64 `json:"similarity"`
}

// Recommendation is one scored movie suggestion.
type Recommendation struct {
	// Title is the movie title.
	Title string `json:"title"`

	// Genres is the raw delimiter-separated genre string from the catalog.
	Genres string `json:"genres"`

	// Score is the mean neighborhood rating for the movie.
	Score float64 `json:"score"`
}

// Result is the outcome of one recommendation query. Both slices are never
// nil; an empty Neighbors slice means no similar users exist and Items is
// then empty as well.
type Result struct {
	// UserID is the query target.
	UserID int `json:"user_id"`

	// Neighbors lists the selected similar users, most similar first.
	Neighbors []Neighbor `json:"similar_users"`

	// Items lists the recommended movies, best score first.
	Items []Recommendation `json:"recommendations"`
}

// Recommender answers recommendation queries against an immutable matrix.
// It holds no mutable state and is safe to use for sequential queries for
// the lifetime of the process.
type Recommender struct {
	config Config
	m      *matrix.Matrix
	logger zerolog.Logger
}

// New creates a Recommender over the given matrix.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(cfg Config, m *matrix.Matrix, logger zerolog.Logger) *Recommender {
	if cfg.Neighbors <= 0 {
		cfg.Neighbors = 10
	}
	if cfg.TopN <= 0 {
		cfg.TopN = 10
	}

	return &Recommender{
		config: cfg,
		m:      m,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
}

// Recommend generates recommendations for the given user.
//
// It returns ErrUserNotFound when the user has no matrix row. A user whose
// neighborhood is empty (nobody with positive similarity) gets an empty
// Result and a nil error.
func (r *Recommender) Recommend(ctx context.Context, userID int) (*Result, error) {
	start := time.Now()

	row, ok := r.m.RowIndex(userID)
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	neighbors := r.selectNeighbors(row)
	logger := r.logger.With().Int("user_id", userID).Logger()

	result := &Result{
		UserID:    userID,
		Neighbors: make([]Neighbor, 0, len(neighbors)),
		Items:     []Recommendation{},
	}
	for _, n := range neighbors {
		result.Neighbors = append(result.Neighbors, Neighbor{
			UserID:     r.m.UserID(n.row),
			Similarity: n.similarity,
		})
	}

	if len(neighbors) == 0 {
		logger.Debug().Msg("no similar users found")
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result.Items = r.scoreUnseen(row, neighbors)

	logger.Debug().
		Int("neighbors", len(neighbors)).
		Int("recommendations", len(result.Items)).
		Dur("elapsed", time.Since(start)).
		Msg("recommendation complete")

	return result, nil
}

// neighbor is an internal neighbor reference by matrix row.
type neighbor struct {
	row        int
	similarity float64
}

// selectNeighbors computes pairwise similarity and picks the top users most
// similar to the target row. Self-similarity is excluded, only strictly
// positive similarities qualify, and ties keep the original row order.
func (r *Recommender) selectNeighbors(target int) []neighbor {
	n := r.m.NumUsers()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = r.m.Row(i)
	}

	sims := PairwiseCosine(rows)

	neighbors := make([]neighbor, 0, n)
	for i, s := range sims[target] {
		if i == target || s <= 0 {
			continue
		}
		neighbors = append(neighbors, neighbor{row: i, similarity: s})
	}

	sort.SliceStable(neighbors, func(a, b int) bool {
		return neighbors[a].similarity > neighbors[b].similarity
	})

	if len(neighbors) > r.config.Neighbors {
		neighbors = neighbors[:r.config.Neighbors]
	}

	return neighbors
}

// scoreUnseen scores every movie the target has not rated with the
// unweighted mean of the neighborhood's matrix entries and returns the
// best TopN, ties keeping column order.
func (r *Recommender) scoreUnseen(target int, neighbors []neighbor) []Recommendation {
	type candidate struct {
		col   int
		score float64
	}

	candidates := make([]candidate, 0, r.m.NumTitles())
	for c := 0; c < r.m.NumTitles(); c++ {
		if r.m.Rated(target, c) {
			continue
		}

		var sum float64
		for _, n := range neighbors {
			sum += r.m.Row(n.row)[c]
		}
		candidates = append(candidates, candidate{
			col:   c,
			score: sum / float64(len(neighbors)),
		})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	if len(candidates) > r.config.TopN {
		candidates = candidates[:r.config.TopN]
	}

	items := make([]Recommendation, 0, len(candidates))
	for _, c := range candidates {
		title := r.m.Title(c.col)
		items = append(items, Recommendation{
			Title:  title,
			Genres: r.m.Genres(title),
			Score:  c.score,
		})
	}

	return items
}
