// Movie Recommendation System - MovieLens User-Based Collaborative Filtering
// Copyright 2026 Anirudh Vashist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anirudh-Vashist/movie-recommendation-system

// Package matrix joins the ratings table to the movie catalog and pivots
// the result into a dense user-by-title rating matrix.
//
// Rows are distinct user IDs in ascending order; columns are distinct movie
// titles in ascending order. A cell holds the user's rating for the title,
// or zero where no rating exists. Because a genuine zero rating would be
// indistinguishable from "unrated", the matrix also tracks a parallel rated
// mask; candidate selection uses the mask, never the zero value.
//
// Ratings referencing a movie ID absent from the catalog are dropped during
// the join. The drop is silent with respect to results, but the count is
// reported so data loss stays observable.
package matrix

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/Anirudh-Vashist/movie-recommendation-system/internal/dataset"
)

// Matrix is the dense user-item rating matrix plus the catalog metadata
// needed to annotate results. It is immutable after Build and therefore
// safe to share across repeated recommendation queries.
type Matrix struct {
	users  []int
	rowOf  map[int]int
	titles []string
	colOf  map[string]int

	// cells[r][c] is the rating of user r for title c, zero-filled.
	cells [][]float64

	// rated[r][c] records whether user r actually rated title c.
	rated [][]bool

	// genresByTitle maps a title to the genre string of its first
	// catalog entry. Distinct movies sharing a title collapse to one
	// column, and the first catalog row wins the genre lookup.
	genresByTitle map[string]string

	droppedRatings int
}

// Build joins ratings to the catalog on movie ID and pivots the joined rows
// into a Matrix. Cells rated more than once (two catalog entries sharing a
// title) hold the mean of the contributing ratings.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Build(tables *dataset.Tables, logger zerolog.Logger) *Matrix {
	log := logger.With().Str("component", "matrix").Logger()

	titleByMovieID := make(map[int]string, len(tables.Movies))
	genresByTitle := make(map[string]string, len(tables.Movies))
	for _, m := range tables.Movies {
		titleByMovieID[m.ID] = m.Title
		if _, ok := genresByTitle[m.Title]; !ok {
			genresByTitle[m.Title] = m.Genres
		}
	}

	// Inner join: ratings without a catalog entry are dropped.
	type joinedRating struct {
		userID int
		title  string
		value  float64
	}
	joined := make([]joinedRating, 0, len(tables.Ratings))
	dropped := 0
	for _, r := range tables.Ratings {
		title, ok := titleByMovieID[r.MovieID]
		if !ok {
			dropped++
			continue
		}
		joined = append(joined, joinedRating{userID: r.UserID, title: title, value: r.Value})
	}

	if dropped > 0 {
		log.Warn().
			Int("dropped", dropped).
			Msg("ratings referencing unknown movies dropped during join")
	}

	// Collect and order the pivot axes.
	userSet := make(map[int]struct{})
	titleSet := make(map[string]struct{})
	for _, j := range joined {
		userSet[j.userID] = struct{}{}
		titleSet[j.title] = struct{}{}
	}

	users := make([]int, 0, len(userSet))
	for id := range userSet {
		users = append(users, id)
	}
	sort.Ints(users)

	titles := make([]string, 0, len(titleSet))
	for t := range titleSet {
		titles = append(titles, t)
	}
	sort.Strings(titles)

	rowOf := make(map[int]int, len(users))
	for i, id := range users {
		rowOf[id] = i
	}
	colOf := make(map[string]int, len(titles))
	for i, t := range titles {
		colOf[t] = i
	}

	// Pivot with zero fill; duplicate (user, title) cells are averaged.
	cells := make([][]float64, len(users))
	rated := make([][]bool, len(users))
	counts := make([][]int, len(users))
	for i := range cells {
		cells[i] = make([]float64, len(titles))
		rated[i] = make([]bool, len(titles))
		counts[i] = make([]int, len(titles))
	}

	for _, j := range joined {
		r := rowOf[j.userID]
		c := colOf[j.title]
		cells[r][c] += j.value
		counts[r][c]++
		rated[r][c] = true
	}
	for r := range cells {
		for c := range cells[r] {
			if counts[r][c] > 1 {
				cells[r][c] /= float64(counts[r][c])
			}
		}
	}

	log.Info().
		Int("users", len(users)).
		Int("titles", len(titles)).
		Int("ratings", len(joined)).
		Msg("user-item matrix built")

	return &Matrix{
		users:          users,
		rowOf:          rowOf,
		titles:         titles,
		colOf:          colOf,
		cells:          cells,
		rated:          rated,
		genresByTitle:  genresByTitle,
		droppedRatings: dropped,
	}
}

// NumUsers returns the number of matrix rows.
func (m *Matrix) NumUsers() int {
	return len(m.users)
}

// NumTitles returns the number of matrix columns.
func (m *Matrix) NumTitles() int {
	return len(m.titles)
}

// Users returns the ordered user IDs. The returned slice is shared and
// must not be modified.
func (m *Matrix) Users() []int {
	return m.users
}

// Titles returns the ordered movie titles. The returned slice is shared
// and must not be modified.
func (m *Matrix) Titles() []string {
	return m.titles
}

// HasUser reports whether the user has a row in the matrix.
func (m *Matrix) HasUser(userID int) bool {
	_, ok := m.rowOf[userID]
	return ok
}

// RowIndex returns the row index of the given user.
func (m *Matrix) RowIndex(userID int) (int, bool) {
	r, ok := m.rowOf[userID]
	return r, ok
}

// UserID returns the user ID at the given row index.
func (m *Matrix) UserID(row int) int {
	return m.users[row]
}

// Title returns the movie title at the given column index.
func (m *Matrix) Title(col int) string {
	return m.titles[col]
}

// Row returns the rating vector of the given row. The returned slice is
// shared and must not be modified.
func (m *Matrix) Row(row int) []float64 {
	return m.cells[row]
}

// Rated reports whether the user at the given row rated the given column.
func (m *Matrix) Rated(row, col int) bool {
	return m.rated[row][col]
}

// Genres returns the genre string for a title, taken from the first
// matching catalog row. Returns empty string for unknown titles.
func (m *Matrix) Genres(title string) string {
	return m.genresByTitle[title]
}

// DroppedRatings returns how many ratings were dropped during the join
// because their movie ID had no catalog entry.
func (m *Matrix) DroppedRatings() int {
	return m.droppedRatings
}
