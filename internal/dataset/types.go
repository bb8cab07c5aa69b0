// Movie Recommendation System - MovieLens User-Based Collaborative Filtering
// Copyright 2026 Anirudh Vashist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anirudh-Vashist/movie-recommendation-system

package dataset

import "strings"

// GenreSeparator is the delimiter used in the genres column of the catalog.
const GenreSeparator = "|"

// Movie is one row of the movie catalog. Immutable after loading.
type Movie struct {
	// ID is the catalog movie identifier (join key for ratings).
	ID int `json:"movie_id"`

	// Title is the display title, including the release year suffix
	// the catalog conventionally carries, e.g. "Toy Story (1995)".
	Title string `json:"title"`

	// Genres is the raw delimiter-separated genre string,
	// e.g. "Adventure|Animation|Children".
	Genres string `json:"genres"`
}

// GenreList splits the raw genre string into individual genres.
func (m Movie) GenreList() []string {
	if m.Genres == "" {
		return nil
	}
	return strings.Split(m.Genres, GenreSeparator)
}

// Rating is one (user, movie, value) triple. Immutable after loading.
type Rating struct {
	// UserID identifies the rating user. User IDs are arbitrary
	// integers and need not be contiguous.
	UserID int `json:"user_id"`

	// MovieID references Movie.ID.
	MovieID int `json:"movie_id"`

	// Value is the rating, conventionally 0.5-5.0 in half-steps.
	Value float64 `json:"rating"`
}

// Tables holds both loaded input tables.
type Tables struct {
	Movies  []Movie
	Ratings []Rating
}
