// Movie Recommendation System - MovieLens User-Based Collaborative Filtering
// Copyright 2026 Anirudh Vashist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anirudh-Vashist/movie-recommendation-system

package matrix

import (
	"io"
	"math"
	"reflect"
	"testing"

	"github.com/Anirudh-Vashist/movie-recommendation-system/internal/dataset"
	"github.com/Anirudh-Vashist/movie-recommendation-system/internal/logging"
)

func buildTest(t *testing.T, tables *dataset.Tables) *Matrix {
	t.Helper()
	return Build(tables, logging.NewTestLogger(io.Discard))
}

func TestBuildPivotShape(t *testing.T) {
	tables := &dataset.Tables{
		Movies: []dataset.Movie{
			{ID: 1, Title: "A", Genres: "Action"},
			{ID: 2, Title: "B", Genres: "Comedy"},
			{ID: 3, Title: "C", Genres: "Drama"},
		},
		Ratings: []dataset.Rating{
			{UserID: 7, MovieID: 1, Value: 5.0},
			{UserID: 3, MovieID: 2, Value: 4.0},
			{UserID: 7, MovieID: 3, Value: 3.0},
		},
	}

	m := buildTest(t, tables)

	// Users ascending, titles ascending.
	if !reflect.DeepEqual(m.Users(), []int{3, 7}) {
		t.Errorf("Users() = %v, want [3 7]", m.Users())
	}
	if !reflect.DeepEqual(m.Titles(), []string{"A", "B", "C"}) {
		t.Errorf("Titles() = %v, want [A B C]", m.Titles())
	}

	row7, ok := m.RowIndex(7)
	if !ok {
		t.Fatal("RowIndex(7) not found")
	}
	if got := m.Row(row7); !reflect.DeepEqual(got, []float64{5.0, 0, 3.0}) {
		t.Errorf("Row(7) = %v, want [5 0 3]", got)
	}
}

func TestBuildRatedMaskDistinguishesZero(t *testing.T) {
	tables := &dataset.Tables{
		Movies: []dataset.Movie{
			{ID: 1, Title: "A"},
			{ID: 2, Title: "B"},
		},
		Ratings: []dataset.Rating{
			// An explicit zero rating must not look like "unrated".
			{UserID: 1, MovieID: 1, Value: 0.0},
		},
	}

	m := buildTest(t, tables)
	row, _ := m.RowIndex(1)

	if !m.Rated(row, 0) {
		t.Error("Rated(A) = false, want true for explicit zero rating")
	}
	if m.Rated(row, 1) {
		t.Error("Rated(B) = true, want false for absent rating")
	}
	if m.Row(row)[0] != 0 || m.Row(row)[1] != 0 {
		t.Errorf("Row = %v, want both cells zero", m.Row(row))
	}
}

func TestBuildDropsUnknownMovies(t *testing.T) {
	tables := &dataset.Tables{
		Movies: []dataset.Movie{
			{ID: 1, Title: "A"},
		},
		Ratings: []dataset.Rating{
			{UserID: 1, MovieID: 1, Value: 5.0},
			{UserID: 1, MovieID: 99, Value: 4.0},
			{UserID: 2, MovieID: 98, Value: 3.0},
		},
	}

	m := buildTest(t, tables)

	if m.DroppedRatings() != 2 {
		t.Errorf("DroppedRatings() = %d, want 2", m.DroppedRatings())
	}
	// User 2 only rated an unknown movie and must not get a row.
	if m.HasUser(2) {
		t.Error("HasUser(2) = true, want false after join drop")
	}
	if m.NumUsers() != 1 || m.NumTitles() != 1 {
		t.Errorf("shape = %dx%d, want 1x1", m.NumUsers(), m.NumTitles())
	}
}

func TestBuildAveragesDuplicateCells(t *testing.T) {
	// Two catalog entries share a title, so both ratings land in one column.
	tables := &dataset.Tables{
		Movies: []dataset.Movie{
			{ID: 1, Title: "Same", Genres: "Action"},
			{ID: 2, Title: "Same", Genres: "Comedy"},
		},
		Ratings: []dataset.Rating{
			{UserID: 1, MovieID: 1, Value: 2.0},
			{UserID: 1, MovieID: 2, Value: 4.0},
		},
	}

	m := buildTest(t, tables)
	row, _ := m.RowIndex(1)

	if got := m.Row(row)[0]; math.Abs(got-3.0) > 1e-9 {
		t.Errorf("duplicate cell = %v, want mean 3.0", got)
	}
	// First catalog row wins the genre lookup.
	if got := m.Genres("Same"); got != "Action" {
		t.Errorf("Genres(Same) = %q, want %q", got, "Action")
	}
}

func TestBuildEmptyRatings(t *testing.T) {
	tables := &dataset.Tables{
		Movies:  []dataset.Movie{{ID: 1, Title: "A"}},
		Ratings: nil,
	}

	m := buildTest(t, tables)
	if m.NumUsers() != 0 || m.NumTitles() != 0 {
		t.Errorf("shape = %dx%d, want 0x0", m.NumUsers(), m.NumTitles())
	}
	if m.HasUser(1) {
		t.Error("HasUser(1) = true on empty matrix")
	}
}

func TestGenresUnknownTitle(t *testing.T) {
	m := buildTest(t, &dataset.Tables{})
	if got := m.Genres("nope"); got != "" {
		t.Errorf("Genres(unknown) = %q, want empty", got)
	}
}
