// Movie Recommendation System - MovieLens User-Based Collaborative Filtering
// Copyright 2026 Anirudh Vashist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anirudh-Vashist/movie-recommendation-system

package dataset

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Anirudh-Vashist/movie-recommendation-system/internal/logging"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func testLoader() *Loader {
	return NewLoader(logging.NewTestLogger(io.Discard))
}

func TestLoadMovies(t *testing.T) {
	path := writeFile(t, "movies.csv", `movieId,title,genres
1,Toy Story (1995),Adventure|Animation|Children
2,Jumanji (1995),Adventure|Children|Fantasy
3,"Heat (1995)",Action|Crime|Thriller
`)

	movies, err := testLoader().LoadMovies(path)
	if err != nil {
		t.Fatalf("LoadMovies() error = %v", err)
	}

	want := []Movie{
		{ID: 1, Title: "Toy Story (1995)", Genres: "Adventure|Animation|Children"},
		{ID: 2, Title: "Jumanji (1995)", Genres: "Adventure|Children|Fantasy"},
		{ID: 3, Title: "Heat (1995)", Genres: "Action|Crime|Thriller"},
	}
	if !reflect.DeepEqual(movies, want) {
		t.Errorf("LoadMovies() = %+v, want %+v", movies, want)
	}
}

func TestLoadMoviesQuotedTitleWithComma(t *testing.T) {
	path := writeFile(t, "movies.csv", `movieId,title,genres
11,"American President, The (1995)",Comedy|Drama|Romance
`)

	movies, err := testLoader().LoadMovies(path)
	if err != nil {
		t.Fatalf("LoadMovies() error = %v", err)
	}
	if movies[0].Title != "American President, The (1995)" {
		t.Errorf("Title = %q, want comma preserved", movies[0].Title)
	}
}

func TestLoadRatings(t *testing.T) {
	// The conventional ratings file carries a timestamp column; it must be ignored.
	path := writeFile(t, "ratings.csv", `userId,movieId,rating,timestamp
1,1,4.0,964982703
1,3,4.5,964981247
2,1,3.5,964982224
`)

	ratings, err := testLoader().LoadRatings(path)
	if err != nil {
		t.Fatalf("LoadRatings() error = %v", err)
	}

	want := []Rating{
		{UserID: 1, MovieID: 1, Value: 4.0},
		{UserID: 1, MovieID: 3, Value: 4.5},
		{UserID: 2, MovieID: 1, Value: 3.5},
	}
	if !reflect.DeepEqual(ratings, want) {
		t.Errorf("LoadRatings() = %+v, want %+v", ratings, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := testLoader().LoadMovies(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("LoadMovies(missing) error = %v, want ErrFileNotFound", err)
	}
}

func TestLoadSchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		load    func(l *Loader, path string) error
	}{
		{
			name:    "movies missing genres column",
			file:    "movies.csv",
			content: "movieId,title\n1,Toy Story (1995)\n",
			load: func(l *Loader, path string) error {
				_, err := l.LoadMovies(path)
				return err
			},
		},
		{
			name:    "movies non-integer id",
			file:    "movies.csv",
			content: "movieId,title,genres\nabc,Toy Story (1995),Comedy\n",
			load: func(l *Loader, path string) error {
				_, err := l.LoadMovies(path)
				return err
			},
		},
		{
			name:    "ratings non-numeric rating",
			file:    "ratings.csv",
			content: "userId,movieId,rating\n1,1,great\n",
			load: func(l *Loader, path string) error {
				_, err := l.LoadRatings(path)
				return err
			},
		},
		{
			name:    "ratings missing userId column",
			file:    "ratings.csv",
			content: "movieId,rating\n1,4.0\n",
			load: func(l *Loader, path string) error {
				_, err := l.LoadRatings(path)
				return err
			},
		},
		{
			name:    "empty file",
			file:    "movies.csv",
			content: "",
			load: func(l *Loader, path string) error {
				_, err := l.LoadMovies(path)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			err := tt.load(testLoader(), path)
			if !errors.Is(err, ErrSchema) {
				t.Errorf("error = %v, want ErrSchema", err)
			}
		})
	}
}

func TestLoadBothTables(t *testing.T) {
	moviesPath := writeFile(t, "movies.csv", "movieId,title,genres\n1,Toy Story (1995),Comedy\n")
	ratingsPath := writeFile(t, "ratings.csv", "userId,movieId,rating\n1,1,5.0\n")

	tables, err := testLoader().Load(moviesPath, ratingsPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tables.Movies) != 1 || len(tables.Ratings) != 1 {
		t.Errorf("Load() sizes = %d movies, %d ratings; want 1, 1",
			len(tables.Movies), len(tables.Ratings))
	}
}

func TestGenreList(t *testing.T) {
	tests := []struct {
		name  string
		movie Movie
		want  []string
	}{
		{
			name:  "multiple genres",
			movie: Movie{Genres: "Action|Crime|Thriller"},
			want:  []string{"Action", "Crime", "Thriller"},
		},
		{
			name:  "single genre",
			movie: Movie{Genres: "Documentary"},
			want:  []string{"Documentary"},
		},
		{
			name:  "empty genres",
			movie: Movie{Genres: ""},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.movie.GenreList(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GenreList() = %v, want %v", got, tt.want)
			}
		})
	}
}
