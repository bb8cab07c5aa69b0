// Movie Recommendation System - MovieLens User-Based Collaborative Filtering
// Copyright 2026 Anirudh Vashist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anirudh-Vashist/movie-recommendation-system

package cli

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/Anirudh-Vashist/movie-recommendation-system/internal/recommend"
)

// Renderer writes one query result to the console.
type Renderer interface {
	Render(w io.Writer, res *recommend.Result) error
}

// TextRenderer produces the classic console listing: a header of similar
// users, then one line per recommended movie.
type TextRenderer struct {
	// TopN is the configured result limit, shown in the section header.
	TopN int
}

// NewTextRenderer creates the text renderer.
func NewTextRenderer(topN int) *TextRenderer {
	if topN <= 0 {
		topN = 10
	}
	return &TextRenderer{TopN: topN}
}

// Render writes the result in plain text.
func (r *TextRenderer) Render(w io.Writer, res *recommend.Result) error {
	if len(res.Neighbors) == 0 {
		_, err := fmt.Fprintln(w, "Could not find any similar users.")
		return err
	}

	if _, err := fmt.Fprintf(w, "\nTop similar users for User ID %d:\n", res.UserID); err != nil {
		return err
	}
	for _, n := range res.Neighbors {
		if _, err := fmt.Fprintf(w, "  User %d: %.4f\n", n.UserID, n.Similarity); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n--- Top %d Movie Recommendations for User ID %d ---\n", r.TopN, res.UserID); err != nil {
		return err
	}
	for _, item := range res.Items {
		if _, err := fmt.Fprintf(w, "🎬 Title: %s, Genre: %s (Score: %.2f)\n",
			item.Title, item.Genres, item.Score); err != nil {
			return err
		}
	}

	return nil
}

// JSONRenderer writes the result as indented JSON, one document per query.
type JSONRenderer struct{}

// Render writes the result as JSON.
func (JSONRenderer) Render(w io.Writer, res *recommend.Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	data = append(data, '\n')

	_, err = w.Write(data)
	return err
}
