// Movie Recommendation System - MovieLens User-Based Collaborative Filtering
// Copyright 2026 Anirudh Vashist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anirudh-Vashist/movie-recommendation-system

// Package cli implements the interactive query loop.
//
// The loop reads user IDs from the console one line at a time and prints
// recommendations for each. Bad input and unknown users are reported and
// the loop keeps going; it terminates cleanly on the exit keyword
// (case-insensitive) or end of input. Any unexpected recommender failure
// is reported and swallowed so a single bad query can never kill the
// session.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Anirudh-Vashist/movie-recommendation-system/internal/logging"
	"github.com/Anirudh-Vashist/movie-recommendation-system/internal/recommend"
)

// Prompt is printed before each query.
const Prompt = "Enter a User ID to get recommendations for (e.g., 1 to 610), or 'exit' to quit:"

// exitKeyword terminates the loop, compared case-insensitively.
const exitKeyword = "exit"

// Recommender answers a single recommendation query.
type Recommender interface {
	Recommend(ctx context.Context, userID int) (*recommend.Result, error)
}

// Loop is the interactive prompt loop.
type Loop struct {
	in     io.Reader
	out    io.Writer
	rec    Recommender
	render Renderer
}

// NewLoop creates a query loop reading from in and writing to out.
func NewLoop(in io.Reader, out io.Writer, rec Recommender, render Renderer) *Loop {
	return &Loop{
		in:     in,
		out:    out,
		rec:    rec,
		render: render,
	}
}

// Run processes queries until the exit keyword, end of input, or context
// cancellation. It returns a non-nil error only for input read failures.
func (l *Loop) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(l.in)

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprintf(l.out, "\n%s ", Prompt)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			// End of input terminates the session like the exit keyword.
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, exitKeyword) {
			return nil
		}

		userID, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(l.out, "❌ Invalid input. Please enter a number.")
			continue
		}

		l.handleQuery(ctx, userID)
	}
}

// handleQuery runs one recommendation query and prints its outcome.
// Failures are reported to the console; only the caller's cancellation
// stops the session.
func (l *Loop) handleQuery(ctx context.Context, userID int) {
	qctx := logging.ContextWithNewQueryID(ctx)
	logger := logging.Ctx(qctx)
	logger.Debug().Int("user_id", userID).Msg("query received")

	result, err := l.rec.Recommend(qctx, userID)
	switch {
	case errors.Is(err, recommend.ErrUserNotFound):
		fmt.Fprintf(l.out, "❌ Error: User ID %d not found.\n", userID)
		return
	case errors.Is(err, context.Canceled):
		return
	case err != nil:
		logger.Error().Err(err).Int("user_id", userID).Msg("query failed")
		fmt.Fprintf(l.out, "An unexpected error occurred: %v\n", err)
		return
	}

	if err := l.render.Render(l.out, result); err != nil {
		logger.Error().Err(err).Int("user_id", userID).Msg("rendering failed")
		fmt.Fprintf(l.out, "An unexpected error occurred: %v\n", err)
	}
}
