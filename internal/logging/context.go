// Movie Recommendation System - MovieLens User-Based Collaborative Filtering
// Copyright 2026 Anirudh Vashist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anirudh-Vashist/movie-recommendation-system

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// contextKey is a private type for context keys in this package.
type contextKey string

const (
	// queryIDKey is the context key for per-query correlation IDs.
	queryIDKey contextKey = "query_id"

	// loggerKey is the context key for storing a logger instance.
	loggerKey contextKey = "logger"
)

// GenerateQueryID creates a new unique query correlation ID.
// Returns the first 8 characters of a UUID for readability; each
// interactive query gets its own ID so its log events can be grouped.
func GenerateQueryID() string {
	return uuid.New().String()[:8]
}

// ContextWithQueryID returns a new context carrying the given query ID.
func ContextWithQueryID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, queryIDKey, id)
}

// ContextWithNewQueryID returns a context with a newly generated query ID.
func ContextWithNewQueryID(ctx context.Context) context.Context {
	return ContextWithQueryID(ctx, GenerateQueryID())
}

// QueryIDFromContext retrieves the query ID from context.
// Returns empty string if not present.
func QueryIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(queryIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithLogger stores a logger in the context.
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Ctx returns a logger enriched with any query ID found in the context.
// If the context carries an explicit logger, that logger is returned.
//
//	logging.Ctx(ctx).Info().Int("user_id", id).Msg("query received")
func Ctx(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}

	logger := Logger()
	if id := QueryIDFromContext(ctx); id != "" {
		logger = logger.With().Str("query_id", id).Logger()
	}
	return logger
}
