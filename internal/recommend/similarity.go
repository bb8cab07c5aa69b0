// Movie Recommendation System - MovieLens User-Based Collaborative Filtering
// Copyright 2026 Anirudh Vashist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anirudh-Vashist/movie-recommendation-system

package recommend

import "math"

// Cosine computes the cosine similarity of two equal-length vectors:
// dot(a, b) / (|a| * |b|), in [-1, 1]. A zero-norm vector yields 0 so the
// division by zero never happens.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// PairwiseCosine computes the full symmetric cosine-similarity matrix over
// the given rows. Entry (i, j) is the similarity of row i and row j; the
// upper triangle is computed once and mirrored, so sim[i][j] == sim[j][i]
// holds exactly, not just within floating-point tolerance.
func PairwiseCosine(rows [][]float64) [][]float64 {
	n := len(rows)

	norms := make([]float64, n)
	for i, row := range rows {
		var sum float64
		for _, v := range row {
			sum += v * v
		}
		norms[i] = math.Sqrt(sum)
	}

	sims := make([][]float64, n)
	for i := range sims {
		sims[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var s float64
			if norms[i] != 0 && norms[j] != 0 {
				var dot float64
				a, b := rows[i], rows[j]
				for k := range a {
					dot += a[k] * b[k]
				}
				s = dot / (norms[i] * norms[j])
			}
			sims[i][j] = s
			sims[j][i] = s
		}
	}

	return sims
}
