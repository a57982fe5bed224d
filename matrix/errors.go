// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with context);
// tests check them via errors.Is.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed in.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrEmptyGraph indicates a graph with no vertices; gonum cannot hold a 0×0 matrix.
	ErrEmptyGraph = errors.New("matrix: graph has no vertices")

	// ErrUnknownVertex indicates that a referenced vertex ID is not in the index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")
)
