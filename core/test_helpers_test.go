// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for ligand/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep *testing.T usage out of goroutines in concurrency tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ligand/core"
)

// Common labels used across core tests.
const (
	LabelA = "A"
	LabelD = "D"
	LabelN = "N"
	LabelR = "R"
)

// Common distances used across core tests (avoid magic numbers in test bodies).
const (
	Dist2 = 2
	Dist3 = 3
	Dist4 = 4
	Dist5 = 5
	Dist8 = 8
)

// Common concurrency sizes.
const (
	NReaders = 50
	NCloners = 20
)

// newTriangle returns the named K3 {1:A, 2:D, 3:R} with distances 3, 4, 5.
func newTriangle(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph(core.WithName("tri"))
	mustAddVertex(t, g, 1, LabelA)
	mustAddVertex(t, g, 2, LabelD)
	mustAddVertex(t, g, 3, LabelR)
	mustAddEdge(t, g, 1, 2, Dist3)
	mustAddEdge(t, g, 1, 3, Dist4)
	mustAddEdge(t, g, 2, 3, Dist5)

	return g
}

// newK4 returns the K4 {1:A, 2:N, 3:D, 4:R} with the distances of the
// reference "G" pharmacophore.
func newK4(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph(core.WithName("G"))
	for id, l := range map[int]string{1: LabelA, 2: LabelN, 3: LabelD, 4: LabelR} {
		mustAddVertex(t, g, id, l)
	}
	mustAddEdge(t, g, 1, 2, Dist3)
	mustAddEdge(t, g, 1, 3, Dist4)
	mustAddEdge(t, g, 1, 4, Dist5)
	mustAddEdge(t, g, 2, 3, Dist8)
	mustAddEdge(t, g, 2, 4, Dist4)
	mustAddEdge(t, g, 3, 4, Dist2)

	return g
}

func mustAddVertex(t *testing.T, g *core.Graph, id int, label string) {
	t.Helper()
	require.NoError(t, g.AddVertex(id, label), "AddVertex(%d,%s)", id, label)
}

func mustAddEdge(t *testing.T, g *core.Graph, u, v int, d int64, opts ...core.EdgeOption) string {
	t.Helper()
	eid, err := g.AddEdge(u, v, d, opts...)
	require.NoError(t, err, "AddEdge(%d,%d,%d)", u, v, d)
	require.NotEmpty(t, eid)

	return eid
}
