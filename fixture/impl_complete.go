// SPDX-License-Identifier: MIT
// Package: ligand/fixture
//
// impl_complete.go - the complete_graphs family: G, H and J.
//
// Contract:
//   • G and J are K4 with identical edges and distances; they differ only in
//     the label of node 2 (G: N, J: P).
//   • H is built from a deep copy of G plus nodes {5:H, 6:P} and the nine
//     edges that restore completeness, each colored ColorSupergraph.
//   • H's copy of G is independent: mutating H never touches G.

package fixture

import "github.com/katalvlaran/ligand/core"

// CompleteGraphs returns the complete graphs without repeated labels, in the
// order [G, H, J].
//
// Panics with an *IntegrityError if any of the three is not complete.
func CompleteGraphs() []*core.Graph {
	g := buildG()
	h := MustBuild(ExtendGraph(g,
		[]BuilderOption{WithName(NameH), WithEdgeColor(ColorSupergraph)},
		Nodes(hExtraNodes...),
		Edges(zipEdges(hExtraPairs, hExtraDistances)...),
	))
	j := MustBuild(BuildGraph(
		[]BuilderOption{WithName(NameJ)},
		Nodes(jNodes...),
		Edges(zipEdges(k4Pairs, k4Distances)...),
	))

	return []*core.Graph{g, h, j}
}

// buildG builds the reference K4 "G".
func buildG() *core.Graph {
	return MustBuild(BuildGraph(
		[]BuilderOption{WithName(NameG)},
		Nodes(gNodes...),
		Edges(zipEdges(k4Pairs, k4Distances)...),
	))
}
