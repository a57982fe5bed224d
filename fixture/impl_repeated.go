// SPDX-License-Identifier: MIT
// Package: ligand/fixture
//
// impl_repeated.go - complete graphs with repeated node labels.

package fixture

import "github.com/katalvlaran/ligand/core"

// K4RepeatedLabels returns "Graph 1": K4 where nodes 1 and 2 share label A.
func K4RepeatedLabels() *core.Graph {
	return MustBuild(BuildGraph(
		[]BuilderOption{WithName(NameGraph1)},
		Nodes(k4RepeatedNodes...),
		Edges(k4RepeatedEdges...),
	))
}

// K5RepeatedLabels returns "Graph 2": K5 where nodes 3 and 5 share label H.
func K5RepeatedLabels() *core.Graph {
	return MustBuild(BuildGraph(
		[]BuilderOption{WithName(NameGraph2)},
		Nodes(k5RepeatedNodes...),
		Edges(k5RepeatedEdges...),
	))
}

// K6RepeatedLabels returns "Graph 3": K6 where nodes 2, 3 and 6 share label R
// and nodes 1 and 5 share label D.
func K6RepeatedLabels() *core.Graph {
	return MustBuild(BuildGraph(
		[]BuilderOption{WithName(NameGraph3)},
		Nodes(k6RepeatedNodes...),
		Edges(k6RepeatedEdges...),
	))
}
