// SPDX-License-Identifier: MIT
// Package: ligand/fixture
//
// impl_single.go - complete graphs where every node has the same label.
// These fixtures are unnamed.

package fixture

import "github.com/katalvlaran/ligand/core"

// K3SingleLabel returns an unnamed K3 whose nodes are all labeled A.
func K3SingleLabel() *core.Graph {
	return MustBuild(BuildGraph(nil, Nodes(k3SingleNodes...), Edges(k3SingleEdges...)))
}

// K4SingleLabel returns an unnamed K4 whose nodes are all labeled A.
func K4SingleLabel() *core.Graph {
	return MustBuild(BuildGraph(nil, Nodes(k4SingleNodes...), Edges(k4SingleEdges...)))
}
