// Package fixture provides the table-driven constructors used by every
// fixture: Nodes inserts labeled vertices, Edges inserts weighted edges.
//
// Design principles:
//   - Single Responsibility: each constructor does one well-defined job.
//   - Error Context: wrap core errors with the method name and offending row.
package fixture

import (
	"fmt"

	"github.com/katalvlaran/ligand/core"
)

// NodeSpec is one row of a node table: a vertex ID and its feat_type label.
type NodeSpec struct {
	ID       int
	FeatType string
}

// EdgeSpec is one row of an edge table: an unordered pair and its distance.
type EdgeSpec struct {
	U, V     int
	Distance int64
}

// Nodes returns a Constructor that inserts the given labeled vertices in
// table order.
//
// Complexity: O(len(specs)).
func Nodes(specs ...NodeSpec) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		var (
			s   NodeSpec
			err error
		)
		for _, s = range specs {
			if err = g.AddVertex(s.ID, s.FeatType); err != nil {
				return fmt.Errorf("%s: %w: %w", MethodNodes, err, ErrConstructFailed)
			}
		}

		return nil
	}
}

// Edges returns a Constructor that inserts the given edges in table order.
// When the config carries an edge color (WithEdgeColor), every edge gets it.
//
// Complexity: O(len(specs)).
func Edges(specs ...EdgeSpec) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		var opts []core.EdgeOption
		if cfg.edgeColor != "" {
			opts = append(opts, core.WithColor(cfg.edgeColor))
		}

		var (
			s   EdgeSpec
			err error
		)
		for _, s = range specs {
			if _, err = g.AddEdge(s.U, s.V, s.Distance, opts...); err != nil {
				return fmt.Errorf("%s: %w: %w", MethodEdges, err, ErrConstructFailed)
			}
		}

		return nil
	}
}

// zipEdges pairs an endpoint list with a parallel distance list, the layout
// used by the G/J/H tables. Lengths are equal by construction of the tables;
// a mismatch is an authoring bug and panics.
func zipEdges(pairs [][2]int, distances []int64) []EdgeSpec {
	if len(pairs) != len(distances) {
		panic(fmt.Sprintf("fixture: %d pairs but %d distances", len(pairs), len(distances)))
	}
	out := make([]EdgeSpec, len(pairs))
	for i, p := range pairs {
		out[i] = EdgeSpec{U: p[0], V: p[1], Distance: distances[i]}
	}

	return out
}
