// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves vertex IDs, labels, edge IDs and attributes.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges
// whose endpoints are both kept. The name is copied. The input graph is not
// mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[int]bool) *Graph {
	out := NewGraph(WithName(g.Name()))

	g.muVert.RLock()
	var id int
	var v *Vertex
	for id, v = range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, FeatType: v.FeatType}
			out.adjacency[id] = make(map[int]string)
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// Carry the counter so future AddEdge() calls cannot collide with copied IDs.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	var e *Edge
	for _, e = range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		ne := *e
		linkEdge(out, &ne)
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
