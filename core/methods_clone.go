// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with the same name and vertices, but no edges.
//
// Every Vertex is re-allocated; the clone shares no storage with g.
// Carries over nextEdgeID so that edges added to the clone never reuse an ID.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(WithName(g.name))
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	var id int
	var v *Vertex
	for id, v = range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, FeatType: v.FeatType}
		clone.adjacency[id] = make(map[int]string)
	}

	return clone
}

// Clone returns a deep copy of the Graph: name, vertices, edges, and adjacency.
// Mutating the clone never affects g and vice versa.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var e *Edge
	for _, e = range g.edges {
		ne := *e
		linkEdge(clone, &ne)
	}

	return clone
}
