// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edge/Edges/EdgeCount/Neighbors,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by (From, To) ascending.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Byte form allows appending to a []byte buffer without fmt.
const edgeIDPrefix = 'e'

// AddEdge creates the undirected edge {u,v} with the given distance.
//
// Steps:
//  1. Reject negative distance and self-loops.
//  2. Under muVert read lock, require both endpoints to exist.
//  3. Lock muEdgeAdj, reject an existing edge on the pair.
//  4. Generate eid atomically, build the Edge (normalized From < To), apply opts.
//  5. Store in g.edges and link adjacency both ways.
//
// Errors: ErrBadDistance, ErrLoopNotAllowed, ErrVertexNotFound, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, distance int64, opts ...EdgeOption) (string, error) {
	if distance < 0 {
		return "", fmt.Errorf("AddEdge(%d,%d,d=%d): %w", u, v, distance, ErrBadDistance)
	}
	if u == v {
		return "", fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[u]; !ok {
		return "", fmt.Errorf("AddEdge(%d,%d): endpoint %d: %w", u, v, u, ErrVertexNotFound)
	}
	if _, ok := g.vertices[v]; !ok {
		return "", fmt.Errorf("AddEdge(%d,%d): endpoint %d: %w", u, v, v, ErrVertexNotFound)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacency[u][v]; exists {
		return "", fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	p := NewPair(u, v)
	e := &Edge{ID: nextEdgeID(g), From: p.U, To: p.V, Distance: distance}
	var opt EdgeOption
	for _, opt = range opts {
		opt(e)
	}

	linkEdge(g, e)

	return e.ID, nil
}

// HasEdge reports whether the edge {u,v} exists. Symmetric in u and v.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Edge returns a copy of the edge {u,v}, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Edge(u, v int) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[u][v]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *g.edges[eid], nil
}

// Edges returns copies of all edges sorted by (From, To) ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Neighbors returns the ascending IDs of vertices adjacent to id.
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]int, 0, len(g.adjacency[id]))
	for v := range g.adjacency[id] {
		out = append(out, v)
	}
	sort.Ints(out)

	return out, nil
}

// nextEdgeID returns a new unique textual edge ID.
// Uses a monotonic counter incremented atomically; "e" + decimal digits.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
