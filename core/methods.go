// Package core: graph-level methods and internal adjacency helpers.
//
// Adjacency is stored as a nested map adjacency[u][v] = edgeID, mirrored for
// v→u, giving constant-time existence checks in both directions.

package core

// Name returns the display name of the graph ("" when unnamed).
func (g *Graph) Name() string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.name
}

// SetName replaces the display name of the graph.
func (g *Graph) SetName(name string) {
	g.muVert.Lock()
	g.name = name
	g.muVert.Unlock()
}

// CompleteEdgeCount returns n(n-1)/2, the edge count of the complete graph K_n.
// Non-positive n yields 0.
func CompleteEdgeCount(n int) int {
	if n <= 0 {
		return 0
	}

	return n * (n - 1) / 2
}

// IsComplete reports whether every pair of distinct vertices is joined by an
// edge. Because the graph is simple, this is exactly |E| == n(n-1)/2.
// Complexity: O(1).
func (g *Graph) IsComplete() bool {
	n := g.VertexCount()

	return g.EdgeCount() == CompleteEdgeCount(n)
}

// EdgeAttrs is the attribute record of an edge inside a Snapshot.
type EdgeAttrs struct {
	Distance int64
	Color    string
}

// Snapshot is a plain-value copy of a graph's name, labels and edge
// attributes. It holds no locks and compares with == semantics per field, so
// two graphs with equal content produce equal snapshots regardless of edge IDs.
type Snapshot struct {
	Name   string
	Labels map[int]string
	Edges  map[Pair]EdgeAttrs
}

// Snapshot returns the current content of g as a Snapshot.
// Complexity: O(V+E).
func (g *Graph) Snapshot() Snapshot {
	s := Snapshot{
		Name:   g.Name(),
		Labels: g.Labels(),
	}

	g.muEdgeAdj.RLock()
	s.Edges = make(map[Pair]EdgeAttrs, len(g.edges))
	for _, e := range g.edges {
		s.Edges[e.Pair()] = EdgeAttrs{Distance: e.Distance, Color: e.Color}
	}
	g.muEdgeAdj.RUnlock()

	return s
}

// ensureAdjacency makes adjacency[id] non-nil. Caller holds muEdgeAdj.
func ensureAdjacency(g *Graph, id int) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int]string)
	}
}

// linkEdge stores e in the catalog and mirrors it in adjacency.
// Caller holds muEdgeAdj and guarantees both endpoints exist.
func linkEdge(g *Graph, e *Edge) {
	g.edges[e.ID] = e
	ensureAdjacency(g, e.From)
	ensureAdjacency(g, e.To)
	g.adjacency[e.From][e.To] = e.ID
	g.adjacency[e.To][e.From] = e.ID
}
