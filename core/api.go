// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only summary of a graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a compact snapshot of a graph's size and completeness.
type GraphStats struct {
	Name              string
	VertexCount       int
	EdgeCount         int
	CompleteEdgeCount int // n(n-1)/2 for the observed vertex count
	Complete          bool
	DistinctLabels    int
	ColoredEdgeCount  int
}

// Stats produces a deterministic, read-only snapshot of name, catalog sizes
// and the completeness verdict.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot name, vertex count and labels, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot edge count and scan colors, then release.
//
// Behavior highlights:
//   - Avoids holding both locks simultaneously.
//   - Suitable for diagnostics and failure messages of fixture checks.
//
// Determinism:
//   - Deterministic for a fixed graph state; under concurrent mutation each
//     phase is internally consistent.
//
// Complexity:
//   - Time O(V+E), Space O(V).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Name:        g.name,
		VertexCount: len(g.vertices),
	}
	seen := make(map[string]struct{}, len(g.vertices))
	for _, v := range g.vertices {
		seen[v.FeatType] = struct{}{}
	}
	stats.DistinctLabels = len(seen)
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	var e *Edge
	for _, e = range g.edges {
		if e.Color != "" {
			stats.ColoredEdgeCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	stats.CompleteEdgeCount = CompleteEdgeCount(stats.VertexCount)
	stats.Complete = stats.EdgeCount == stats.CompleteEdgeCount

	return &stats
}
