// Package core provides a thread-safe, in-memory labeled graph with a
// minimal API surface, tuned for small pharmacophore-style graphs where every
// node carries a categorical label and every edge carries an integer distance.
//
// The Graph G = (V,E) is:
//
//   - Undirected: an edge {u,v} is stored once and reachable from both ends.
//   - Simple: self-loops and parallel edges are rejected (ErrLoopNotAllowed,
//     ErrMultiEdgeNotAllowed).
//   - Labeled: every vertex has exactly one feat_type label; labels may repeat.
//   - Attributed: every edge has exactly one distance and an optional color.
//   - Optionally named (WithName) for diagnostics.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int, featType string) error   // O(1), idempotent for same label
//	HasVertex(id int) bool                     // O(1)
//	Vertex(id int) (Vertex, error)             // O(1), value copy
//
//	// Edge lifecycle
//	AddEdge(u, v int, distance int64, opts ...EdgeOption) (edgeID string, err error) // O(1)
//	HasEdge(u, v int) bool                     // O(1), symmetric
//	Edge(u, v int) (Edge, error)               // O(1), value copy
//
//	// Query
//	Vertices() []int                           // O(V·log V), ascending
//	Edges() []Edge                             // O(E·log E), ascending by (From,To)
//	Neighbors(id int) ([]int, error)           // O(d·log d)
//	Labels() map[int]string                    // O(V)
//	LabelCounts() map[string]int               // O(V)
//
//	// Counts & completeness
//	VertexCount(), EdgeCount() int             // O(1)
//	IsComplete() bool                          // O(1): |E| == n(n-1)/2
//
//	// Copies
//	Clone() *Graph                             // O(V+E) deep copy
//	InducedSubgraph(g, keep) *Graph            // O(V+E) view
//	Snapshot() Snapshot                        // O(V+E) plain value
//
// Edge struct fields:
//
//	ID       string // "e1", "e2", ...
//	From     int    // smaller endpoint
//	To       int    // larger endpoint
//	Distance int64  // integer weight
//	Color    string // optional marker
//
// Vertices and edges are handed out by value, so a returned Graph cannot be
// mutated through its query results.
package core
