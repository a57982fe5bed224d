// File: methods_vertices.go
// Role: Vertex lifecycle & label queries.
//
// Determinism:
//   - Vertices() and VerticesWithLabel() return IDs sorted ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a labeled vertex if missing.
//
// Implementation:
//   - Stage 1: Validate non-empty label (ErrEmptyLabel).
//   - Stage 2: Under muVert write lock, check presence. An existing vertex with
//     the same label is a no-op; a different label is ErrLabelConflict.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Errors:
//   - ErrEmptyLabel: if featType == "".
//   - ErrLabelConflict: if id exists with another label.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id int, featType string) error {
	if featType == "" {
		return fmt.Errorf("AddVertex(%d): %w", id, ErrEmptyLabel)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if v, exists := g.vertices[id]; exists {
		if v.FeatType != featType {
			return fmt.Errorf("AddVertex(%d): have %q, got %q: %w", id, v.FeatType, featType, ErrLabelConflict)
		}

		return nil
	}

	g.vertices[id] = &Vertex{ID: id, FeatType: featType}

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex with the given ID.
// Returns ErrVertexNotFound if absent.
func (g *Graph) Vertex(id int) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// FeatType returns the label of vertex id.
func (g *Graph) FeatType(id int) (string, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return "", err
	}

	return v.FeatType, nil
}

// Vertices returns all vertex IDs in ascending order.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]int, 0, len(g.vertices))
	var id int
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Labels returns a fresh map from vertex ID to label.
// Complexity: O(V).
func (g *Graph) Labels() map[int]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make(map[int]string, len(g.vertices))
	var id int
	var v *Vertex
	for id, v = range g.vertices {
		out[id] = v.FeatType
	}

	return out
}

// LabelCounts returns how many vertices carry each label.
// Complexity: O(V).
func (g *Graph) LabelCounts() map[string]int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make(map[string]int)
	for _, v := range g.vertices {
		out[v.FeatType]++
	}

	return out
}

// VerticesWithLabel returns the ascending IDs of vertices labeled featType.
// The result is empty (non-nil) when no vertex matches.
func (g *Graph) VerticesWithLabel(featType string) []int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]int, 0)
	for id, v := range g.vertices {
		if v.FeatType == featType {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	return ids
}
