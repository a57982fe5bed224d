// Package core defines the central Graph, Vertex, and Edge types of a labeled
// undirected simple graph, and provides thread-safe primitives for building,
// querying, and cloning such graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for the
// vertex catalog and name, muEdgeAdj for edges and adjacency), so graphs can be
// read from many goroutines at once.
//
// This file declares Vertex, Edge, Pair, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyLabel          - vertex label (feat_type) is the empty string.
//	ErrLabelConflict       - vertex re-added with a different label.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadDistance         - negative edge distance.
//	ErrLoopNotAllowed      - self-loop (u == v).
//	ErrMultiEdgeNotAllowed - second edge between the same pair.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates that a vertex was added without a feat_type label.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrLabelConflict indicates an existing vertex was re-added with another label.
	ErrLabelConflict = errors.New("core: vertex already exists with a different label")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadDistance indicates a negative distance was supplied for an edge.
	ErrBadDistance = errors.New("core: edge distance must be non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a labeled node in the graph.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID int

	// FeatType is the categorical label of the vertex ("A", "D", "R", ...).
	// Labels may repeat across distinct vertices.
	FeatType string
}

// Edge represents an undirected connection between two vertices.
//
// From is always the smaller endpoint ID and To the larger one.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the smaller endpoint ID.
	From int

	// To is the larger endpoint ID.
	To int

	// Distance is the integer weight of the edge.
	Distance int64

	// Color is an optional marker; empty when unset.
	Color string
}

// Pair returns the unordered endpoint key of the edge.
func (e Edge) Pair() Pair { return Pair{U: e.From, V: e.To} }

// Pair is an unordered pair of distinct vertex IDs, normalized so that U < V.
type Pair struct {
	U int
	V int
}

// NewPair returns the normalized Pair for endpoints a and b.
func NewPair(a, b int) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{U: a, V: b}
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithName sets the display name of the Graph.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithColor marks the edge with the given color.
func WithColor(color string) EdgeOption {
	return func(e *Edge) { e.Color = color }
}

// Graph is the core in-memory labeled graph.
//
// It is undirected and simple: no self-loops, at most one edge per pair.
// muVert protects name and vertices; muEdgeAdj protects edges and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards name and vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	name string

	// Storage
	nextEdgeID uint64          // atomic edge ID generator
	vertices   map[int]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge

	// adjacency[u][v] = edge ID, mirrored for v→u.
	adjacency map[int]map[int]string
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[int]map[int]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
