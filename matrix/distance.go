// Package matrix provides the pairwise distance matrix of a labeled graph,
// backed by a gonum symmetric dense matrix.
//
// Rows and columns follow ascending vertex ID. The diagonal is 0, an edge
// {u,v} contributes its distance at (u,v) and (v,u), and vertex pairs without
// an edge hold +Inf. For the complete graphs built by package fixture every
// off-diagonal entry is finite.
package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ligand/core"
)

// unreachable is the entry for a vertex pair with no edge.
var unreachable = math.Inf(1)

// Distance is the symmetric distance matrix of a graph.
type Distance struct {
	ids   []int       // row/col index → vertex ID
	index map[int]int // vertex ID → row/col index
	sym   *mat.SymDense
}

// NewDistance builds the distance matrix of g.
//
// Stage 1 (Validate): g non-nil and non-empty.
// Stage 2 (Index): vertices in ascending order.
// Stage 3 (Fill): +Inf off-diagonal, then one SetSym per edge.
//
// Complexity: O(V² + E).
func NewDistance(g *core.Graph) (*Distance, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	index := make(map[int]int, n)
	for i, id := range ids {
		index[id] = i
	}

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sym.SetSym(i, j, unreachable)
		}
	}
	for _, e := range g.Edges() {
		sym.SetSym(index[e.From], index[e.To], float64(e.Distance))
	}

	return &Distance{ids: ids, index: index, sym: sym}, nil
}

// IDs returns the vertex ID of every row, in row order.
func (d *Distance) IDs() []int {
	out := make([]int, len(d.ids))
	copy(out, d.ids)

	return out
}

// At returns the distance between vertices u and v (by vertex ID).
// Returns ErrUnknownVertex when either is not indexed.
func (d *Distance) At(u, v int) (float64, error) {
	i, ok := d.index[u]
	if !ok {
		return 0, fmt.Errorf("At(%d,%d): %d: %w", u, v, u, ErrUnknownVertex)
	}
	j, ok := d.index[v]
	if !ok {
		return 0, fmt.Errorf("At(%d,%d): %d: %w", u, v, v, ErrUnknownVertex)
	}

	return d.sym.At(i, j), nil
}

// Sym returns a copy of the underlying matrix for use with gonum routines.
func (d *Distance) Sym() *mat.SymDense {
	c := mat.NewSymDense(len(d.ids), nil)
	c.CopySym(d.sym)

	return c
}

// Equal reports whether d and other index the same vertex IDs and hold the
// same entries.
func (d *Distance) Equal(other *Distance) bool {
	if other == nil || len(d.ids) != len(other.ids) {
		return false
	}
	for i := range d.ids {
		if d.ids[i] != other.ids[i] {
			return false
		}
	}

	return mat.Equal(d.sym, other.sym)
}

// String renders the matrix with gonum's formatter.
func (d *Distance) String() string {
	return fmt.Sprintf("%v", mat.Formatted(d.sym, mat.Squeeze()))
}
