package converters

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/ligand/core"
)

// Sentinel errors for conversions.
var (
	// ErrGraphNil indicates a nil source graph.
	ErrGraphNil = errors.New("converters: graph is nil")

	// ErrMissingLabel indicates a gonum node without an entry in the label map.
	ErrMissingLabel = errors.New("converters: node has no label")

	// ErrFractionalWeight indicates a gonum edge weight that is not a whole number.
	ErrFractionalWeight = errors.New("converters: edge weight is not integral")
)

// Self and absent weights of exported gonum graphs: a node is at distance 0
// from itself and unreachable from a non-neighbor.
var (
	gonumSelfWeight   = 0.0
	gonumAbsentWeight = math.Inf(1)
)

// ToGonum exports g as a gonum weighted undirected graph. The returned label
// map is keyed by gonum node ID.
//
// Complexity: O(V + E).
func ToGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, map[int64]string, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	wg := simple.NewWeightedUndirectedGraph(gonumSelfWeight, gonumAbsentWeight)
	labels := g.Labels()
	out := make(map[int64]string, len(labels))

	for _, id := range g.Vertices() {
		nid := int64(id)
		wg.AddNode(simple.Node(nid))
		out[nid] = labels[id]
	}
	for _, e := range g.Edges() {
		wg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(int64(e.From)),
			T: simple.Node(int64(e.To)),
			W: float64(e.Distance),
		})
	}

	return wg, out, nil
}

// FromGonum builds a core.Graph from wg, labeling each node from labels.
// Nodes and edges are inserted in ascending ID order so the resulting edge
// IDs are deterministic.
//
// Errors: ErrGraphNil, ErrMissingLabel, ErrFractionalWeight, or a wrapped
// core error (e.g. core.ErrBadDistance for a negative weight).
//
// Complexity: O(V log V + E log E).
func FromGonum(wg graph.WeightedUndirected, labels map[int64]string, opts ...core.GraphOption) (*core.Graph, error) {
	if wg == nil {
		return nil, ErrGraphNil
	}

	nodes := graph.NodesOf(wg.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	g := core.NewGraph(opts...)
	for _, id := range ids {
		l, ok := labels[id]
		if !ok {
			return nil, fmt.Errorf("FromGonum: node %d: %w", id, ErrMissingLabel)
		}
		if err := g.AddVertex(int(id), l); err != nil {
			return nil, fmt.Errorf("FromGonum: %w", err)
		}
	}

	for _, uid := range ids {
		nbrs := graph.NodesOf(wg.From(uid))
		vids := make([]int64, 0, len(nbrs))
		for _, n := range nbrs {
			if n.ID() > uid {
				vids = append(vids, n.ID())
			}
		}
		sort.Slice(vids, func(i, j int) bool { return vids[i] < vids[j] })

		for _, vid := range vids {
			w := wg.WeightedEdgeBetween(uid, vid).Weight()
			if w != math.Trunc(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("FromGonum: edge %d-%d weight %g: %w", uid, vid, w, ErrFractionalWeight)
			}
			if _, err := g.AddEdge(int(uid), int(vid), int64(w)); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return g, nil
}
