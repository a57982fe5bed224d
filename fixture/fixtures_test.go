// Package fixture_test verifies every public fixture: completeness, labels,
// distances, names, supergraph isolation and idempotence.
package fixture_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ligand/core"
	"github.com/katalvlaran/ligand/fixture"
)

// singleFixtures lists the single-graph factories with their expected shape.
var singleFixtures = []struct {
	name     string
	build    func() *core.Graph
	wantName string
	wantN    int
}{
	{name: "k4_repeated_labels", build: fixture.K4RepeatedLabels, wantName: fixture.NameGraph1, wantN: 4},
	{name: "k5_repeated_labels", build: fixture.K5RepeatedLabels, wantName: fixture.NameGraph2, wantN: 5},
	{name: "k6_repeated_labels", build: fixture.K6RepeatedLabels, wantName: fixture.NameGraph3, wantN: 6},
	{name: "k3_single_label", build: fixture.K3SingleLabel, wantName: "", wantN: 3},
	{name: "k4_single_label", build: fixture.K4SingleLabel, wantName: "", wantN: 4},
}

// contiguousIDs returns [1..n].
func contiguousIDs(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

// requireWellFormed checks the result guarantees shared by every fixture.
func requireWellFormed(t *testing.T, g *core.Graph, wantN int) {
	t.Helper()

	require.Equal(t, contiguousIDs(wantN), g.Vertices(), "1-based contiguous node IDs")
	require.Equal(t, core.CompleteEdgeCount(wantN), g.EdgeCount(), "completeness law")
	require.True(t, g.IsComplete())
	require.NoError(t, fixture.ValidateComplete(g))

	for _, id := range g.Vertices() {
		l, err := g.FeatType(id)
		require.NoError(t, err)
		require.NotEmpty(t, l, "node %d has no label", id)
	}
	for _, e := range g.Edges() {
		require.Positive(t, e.Distance, "edge %d-%d", e.From, e.To)
	}
}

func TestSingleFixtures_Shape(t *testing.T) {
	t.Parallel()

	for _, tc := range singleFixtures {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := tc.build()
			requireWellFormed(t, g, tc.wantN)
			assert.Equal(t, tc.wantName, g.Name())
			assert.Zero(t, g.Stats().ColoredEdgeCount)
		})
	}
}

func TestFixtures_Idempotent(t *testing.T) {
	t.Parallel()

	for _, tc := range singleFixtures {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a, b := tc.build(), tc.build()
			require.NotSame(t, a, b)
			if diff := cmp.Diff(a.Snapshot(), b.Snapshot()); diff != "" {
				t.Fatalf("two calls differ (-first +second):\n%s", diff)
			}
		})
	}

	first, second := fixture.CompleteGraphs(), fixture.CompleteGraphs()
	require.Len(t, first, 3)
	require.Len(t, second, 3)
	for i := range first {
		require.NotSame(t, first[i], second[i])
		if diff := cmp.Diff(first[i].Snapshot(), second[i].Snapshot()); diff != "" {
			t.Fatalf("CompleteGraphs()[%d] differs between calls:\n%s", i, diff)
		}
	}
}

func TestCompleteGraphs_Shape(t *testing.T) {
	t.Parallel()

	gs := fixture.CompleteGraphs()
	require.Len(t, gs, 3)
	g, h, j := gs[0], gs[1], gs[2]

	assert.Equal(t, fixture.NameG, g.Name())
	assert.Equal(t, fixture.NameH, h.Name())
	assert.Equal(t, fixture.NameJ, j.Name())

	requireWellFormed(t, g, 4)
	requireWellFormed(t, h, 6)
	requireWellFormed(t, j, 4)

	assert.Equal(t, map[int]string{1: "A", 2: "N", 3: "D", 4: "R"}, g.Labels())
	assert.Equal(t, map[int]string{1: "A", 2: "N", 3: "D", 4: "R", 5: "H", 6: "P"}, h.Labels())
}

func TestCompleteGraphs_GAndJDifferOnlyAtNode2(t *testing.T) {
	t.Parallel()

	gs := fixture.CompleteGraphs()
	g, j := gs[0].Snapshot(), gs[2].Snapshot()

	if diff := cmp.Diff(g.Edges, j.Edges); diff != "" {
		t.Fatalf("G and J edge sets differ:\n%s", diff)
	}

	require.Equal(t, fixture.LabelN, g.Labels[2])
	require.Equal(t, fixture.LabelP, j.Labels[2])
	for id := 1; id <= 4; id++ {
		if id == 2 {
			continue
		}
		assert.Equal(t, g.Labels[id], j.Labels[id], "node %d", id)
	}

	want := map[core.Pair]int64{
		core.NewPair(1, 2): 3, core.NewPair(1, 3): 4, core.NewPair(1, 4): 5,
		core.NewPair(2, 3): 8, core.NewPair(2, 4): 4, core.NewPair(3, 4): 2,
	}
	for p, d := range want {
		assert.Equal(t, d, g.Edges[p].Distance, "G %v", p)
	}
}

func TestCompleteGraphs_HIsSupergraphOfG(t *testing.T) {
	t.Parallel()

	gs := fixture.CompleteGraphs()
	g, h := gs[0], gs[1]

	sub := core.InducedSubgraph(h, map[int]bool{1: true, 2: true, 3: true, 4: true})
	sub.SetName(g.Name())
	if diff := cmp.Diff(g.Snapshot(), sub.Snapshot()); diff != "" {
		t.Fatalf("H restricted to {1..4} is not G:\n%s", diff)
	}

	// the nine extension edges carry the supergraph color and literal distances
	wantNew := map[core.Pair]int64{
		core.NewPair(1, 5): 4, core.NewPair(1, 6): 3, core.NewPair(2, 5): 5,
		core.NewPair(2, 6): 6, core.NewPair(3, 5): 5, core.NewPair(3, 6): 2,
		core.NewPair(4, 5): 8, core.NewPair(4, 6): 7, core.NewPair(5, 6): 4,
	}
	hs := h.Snapshot()
	for p, d := range wantNew {
		assert.Equal(t, core.EdgeAttrs{Distance: d, Color: fixture.ColorSupergraph}, hs.Edges[p], "H %v", p)
	}
	assert.Equal(t, len(wantNew), h.Stats().ColoredEdgeCount)
}

func TestCompleteGraphs_HIsolatedFromG(t *testing.T) {
	t.Parallel()

	gs := fixture.CompleteGraphs()
	g, h := gs[0], gs[1]
	before := g.Snapshot()

	require.NoError(t, h.AddVertex(7, fixture.LabelA))
	_, err := h.AddEdge(1, 7, 9)
	require.NoError(t, err)
	h.SetName("mutated")

	if diff := cmp.Diff(before, g.Snapshot()); diff != "" {
		t.Fatalf("mutating H changed G:\n%s", diff)
	}
}

func TestK4RepeatedLabels_Labels(t *testing.T) {
	t.Parallel()

	g := fixture.K4RepeatedLabels()
	assert.Equal(t, []int{1, 2}, g.VerticesWithLabel(fixture.LabelA))
	assert.Equal(t, map[string]int{"A": 2, "D": 1, "R": 1}, g.LabelCounts())
}

func TestK5RepeatedLabels_Labels(t *testing.T) {
	t.Parallel()

	g := fixture.K5RepeatedLabels()
	assert.Equal(t, []int{3, 5}, g.VerticesWithLabel(fixture.LabelH))
	assert.Equal(t, map[string]int{"A": 1, "R": 1, "H": 2, "D": 1}, g.LabelCounts())
}

func TestK6RepeatedLabels_Labels(t *testing.T) {
	t.Parallel()

	g := fixture.K6RepeatedLabels()
	assert.Equal(t, []int{2, 3, 6}, g.VerticesWithLabel(fixture.LabelR))
	assert.Equal(t, []int{1, 5}, g.VerticesWithLabel(fixture.LabelD))
	assert.Equal(t, map[string]int{"R": 3, "D": 2, "A": 1}, g.LabelCounts())

	e, err := g.Edge(2, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(9), e.Distance)
}

func TestSingleLabel_AllA(t *testing.T) {
	t.Parallel()

	for _, g := range []*core.Graph{fixture.K3SingleLabel(), fixture.K4SingleLabel()} {
		counts := g.LabelCounts()
		assert.Equal(t, map[string]int{fixture.LabelA: g.VertexCount()}, counts)
	}

	k3 := fixture.K3SingleLabel()
	e, err := k3.Edge(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), e.Distance)
}
