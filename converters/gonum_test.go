package converters_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/ligand/converters"
	"github.com/katalvlaran/ligand/core"
	"github.com/katalvlaran/ligand/fixture"
)

func TestToGonum_K6(t *testing.T) {
	src := fixture.K6RepeatedLabels()

	wg, labels, err := converters.ToGonum(src)
	require.NoError(t, err)

	assert.Equal(t, 6, wg.Nodes().Len())
	assert.Len(t, graph.WeightedEdgesOf(wg.WeightedEdges()), 15)
	assert.Equal(t, map[int64]string{1: "D", 2: "R", 3: "R", 4: "A", 5: "D", 6: "R"}, labels)

	for _, e := range src.Edges() {
		w, ok := wg.Weight(int64(e.From), int64(e.To))
		require.True(t, ok, "%d-%d", e.From, e.To)
		assert.Equal(t, float64(e.Distance), w)
		// undirected: symmetric lookup
		w, ok = wg.Weight(int64(e.To), int64(e.From))
		require.True(t, ok)
		assert.Equal(t, float64(e.Distance), w)
	}

	w, ok := wg.Weight(3, 3)
	assert.True(t, ok)
	assert.Zero(t, w)
}

func TestToGonum_Nil(t *testing.T) {
	_, _, err := converters.ToGonum(nil)
	assert.ErrorIs(t, err, converters.ErrGraphNil)
}

func TestGonumRoundTrip(t *testing.T) {
	for _, key := range []string{fixture.KeyCompleteG, fixture.KeyK5RepeatedLabels, fixture.KeyK3SingleLabel} {
		src, err := fixture.Lookup(key)
		require.NoError(t, err)

		wg, labels, err := converters.ToGonum(src)
		require.NoError(t, err)

		back, err := converters.FromGonum(wg, labels, core.WithName(src.Name()))
		require.NoError(t, err)
		if diff := cmp.Diff(src.Snapshot(), back.Snapshot()); diff != "" {
			t.Fatalf("%s: round trip differs:\n%s", key, diff)
		}
		assert.True(t, back.IsComplete(), key)
	}
}

func TestFromGonum_Errors(t *testing.T) {
	_, err := converters.FromGonum(nil, nil)
	assert.ErrorIs(t, err, converters.ErrGraphNil)

	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	wg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 2.5})

	_, err = converters.FromGonum(wg, map[int64]string{1: "A"})
	assert.ErrorIs(t, err, converters.ErrMissingLabel)

	_, err = converters.FromGonum(wg, map[int64]string{1: "A", 2: "D"})
	assert.ErrorIs(t, err, converters.ErrFractionalWeight)

	neg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	neg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: -3})
	_, err = converters.FromGonum(neg, map[int64]string{1: "A", 2: "D"})
	assert.ErrorIs(t, err, core.ErrBadDistance)
}
