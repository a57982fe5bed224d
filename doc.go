// Package ligand provides small, fixed, labeled complete graphs for testing
// clique and subgraph-matching code over molecular-style graphs.
//
// What is in the box?
//
//	core/         thread-safe labeled graph: integer vertex IDs carrying a
//	              feature type, undirected edges carrying a distance
//	fixture/      the named fixtures (G, H, J, K4/K5/K6 with repeated labels,
//	              K3/K4 with a single label), the completeness check and a
//	              key → factory catalog
//	converters/   export to and import from gonum's weighted undirected graph
//	matrix/       symmetric pairwise distance matrix on gonum/mat
//
// Every fixture is complete: n vertices carry exactly n·(n−1)/2 edges. A
// fixture that fails that check panics with *fixture.IntegrityError, since
// the data is literal and a mismatch is an authoring bug.
//
// Quick start:
//
//	set := fixture.CompleteGraphs() // [G, H, J]
//	g := set[0]
//	d, _ := matrix.NewDistance(g)
//	v, _ := d.At(3, 4) // 2
//
// Install:
//
//	go get github.com/katalvlaran/ligand
package ligand
