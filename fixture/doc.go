// Package fixture provides hardcoded labeled complete graphs for the unit
// tests of clique and subgraph-matching code over pharmacophore graphs.
//
// Every public factory (CompleteGraphs, K4RepeatedLabels, K5RepeatedLabels,
// K6RepeatedLabels, K3SingleLabel, K4SingleLabel) builds a fresh *core.Graph
// from literal data tables, checks that it is complete (|E| = n(n-1)/2) and
// returns it. Repeated calls return value-equal, independently allocated
// graphs; no package state is read or written.
//
// The package offers the following key components:
//
//   - Construction primitives (the same shape as a topology builder):
//     – Constructor:    func(g, cfg) error applied in order by BuildGraph.
//     – BuilderOption:  WithName, WithEdgeColor.
//     – Nodes / Edges:  Constructors over literal NodeSpec / EdgeSpec tables.
//     – BuildGraph:     fresh graph + constructors + completeness gate.
//     – ExtendGraph:    deep clone of a base graph + constructors + gate.
//   - Completeness gate:
//     – ValidateComplete returns *IntegrityError (errors.Is ErrFixtureIntegrity).
//     – MustBuild panics with that error; every public factory goes through it.
//   - Catalog / Lookup: every single-graph fixture addressable by key.
//
// Guarantees:
//
//   - Node IDs are the literal 1-based integers of the tables.
//   - Every node has one feat_type label; every edge has one distance.
//   - A fixture that fails the completeness gate is a fixture-authoring bug:
//     the factory panics instead of returning a partial graph.
package fixture
