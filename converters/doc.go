// Package converters provides two-way adapters between core.Graph and the
// gonum graph packages:
//   - ToGonum exports a labeled graph as a *simple.WeightedUndirectedGraph
//     plus its node-label map.
//   - FromGonum rebuilds a core.Graph from any graph.WeightedUndirected and a
//     label map.
//
// Node IDs map one-to-one (core int ↔ gonum int64) and distances map to
// float64 weights. Edge colors have no gonum counterpart and are dropped on
// export.
package converters
