// SPDX-License-Identifier: MIT
// Package: ligand/fixture
//
// options.go - functional options for the fixture builder.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • No hidden globals; everything flows through builderConfig.

package fixture

// BuilderOption customizes construction by mutating a builderConfig before
// the constructors run.
type BuilderOption func(*builderConfig)

// WithName sets the display name of the built graph.
func WithName(name string) BuilderOption {
	return func(c *builderConfig) {
		c.name = name
		c.hasName = true
	}
}

// WithEdgeColor attaches color to every edge added by the Edges constructor.
// Panics on an empty color: leaving the option out is the way to get
// uncolored edges.
func WithEdgeColor(color string) BuilderOption {
	if color == "" {
		panic("fixture: WithEdgeColor(\"\")")
	}
	return func(c *builderConfig) {
		c.edgeColor = color
	}
}
