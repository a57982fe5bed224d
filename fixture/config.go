// SPDX-License-Identifier: MIT
// Package: ligand/fixture
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • name      = ""  (unnamed graph; ExtendGraph keeps the base name)
//   • edgeColor = ""  (edges carry no color)

package fixture

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// name is the display name given to the built graph.
	name string
	// hasName distinguishes WithName("") from no WithName at all.
	hasName bool
	// edgeColor, when non-empty, is attached to every edge added by Edges.
	edgeColor string
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order. Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
