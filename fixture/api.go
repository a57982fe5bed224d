// SPDX-License-Identifier: MIT
// Package: ligand/fixture
//
// api.go - public entry-points for assembling fixtures.
//
// Design contract:
//   - BuildGraph(bopts, cons...) creates g, resolves cfg, runs cons in order,
//     then applies the completeness gate.
//   - ExtendGraph(base, bopts, cons...) does the same on a deep clone of base.
//   - Constructors never panic; they return wrapped sentinel errors.
//   - MustBuild is the single place that turns an error into a panic.

package fixture

import (
	"fmt"

	"github.com/katalvlaran/ligand/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Return wrapped sentinel errors, never panic.
//   - Emit vertices and edges in table order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph named per WithName, applies all
// constructors in order and checks completeness.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or a failed insertion.
//   - *IntegrityError (errors.Is ErrFixtureIntegrity) if the result is not complete.
//
// Complexity: Σ cost of constructors + O(1) gate.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g := core.NewGraph(core.WithName(cfg.name))

	if err := apply(g, cfg, cons); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
	}
	if err := ValidateComplete(g); err != nil {
		return nil, err
	}

	return g, nil
}

// ExtendGraph deep-clones base, renames the clone when WithName is given,
// applies all constructors in order and checks completeness. base is never
// mutated; the result shares no storage with it.
//
// Errors: as BuildGraph, plus ErrConstructFailed for a nil base.
func ExtendGraph(base *core.Graph, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if base == nil {
		return nil, fmt.Errorf("%s: nil base graph: %w", MethodExtendGraph, ErrConstructFailed)
	}

	cfg := newBuilderConfig(bopts...)
	g := base.Clone()
	if cfg.hasName {
		g.SetName(cfg.name)
	}

	if err := apply(g, cfg, cons); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodExtendGraph, err)
	}
	if err := ValidateComplete(g); err != nil {
		return nil, err
	}

	return g, nil
}

// ValidateComplete checks the fixture invariant |E| == n(n-1)/2.
// Returns nil or an *IntegrityError.
func ValidateComplete(g *core.Graph) error {
	st := g.Stats()
	if st.Complete {
		return nil
	}

	return &IntegrityError{
		Name:  st.Name,
		Nodes: st.VertexCount,
		Edges: st.EdgeCount,
		Want:  st.CompleteEdgeCount,
	}
}

// MustBuild returns g when err is nil and panics with err otherwise.
// It wraps BuildGraph/ExtendGraph in fixture factories, where a failure can
// only mean the literal tables are wrong.
func MustBuild(g *core.Graph, err error) *core.Graph {
	if err != nil {
		panic(err)
	}

	return g
}

// apply runs cons in order against g.
func apply(g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}
