// SPDX-License-Identifier: MIT
// Package: ligand/fixture
//
// errors.go - sentinel errors and the integrity error type.
//
// Error policy:
//   • Callers branch with errors.Is / errors.As, never on strings.
//   • Implementations attach method context using `%w`.
//   • The completeness gate reports *IntegrityError, which matches
//     ErrFixtureIntegrity. Public factories turn it into a panic via MustBuild.

package fixture

import (
	"errors"
	"fmt"
)

// ErrFixtureIntegrity indicates that a constructed fixture is not a complete
// graph. It is a defect in the literal fixture data, never a runtime fault.
var ErrFixtureIntegrity = errors.New("fixture: graph is not complete")

// ErrConstructFailed indicates that a constructor could not be applied
// (nil constructor, nil base graph, or a core insertion error).
var ErrConstructFailed = errors.New("fixture: construction failed")

// ErrUnknownFixture indicates that Lookup was given a key not in the Catalog.
var ErrUnknownFixture = errors.New("fixture: unknown fixture")

// IntegrityError describes a fixture that failed the completeness gate.
type IntegrityError struct {
	Name  string // graph name, may be empty
	Nodes int    // observed vertex count n
	Edges int    // observed edge count
	Want  int    // n(n-1)/2
}

// Error implements error.
func (e *IntegrityError) Error() string {
	name := e.Name
	if name == "" {
		name = "<unnamed>"
	}

	return fmt.Sprintf("fixture %s: graph has %d edges, want %d for %d nodes", name, e.Edges, e.Want, e.Nodes)
}

// Is reports whether target is ErrFixtureIntegrity.
func (e *IntegrityError) Is(target error) bool {
	return target == ErrFixtureIntegrity
}
