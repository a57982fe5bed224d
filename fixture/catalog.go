// Package fixture: catalog of every single-graph fixture, addressable by key.
package fixture

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ligand/core"
)

// Catalog keys. The complete_graphs members are addressed as
// "complete_graphs/<name>".
const (
	KeyCompleteG        = "complete_graphs/G"
	KeyCompleteH        = "complete_graphs/H"
	KeyCompleteJ        = "complete_graphs/J"
	KeyK4RepeatedLabels = "k4_repeated_labels"
	KeyK5RepeatedLabels = "k5_repeated_labels"
	KeyK6RepeatedLabels = "k6_repeated_labels"
	KeyK3SingleLabel    = "k3_single_label"
	KeyK4SingleLabel    = "k4_single_label"
)

// Factory builds one fresh fixture graph.
type Factory func() *core.Graph

// completeMember returns a Factory for the i-th graph of CompleteGraphs.
func completeMember(i int) Factory {
	return func() *core.Graph { return CompleteGraphs()[i] }
}

// factories maps catalog keys to their factories. Read-only.
var factories = map[string]Factory{
	KeyCompleteG:        completeMember(0),
	KeyCompleteH:        completeMember(1),
	KeyCompleteJ:        completeMember(2),
	KeyK4RepeatedLabels: K4RepeatedLabels,
	KeyK5RepeatedLabels: K5RepeatedLabels,
	KeyK6RepeatedLabels: K6RepeatedLabels,
	KeyK3SingleLabel:    K3SingleLabel,
	KeyK4SingleLabel:    K4SingleLabel,
}

// Catalog returns all fixture keys in ascending order.
func Catalog() []string {
	keys := make([]string, 0, len(factories))
	for k := range factories {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Lookup builds a fresh instance of the fixture registered under key.
// Returns ErrUnknownFixture for an unregistered key.
func Lookup(key string) (*core.Graph, error) {
	f, ok := factories[key]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", key, ErrUnknownFixture)
	}

	return f(), nil
}
