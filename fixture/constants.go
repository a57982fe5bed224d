// Package fixture defines shared constants used by the fixture tables, so
// labels, names and method tokens are not sprinkled as literals.
package fixture

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodNodes is the canonical name for the Nodes constructor.
	MethodNodes = "Nodes"
	// MethodEdges is the canonical name for the Edges constructor.
	MethodEdges = "Edges"
	// MethodBuildGraph is the canonical name for BuildGraph.
	MethodBuildGraph = "BuildGraph"
	// MethodExtendGraph is the canonical name for ExtendGraph.
	MethodExtendGraph = "ExtendGraph"
)

//-----------------------------------------------------------------------------
// Node labels (feat_type)
//-----------------------------------------------------------------------------

// Pharmacophore feature labels used by the fixtures.
const (
	LabelA = "A"
	LabelD = "D"
	LabelH = "H"
	LabelN = "N"
	LabelP = "P"
	LabelR = "R"
)

//-----------------------------------------------------------------------------
// Graph names and edge colors
//-----------------------------------------------------------------------------

// Display names of the named fixtures.
const (
	NameG      = "G"
	NameH      = "H"
	NameJ      = "J"
	NameGraph1 = "Graph 1"
	NameGraph2 = "Graph 2"
	NameGraph3 = "Graph 3"
)

// ColorSupergraph marks the edges that extend G into its supergraph H.
const ColorSupergraph = "black"
