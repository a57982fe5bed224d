// tables.go: literal node and edge tables of every fixture.
// The tables are read-only; constructors copy values out of them.

package fixture

//-----------------------------------------------------------------------------
// complete_graphs: G, J (K4) and H (K6 = G + two nodes)
//-----------------------------------------------------------------------------

// k4Pairs is the edge order shared by G and J.
var k4Pairs = [][2]int{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}

// k4Distances is the distance column shared by G and J.
var k4Distances = []int64{3, 4, 5, 8, 4, 2}

var gNodes = []NodeSpec{
	{ID: 1, FeatType: LabelA},
	{ID: 2, FeatType: LabelN},
	{ID: 3, FeatType: LabelD},
	{ID: 4, FeatType: LabelR},
}

// jNodes equals gNodes except node 2, where N is replaced by P.
var jNodes = []NodeSpec{
	{ID: 1, FeatType: LabelA},
	{ID: 2, FeatType: LabelP},
	{ID: 3, FeatType: LabelD},
	{ID: 4, FeatType: LabelR},
}

// hExtraNodes are added to a copy of G to form the supergraph H.
var hExtraNodes = []NodeSpec{
	{ID: 5, FeatType: LabelH},
	{ID: 6, FeatType: LabelP},
}

var hExtraPairs = [][2]int{{1, 5}, {1, 6}, {2, 5}, {2, 6}, {3, 5}, {3, 6}, {4, 5}, {4, 6}, {5, 6}}

var hExtraDistances = []int64{4, 3, 5, 6, 5, 2, 8, 7, 4}

//-----------------------------------------------------------------------------
// Repeated labels
//-----------------------------------------------------------------------------

var k4RepeatedNodes = []NodeSpec{
	{ID: 1, FeatType: LabelA},
	{ID: 2, FeatType: LabelA},
	{ID: 3, FeatType: LabelD},
	{ID: 4, FeatType: LabelR},
}

var k4RepeatedEdges = []EdgeSpec{
	{U: 1, V: 2, Distance: 3}, {U: 1, V: 3, Distance: 4}, {U: 1, V: 4, Distance: 5},
	{U: 2, V: 3, Distance: 8}, {U: 2, V: 4, Distance: 4}, {U: 3, V: 4, Distance: 2},
}

var k5RepeatedNodes = []NodeSpec{
	{ID: 1, FeatType: LabelA},
	{ID: 2, FeatType: LabelR},
	{ID: 3, FeatType: LabelH},
	{ID: 4, FeatType: LabelD},
	{ID: 5, FeatType: LabelH},
}

var k5RepeatedEdges = []EdgeSpec{
	{U: 1, V: 2, Distance: 7}, {U: 1, V: 3, Distance: 2}, {U: 1, V: 4, Distance: 6}, {U: 1, V: 5, Distance: 5},
	{U: 2, V: 3, Distance: 4}, {U: 2, V: 4, Distance: 3}, {U: 2, V: 5, Distance: 5},
	{U: 3, V: 4, Distance: 8}, {U: 3, V: 5, Distance: 5},
	{U: 4, V: 5, Distance: 4},
}

var k6RepeatedNodes = []NodeSpec{
	{ID: 1, FeatType: LabelD},
	{ID: 2, FeatType: LabelR},
	{ID: 3, FeatType: LabelR},
	{ID: 4, FeatType: LabelA},
	{ID: 5, FeatType: LabelD},
	{ID: 6, FeatType: LabelR},
}

var k6RepeatedEdges = []EdgeSpec{
	{U: 1, V: 2, Distance: 4}, {U: 1, V: 3, Distance: 8}, {U: 1, V: 4, Distance: 2}, {U: 1, V: 5, Distance: 5}, {U: 1, V: 6, Distance: 7},
	{U: 2, V: 3, Distance: 3}, {U: 2, V: 4, Distance: 7}, {U: 2, V: 5, Distance: 9}, {U: 2, V: 6, Distance: 8},
	{U: 3, V: 4, Distance: 6}, {U: 3, V: 5, Distance: 4}, {U: 3, V: 6, Distance: 3},
	{U: 4, V: 5, Distance: 5}, {U: 4, V: 6, Distance: 2},
	{U: 5, V: 6, Distance: 3},
}

//-----------------------------------------------------------------------------
// Single label
//-----------------------------------------------------------------------------

var k3SingleNodes = []NodeSpec{
	{ID: 1, FeatType: LabelA},
	{ID: 2, FeatType: LabelA},
	{ID: 3, FeatType: LabelA},
}

var k3SingleEdges = []EdgeSpec{
	{U: 1, V: 2, Distance: 4}, {U: 1, V: 3, Distance: 3}, {U: 2, V: 3, Distance: 2},
}

var k4SingleNodes = []NodeSpec{
	{ID: 1, FeatType: LabelA},
	{ID: 2, FeatType: LabelA},
	{ID: 3, FeatType: LabelA},
	{ID: 4, FeatType: LabelA},
}

var k4SingleEdges = []EdgeSpec{
	{U: 1, V: 2, Distance: 3}, {U: 1, V: 3, Distance: 4}, {U: 1, V: 4, Distance: 6},
	{U: 2, V: 3, Distance: 4}, {U: 2, V: 4, Distance: 5}, {U: 3, V: 4, Distance: 3},
}
