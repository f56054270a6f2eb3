package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridorbit/bitgrid"
	"github.com/katalvlaran/gridorbit/gridgraph"
)

// ExampleConnectedComponents demonstrates how to identify contiguous
// “islands” of marked cells in a packed grid.
// Scenario:
//
//   - Grid values: 0 = water, 1,2,3 = land
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect three islands, reported by their lowest cell.
func ExampleConnectedComponents() {
	p, _ := gridgraph.From2D([][]int{
		{0, 1, 1, 0, 2},
		{0, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	})
	g, _ := bitgrid.NewGeometry(5)

	comps := gridgraph.ConnectedComponents(p, gridgraph.Conn4)
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d: %d cells\n", i, comp.Count())
	}
	fmt.Print(g.Draw(comps[1]))

	// Output:
	// components: 3
	// component 0: 3 cells
	// component 1: 5 cells
	// component 2: 1 cells
	// . . . . X
	// . . . X X
	// . . X X .
	// . . . . .
	// . . . . .
}
