package canon_test

import (
	"fmt"

	"github.com/katalvlaran/gridorbit/bitgrid"
	"github.com/katalvlaran/gridorbit/canon"
)

// ExampleCanonicalizer_Canonicalize shows an S-tetromino placed in the
// bottom-right corner of a 4×4 board collapsing to its canonical form.
func ExampleCanonicalizer_Canonicalize() {
	g, _ := bitgrid.NewGeometry(4)
	c := canon.New(g, canon.MinValue)

	p := bitgrid.Parse(`
. . . .
. . . X
. . X X
. . X .`)
	fmt.Print(g.Draw(c.Canonicalize(p)))
	fmt.Println("orbit size:", c.OrbitSize(p))
	fmt.Println("placements:", c.Placements(p))

	// Output:
	// . X X .
	// X X . .
	// . . . .
	// . . . .
	// orbit size: 4
	// placements: 24
}
