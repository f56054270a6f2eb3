// Package gridorbit counts the placements of n marked cells on an L×L grid
// up to the symmetries of the square — four rotations, their mirror images,
// and translation — for every n from 0 to L².
//
// 🚀 What is gridorbit?
//
//	An exhaustive enumerator built from small, pure pieces:
//		• bitgrid:   an L×L grid packed into one uint64, 8-bit row stride
//		• canon:     canonical representative of a symmetry class
//		• store:     hashed-bucket deduplication of canonical patterns
//		• combo:     k-subset walks (bit tricks or gonum combinations)
//		• enumerate: the per-n driver, options, verification
//		• gridgraph: connected components of packed grids
//		• report:    the text report
//
// Quick ASCII example (L = 3, n = 2): the five classes are
//
//	X X .   X . X   . X .   . . X   . . X
//	. . .   . . .   X . .   X . .   . . .
//	. . .   . . .   . . .   . . .   X . .
//
// Run it:
//
//	go run ./cmd/gridorbit -L 4 -orbits
package gridorbit
