// Package gridgraph treats the marked cells of a bitgrid.Pattern as the
// vertices of a grid graph, enabling component analysis on packed grids.
//
// What:
//
//   - Dilate grows a pattern by one step in every allowed direction.
//   - ConnectedComponents splits a pattern into contiguous "islands",
//     ordered by their lowest cell.
//   - IsConnected reports whether the marked cells form a single island.
//   - From2D packs a rectangular [][]int grid (value ≥ 1 is land) into a
//     Pattern.
//
// Complexity:
//
//   - Dilate:              O(1), a handful of shifts and masks.
//   - ConnectedComponents: O(n·d), n = marked cells, d = island diameter.
//   - From2D:              O(W×H).
//
// Options:
//
//   - Conn4 (N, E, S, W) or Conn8 (adds the diagonals).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrGridTooLarge: grid does not fit an 8×8 Pattern.
//   - ErrBadConnectivity: connectivity is neither Conn4 nor Conn8.
package gridgraph
