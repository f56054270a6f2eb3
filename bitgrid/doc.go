// Package bitgrid packs an L×L boolean grid (1 ≤ L ≤ 8) into a single
// uint64 and provides the geometric transforms used for symmetry reduction.
//
// What:
//
//   - Pattern stores cell (row, col) at bit 8*row+col. The row stride is
//     always 8 regardless of L, so rows stay byte aligned and row-level
//     transforms are byte shuffles.
//   - Geometry carries the grid size and the masks derived from it.
//   - Rotate turns a pattern 90° clockwise inside the L×L frame.
//   - Mirror reverses the row order inside the frame.
//   - Translate shifts the occupied region so it touches row 0 and column 0.
//   - Pack and Unpack convert between a dense raw subset (bit row*L+col)
//     and a Pattern.
//   - Extract and Deposit are portable parallel bit extract/deposit.
//
// Complexity:
//
//   - Rotate:     O(L²) bit operations.
//   - Mirror:     O(1).
//   - Translate:  O(1).
//   - Pack/Unpack, Extract/Deposit: O(popcount(mask)).
//
// Errors:
//
//   - ErrBadSize: grid size outside [1, 8].
package bitgrid
