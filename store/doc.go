// Package store deduplicates canonical grid patterns.
//
// What:
//
//   - A Set holds the distinct canonical patterns seen for one cell count.
//     Patterns are partitioned into bins by a Binner; membership inside a
//     bin is an exact linear scan, so collisions cost time, never accuracy.
//   - A Store owns one Set per cell count n in [0, L²].
//   - MaskBinner extracts a fixed set of bit positions (the cells closest to
//     the origin, where canonical patterns differ most). TrailingZerosBinner
//     bins by the lowest marked cell beyond row 0.
//
// Contract:
//
//   - Binner.Bin must be a pure function of the pattern.
//   - RegisterIfNew inserts at most once per distinct value; nothing is
//     ever removed.
//   - Set and Store are not safe for concurrent mutation. Different Sets
//     share nothing and may be filled from different goroutines.
//
// Errors:
//
//   - ErrUnknownBinner: NewBinner got an unrecognized name.
package store
