// Package canon maps any grid pattern to a single canonical representative
// of its symmetry class under the dihedral group of the square (four
// rotations and their mirror images) combined with translation.
//
// What:
//
//   - Canonicalizer sweeps the 8 orbit members of a pattern, each translated
//     to the origin, and keeps the extremal one under a fixed TieBreak.
//   - MinValue keeps the numerically smallest pattern; MaxReversed keeps the
//     pattern whose bit-reversal is largest. Both rules give the same number
//     of classes; they only disagree on which member represents a class.
//   - OrbitSize and Placements describe the class of a pattern: how many
//     distinct oriented shapes it has and how many raw cell subsets of the
//     L×L grid fall into it.
//
// Guarantees:
//
//   - Canonicalize is pure and total over valid patterns.
//   - Orbit invariant: every member of an orbit maps to the same result.
//   - Idempotent and popcount preserving.
//
// Complexity:
//
//   - Canonicalize: 6 rotations, 1 mirror, 8 translations.
//   - Placements:   one orbit sweep plus an 8-element dedup.
package canon
