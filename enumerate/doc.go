// Package enumerate drives the exhaustive count of grid placements up to
// symmetry: for every cell count n it walks all C(L², n) raw subsets,
// canonicalizes each, and registers the result in a per-n deduplication
// Set. The final Set sizes are the per-n class counts.
//
// What:
//
//   - Enumerate runs the passes for one grid size and returns a Result with
//     per-n class counts, class weights (placements), an orbit-size
//     histogram and, optionally, counts of connected classes.
//   - Result.Verify checks exhaustiveness: the weights of the classes found
//     for n must add up to C(L², n).
//   - n = 0 and n = L² have a single subset each and are registered
//     directly.
//
// Options:
//
//   - WithTieBreak, WithBinner, WithGenerator choose the canonical rule,
//     the store partitioning and the subset walk.
//   - WithRange restricts the passes to n in [lo, hi].
//   - WithConnectivity also counts classes whose cells form one island.
//   - WithKeepPatterns retains the Store so representatives can be listed.
//   - WithOnPass runs a hook after every pass; WithContext allows
//     cancellation, polled every 65536 subsets.
//
// Complexity:
//
//   - Time:   O(2^(L²)) canonicalizations over the full range.
//   - Memory: O(number of classes of the largest pass); the Store keeps
//     all passes when WithKeepPatterns is set.
//
// Errors:
//
//   - ErrOptionViolation: an invalid Option value was supplied.
//   - ErrBadRange: the requested n range lies outside [0, L²].
//   - ErrNotExhaustive: Verify found a pass whose weights do not add up.
//   - bitgrid.ErrBadSize: grid size outside [1, 8].
//   - context errors (wrapped) on cancellation, or the OnPass hook error.
package enumerate
